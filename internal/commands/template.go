package commands

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/go-realm/internal/display"
	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

const roomTemplate = `{{ .Name }} (id: {{ .ID }})
{{- if .Description }}
{{ .Description }}
{{- end }}
{{- if .Occupants }}
Occupants: {{ join ", " .Occupants }}
{{- end }}
{{- if .Items }}
Items here: {{ join ", " .Items }}
{{- end }}
{{- if .Exits }}
Exits: {{ join ", " .Exits }}
{{- end }}`

type roomView struct {
	ID          int
	Name        string
	Description string
	Occupants   []string
	Items       []string
	Exits       []string
}

// ExpandTemplate expands a template string using the provided data.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// renderRoom produces the look output for a room as seen by viewer.
// The viewer is left out of the occupant list.
func renderRoom(store *storage.WorldStore, room *world.Room, viewer *world.User) (string, error) {
	view := &roomView{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
	}

	for _, name := range room.Users {
		if name == viewer.Name {
			continue
		}
		occupant := store.User(name)
		if occupant == nil {
			continue
		}
		view.Occupants = append(view.Occupants, display.Title(occupant.Nick))
	}

	for _, item := range RoomItems(store, room) {
		view.Items = append(view.Items, item.Name)
	}

	for i, exit := range room.Exits {
		view.Exits = append(view.Exits, fmt.Sprintf("%d: %s", i, exit.Name))
	}

	out, err := ExpandTemplate(roomTemplate, view)
	if err != nil {
		return "", err
	}
	return display.Wrap(strings.TrimSpace(out)), nil
}
