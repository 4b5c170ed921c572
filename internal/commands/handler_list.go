package commands

import (
	"fmt"
	"strings"
)

func listItemsCmd() *command {
	return &command{
		usage:   "list items",
		minArgs: 0,
		maxArgs: 0,
		wizard:  true,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			items := h.store.Items()
			if len(items) == 0 {
				return "list items: no items", nil
			}

			lines := make([]string, 0, len(items))
			for _, item := range items {
				lines = append(lines, fmt.Sprintf("%d: %s", item.ID, item.Name))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}

func listRoomsCmd() *command {
	return &command{
		usage:   "list rooms",
		minArgs: 0,
		maxArgs: 0,
		wizard:  true,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			rooms := h.store.Rooms()
			if len(rooms) == 0 {
				return "list rooms: no rooms", nil
			}

			lines := make([]string, 0, len(rooms))
			for _, room := range rooms {
				lines = append(lines, fmt.Sprintf("%d: %s", room.ID, room.Name))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}
