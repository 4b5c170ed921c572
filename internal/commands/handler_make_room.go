package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-realm/internal/world"
)

func makeRoomCmd() *command {
	return &command{
		usage:   "make room <name>",
		minArgs: 1,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			name := strings.Join(args, " ")

			// A purely numeric name would collide with id references.
			if _, err := strconv.Atoi(name); err == nil {
				return "", NewUserError("make room: room name cannot be an integer")
			}

			for _, r := range h.store.Rooms() {
				if strings.EqualFold(r.Name, name) {
					return "", NewUserError("make room: a room by this name already exists")
				}
			}

			room := &world.Room{
				ID:     h.store.NextRoomID(),
				Name:   name,
				Owners: []string{s.User.Name},
				Exits:  []*world.Exit{},
				Items:  []int{},
				Users:  []string{},
			}
			if err := h.store.SaveRoom(room); err != nil {
				return "", fmt.Errorf("saving room: %w", err)
			}

			return fmt.Sprintf("make room: done (id: %d)", room.ID), nil
		},
	}
}
