package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-realm/internal/world"
)

func makeItemCmd() *command {
	return &command{
		usage:   "make item <name>",
		minArgs: 1,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			name := strings.Join(args, " ")

			if _, err := strconv.Atoi(name); err == nil {
				return "", NewUserError("make item: item name cannot be an integer")
			}

			for _, i := range h.store.Items() {
				if strings.EqualFold(i.Name, name) {
					return "", NewUserError("make item: an item by this name already exists")
				}
			}

			item := &world.Item{
				ID:     h.store.NextItemID(),
				Name:   name,
				Owners: []string{actor.Name},
			}

			// The new item starts in its creator's inventory; persist the
			// item before the user so a failure never leaves an inventory
			// pointing at a record that was never written.
			if err := h.store.SaveItem(item); err != nil {
				return "", fmt.Errorf("saving item: %w", err)
			}
			actor.AddToInventory(item.ID)
			if err := h.store.SaveUser(actor); err != nil {
				return "", fmt.Errorf("saving user %s: %w", actor.Name, err)
			}

			return fmt.Sprintf("make item: done (id: %d)", item.ID), nil
		},
	}
}
