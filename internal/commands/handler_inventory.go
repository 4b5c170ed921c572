package commands

import (
	"fmt"
	"strings"
)

func inventoryCmd() *command {
	return &command{
		usage:   "inventory",
		minArgs: 0,
		maxArgs: 0,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			items := HeldItems(h.store, s.User)
			if len(items) == 0 {
				return "inventory: You are not carrying anything.", nil
			}

			lines := make([]string, 0, len(items))
			for _, item := range items {
				lines = append(lines, fmt.Sprintf("%d: %s", item.ID, item.Name))
			}
			return strings.Join(lines, "\n"), nil
		},
	}
}
