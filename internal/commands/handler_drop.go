package commands

import (
	"errors"
	"fmt"
	"strings"
)

func dropCmd() *command {
	return &command{
		usage:   "drop <item>",
		minArgs: 1,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			target := strings.Join(args, " ")
			res := Resolve(target, HeldItems(h.store, actor), itemName, itemID)
			if res.Outcome != ResolvedExact {
				return "", resolutionError("drop", res, "item", "in your inventory", target)
			}

			item := res.Entity
			err := h.transfer.Drop(actor, item, room)
			switch {
			case errors.Is(err, ErrNotHeld):
				return "", NewUserError("drop: That item is not in your inventory.")
			case err != nil:
				return "", err
			}

			return fmt.Sprintf("drop: You drop %s.", item.Name), nil
		},
	}
}
