package commands

import (
	"errors"
	"fmt"
	"strings"
)

func getCmd() *command {
	return &command{
		usage:   "get <item>",
		minArgs: 1,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			target := strings.Join(args, " ")
			res := Resolve(target, RoomItems(h.store, room), itemName, itemID)
			if res.Outcome != ResolvedExact {
				return "", resolutionError("get", res, "item", "in this room", target)
			}

			item := res.Entity
			err := h.transfer.Pickup(actor, item, room)
			switch {
			case errors.Is(err, ErrGlued):
				return "", NewUserError("get: You cannot get this item.")
			case errors.Is(err, ErrAlreadyHeld):
				return "", NewUserError("get: This item is already in your inventory.")
			case err != nil:
				return "", err
			}

			return fmt.Sprintf("get: You pick up %s.", item.Name), nil
		},
	}
}
