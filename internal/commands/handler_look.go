package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-realm/internal/display"
)

func lookCmd() *command {
	return &command{
		usage:   "look [target]",
		minArgs: 0,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			if len(args) == 0 {
				return renderRoom(h.store, room, actor)
			}

			target := strings.Join(args, " ")

			// Items in the room or held, then occupants.
			candidates := append(RoomItems(h.store, room), HeldItems(h.store, actor)...)
			res := Resolve(target, candidates, itemName, itemID)
			switch res.Outcome {
			case ResolvedExact:
				item := res.Entity
				if item.Description == "" {
					return fmt.Sprintf("%s (id: %d)", item.Name, item.ID), nil
				}
				return display.Wrap(fmt.Sprintf("%s (id: %d)\n%s", item.Name, item.ID, item.Description)), nil
			case ResolvedAmbiguous, ResolvedTooMany, ResolvedBareArticle:
				return "", resolutionError("look", res, "item", "here", target)
			}

			for _, name := range room.Users {
				occupant := h.store.User(name)
				if occupant == nil {
					continue
				}
				if strings.EqualFold(occupant.Name, target) || strings.EqualFold(occupant.Nick, target) {
					desc := occupant.Description
					if desc == "" {
						desc = "You see nothing special."
					}
					return display.Wrap(fmt.Sprintf("%s\n%s", display.Title(occupant.Nick), desc)), nil
				}
			}

			return "", NewUserError("look: No such thing here: " + target)
		},
	}
}
