package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pixil98/go-realm/internal/world"
)

func makeExitCmd() *command {
	return &command{
		usage:   "make exit <name> to <room>",
		minArgs: 3,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			// Split "<name> to <room>" on the last "to" so exit names
			// containing "to" still parse.
			sep := -1
			for i, a := range args {
				if strings.EqualFold(a, "to") {
					sep = i
				}
			}
			if sep <= 0 || sep == len(args)-1 {
				return "", NewUserError("Usage: make exit <name> to <room>")
			}
			name := strings.Join(args[:sep], " ")
			destRef := strings.Join(args[sep+1:], " ")

			if _, err := strconv.Atoi(name); err == nil {
				return "", NewUserError("make exit: exit name cannot be an integer")
			}

			// Sealed rooms only accept new exits from their owners.
			if room.Sealed && !CanMutate(actor, room) {
				return "", NewUserError("make exit: this room is sealed")
			}

			for _, e := range room.Exits {
				if strings.EqualFold(e.Name, name) {
					return "", NewUserError("make exit: an exit by this name already exists here")
				}
			}

			res := Resolve(destRef, h.store.Rooms(), roomName, roomID)
			if res.Outcome != ResolvedExact {
				return "", resolutionError("make exit", res, "room", "in the world", destRef)
			}
			dest := res.Entity

			room.Exits = append(room.Exits, &world.Exit{
				Name:   name,
				Owners: []string{actor.Name},
				Dest:   dest.ID,
			})
			if err := h.store.SaveRoom(room); err != nil {
				return "", fmt.Errorf("saving room %d: %w", room.ID, err)
			}

			return fmt.Sprintf("make exit: done (id: %d)", len(room.Exits)-1), nil
		},
	}
}
