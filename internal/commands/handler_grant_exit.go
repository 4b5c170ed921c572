package commands

import (
	"fmt"
	"strconv"
)

func grantExitCmd() *command {
	return &command{
		usage:   "grant exit <id> <username>",
		minArgs: 2,
		maxArgs: 2,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			// Exits are referenced by index only; no partial matching.
			exitID, err := strconv.Atoi(args[0])
			if err != nil {
				return "", NewUserError("Usage: grant exit <id> <username>")
			}
			exit := room.Exit(exitID)
			if exit == nil {
				return "", NewUserError("grant exit: no such exit in this room")
			}

			return h.grantOwner("grant exit", exit, CanMutateExit(actor, room, exit), args[1], "exit",
				func() error { return h.store.SaveRoom(room) })
		},
	}
}
