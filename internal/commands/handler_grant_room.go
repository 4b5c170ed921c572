package commands

import "fmt"

func grantRoomCmd() *command {
	return &command{
		usage:   "grant room <username>",
		minArgs: 1,
		maxArgs: 1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			return h.grantOwner("grant room", room, CanMutate(actor, room), args[0], "room",
				func() error { return h.store.SaveRoom(room) })
		},
	}
}
