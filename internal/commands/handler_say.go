package commands

import (
	"fmt"
	"strings"
)

func sayCmd() *command {
	return &command{
		usage:   "say <message>",
		minArgs: 1,
		maxArgs: -1,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			actor := s.User
			room := h.currentRoom(actor)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", actor.Name)
			}

			msg := strings.Join(args, " ")
			if h.pub != nil {
				_ = h.pub.BroadcastRoom(room.ID, []string{actor.Name},
					fmt.Sprintf("%s says: %s", actor.Nick, msg))
			}

			return fmt.Sprintf("You say: %s", msg), nil
		},
	}
}
