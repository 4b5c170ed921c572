package commands

import "fmt"

func logoutCmd() *command {
	return &command{
		usage:   "logout",
		minArgs: 0,
		maxArgs: 0,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			if err := h.Leave(s); err != nil {
				return "", err
			}
			return "logout: done", nil
		},
	}
}

func quitCmd() *command {
	return &command{
		usage:     "quit",
		minArgs:   0,
		maxArgs:   0,
		anonymous: true,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			if s.User != nil {
				if err := h.Leave(s); err != nil {
					return "", err
				}
			}
			s.Quit = true
			return "Goodbye.", nil
		},
	}
}

// Leave takes the session's user out of the world: removed from their
// room's occupant list, departure announced, session deauthenticated.
// Also called by the session manager when a connection drops mid-login.
func (h *Handler) Leave(s *SessionState) error {
	user := s.User
	if user == nil {
		return nil
	}

	room := h.store.Room(user.Room)
	if room != nil {
		room.RemoveUser(user.Name)
		if err := h.store.SaveRoom(room); err != nil {
			return fmt.Errorf("saving room %d: %w", room.ID, err)
		}
		if h.pub != nil {
			_ = h.pub.BroadcastRoom(room.ID, []string{user.Name},
				fmt.Sprintf("%s has left the world.", user.Nick))
		}
	}

	s.User = nil
	return nil
}
