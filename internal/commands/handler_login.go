package commands

import (
	"fmt"

	"github.com/pixil98/go-realm/internal/auth"
)

func loginCmd() *command {
	return &command{
		usage:     "login <username> <password>",
		minArgs:   2,
		maxArgs:   2,
		anonymous: true,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			if s.User != nil {
				return "", NewUserError("login: You are already logged in.")
			}

			user := h.store.User(args[0])
			if user == nil || !auth.CheckPassword(user.PassHash, args[1]) {
				return "", NewUserError("login: Incorrect username or password.")
			}

			s.User = user

			room := h.currentRoom(user)
			if room == nil {
				return "", fmt.Errorf("no room for user %s", user.Name)
			}
			room.AddUser(user.Name)
			user.Room = room.ID
			if err := h.store.SaveRoom(room); err != nil {
				return "", fmt.Errorf("saving room %d: %w", room.ID, err)
			}
			if err := h.store.SaveUser(user); err != nil {
				return "", fmt.Errorf("saving user %s: %w", user.Name, err)
			}

			if h.pub != nil {
				_ = h.pub.BroadcastRoom(room.ID, []string{user.Name},
					fmt.Sprintf("%s has entered the world.", user.Nick))
			}

			if user.Autolook {
				return renderRoom(h.store, room, user)
			}
			return fmt.Sprintf("Welcome back, %s.", user.Nick), nil
		},
	}
}
