package commands

import (
	"fmt"
	"strings"

	"github.com/pixil98/go-realm/internal/auth"
	"github.com/pixil98/go-realm/internal/world"
)

func registerCmd() *command {
	return &command{
		usage:     "register <username> <password>",
		minArgs:   2,
		maxArgs:   2,
		anonymous: true,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			if s.User != nil {
				return "", NewUserError("register: You must logout first to register a new user.")
			}

			username, password := args[0], args[1]
			if strings.EqualFold(username, "the") {
				return "", NewUserError("register: Very funny.")
			}
			if err := world.ValidateUsername(username); err != nil {
				return "", NewUserError("register: Usernames may contain alphanumerics and underscores only.")
			}

			name := strings.ToLower(username)
			if h.store.User(name) != nil {
				return "", NewUserError("register: That username is already registered.")
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return "", err
			}

			user := &world.User{
				Name:        name,
				Nick:        username,
				PassHash:    hash,
				Room:        h.defaultRoom,
				Inventory:   []int{},
				Pronouns:    "neutral",
				Autolook:    true,
				ChatEnabled: true,
			}
			if err := h.store.SaveUser(user); err != nil {
				return "", fmt.Errorf("saving user %s: %w", name, err)
			}

			return fmt.Sprintf("Registered user %q.", name), nil
		},
	}
}
