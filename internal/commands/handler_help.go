package commands

import "strings"

func helpCmd() *command {
	return &command{
		usage:     "help",
		minArgs:   0,
		maxArgs:   0,
		anonymous: true,
		run: func(h *Handler, s *SessionState, args []string) (string, error) {
			return "Commands:\n  " + strings.Join(h.Usages(), "\n  "), nil
		},
	}
}
