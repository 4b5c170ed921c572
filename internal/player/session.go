package player

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pixil98/go-realm/internal/commands"
	"github.com/pixil98/go-realm/internal/messaging"
)

const banner = "Welcome. Use 'register <username> <password>' or 'login <username> <password>'."

// Session is one connection's command loop. Input lines run strictly in
// order; broadcast messages from other sessions arrive asynchronously via
// the subscription and interleave between prompts.
type Session struct {
	id    string
	conn  io.ReadWriter
	cmds  *commands.Handler
	sub   Subscriber
	state *commands.SessionState

	writeMu sync.Mutex
	unsub   func()
}

func newSession(cmds *commands.Handler, sub Subscriber, conn io.ReadWriter) *Session {
	return &Session{
		id:    uuid.New().String(),
		conn:  conn,
		cmds:  cmds,
		sub:   sub,
		state: &commands.SessionState{},
	}
}

func (s *Session) run(ctx context.Context) error {
	s.writeLine(banner)
	s.writePrompt()

	scanner := bufio.NewScanner(s.conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			s.writePrompt()
			continue
		}

		resp, err := s.cmds.Exec(ctx, s.state, line)
		switch {
		case err != nil:
			var userErr *commands.UserError
			if errors.As(err, &userErr) {
				s.writeLine(userErr.Message)
			} else {
				// Store failures are hard command failures; the world
				// state is whatever the last completed write left it.
				slog.ErrorContext(ctx, "command failed", "session", s.id, "error", err)
				s.writeLine("Something went wrong.")
			}
		case resp != "":
			s.writeLine(resp)
		}

		s.syncSubscription()
		if s.state.Quit {
			break
		}
		s.writePrompt()
	}

	// Connection gone or quit requested: take the user out of the world.
	if s.state.User != nil {
		if err := s.cmds.Leave(s.state); err != nil {
			slog.WarnContext(ctx, "leaving world on disconnect", "session", s.id, "error", err)
		}
	}
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}

	return scanner.Err()
}

// syncSubscription keeps the NATS subscription in step with the login
// state: subscribed to the user's subject exactly while logged in.
func (s *Session) syncSubscription() {
	user := s.state.User

	if user == nil {
		if s.unsub != nil {
			s.unsub()
			s.unsub = nil
		}
		return
	}

	if s.unsub != nil {
		return
	}

	unsub, err := s.sub.Subscribe(messaging.UserSubject(user.Name), func(data []byte) {
		s.writeLine("\n" + string(data))
		s.writePrompt()
	})
	if err != nil {
		slog.Warn("subscribing session", "session", s.id, "user", user.Name, "error", err)
		return
	}
	s.unsub = unsub
}

func (s *Session) writeLine(msg string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, _ = s.conn.Write([]byte(msg + "\n"))
}

func (s *Session) writePrompt() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_, _ = s.conn.Write([]byte("> "))
}
