package player

import (
	"context"
	"io"

	"github.com/pixil98/go-realm/internal/commands"
)

// Subscriber is the message-delivery side of the broadcast collaborator:
// sessions subscribe to their user's subject while logged in.
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (func(), error)
}

// Manager creates a session per accepted connection. Each session runs
// its commands sequentially; concurrency exists only across sessions.
type Manager struct {
	cmds *commands.Handler
	sub  Subscriber
}

func NewManager(cmds *commands.Handler, sub Subscriber) *Manager {
	return &Manager{
		cmds: cmds,
		sub:  sub,
	}
}

func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	return newSession(m.cmds, m.sub, conn).run(ctx)
}
