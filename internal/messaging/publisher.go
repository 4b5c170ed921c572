package messaging

import (
	"fmt"

	"github.com/pixil98/go-realm/internal/storage"
)

// UserSubject is the per-user delivery subject a session subscribes to.
func UserSubject(name string) string {
	return fmt.Sprintf("user-%s", name)
}

// RoomBroadcaster fans a room announcement out to the subjects of the
// room's occupants, minus the excluded names (usually the acting user).
type RoomBroadcaster struct {
	server *NatsServer
	store  *storage.WorldStore
}

func NewRoomBroadcaster(server *NatsServer, store *storage.WorldStore) *RoomBroadcaster {
	return &RoomBroadcaster{server: server, store: store}
}

func (b *RoomBroadcaster) BroadcastRoom(roomID int, exclude []string, msg string) error {
	room := b.store.Room(roomID)
	if room == nil {
		return fmt.Errorf("broadcast: no such room %d", roomID)
	}

	excludeSet := make(map[string]bool, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = true
	}

	var firstErr error
	for _, name := range room.Users {
		if excludeSet[name] {
			continue
		}
		if err := b.server.Publish(UserSubject(name), []byte(msg)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
