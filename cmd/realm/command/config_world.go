package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

type WorldConfig struct {
	// DefaultRoom is where new registrations start and where users whose
	// room record has gone missing are sent.
	DefaultRoom int `json:"default_room"`
	// GenesisRoomName names the room created on first boot of an empty
	// world so the default room always exists.
	GenesisRoomName string `json:"genesis_room_name,omitempty"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	if c.DefaultRoom < 0 {
		el.Add(fmt.Errorf("default_room must be non-negative"))
	}

	return el.Err()
}

// EnsureDefaultRoom creates the default room when it does not exist yet,
// so registration always has somewhere to put a new user.
func (c *WorldConfig) EnsureDefaultRoom(store *storage.WorldStore) error {
	if store.Room(c.DefaultRoom) != nil {
		return nil
	}

	name := c.GenesisRoomName
	if name == "" {
		name = "The First Room"
	}

	slog.Info("creating default room", "id", c.DefaultRoom, "name", name)
	return store.SaveRoom(&world.Room{
		ID:     c.DefaultRoom,
		Name:   name,
		Owners: []string{},
		Exits:  []*world.Exit{},
		Items:  []int{},
		Users:  []string{},
	})
}
