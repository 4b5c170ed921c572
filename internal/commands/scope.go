package commands

import (
	"log/slog"

	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

// These helpers assemble the candidate sets the resolver is scoped to.
// Container lists can reference ids whose records are gone; that is a
// data-integrity problem for the operator log, not a user-facing failure,
// so broken references are skipped and the rest of the set still resolves.

// RoomItems dereferences a room's item list against the store.
func RoomItems(store *storage.WorldStore, room *world.Room) []*world.Item {
	items := make([]*world.Item, 0, len(room.Items))
	for _, id := range room.Items {
		item := store.Item(id)
		if item == nil {
			slog.Warn("room references missing item", "room", room.ID, "item", id)
			continue
		}
		items = append(items, item)
	}
	return items
}

// HeldItems dereferences a user's inventory against the store.
func HeldItems(store *storage.WorldStore, user *world.User) []*world.Item {
	items := make([]*world.Item, 0, len(user.Inventory))
	for _, id := range user.Inventory {
		item := store.Item(id)
		if item == nil {
			slog.Warn("inventory references missing item", "user", user.Name, "item", id)
			continue
		}
		items = append(items, item)
	}
	return items
}

func itemName(i *world.Item) string { return i.Name }
func itemID(i *world.Item) int      { return i.ID }
func roomName(r *world.Room) string { return r.Name }
func roomID(r *world.Room) int      { return r.ID }
