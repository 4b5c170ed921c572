package storage

import (
	"context"
	"log/slog"
)

// IntegritySweeper periodically scans container lists for references to
// records that no longer exist. Dangling references are an operator
// problem, not a user one: they are logged here and silently skipped by
// the resolver, never surfaced as command failures, and never repaired
// automatically.
type IntegritySweeper struct {
	store *WorldStore
}

func NewIntegritySweeper(store *WorldStore) *IntegritySweeper {
	return &IntegritySweeper{store: store}
}

// Tick runs one full sweep. It only reads; findings go to the log.
func (s *IntegritySweeper) Tick(ctx context.Context) error {
	dangling := 0

	for _, room := range s.store.Rooms() {
		for _, id := range room.Items {
			if s.store.Item(id) == nil {
				slog.WarnContext(ctx, "room references missing item", "room", room.ID, "item", id)
				dangling++
			}
		}
		for _, id := range room.Keys {
			if s.store.Item(id) == nil {
				slog.WarnContext(ctx, "room references missing key item", "room", room.ID, "item", id)
				dangling++
			}
		}
		for _, name := range room.Users {
			if s.store.User(name) == nil {
				slog.WarnContext(ctx, "room references missing user", "room", room.ID, "user", name)
				dangling++
			}
		}
		for i, exit := range room.Exits {
			if s.store.Room(exit.Dest) == nil {
				slog.WarnContext(ctx, "exit references missing room", "room", room.ID, "exit", i, "dest", exit.Dest)
				dangling++
			}
		}
	}

	for _, user := range s.store.users.GetAll() {
		for _, id := range user.Inventory {
			if s.store.Item(id) == nil {
				slog.WarnContext(ctx, "inventory references missing item", "user", user.Name, "item", id)
				dangling++
			}
		}
		if s.store.Room(user.Room) == nil {
			slog.WarnContext(ctx, "user references missing room", "user", user.Name, "room", user.Room)
			dangling++
		}
	}

	if dangling > 0 {
		slog.WarnContext(ctx, "integrity sweep found dangling references", "count", dangling)
	}
	return nil
}
