package commands

import (
	"testing"

	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

// memStorer is an in-memory Storer for exercising commands without disk.
type memStorer[T storage.ValidatingSpec] struct {
	records map[string]T
}

func newMemStorer[T storage.ValidatingSpec]() *memStorer[T] {
	return &memStorer[T]{records: map[string]T{}}
}

func (s *memStorer[T]) Save(key string, o T) error {
	s.records[key] = o
	return nil
}

func (s *memStorer[T]) Get(key string) T {
	val, ok := s.records[key]
	if !ok {
		var nilVal T
		return nilVal
	}
	return val
}

func (s *memStorer[T]) GetAll() map[string]T {
	vals := map[string]T{}
	for k, v := range s.records {
		vals[k] = v
	}
	return vals
}

// mockBroadcast records every room broadcast for assertion.
type mockBroadcast struct {
	roomID  int
	exclude []string
	msg     string
}

type mockBroadcaster struct {
	sent []mockBroadcast
}

func (b *mockBroadcaster) BroadcastRoom(roomID int, exclude []string, msg string) error {
	b.sent = append(b.sent, mockBroadcast{roomID: roomID, exclude: exclude, msg: msg})
	return nil
}

func newTestStore() *storage.WorldStore {
	return storage.NewWorldStore(
		newMemStorer[*world.Room](),
		newMemStorer[*world.Item](),
		newMemStorer[*world.User](),
	)
}

func newTestHandler(t *testing.T) (*Handler, *storage.WorldStore, *mockBroadcaster) {
	t.Helper()
	store := newTestStore()
	pub := &mockBroadcaster{}
	return NewHandler(store, pub, 0), store, pub
}

func seedRoom(t *testing.T, store *storage.WorldStore, r *world.Room) *world.Room {
	t.Helper()
	if r.Owners == nil {
		r.Owners = []string{}
	}
	if err := store.SaveRoom(r); err != nil {
		t.Fatalf("seeding room %d: %v", r.ID, err)
	}
	return r
}

func seedItem(t *testing.T, store *storage.WorldStore, i *world.Item) *world.Item {
	t.Helper()
	if i.Owners == nil {
		i.Owners = []string{}
	}
	if err := store.SaveItem(i); err != nil {
		t.Fatalf("seeding item %d: %v", i.ID, err)
	}
	return i
}

func seedUser(t *testing.T, store *storage.WorldStore, u *world.User) *world.User {
	t.Helper()
	if u.PassHash == "" {
		u.PassHash = "x"
	}
	if err := store.SaveUser(u); err != nil {
		t.Fatalf("seeding user %s: %v", u.Name, err)
	}
	return u
}
