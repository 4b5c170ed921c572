package commands

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-realm/internal/world"
)

func TestMakeRoom(t *testing.T) {
	h, store, _ := newTestHandler(t)
	seedRoom(t, store, &world.Room{ID: 0, Name: "town square"})
	actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 0})
	s := &SessionState{User: actor}

	out, err := h.Exec(context.Background(), s, "make room the old mill")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "make room: done (id: 1)")

	room := store.Room(1)
	if room == nil {
		t.Fatal("expected room 1 to exist")
	}
	testutil.AssertEqual(t, "name", room.Name, "the old mill")
	testutil.AssertEqual(t, "owner count", len(room.Owners), 1)
	testutil.AssertEqual(t, "owner", room.Owners[0], "alice")

	// Ids keep ascending past the current maximum.
	out, err = h.Exec(context.Background(), s, "make room the granary")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "second output", out, "make room: done (id: 2)")
}

func TestMakeRoom_Rejections(t *testing.T) {
	tests := map[string]struct {
		input  string
		expErr string
	}{
		"integer name": {
			input:  "make room 42",
			expErr: "make room: room name cannot be an integer",
		},
		"duplicate name": {
			input:  "make room Town Square",
			expErr: "make room: a room by this name already exists",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, store, _ := newTestHandler(t)
			seedRoom(t, store, &world.Room{ID: 0, Name: "town square"})
			actor := seedUser(t, store, &world.User{Name: "alice", Room: 0})

			_, err := h.Exec(context.Background(), &SessionState{User: actor}, tt.input)
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.expErr)
			}
			testutil.AssertEqual(t, "error", err.Error(), tt.expErr)
		})
	}
}

func TestMakeItem(t *testing.T) {
	h, store, _ := newTestHandler(t)
	seedRoom(t, store, &world.Room{ID: 0, Name: "town square"})
	actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 0, Inventory: []int{}})
	s := &SessionState{User: actor}

	out, err := h.Exec(context.Background(), s, "make item fountain pen")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "make item: done (id: 0)")

	item := store.Item(0)
	if item == nil {
		t.Fatal("expected item 0 to exist")
	}
	testutil.AssertEqual(t, "name", item.Name, "fountain pen")
	testutil.AssertEqual(t, "owner", item.Owners[0], "alice")
	testutil.AssertEqual(t, "creator holds it", store.User("alice").Holding(0), true)
	testutil.AssertEqual(t, "not on the floor", store.Room(0).HasItem(0), false)

	_, err = h.Exec(context.Background(), s, "make item Fountain Pen")
	if err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
	testutil.AssertEqual(t, "error", err.Error(), "make item: an item by this name already exists")
}

func TestMakeExit(t *testing.T) {
	h, store, _ := newTestHandler(t)
	seedRoom(t, store, &world.Room{ID: 0, Name: "town square", Users: []string{"alice"}})
	seedRoom(t, store, &world.Room{ID: 1, Name: "the old mill"})
	actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 0})
	s := &SessionState{User: actor}

	out, err := h.Exec(context.Background(), s, "make exit north to the old mill")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "make exit: done (id: 0)")

	room := store.Room(0)
	testutil.AssertEqual(t, "exit count", len(room.Exits), 1)
	testutil.AssertEqual(t, "exit name", room.Exits[0].Name, "north")
	testutil.AssertEqual(t, "exit dest", room.Exits[0].Dest, 1)
	testutil.AssertEqual(t, "exit owner", room.Exits[0].Owners[0], "alice")

	// Exit ids are positions in the room's list.
	out, err = h.Exec(context.Background(), s, "make exit path to mill to 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "second output", out, "make exit: done (id: 1)")
	testutil.AssertEqual(t, "second exit name", store.Room(0).Exits[1].Name, "path to mill")

	_, err = h.Exec(context.Background(), s, "make exit North to the old mill")
	if err == nil {
		t.Fatal("expected duplicate name error, got nil")
	}
	testutil.AssertEqual(t, "error", err.Error(), "make exit: an exit by this name already exists here")
}

func TestMakeExit_SealedRoom(t *testing.T) {
	h, store, _ := newTestHandler(t)
	seedRoom(t, store, &world.Room{ID: 0, Name: "town square", Owners: []string{"bob"}, Sealed: true})
	seedRoom(t, store, &world.Room{ID: 1, Name: "the old mill"})
	actor := seedUser(t, store, &world.User{Name: "alice", Room: 0})

	_, err := h.Exec(context.Background(), &SessionState{User: actor}, "make exit north to the old mill")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	testutil.AssertEqual(t, "error", err.Error(), "make exit: this room is sealed")

	// The room's owner still may.
	owner := seedUser(t, store, &world.User{Name: "bob", Nick: "Bob", Room: 0})
	out, err := h.Exec(context.Background(), &SessionState{User: owner}, "make exit north to the old mill")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "make exit: done (id: 0)")
}

func TestMakeExit_DestinationResolution(t *testing.T) {
	tests := map[string]struct {
		input  string
		expErr string
	}{
		"missing to separator": {
			input:  "make exit north mill gate",
			expErr: "Usage: make exit <name> to <room>",
		},
		"unknown destination": {
			input:  "make exit north to nowhere",
			expErr: "make exit: No such room in the world: nowhere",
		},
		"bare article destination": {
			input:  "make exit north to the",
			expErr: "make exit: Very funny.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, store, _ := newTestHandler(t)
			seedRoom(t, store, &world.Room{ID: 0, Name: "town square"})
			actor := seedUser(t, store, &world.User{Name: "alice", Room: 0})

			_, err := h.Exec(context.Background(), &SessionState{User: actor}, tt.input)
			if err == nil {
				t.Fatalf("expected error %q, got nil", tt.expErr)
			}
			testutil.AssertEqual(t, "error", err.Error(), tt.expErr)
		})
	}
}
