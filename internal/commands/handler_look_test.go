package commands

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-realm/internal/world"
)

func TestLook(t *testing.T) {
	tests := map[string]struct {
		input  string
		expOut string
		expErr string
	}{
		"room": {
			input: "look",
			expOut: "town square (id: 0)\n" +
				"Occupants: Bob, Carol\n" +
				"Items here: crystal ball\n" +
				"Exits: 0: north",
		},
		"item in the room": {
			input:  "look crystal ball",
			expOut: "crystal ball (id: 3)\nA cloudy sphere.",
		},
		"held item": {
			input:  "look lantern",
			expOut: "lantern (id: 4)",
		},
		"occupant by nick": {
			input:  "look Bob",
			expOut: "Bob\nA quiet fellow.",
		},
		"occupant without description": {
			input:  "look Carol",
			expOut: "Carol\nYou see nothing special.",
		},
		"nothing by that name": {
			input:  "look ghost",
			expErr: "look: No such thing here: ghost",
		},
		"bare article": {
			input:  "look the",
			expErr: "look: Very funny.",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, store, _ := newTestHandler(t)
			seedItem(t, store, &world.Item{ID: 3, Name: "crystal ball", Description: "A cloudy sphere."})
			seedItem(t, store, &world.Item{ID: 4, Name: "lantern"})
			seedRoom(t, store, &world.Room{
				ID:    0,
				Name:  "town square",
				Items: []int{3},
				Users: []string{"alice", "bob", "carol"},
				Exits: []*world.Exit{{Name: "north", Dest: 1}},
			})
			seedUser(t, store, &world.User{Name: "bob", Nick: "Bob", Description: "A quiet fellow.", Room: 0})
			seedUser(t, store, &world.User{Name: "carol", Nick: "Carol", Room: 0})
			actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 0, Inventory: []int{4}})

			out, err := h.Exec(context.Background(), &SessionState{User: actor}, tt.input)

			if tt.expErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.expErr)
				}
				testutil.AssertEqual(t, "error", err.Error(), tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "output", out, tt.expOut)
		})
	}
}

func TestSay(t *testing.T) {
	h, store, pub := newTestHandler(t)
	seedRoom(t, store, &world.Room{ID: 0, Name: "town square", Users: []string{"alice", "bob"}})
	seedUser(t, store, &world.User{Name: "bob", Room: 0})
	actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 0})

	out, err := h.Exec(context.Background(), &SessionState{User: actor}, "say hello there")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "output", out, "You say: hello there")

	testutil.AssertEqual(t, "broadcast count", len(pub.sent), 1)
	testutil.AssertEqual(t, "broadcast room", pub.sent[0].roomID, 0)
	testutil.AssertEqual(t, "broadcast exclude", pub.sent[0].exclude[0], "alice")
	testutil.AssertEqual(t, "broadcast message", pub.sent[0].msg, "Alice says: hello there")
}
