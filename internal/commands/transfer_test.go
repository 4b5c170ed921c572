package commands

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/pixil98/go-realm/internal/world"
)

func TestTransfer_Pickup(t *testing.T) {
	tests := map[string]struct {
		item       *world.Item
		holding    []int
		expErr     error
		expInRoom  bool
		expHolding bool
	}{
		"ordinary item leaves the room": {
			item:       &world.Item{ID: 1, Name: "rock", Owners: []string{}},
			expInRoom:  false,
			expHolding: true,
		},
		"duplified item stays for its owner": {
			item:       &world.Item{ID: 1, Name: "fountain pen", Owners: []string{"alice"}, Duplified: true},
			expInRoom:  true,
			expHolding: true,
		},
		"duplified item leaves for a non-owner": {
			item:       &world.Item{ID: 1, Name: "fountain pen", Owners: []string{"bob"}, Duplified: true},
			expInRoom:  false,
			expHolding: true,
		},
		"glued item blocks a non-owner": {
			item:       &world.Item{ID: 1, Name: "statue", Owners: []string{"bob"}, Glued: true},
			expErr:     ErrGlued,
			expInRoom:  true,
			expHolding: false,
		},
		"glued item yields to its owner": {
			item:       &world.Item{ID: 1, Name: "statue", Owners: []string{"alice"}, Glued: true},
			expInRoom:  false,
			expHolding: true,
		},
		"already held item is rejected": {
			item:       &world.Item{ID: 1, Name: "rock", Owners: []string{}},
			holding:    []int{1},
			expErr:     ErrAlreadyHeld,
			expInRoom:  true,
			expHolding: true,
		},
		"owner re-harvesting a duplified copy is a no-op success": {
			item:       &world.Item{ID: 1, Name: "fountain pen", Owners: []string{"alice"}, Duplified: true},
			holding:    []int{1},
			expInRoom:  true,
			expHolding: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newTestStore()
			pub := &mockBroadcaster{}
			tr := &Transfer{Store: store, Pub: pub}

			seedItem(t, store, tt.item)
			room := seedRoom(t, store, &world.Room{
				ID:    0,
				Name:  "town square",
				Items: []int{tt.item.ID},
				Users: []string{"alice", "bob"},
			})
			inventory := []int{}
			inventory = append(inventory, tt.holding...)
			actor := seedUser(t, store, &world.User{
				Name: "alice", Nick: "Alice", Room: 0, Inventory: inventory,
			})

			err := tr.Pickup(actor, tt.item, room)

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("error = %v, expected %v", err, tt.expErr)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "in room", room.HasItem(tt.item.ID), tt.expInRoom)
			testutil.AssertEqual(t, "holding", actor.Holding(tt.item.ID), tt.expHolding)

			// A denial never mutates the persisted containers.
			if tt.expErr != nil {
				testutil.AssertEqual(t, "stored room unchanged", store.Room(0).HasItem(tt.item.ID), true)
				testutil.AssertEqual(t, "broadcast count", len(pub.sent), 0)
			}
		})
	}
}

func TestTransfer_Pickup_Announces(t *testing.T) {
	store := newTestStore()
	pub := &mockBroadcaster{}
	tr := &Transfer{Store: store, Pub: pub}

	item := seedItem(t, store, &world.Item{ID: 5, Name: "lantern", Owners: []string{}})
	room := seedRoom(t, store, &world.Room{ID: 2, Name: "cellar", Items: []int{5}, Users: []string{"alice", "bob"}})
	actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 2, Inventory: []int{}})

	err := tr.Pickup(actor, item, room)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "broadcast count", len(pub.sent), 1)
	testutil.AssertEqual(t, "broadcast room", pub.sent[0].roomID, 2)
	testutil.AssertEqual(t, "broadcast exclude", pub.sent[0].exclude[0], "alice")
	testutil.AssertEqual(t, "broadcast message", pub.sent[0].msg, "Alice picked up lantern.")
}

func TestTransfer_Drop(t *testing.T) {
	tests := map[string]struct {
		roomItems []int
		holding   []int
		expErr    error
	}{
		"held item joins the room": {
			holding: []int{1},
		},
		"item not held": {
			expErr: ErrNotHeld,
		},
		"copy dropped where the original never left": {
			roomItems: []int{1},
			holding:   []int{1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store := newTestStore()
			tr := &Transfer{Store: store}

			item := seedItem(t, store, &world.Item{ID: 1, Name: "fountain pen", Owners: []string{"alice"}, Duplified: true})
			roomItems := []int{}
			roomItems = append(roomItems, tt.roomItems...)
			room := seedRoom(t, store, &world.Room{ID: 0, Name: "town square", Items: roomItems, Users: []string{"alice"}})
			inventory := []int{}
			inventory = append(inventory, tt.holding...)
			actor := seedUser(t, store, &world.User{Name: "alice", Nick: "Alice", Room: 0, Inventory: inventory})

			err := tr.Drop(actor, item, room)

			if tt.expErr != nil {
				if !errors.Is(err, tt.expErr) {
					t.Fatalf("error = %v, expected %v", err, tt.expErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "holding", actor.Holding(1), false)
			testutil.AssertEqual(t, "in room", room.HasItem(1), true)
			testutil.AssertEqual(t, "room item count", len(room.Items), 1)
		})
	}
}
