package commands

import (
	"fmt"

	"github.com/pixil98/go-realm/internal/storage"
	"github.com/pixil98/go-realm/internal/world"
)

// Transfer moves items between a room's item list and a user's inventory.
// It is the only component that mutates two aggregates in one logical
// operation. The two writes are not transactional; they always happen in
// the fixed order room-before-user, so a crash between them leaves a
// single, diagnosable partial state (the item present in neither container
// on pickup, in both on drop) instead of a non-deterministic one.
//
// Two sessions mutating the same aggregate concurrently can still lose an
// update; see DESIGN.md for why that race is accepted.
type Transfer struct {
	Store *storage.WorldStore
	Pub   Broadcaster
}

// Pickup moves item from room into actor's inventory.
//
// Owners of a duplified item harvest copies without depleting the room;
// anyone else picking one up removes it like any ordinary item. Returns
// ErrGlued or ErrAlreadyHeld without mutating anything.
func (t *Transfer) Pickup(actor *world.User, item *world.Item, room *world.Room) error {
	if err := CheckPickup(actor, item); err != nil {
		return err
	}

	owner := world.OwnedBy(item, actor.Name)

	// A non-duplified item cannot be held twice, and a duplified item
	// already held by this owner has nothing left to add.
	if actor.Holding(item.ID) && !(owner && item.Duplified) {
		return ErrAlreadyHeld
	}

	if !(owner && item.Duplified) {
		room.RemoveItem(item.ID)
	}
	actor.AddToInventory(item.ID)

	if err := t.Store.SaveRoom(room); err != nil {
		return fmt.Errorf("saving room %d: %w", room.ID, err)
	}
	if err := t.Store.SaveUser(actor); err != nil {
		return fmt.Errorf("saving user %s: %w", actor.Name, err)
	}

	t.announce(room, actor, fmt.Sprintf("%s picked up %s.", actor.Nick, item.Name))
	return nil
}

// Drop is the structural mirror of Pickup: the item leaves the actor's
// inventory and joins the room's item list. The room add is idempotent, so
// dropping a copy of a duplified item whose original never left the room
// does not double it up.
func (t *Transfer) Drop(actor *world.User, item *world.Item, room *world.Room) error {
	if !actor.RemoveFromInventory(item.ID) {
		return ErrNotHeld
	}
	room.AddItem(item.ID)

	if err := t.Store.SaveRoom(room); err != nil {
		return fmt.Errorf("saving room %d: %w", room.ID, err)
	}
	if err := t.Store.SaveUser(actor); err != nil {
		return fmt.Errorf("saving user %s: %w", actor.Name, err)
	}

	t.announce(room, actor, fmt.Sprintf("%s dropped %s.", actor.Nick, item.Name))
	return nil
}

// announce notifies the other occupants of the room. Delivery failures are
// the broadcast collaborator's concern, never the command's.
func (t *Transfer) announce(room *world.Room, actor *world.User, msg string) {
	if t.Pub == nil {
		return
	}
	_ = t.Pub.BroadcastRoom(room.ID, []string{actor.Name}, msg)
}
