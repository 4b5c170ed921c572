package commands

import (
	"github.com/pixil98/go-realm/internal/world"
)

// The permission guard. Pure predicates over an actor and an entity's
// owner-set capability; no function here mutates anything. A wizard actor
// passes every check unconditionally.

// CanMutate reports whether actor may mutate the entity.
func CanMutate(actor *world.User, ent world.Ownable) bool {
	if actor.Wizard {
		return true
	}
	return world.OwnedBy(ent, actor.Name)
}

// CanMutateExit reports whether actor may mutate an exit. Owning the
// containing room grants authority over its exits even without explicit
// exit ownership.
func CanMutateExit(actor *world.User, room *world.Room, exit *world.Exit) bool {
	return CanMutate(actor, exit) || CanMutate(actor, room)
}

// CheckPickup returns ErrGlued when the item's glued flag blocks the
// actor. Glue only stops non-owners.
func CheckPickup(actor *world.User, item *world.Item) error {
	if actor.Wizard {
		return nil
	}
	if item.Glued && !world.OwnedBy(item, actor.Name) {
		return ErrGlued
	}
	return nil
}

// CheckGrant validates granting ownership of ent to target. mayMutate is
// the mutate decision for the entity kind (exits also accept
// containing-room owners, so the caller picks the right predicate).
// Granting to an existing owner is an error, not a no-op.
func CheckGrant(mayMutate bool, ent world.Ownable, target *world.User) error {
	if !mayMutate {
		return ErrNotOwner
	}
	if world.OwnedBy(ent, target.Name) {
		return ErrAlreadyOwner
	}
	return nil
}
