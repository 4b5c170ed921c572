package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-realm/internal/world"
)

// grantOwner adds targetName to the entity's owner set and persists it via
// save. The flow is identical for rooms, exits and items; only the mutate
// predicate and the persistence closure differ per kind, so handlers pass
// those in rather than each reimplementing the sequence.
func (h *Handler) grantOwner(cmd string, ent world.Ownable, mayMutate bool, targetName, noun string, save func() error) (string, error) {
	target := h.store.User(targetName)
	if target == nil {
		return "", NewUserError(cmd + ": no such user")
	}

	if err := CheckGrant(mayMutate, ent, target); err != nil {
		switch {
		case errors.Is(err, ErrNotOwner):
			return "", NewUserError(fmt.Sprintf("%s: you do not own this %s", cmd, noun))
		case errors.Is(err, ErrAlreadyOwner):
			return "", NewUserError(fmt.Sprintf("%s: user is already an owner of this %s", cmd, noun))
		default:
			return "", err
		}
	}

	ent.SetOwnerSet(append(ent.OwnerSet(), target.Name))
	if err := save(); err != nil {
		return "", fmt.Errorf("saving %s: %w", noun, err)
	}

	return cmd + ": done", nil
}
