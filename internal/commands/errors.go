package commands

import "errors"

// UserError represents an error that should be displayed to the user.
// These are not system failures - just invalid input, failed permission
// checks, or references that didn't resolve.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}

// Denial classifications produced by the permission guard and the transfer
// engine. Handlers translate these into the single user-facing line; they
// never escape a command as system failures.
var (
	ErrNotOwner     = errors.New("not an owner")
	ErrGlued        = errors.New("item is glued down")
	ErrAlreadyOwner = errors.New("user is already an owner")
	ErrAlreadyHeld  = errors.New("item is already held")
	ErrNotHeld      = errors.New("item is not held")
	ErrNoSuchUser   = errors.New("no such user")
)
