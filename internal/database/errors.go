package database

import "errors"

var (
	// ErrNotFound is returned when a row lookup or targeted mutation
	// matches nothing. Repeated deletes surface it rather than no-op.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when an event status change is not
	// reachable from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicateEmail is returned when a profile email is already taken.
	ErrDuplicateEmail = errors.New("email already registered")
)
