package models

import "errors"

var (
	// ErrInvalidState reports an operation that cannot run against the
	// current state, such as advancing a rotation with no roommates.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound reports a reference to an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput reports a malformed request argument.
	ErrInvalidInput = errors.New("invalid input")
)

// UnknownName is the display label for a roommate or room ID that no longer
// resolves.
const UnknownName = "Unknown"
