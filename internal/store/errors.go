package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoUserWasFound is returned when a username is absent from the
	// credential table.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrOrderNotFound is returned when no order has the requested id.
	ErrOrderNotFound = errors.New("order was not found")

	// ErrEmptyToken is returned when an empty string is offered to the
	// token set.
	ErrEmptyToken = errors.New("empty token")
)
