package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBabyNotFound is returned when no profile row exists for the
	// requested baby ID.
	ErrBabyNotFound = errors.New("baby not found")

	// ErrBabyIDTaken is returned when inserting a profile row collides with
	// an existing baby ID. The service layer reacts by generating a new ID
	// and retrying.
	ErrBabyIDTaken = errors.New("baby ID already taken")
)
