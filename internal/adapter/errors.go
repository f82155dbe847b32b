package adapter

import "errors"

// Sentinel errors returned by gateway methods. Callers match them with
// [errors.Is]; anything not in this set is a generic transport failure and is
// safe to retry on the next sync cycle.
var (
	// ErrNotConfigured is returned when the backend reports that it is not
	// set up correctly (missing credentials or store). Retrying will not
	// help until an administrator intervenes.
	ErrNotConfigured = errors.New("record backend is not configured")

	// ErrBabyNotFound is returned when the given baby ID does not exist on
	// the backend. Surfaced directly to the user, never retried.
	ErrBabyNotFound = errors.New("baby not found")

	// ErrInvalidRequest is returned when the backend rejects the request as
	// malformed (missing action fields).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidResponse is returned when the backend's response cannot be
	// decoded. Treated like a network failure for retry purposes.
	ErrInvalidResponse = errors.New("invalid response from record backend")
)
