package service

import "errors"

var (
	// ErrNotCloudMode is returned by cloud-only operations when the active
	// config is missing, offline, or has no baby ID.
	ErrNotCloudMode = errors.New("not in cloud mode")

	// ErrNoActiveBaby is returned when an operation needs a configured baby
	// and none exists.
	ErrNoActiveBaby = errors.New("no active baby configured")

	// ErrRecordNotFound is returned by delete helpers when no record with
	// the given ID exists in the collection.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownExportVersion rejects import documents written by a newer
	// (or corrupted) format version.
	ErrUnknownExportVersion = errors.New("unknown export format version")

	// ErrExportMissingConfig rejects import documents without a baby config.
	ErrExportMissingConfig = errors.New("export document has no baby config")

	// ErrBabyIDExhausted is returned when the server cannot allocate a free
	// baby ID within the retry budget.
	ErrBabyIDExhausted = errors.New("could not allocate a free baby ID")
)
