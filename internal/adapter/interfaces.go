// Package adapter provides the transport layer between the agent and the
// record backend.
//
// The primary abstraction is [CloudGateway], which decouples the sync layer
// from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPCloudGateway]) speaking the backend's action RPC: every operation
// is a POST of {action, babyId, ...} to a single endpoint.
//
// Gateway methods never panic and never leak raw transport errors: failures
// are wrapped so callers can match the sentinel values in errors.go with
// [errors.Is]. Any malformed response body is reported as [ErrInvalidResponse]
// and is as retryable as a plain network failure.
package adapter

import (
	"context"

	"github.com/babynumtime/babynumtime/models"
)

// CloudGateway defines transport-agnostic access to one baby's record set on
// the record backend. All methods take the baby ID explicitly; the gateway
// itself is stateless apart from its connection settings.
type CloudGateway interface {
	// CreateBaby asks the backend to allocate a fresh baby ID and store the
	// profile row. Returns the stored profile including the generated ID.
	CreateBaby(ctx context.Context, birthDate, babyName string) (models.BabyProfile, error)

	// GetBaby fetches the profile stored under babyID. Returns
	// [ErrBabyNotFound] when the ID is unknown to the backend.
	GetBaby(ctx context.Context, babyID string) (models.BabyProfile, error)

	// GetData fetches all four record collections for babyID. A baby with no
	// rows yet yields a snapshot of empty collections, not an error.
	GetData(ctx context.Context, babyID string) (models.DataSnapshot, error)

	// SyncData replaces the backend's copy of all four collections for
	// babyID with the given snapshot. Rows of other babies are untouched.
	SyncData(ctx context.Context, babyID string, data models.DataSnapshot) error

	// DeleteAllData removes the profile row and every record of babyID from
	// the backend. Irreversible.
	DeleteAllData(ctx context.Context, babyID string) error
}
