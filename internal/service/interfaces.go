package service

import (
	"context"

	"github.com/babynumtime/babynumtime/models"
)

// RecordsService is the backend-side contract behind the action RPC. One
// baby ID scopes each operation; the ID doubles as the access credential,
// which is a known weakness of the shared-key scheme (anyone holding the ID
// can read, overwrite, and delete the record set).
type RecordsService interface {
	// CreateBaby allocates a fresh baby ID and stores the profile.
	CreateBaby(ctx context.Context, birthDate, babyName string) (models.BabyProfile, error)
	// GetBaby returns the stored profile, or store.ErrBabyNotFound.
	GetBaby(ctx context.Context, babyID string) (models.BabyProfile, error)
	// GetData returns all collections for the baby, empty when none exist.
	GetData(ctx context.Context, babyID string) (models.DataSnapshot, error)
	// SyncData replaces all collections for the baby with the snapshot.
	SyncData(ctx context.Context, babyID string, data models.DataSnapshot) error
	// DeleteAllData removes the profile and every record for the baby.
	DeleteAllData(ctx context.Context, babyID string) error
}
