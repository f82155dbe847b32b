package store

import (
	"context"
	"time"

	"github.com/babynumtime/babynumtime/models"
)

// LocalRecordStore is the on-device persistence layer used by the agent. It
// keeps each record collection as a single JSON payload plus a handful of
// settings (active baby config, last sync time, pending-sync flag).
//
// Loads are forgiving: a missing or structurally corrupt payload yields an
// empty collection, never an error. Only infrastructure failures (the
// database itself being unreachable) surface as errors.
type LocalRecordStore interface {
	GetFeedings(ctx context.Context) ([]models.Feeding, error)
	SaveFeedings(ctx context.Context, feedings []models.Feeding) error

	GetDiapers(ctx context.Context) ([]models.DiaperChange, error)
	SaveDiapers(ctx context.Context, diapers []models.DiaperChange) error

	GetCryAnalyses(ctx context.Context) ([]models.CryAnalysis, error)
	SaveCryAnalyses(ctx context.Context, analyses []models.CryAnalysis) error

	GetPumpingSessions(ctx context.Context) ([]models.PumpingSession, error)
	SavePumpingSessions(ctx context.Context, sessions []models.PumpingSession) error

	// Snapshot loads all four collections in one call.
	Snapshot(ctx context.Context) (models.DataSnapshot, error)
	// ReplaceAll overwrites all four collections with the snapshot contents.
	ReplaceAll(ctx context.Context, snapshot models.DataSnapshot) error
	// ClearCollections resets all four collections to empty.
	ClearCollections(ctx context.Context) error

	// GetConfig returns the stored baby config, or nil when none is set.
	GetConfig(ctx context.Context) (*models.BabyInfo, error)
	SetConfig(ctx context.Context, info models.BabyInfo) error
	ClearConfig(ctx context.Context) error

	// GetLastSync returns the last successful sync time, or nil when the
	// device has never synced.
	GetLastSync(ctx context.Context) (*time.Time, error)
	SetLastSync(ctx context.Context, t time.Time) error
	ClearLastSync(ctx context.Context) error

	HasPendingSync(ctx context.Context) (bool, error)
	MarkPendingSync(ctx context.Context) error
	ClearPendingSync(ctx context.Context) error

	Close() error
}
