package service

import (
	"context"
	"time"

	"github.com/babynumtime/babynumtime/models"
)

// RecordService defines the client-side contract for the four record
// collections. All mutations validate input, mint missing IDs and timestamps,
// persist to the local store immediately, and in cloud mode attempt an
// immediate push. A failed push never rolls the local write back.
type RecordService interface {
	// AddFeeding validates and stores a feeding record, returning it with
	// its minted ID and timestamp.
	AddFeeding(ctx context.Context, feeding models.Feeding) (models.Feeding, error)
	// DeleteFeeding removes the feeding with the given ID.
	// Returns ErrRecordNotFound when no such record exists.
	DeleteFeeding(ctx context.Context, id string) error
	// ListFeedings returns a most-recent-first copy of the collection.
	ListFeedings(ctx context.Context) ([]models.Feeding, error)

	AddDiaper(ctx context.Context, diaper models.DiaperChange) (models.DiaperChange, error)
	DeleteDiaper(ctx context.Context, id string) error
	ListDiapers(ctx context.Context) ([]models.DiaperChange, error)

	AddCryAnalysis(ctx context.Context, analysis models.CryAnalysis) (models.CryAnalysis, error)
	DeleteCryAnalysis(ctx context.Context, id string) error
	ListCryAnalyses(ctx context.Context) ([]models.CryAnalysis, error)

	AddPumpingSession(ctx context.Context, session models.PumpingSession) (models.PumpingSession, error)
	DeletePumpingSession(ctx context.Context, id string) error
	ListPumpingSessions(ctx context.Context) ([]models.PumpingSession, error)
}

// SyncCallbacks carries the caller-supplied hooks the coordinator notifies
// after every push and pull attempt. Either hook may be nil.
type SyncCallbacks struct {
	// OnPush receives nil on a successful push, the failure otherwise.
	OnPush func(err error)
	// OnPull receives the pulled snapshot after local storage was
	// overwritten, or the failure that prevented the pull.
	OnPull func(snapshot models.DataSnapshot, err error)
}

// SyncCoordinator keeps local and remote collections eventually consistent
// for exactly one active baby. It owns the periodic ticker goroutine and the
// persisted pending-changes flag.
//
// One sync cycle pushes the local snapshot when changes are pending, then
// pulls and overwrites local storage only when no changes remain pending, so
// a pull can never clobber unsynced local edits.
type SyncCoordinator interface {
	// Start launches the periodic sync goroutine. The first cycle runs
	// immediately. Returns ErrNotCloudMode when no cloud baby is configured.
	// A running job is stopped and replaced.
	Start(ctx context.Context) error

	// Stop cancels the periodic goroutine and blocks until it has exited.
	// Safe to call when not running. Persisted sync state is untouched.
	Stop()

	// PushNow pushes the current local snapshot. Called after every record
	// mutation in cloud mode. On failure the pending flag is set so a later
	// cycle retries; on success the flag clears and last-sync updates.
	PushNow(ctx context.Context) error

	// SyncNow is the user-triggered manual push.
	SyncNow(ctx context.Context) error

	// FullSync pushes, then unconditionally pulls and overwrites local
	// storage. The only path that pulls while changes are pending; meant for
	// the user to explicitly accept the remote state.
	FullSync(ctx context.Context) error

	// MarkPending flags local changes for the next periodic cycle without
	// attempting a push.
	MarkPending(ctx context.Context) error

	// LastSync reports the persisted last successful sync instant, or nil.
	LastSync(ctx context.Context) (*time.Time, error)
}

// ProfileService defines the onboarding and teardown flows for the active
// baby config.
type ProfileService interface {
	// CreateBaby registers a new baby with the backend, stores the returned
	// cloud config locally, and seeds the backend with the current local
	// collections.
	CreateBaby(ctx context.Context, birthDate, babyName string) (models.BabyInfo, error)

	// JoinBaby looks up an existing baby ID on the backend, stores the cloud
	// config locally, and overwrites local collections with the backend data.
	JoinBaby(ctx context.Context, babyID string) (models.BabyInfo, error)

	// UseOffline stores an offline-mode config with no baby ID.
	UseOffline(ctx context.Context, birthDate, babyName string) (models.BabyInfo, error)

	// ActiveBaby returns the stored config, or nil when onboarding has not
	// happened yet.
	ActiveBaby(ctx context.Context) (*models.BabyInfo, error)

	// Reset wipes the device: optionally deletes all remote data first, then
	// clears local collections, config, and sync state. Irreversible.
	Reset(ctx context.Context, deleteRemote bool) error
}

// PortabilityService moves the whole local state through a versioned export
// document.
type PortabilityService interface {
	// Export captures the config and all four collections.
	Export(ctx context.Context) (models.ExportDocument, error)

	// Import validates the document version and config presence before
	// touching storage, then overwrites local collections and stores the
	// config forced into offline mode with its baby ID stripped.
	Import(ctx context.Context, doc models.ExportDocument) error
}
