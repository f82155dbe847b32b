package store

import (
	"context"
	"testing"
	"time"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/models"
)

func newTestLocalStore(t *testing.T) *localRecordStore {
	t.Helper()

	s, err := NewLocalRecordStore(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("failed to open local record store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s.(*localRecordStore)
}

func TestLocalRecordStore_EmptyOnFirstOpen(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Feedings == nil || snapshot.Diapers == nil ||
		snapshot.CryAnalyses == nil || snapshot.PumpingSessions == nil {
		t.Errorf("expected empty slices, got nils: %+v", snapshot)
	}
	if snapshot.Count() != 0 {
		t.Errorf("expected no records, got: %+v", snapshot)
	}

	info, err := s.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if info != nil {
		t.Errorf("expected no config, got: %+v", info)
	}

	lastSync, err := s.GetLastSync(ctx)
	if err != nil {
		t.Fatalf("GetLastSync: %v", err)
	}
	if lastSync != nil {
		t.Errorf("expected no last sync, got: %v", lastSync)
	}

	pending, err := s.HasPendingSync(ctx)
	if err != nil {
		t.Fatalf("HasPendingSync: %v", err)
	}
	if pending {
		t.Error("expected no pending sync on first open")
	}
}

func TestLocalRecordStore_CollectionRoundTrip(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	feedings := []models.Feeding{
		{ID: "f1", Time: "2025-08-01T08:00:00Z", Type: models.FeedingBreastmilk, Quantity: 60},
		{ID: "f2", Time: "2025-08-01T11:00:00Z", Type: models.FeedingFormula, Quantity: 90},
	}
	if err := s.SaveFeedings(ctx, feedings); err != nil {
		t.Fatalf("SaveFeedings: %v", err)
	}

	got, err := s.GetFeedings(ctx)
	if err != nil {
		t.Fatalf("GetFeedings: %v", err)
	}
	if len(got) != 2 || got[0].ID != "f1" || got[1].Quantity != 90 {
		t.Errorf("unexpected feedings after round trip: %+v", got)
	}

	// saving again overwrites
	if err = s.SaveFeedings(ctx, feedings[:1]); err != nil {
		t.Fatalf("second SaveFeedings: %v", err)
	}
	got, err = s.GetFeedings(ctx)
	if err != nil {
		t.Fatalf("GetFeedings after overwrite: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("expected overwrite, got: %+v", got)
	}
}

func TestLocalRecordStore_CorruptPayloadLoadsAsEmpty(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (name, payload) VALUES (?, ?)`,
		collectionDiapers, `{not json at all`,
	)
	if err != nil {
		t.Fatalf("failed to plant corrupt payload: %v", err)
	}

	diapers, err := s.GetDiapers(ctx)
	if err != nil {
		t.Fatalf("expected corrupt payload to load as empty, got error: %v", err)
	}
	if diapers == nil || len(diapers) != 0 {
		t.Errorf("expected empty slice, got: %+v", diapers)
	}
}

func TestLocalRecordStore_ReplaceAllNormalizesNils(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	if err := s.SaveCryAnalyses(ctx, []models.CryAnalysis{
		{ID: "c1", Time: "2025-08-01T10:00:00Z", Result: models.CryDistribution{models.CryLapar: 100}},
	}); err != nil {
		t.Fatalf("SaveCryAnalyses: %v", err)
	}

	if err := s.ReplaceAll(ctx, models.DataSnapshot{}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snapshot.Count() != 0 {
		t.Errorf("expected all collections cleared, got: %+v", snapshot)
	}
	if snapshot.CryAnalyses == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestLocalRecordStore_ConfigLifecycle(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	info := models.BabyInfo{
		BabyID:      "KQXR57",
		BirthDate:   "2025-06-01",
		BabyName:    "Siti",
		StorageMode: models.StorageCloud,
	}
	if err := s.SetConfig(ctx, info); err != nil {
		t.Fatalf("SetConfig: %v", err)
	}

	got, err := s.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if got == nil || *got != info {
		t.Fatalf("config lost in round trip: %+v", got)
	}
	if !got.IsCloud() {
		t.Error("expected cloud mode config")
	}

	if err = s.ClearConfig(ctx); err != nil {
		t.Fatalf("ClearConfig: %v", err)
	}
	got, err = s.GetConfig(ctx)
	if err != nil {
		t.Fatalf("GetConfig after clear: %v", err)
	}
	if got != nil {
		t.Errorf("expected config cleared, got: %+v", got)
	}
}

func TestLocalRecordStore_SyncSettings(t *testing.T) {
	s := newTestLocalStore(t)
	ctx := context.Background()

	now := time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC)
	if err := s.SetLastSync(ctx, now); err != nil {
		t.Fatalf("SetLastSync: %v", err)
	}
	got, err := s.GetLastSync(ctx)
	if err != nil {
		t.Fatalf("GetLastSync: %v", err)
	}
	if got == nil || !got.Equal(now) {
		t.Errorf("last sync lost in round trip: %v", got)
	}

	if err = s.MarkPendingSync(ctx); err != nil {
		t.Fatalf("MarkPendingSync: %v", err)
	}
	pending, err := s.HasPendingSync(ctx)
	if err != nil {
		t.Fatalf("HasPendingSync: %v", err)
	}
	if !pending {
		t.Error("expected pending sync after mark")
	}

	if err = s.ClearPendingSync(ctx); err != nil {
		t.Fatalf("ClearPendingSync: %v", err)
	}
	pending, err = s.HasPendingSync(ctx)
	if err != nil {
		t.Fatalf("HasPendingSync after clear: %v", err)
	}
	if pending {
		t.Error("expected pending sync cleared")
	}
}
