package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/models"
)

func TestExportImport_RoundTripForcesOffline(t *testing.T) {
	ctx := context.Background()

	// source device: cloud mode with data
	source := newTestLocalStore(t)
	require.NoError(t, source.SetConfig(ctx, models.BabyInfo{
		BabyID:      "KQXR57",
		BirthDate:   "2025-06-01",
		BabyName:    "Siti",
		StorageMode: models.StorageCloud,
	}))
	data := models.DataSnapshot{
		Feedings: []models.Feeding{
			{ID: "f1", Time: "2025-08-01T08:00:00Z", Type: models.FeedingFormula, Quantity: 90},
		},
		Diapers: []models.DiaperChange{
			{ID: "d1", Time: "2025-08-01T09:00:00Z", Type: models.DiaperWet},
		},
	}
	require.NoError(t, source.ReplaceAll(ctx, data))

	doc, err := NewPortabilityService(source, logger.Nop()).Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.ExportVersion, doc.Version)
	assert.NotEmpty(t, doc.ExportedAt)

	// clean target device
	target := newTestLocalStore(t)
	require.NoError(t, NewPortabilityService(target, logger.Nop()).Import(ctx, doc))

	snapshot, err := target.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, data.Feedings, snapshot.Feedings)
	assert.Equal(t, data.Diapers, snapshot.Diapers)
	assert.Empty(t, snapshot.CryAnalyses)
	assert.Empty(t, snapshot.PumpingSessions)

	cfg, err := target.GetConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, models.StorageOffline, cfg.StorageMode, "imports always land offline")
	assert.Empty(t, cfg.BabyID, "a cloud baby ID never survives an import")
	assert.Equal(t, "2025-06-01", cfg.BirthDate)
	assert.Equal(t, "Siti", cfg.BabyName)
}

func TestImport_MissingConfigRejectedBeforeAnyMutation(t *testing.T) {
	ctx := context.Background()

	target := newTestLocalStore(t)
	existing := []models.Feeding{
		{ID: "keep", Time: "2025-08-01T08:00:00Z", Type: models.FeedingBreastmilk, Quantity: 60},
	}
	require.NoError(t, target.SaveFeedings(ctx, existing))

	doc := models.ExportDocument{
		Version: models.ExportVersion,
		Data: models.DataSnapshot{
			Feedings: []models.Feeding{
				{ID: "new", Time: "2025-08-02T08:00:00Z", Type: models.FeedingFormula, Quantity: 90},
			},
		},
	}
	err := NewPortabilityService(target, logger.Nop()).Import(ctx, doc)
	assert.ErrorIs(t, err, ErrExportMissingConfig)

	feedings, err := target.GetFeedings(ctx)
	require.NoError(t, err)
	assert.Equal(t, existing, feedings, "rejected imports must not touch storage")
}

func TestImport_UnknownVersionRejected(t *testing.T) {
	target := newTestLocalStore(t)
	cfg := models.BabyInfo{BirthDate: "2025-06-01", StorageMode: models.StorageOffline}

	err := NewPortabilityService(target, logger.Nop()).Import(context.Background(), models.ExportDocument{
		Version: 99,
		Config:  &cfg,
	})
	assert.ErrorIs(t, err, ErrUnknownExportVersion)
}

func TestExport_RequiresActiveBaby(t *testing.T) {
	target := newTestLocalStore(t)

	_, err := NewPortabilityService(target, logger.Nop()).Export(context.Background())
	assert.ErrorIs(t, err, ErrNoActiveBaby)
}
