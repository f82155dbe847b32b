package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babynumtime/babynumtime/internal/adapter"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/internal/validators"
	"github.com/babynumtime/babynumtime/models"
)

func newTestProfileService(t *testing.T, gateway *spyGateway) (ProfileService, *spyCoordinator, store.LocalRecordStore) {
	t.Helper()

	localStore := newTestLocalStore(t)
	coordinator := &spyCoordinator{}
	svc := NewProfileService(localStore, gateway, coordinator, logger.Nop())

	return svc, coordinator, localStore
}

func TestCreateBaby_StoresCloudConfigAndSeedsBackend(t *testing.T) {
	gateway := &spyGateway{baby: models.BabyProfile{BabyID: "KQXR57"}}
	svc, coordinator, localStore := newTestProfileService(t, gateway)
	ctx := context.Background()

	info, err := svc.CreateBaby(ctx, "2025-06-01", "Siti")
	require.NoError(t, err)

	assert.Equal(t, "KQXR57", info.BabyID)
	assert.Equal(t, models.StorageCloud, info.StorageMode)
	assert.True(t, info.IsCloud())

	stored, err := localStore.GetConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, info, *stored)

	assert.Equal(t, 1, coordinator.pushCalls, "local data seeds the fresh backend row")
}

func TestCreateBaby_RejectsBadBirthDate(t *testing.T) {
	gateway := &spyGateway{}
	svc, _, localStore := newTestProfileService(t, gateway)
	ctx := context.Background()

	_, err := svc.CreateBaby(ctx, "01/06/2025", "Siti")
	assert.ErrorIs(t, err, validators.ErrInvalidBirthDate)
	assert.Zero(t, gateway.createCalls)

	stored, err := localStore.GetConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestJoinBaby_AdoptsBackendState(t *testing.T) {
	gateway := &spyGateway{
		baby: models.BabyProfile{BabyID: "KQXR57", BirthDate: "2025-06-01", BabyName: "Siti"},
		remote: models.DataSnapshot{
			Feedings: []models.Feeding{
				{ID: "r1", Time: "2025-08-01T08:00:00Z", Type: models.FeedingBreastmilk, Quantity: 60},
			},
		},
	}
	svc, _, localStore := newTestProfileService(t, gateway)
	ctx := context.Background()

	// joining replaces whatever was logged locally before
	require.NoError(t, localStore.SaveFeedings(ctx, []models.Feeding{
		{ID: "local1", Time: "2025-07-01T08:00:00Z", Type: models.FeedingFormula, Quantity: 90},
	}))

	info, err := svc.JoinBaby(ctx, "KQXR57")
	require.NoError(t, err)
	assert.Equal(t, models.StorageCloud, info.StorageMode)
	assert.Equal(t, "KQXR57", info.BabyID)

	feedings, err := localStore.GetFeedings(ctx)
	require.NoError(t, err)
	require.Len(t, feedings, 1)
	assert.Equal(t, "r1", feedings[0].ID)
}

func TestJoinBaby_RejectsMalformedID(t *testing.T) {
	gateway := &spyGateway{}
	svc, _, _ := newTestProfileService(t, gateway)

	_, err := svc.JoinBaby(context.Background(), "ab-1")
	assert.ErrorIs(t, err, adapter.ErrBabyNotFound)
	assert.Zero(t, gateway.getBabyCalls, "malformed IDs never reach the backend")
}

func TestJoinBaby_UnknownID(t *testing.T) {
	gateway := &spyGateway{getBabyErr: adapter.ErrBabyNotFound}
	svc, _, _ := newTestProfileService(t, gateway)

	_, err := svc.JoinBaby(context.Background(), "ZZZZ22")
	assert.ErrorIs(t, err, adapter.ErrBabyNotFound)
}

func TestUseOffline(t *testing.T) {
	svc, _, localStore := newTestProfileService(t, &spyGateway{})
	ctx := context.Background()

	info, err := svc.UseOffline(ctx, "2025-06-01", "Siti")
	require.NoError(t, err)
	assert.Equal(t, models.StorageOffline, info.StorageMode)
	assert.Empty(t, info.BabyID)
	assert.False(t, info.IsCloud())

	stored, err := localStore.GetConfig(ctx)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, info, *stored)
}

func TestReset_CloudWithRemoteWipe(t *testing.T) {
	gateway := &spyGateway{baby: models.BabyProfile{BabyID: "KQXR57"}}
	svc, _, localStore := newTestProfileService(t, gateway)
	ctx := context.Background()

	_, err := svc.CreateBaby(ctx, "2025-06-01", "Siti")
	require.NoError(t, err)
	require.NoError(t, localStore.SaveFeedings(ctx, []models.Feeding{
		{ID: "f1", Time: "2025-08-01T08:00:00Z", Type: models.FeedingFormula, Quantity: 90},
	}))

	require.NoError(t, svc.Reset(ctx, true))

	assert.Equal(t, 1, gateway.deleteCalls)

	stored, err := localStore.GetConfig(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored, "config cleared")

	feedings, err := localStore.GetFeedings(ctx)
	require.NoError(t, err)
	assert.Empty(t, feedings, "collections cleared")

	pending, err := localStore.HasPendingSync(ctx)
	require.NoError(t, err)
	assert.False(t, pending)
}

func TestReset_OfflineSkipsRemote(t *testing.T) {
	gateway := &spyGateway{}
	svc, _, _ := newTestProfileService(t, gateway)
	ctx := context.Background()

	_, err := svc.UseOffline(ctx, "2025-06-01", "")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, true))
	assert.Zero(t, gateway.deleteCalls, "offline mode has nothing to delete remotely")
}
