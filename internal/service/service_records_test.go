package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/internal/utils"
	"github.com/babynumtime/babynumtime/internal/validators"
	"github.com/babynumtime/babynumtime/models"
)

// fakeRepository is an in-memory store.RecordRepository. collideFirst makes
// the first N CreateBaby calls fail with ErrBabyIDTaken.
type fakeRepository struct {
	babies       map[string]models.BabyProfile
	data         map[string]models.DataSnapshot
	collideFirst int
	createCalls  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		babies: make(map[string]models.BabyProfile),
		data:   make(map[string]models.DataSnapshot),
	}
}

func (r *fakeRepository) CreateBaby(_ context.Context, baby models.BabyProfile) error {
	r.createCalls++
	if r.createCalls <= r.collideFirst {
		return store.ErrBabyIDTaken
	}
	if _, exists := r.babies[baby.BabyID]; exists {
		return store.ErrBabyIDTaken
	}
	r.babies[baby.BabyID] = baby
	return nil
}

func (r *fakeRepository) GetBaby(_ context.Context, babyID string) (models.BabyProfile, error) {
	baby, ok := r.babies[babyID]
	if !ok {
		return models.BabyProfile{}, store.ErrBabyNotFound
	}
	return baby, nil
}

func (r *fakeRepository) GetData(_ context.Context, babyID string) (models.DataSnapshot, error) {
	snapshot := r.data[babyID]
	snapshot.Normalize()
	return snapshot, nil
}

func (r *fakeRepository) ReplaceData(_ context.Context, babyID string, snapshot models.DataSnapshot) error {
	snapshot.Normalize()
	r.data[babyID] = snapshot
	return nil
}

func (r *fakeRepository) DeleteAll(_ context.Context, babyID string) error {
	delete(r.babies, babyID)
	delete(r.data, babyID)
	return nil
}

func TestServerCreateBaby_AllocatesValidID(t *testing.T) {
	repo := newFakeRepository()
	svc := NewRecordsService(repo, logger.Nop())
	ctx := context.Background()

	first, err := svc.CreateBaby(ctx, "2025-06-01", "Siti")
	require.NoError(t, err)
	assert.True(t, utils.IsValidBabyID(first.BabyID))
	assert.Equal(t, "2025-06-01", first.BirthDate)

	// consecutive creations get distinct IDs
	second, err := svc.CreateBaby(ctx, "2025-03-15", "")
	require.NoError(t, err)
	assert.True(t, utils.IsValidBabyID(second.BabyID))
	assert.NotEqual(t, first.BabyID, second.BabyID)
}

func TestServerCreateBaby_RetriesOnCollision(t *testing.T) {
	repo := newFakeRepository()
	repo.collideFirst = 2
	svc := NewRecordsService(repo, logger.Nop())

	baby, err := svc.CreateBaby(context.Background(), "2025-06-01", "Siti")
	require.NoError(t, err)
	assert.True(t, utils.IsValidBabyID(baby.BabyID))
	assert.Equal(t, 3, repo.createCalls, "two collisions then success")
}

func TestServerCreateBaby_GivesUpAfterRetryBudget(t *testing.T) {
	repo := newFakeRepository()
	repo.collideFirst = maxBabyIDAttempts + 1
	svc := NewRecordsService(repo, logger.Nop())

	_, err := svc.CreateBaby(context.Background(), "2025-06-01", "Siti")
	assert.ErrorIs(t, err, ErrBabyIDExhausted)
}

func TestServerCreateBaby_ValidatesBirthDate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewRecordsService(repo, logger.Nop())

	_, err := svc.CreateBaby(context.Background(), "", "Siti")
	assert.ErrorIs(t, err, validators.ErrEmptyBirthDate)
	assert.Zero(t, repo.createCalls)
}

func TestServerDataOperations_RequireKnownBaby(t *testing.T) {
	repo := newFakeRepository()
	svc := NewRecordsService(repo, logger.Nop())
	ctx := context.Background()

	_, err := svc.GetData(ctx, "ZZZZ22")
	assert.ErrorIs(t, err, store.ErrBabyNotFound)

	err = svc.SyncData(ctx, "ZZZZ22", models.DataSnapshot{})
	assert.ErrorIs(t, err, store.ErrBabyNotFound)

	err = svc.DeleteAllData(ctx, "ZZZZ22")
	assert.ErrorIs(t, err, store.ErrBabyNotFound)
}

func TestServerSyncData_ReplacesSnapshot(t *testing.T) {
	repo := newFakeRepository()
	svc := NewRecordsService(repo, logger.Nop())
	ctx := context.Background()

	baby, err := svc.CreateBaby(ctx, "2025-06-01", "Siti")
	require.NoError(t, err)

	snapshot := models.DataSnapshot{
		Feedings: []models.Feeding{
			{ID: "f1", Time: "2025-08-01T08:00:00Z", Type: models.FeedingFormula, Quantity: 90},
		},
	}
	require.NoError(t, svc.SyncData(ctx, baby.BabyID, snapshot))

	got, err := svc.GetData(ctx, baby.BabyID)
	require.NoError(t, err)
	assert.Equal(t, snapshot.Feedings, got.Feedings)
	assert.NotNil(t, got.Diapers, "missing collections come back empty, not nil")

	// pushing the identical snapshot again leaves the same remote state
	require.NoError(t, svc.SyncData(ctx, baby.BabyID, snapshot))
	again, err := svc.GetData(ctx, baby.BabyID)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestServerDeleteAllData(t *testing.T) {
	repo := newFakeRepository()
	svc := NewRecordsService(repo, logger.Nop())
	ctx := context.Background()

	baby, err := svc.CreateBaby(ctx, "2025-06-01", "Siti")
	require.NoError(t, err)
	require.NoError(t, svc.SyncData(ctx, baby.BabyID, models.DataSnapshot{
		Feedings: []models.Feeding{{ID: "f1", Time: "2025-08-01T08:00:00Z", Type: models.FeedingFormula, Quantity: 90}},
	}))

	require.NoError(t, svc.DeleteAllData(ctx, baby.BabyID))

	_, err = svc.GetBaby(ctx, baby.BabyID)
	assert.True(t, errors.Is(err, store.ErrBabyNotFound))
}
