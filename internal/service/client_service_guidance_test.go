package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/babynumtime/babynumtime/models"
)

func TestAgeInMonths(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 3, AgeInMonths("2025-06-01", now))
	assert.Equal(t, 2, AgeInMonths("2025-06-15", now), "partial months round down")
	assert.Equal(t, 0, AgeInMonths("2025-09-01", now))
	assert.Equal(t, 0, AgeInMonths("2026-01-01", now), "future birth dates clamp to zero")
	assert.Equal(t, 0, AgeInMonths("not-a-date", now))
}

func TestPredictNextFeeding(t *testing.T) {
	last := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)
	feedings := []models.Feeding{
		{ID: "f1", Time: last.Format(time.RFC3339), Type: models.FeedingFormula, Quantity: 90},
	}

	tests := []struct {
		name        string
		ageInMonths int
		wantGap     time.Duration
	}{
		{name: "newborn feeds every 2.5h", ageInMonths: 0, wantGap: 150 * time.Minute},
		{name: "two months feeds every 3.5h", ageInMonths: 2, wantGap: 210 * time.Minute},
		{name: "six months feeds every 4h", ageInMonths: 6, wantGap: 4 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := PredictNextFeeding(feedings, tt.ageInMonths)
			require.NotNil(t, next)
			assert.Equal(t, last.Add(tt.wantGap), *next)
		})
	}

	assert.Nil(t, PredictNextFeeding(nil, 3), "no feedings, no prediction")
	assert.Nil(t, PredictNextFeeding([]models.Feeding{{Time: "garbage"}}, 3))
}

func TestDailyIntakeGuideline(t *testing.T) {
	assert.Equal(t, "60-90 ml", DailyIntakeGuideline(0).Quantity)
	assert.Equal(t, "90-120 ml", DailyIntakeGuideline(1).Quantity)
	assert.Equal(t, "120-180 ml", DailyIntakeGuideline(3).Quantity)
	assert.Equal(t, "180-240 ml", DailyIntakeGuideline(5).Quantity)
	assert.Equal(t, "240 ml", DailyIntakeGuideline(8).Quantity)
	assert.Equal(t, "every 4-6 hours", DailyIntakeGuideline(8).Frequency)
}

func TestTotalVolumeToday(t *testing.T) {
	now := time.Date(2025, 8, 1, 20, 0, 0, 0, time.UTC)
	feedings := []models.Feeding{
		{Time: "2025-08-01T19:00:00Z", Quantity: 90},
		{Time: "2025-08-01T08:00:00Z", Quantity: 60},
		{Time: "2025-07-31T23:30:00Z", Quantity: 120}, // yesterday
		{Time: "garbage", Quantity: 500},
	}

	assert.Equal(t, 150, TotalVolumeToday(feedings, now))
	assert.Zero(t, TotalVolumeToday(nil, now))
}
