package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/babynumtime/babynumtime/models"
)

func TestRecordValidator_Feeding(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		feeding models.Feeding
		wantErr error
	}{
		{
			name:    "valid formula feeding",
			feeding: models.Feeding{Time: "2025-08-01T08:00:00Z", Type: models.FeedingFormula, Quantity: 90},
		},
		{
			name:    "missing time",
			feeding: models.Feeding{Type: models.FeedingFormula, Quantity: 90},
			wantErr: ErrEmptyRecordTime,
		},
		{
			name:    "garbage time",
			feeding: models.Feeding{Time: "yesterday", Type: models.FeedingFormula, Quantity: 90},
			wantErr: ErrInvalidRecordTime,
		},
		{
			name:    "unknown type",
			feeding: models.Feeding{Time: "2025-08-01T08:00:00Z", Type: "juice", Quantity: 90},
			wantErr: ErrInvalidFeedingType,
		},
		{
			name:    "zero quantity",
			feeding: models.Feeding{Time: "2025-08-01T08:00:00Z", Type: models.FeedingBreastmilk, Quantity: 0},
			wantErr: ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.feeding)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRecordValidator_DiaperPoopFields(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()
	liquid := models.PoopLiquid

	// poop consistency on a dirty diaper is fine
	err := v.Validate(ctx, models.DiaperChange{
		Time: "2025-08-01T09:00:00Z", Type: models.DiaperDirty, PoopType: &liquid,
	})
	assert.NoError(t, err)

	// and on a "both" diaper
	err = v.Validate(ctx, models.DiaperChange{
		Time: "2025-08-01T09:00:00Z", Type: models.DiaperBoth, PoopType: &liquid,
	})
	assert.NoError(t, err)

	// but not on a wet-only diaper
	err = v.Validate(ctx, models.DiaperChange{
		Time: "2025-08-01T09:00:00Z", Type: models.DiaperWet, PoopType: &liquid,
	})
	assert.ErrorIs(t, err, ErrPoopFieldsOnWetDiaper)

	bogus := models.PoopConsistency("chunky")
	err = v.Validate(ctx, models.DiaperChange{
		Time: "2025-08-01T09:00:00Z", Type: models.DiaperDirty, PoopType: &bogus,
	})
	assert.ErrorIs(t, err, ErrInvalidPoopConsistency)
}

func TestRecordValidator_CryAnalysis(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.CryAnalysis{
		Time:   "2025-08-01T10:00:00Z",
		Result: models.CryDistribution{models.CryLapar: 60, models.CryMengantuk: 40},
	})
	assert.NoError(t, err)

	err = v.Validate(ctx, models.CryAnalysis{Time: "2025-08-01T10:00:00Z"})
	assert.ErrorIs(t, err, ErrEmptyCryResult)

	err = v.Validate(ctx, models.CryAnalysis{
		Time:   "2025-08-01T10:00:00Z",
		Result: models.CryDistribution{"bosan": 100},
	})
	assert.ErrorIs(t, err, ErrUnknownCryLabel)

	err = v.Validate(ctx, models.CryAnalysis{
		Time:   "2025-08-01T10:00:00Z",
		Result: models.CryDistribution{models.CryLapar: -5},
	})
	assert.ErrorIs(t, err, ErrNegativeCryShare)
}

func TestRecordValidator_PumpingSession(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.PumpingSession{
		Time: "2025-08-01T12:00:00Z", Volume: 120, Side: models.PumpingLeft,
	})
	assert.NoError(t, err)

	err = v.Validate(ctx, models.PumpingSession{Time: "2025-08-01T12:00:00Z", Volume: 0})
	assert.ErrorIs(t, err, ErrInvalidVolume)

	badDuration := -10
	err = v.Validate(ctx, models.PumpingSession{
		Time: "2025-08-01T12:00:00Z", Volume: 120, Duration: &badDuration,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	err = v.Validate(ctx, models.PumpingSession{
		Time: "2025-08-01T12:00:00Z", Volume: 120, Side: "middle",
	})
	assert.ErrorIs(t, err, ErrInvalidPumpingSide)
}

func TestRecordValidator_BabyProfileAndScoping(t *testing.T) {
	v := NewRecordValidator()
	ctx := context.Background()

	err := v.Validate(ctx, models.BabyProfile{BirthDate: "2025-06-01"})
	assert.NoError(t, err)

	err = v.Validate(ctx, models.BabyProfile{})
	assert.ErrorIs(t, err, ErrEmptyBirthDate)

	err = v.Validate(ctx, models.BabyProfile{BirthDate: "01/06/2025"})
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	// field scoping skips unrequested checks
	err = v.Validate(ctx, models.Feeding{Time: "2025-08-01T08:00:00Z"}, FieldTime)
	assert.NoError(t, err)

	err = v.Validate(ctx, 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
