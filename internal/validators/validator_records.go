package validators

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/babynumtime/babynumtime/models"
)

const (
	FieldTime      = "time"
	FieldType      = "type"
	FieldQuantity  = "quantity"
	FieldPoop      = "poop"
	FieldResult    = "result"
	FieldVolume    = "volume"
	FieldDuration  = "duration"
	FieldSide      = "side"
	FieldBirthDate = "birth_date"
)

const birthDateLayout = "2006-01-02"

var (
	allowedFeedingTypes = []models.FeedingType{
		models.FeedingBreastmilk,
		models.FeedingFormula,
	}
	allowedDiaperTypes = []models.DiaperType{
		models.DiaperWet,
		models.DiaperDirty,
		models.DiaperBoth,
	}
	allowedPoopConsistencies = []models.PoopConsistency{
		models.PoopNormal,
		models.PoopLiquid,
		models.PoopHard,
	}
	allowedPumpingSides = []models.PumpingSide{
		models.PumpingLeft,
		models.PumpingRight,
		models.PumpingBoth,
	}
)

type RecordValidator struct {
}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Feeding:
		return v.validateFeeding(ctx, value, fields...)
	case *models.Feeding:
		return v.validateFeeding(ctx, *value, fields...)

	case models.DiaperChange:
		return v.validateDiaperChange(ctx, value, fields...)
	case *models.DiaperChange:
		return v.validateDiaperChange(ctx, *value, fields...)

	case models.CryAnalysis:
		return v.validateCryAnalysis(ctx, value, fields...)
	case *models.CryAnalysis:
		return v.validateCryAnalysis(ctx, *value, fields...)

	case models.PumpingSession:
		return v.validatePumpingSession(ctx, value, fields...)
	case *models.PumpingSession:
		return v.validatePumpingSession(ctx, *value, fields...)

	case models.BabyProfile:
		return v.validateBabyProfile(ctx, value, fields...)
	case *models.BabyProfile:
		return v.validateBabyProfile(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RecordValidator) validateFeeding(_ context.Context, feeding models.Feeding, fields ...string) error {
	for _, field := range scope(fields, FieldTime, FieldType, FieldQuantity) {
		switch field {
		case FieldTime:
			if err := validateRecordTime(feeding.Time); err != nil {
				return err
			}
		case FieldType:
			if !slices.Contains(allowedFeedingTypes, feeding.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidFeedingType, feeding.Type)
			}
		case FieldQuantity:
			if feeding.Quantity <= 0 {
				return ErrInvalidQuantity
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RecordValidator) validateDiaperChange(_ context.Context, diaper models.DiaperChange, fields ...string) error {
	for _, field := range scope(fields, FieldTime, FieldType, FieldPoop) {
		switch field {
		case FieldTime:
			if err := validateRecordTime(diaper.Time); err != nil {
				return err
			}
		case FieldType:
			if !slices.Contains(allowedDiaperTypes, diaper.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidDiaperType, diaper.Type)
			}
		case FieldPoop:
			hasPoopFields := diaper.PoopType != nil || diaper.Image != "" || diaper.AIAnalysis != nil
			if hasPoopFields && diaper.Type == models.DiaperWet {
				return ErrPoopFieldsOnWetDiaper
			}
			if diaper.PoopType != nil && !slices.Contains(allowedPoopConsistencies, *diaper.PoopType) {
				return fmt.Errorf("%w: %q", ErrInvalidPoopConsistency, *diaper.PoopType)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RecordValidator) validateCryAnalysis(_ context.Context, analysis models.CryAnalysis, fields ...string) error {
	for _, field := range scope(fields, FieldTime, FieldResult) {
		switch field {
		case FieldTime:
			if err := validateRecordTime(analysis.Time); err != nil {
				return err
			}
		case FieldResult:
			if len(analysis.Result) == 0 {
				return ErrEmptyCryResult
			}
			for label, share := range analysis.Result {
				if !slices.Contains(models.CryLabels, label) {
					return fmt.Errorf("%w: %q", ErrUnknownCryLabel, label)
				}
				if share < 0 {
					return fmt.Errorf("%w: %s=%d", ErrNegativeCryShare, label, share)
				}
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RecordValidator) validatePumpingSession(_ context.Context, session models.PumpingSession, fields ...string) error {
	for _, field := range scope(fields, FieldTime, FieldVolume, FieldDuration, FieldSide) {
		switch field {
		case FieldTime:
			if err := validateRecordTime(session.Time); err != nil {
				return err
			}
		case FieldVolume:
			if session.Volume <= 0 {
				return ErrInvalidVolume
			}
		case FieldDuration:
			if session.Duration != nil && *session.Duration <= 0 {
				return ErrInvalidDuration
			}
		case FieldSide:
			if session.Side != "" && !slices.Contains(allowedPumpingSides, session.Side) {
				return fmt.Errorf("%w: %q", ErrInvalidPumpingSide, session.Side)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func (v *RecordValidator) validateBabyProfile(_ context.Context, profile models.BabyProfile, fields ...string) error {
	for _, field := range scope(fields, FieldBirthDate) {
		switch field {
		case FieldBirthDate:
			if profile.BirthDate == "" {
				return ErrEmptyBirthDate
			}
			if _, err := time.Parse(birthDateLayout, profile.BirthDate); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidBirthDate, profile.BirthDate)
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}

	return nil
}

func validateRecordTime(value string) error {
	if value == "" {
		return ErrEmptyRecordTime
	}
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidRecordTime, value)
	}

	return nil
}

// scope returns the fields to validate: the caller-supplied subset, or all
// known fields when none were named.
func scope(fields []string, all ...string) []string {
	if len(fields) == 0 {
		return all
	}

	return fields
}
