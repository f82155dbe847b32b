package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyRecordTime    = errors.New("record time is required")
	ErrInvalidRecordTime  = errors.New("record time is not a valid timestamp")
	ErrInvalidFeedingType = errors.New("invalid feeding type")
	ErrInvalidQuantity    = errors.New("feeding quantity must be positive")

	ErrInvalidDiaperType      = errors.New("invalid diaper type")
	ErrInvalidPoopConsistency = errors.New("invalid poop consistency")
	ErrPoopFieldsOnWetDiaper  = errors.New("poop fields are only allowed on dirty diapers")

	ErrEmptyCryResult   = errors.New("cry result cannot be empty")
	ErrUnknownCryLabel  = errors.New("unknown cry label")
	ErrNegativeCryShare = errors.New("cry shares must be non-negative")

	ErrInvalidVolume      = errors.New("pumping volume must be positive")
	ErrInvalidDuration    = errors.New("pumping duration must be positive")
	ErrInvalidPumpingSide = errors.New("invalid pumping side")

	ErrEmptyBirthDate   = errors.New("birth date is required")
	ErrInvalidBirthDate = errors.New("birth date must be formatted as YYYY-MM-DD")
)
