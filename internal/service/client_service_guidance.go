package service

import (
	"time"

	"github.com/babynumtime/babynumtime/models"
)

// DailyGuideline is the age-appropriate feeding recommendation shown next to
// the feeding log.
type DailyGuideline struct {
	Quantity  string
	Frequency string
	Total     string
}

// AgeInMonths returns the baby's age in whole months at the given instant.
// birthDate is a YYYY-MM-DD string; a malformed date yields 0.
func AgeInMonths(birthDate string, now time.Time) int {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0
	}

	months := (now.Year()-born.Year())*12 + int(now.Month()) - int(born.Month())
	if now.Day() < born.Day() {
		months--
	}
	if months < 0 {
		return 0
	}

	return months
}

// PredictNextFeeding estimates when the next feeding is due from the most
// recent feeding and the baby's age. feedings must be most-recent-first (as
// returned by RecordService.ListFeedings). Returns nil when no feedings have
// been logged yet.
func PredictNextFeeding(feedings []models.Feeding, ageInMonths int) *time.Time {
	if len(feedings) == 0 {
		return nil
	}

	last := recordInstant(feedings[0].Time)
	if last.IsZero() {
		return nil
	}

	var gap time.Duration
	switch {
	case ageInMonths < 1:
		gap = 150 * time.Minute
	case ageInMonths < 4:
		gap = 210 * time.Minute
	default:
		gap = 4 * time.Hour
	}

	next := last.Add(gap)
	return &next
}

// DailyIntakeGuideline returns the recommended per-feeding quantity,
// frequency, and daily total for the baby's age.
func DailyIntakeGuideline(ageInMonths int) DailyGuideline {
	switch {
	case ageInMonths < 1:
		return DailyGuideline{
			Quantity:  "60-90 ml",
			Frequency: "every 2-3 hours",
			Total:     "480-720 ml",
		}
	case ageInMonths < 2:
		return DailyGuideline{
			Quantity:  "90-120 ml",
			Frequency: "every 3-4 hours",
			Total:     "720-960 ml",
		}
	case ageInMonths < 4:
		return DailyGuideline{
			Quantity:  "120-180 ml",
			Frequency: "every 3-4 hours",
			Total:     "960-1440 ml",
		}
	case ageInMonths < 6:
		return DailyGuideline{
			Quantity:  "180-240 ml",
			Frequency: "every 4-5 hours",
			Total:     "1080-1440 ml",
		}
	default:
		return DailyGuideline{
			Quantity:  "240 ml",
			Frequency: "every 4-6 hours",
			Total:     "Up to 1000 ml+",
		}
	}
}

// TotalVolumeToday sums the quantities of all feedings logged since local
// midnight.
func TotalVolumeToday(feedings []models.Feeding, now time.Time) int {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	total := 0
	for _, f := range feedings {
		at := recordInstant(f.Time)
		if !at.Before(midnight) && !at.IsZero() {
			total += f.Quantity
		}
	}

	return total
}
