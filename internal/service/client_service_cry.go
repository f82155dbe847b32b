package service

import (
	"math"

	"github.com/babynumtime/babynumtime/models"
)

// NormalizeCryDistribution scales a raw cry-classification distribution over
// the fixed label set to non-negative integer percentages summing to exactly
// 100. The rounding remainder goes to the currently-largest label, first in
// label order on ties. An all-zero input is returned unchanged.
func NormalizeCryDistribution(raw map[string]float64) models.CryDistribution {
	var total float64
	for _, label := range models.CryLabels {
		total += raw[label]
	}

	normalized := make(models.CryDistribution, len(models.CryLabels))
	if total == 0 {
		for _, label := range models.CryLabels {
			normalized[label] = 0
		}
		return normalized
	}

	sum := 0
	for _, label := range models.CryLabels {
		share := int(math.Round(raw[label] / total * 100))
		normalized[label] = share
		sum += share
	}

	if diff := 100 - sum; diff != 0 {
		maxLabel := models.CryLabels[0]
		maxShare := -1
		for _, label := range models.CryLabels {
			if normalized[label] > maxShare {
				maxShare = normalized[label]
				maxLabel = label
			}
		}
		normalized[maxLabel] += diff
	}

	return normalized
}
