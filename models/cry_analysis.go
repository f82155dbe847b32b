package models

// Cry cause labels, in canonical iteration order. The order matters: the
// normalization routine assigns rounding remainders to the first label that
// holds the maximum share.
const (
	CryLapar        = "lapar"
	CryMengantuk    = "mengantuk"
	CrySendawa      = "sendawa"
	CryPerutKembung = "perutKembung"
	CryTidakNyaman  = "tidakNyaman"
)

// CryLabels is the fixed label set every CryDistribution is defined over.
var CryLabels = []string{CryLapar, CryMengantuk, CrySendawa, CryPerutKembung, CryTidakNyaman}

// CryDistribution maps each cause label to a percentage. A normalized
// distribution holds non-negative integers that sum to exactly 100.
type CryDistribution map[string]int

// Total returns the sum of all label percentages.
func (d CryDistribution) Total() int {
	total := 0
	for _, v := range d {
		total += v
	}
	return total
}

// CryAnalysis records one AI-assisted cry classification.
type CryAnalysis struct {
	ID            string          `json:"id"`
	Time          string          `json:"time"`
	Result        CryDistribution `json:"result"`
	DetectedSound string          `json:"detectedSound,omitempty"`
}
