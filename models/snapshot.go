package models

// DataSnapshot carries all four record collections for one baby. It is the
// unit of synchronization: pushes replace the backend's copy with a snapshot,
// pulls replace the local copy with one.
type DataSnapshot struct {
	Feedings        []Feeding        `json:"feedings"`
	Diapers         []DiaperChange   `json:"diapers"`
	CryAnalyses     []CryAnalysis    `json:"cryAnalyses"`
	PumpingSessions []PumpingSession `json:"pumpingSessions"`
}

// Normalize replaces nil collection slices with empty ones so a snapshot
// always marshals as four arrays, never null. Collections missing from a
// backend response default to empty instead of failing the whole pull.
func (s *DataSnapshot) Normalize() {
	if s.Feedings == nil {
		s.Feedings = []Feeding{}
	}
	if s.Diapers == nil {
		s.Diapers = []DiaperChange{}
	}
	if s.CryAnalyses == nil {
		s.CryAnalyses = []CryAnalysis{}
	}
	if s.PumpingSessions == nil {
		s.PumpingSessions = []PumpingSession{}
	}
}

// Count returns the total number of records across all four collections.
func (s DataSnapshot) Count() int {
	return len(s.Feedings) + len(s.Diapers) + len(s.CryAnalyses) + len(s.PumpingSessions)
}
