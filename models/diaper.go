package models

// DiaperType describes what the diaper contained.
type DiaperType string

const (
	DiaperWet   DiaperType = "wet"
	DiaperDirty DiaperType = "dirty"
	DiaperBoth  DiaperType = "both"
)

// PoopConsistency classifies stool texture for dirty diapers.
type PoopConsistency string

const (
	PoopNormal PoopConsistency = "normal"
	PoopLiquid PoopConsistency = "liquid"
	PoopHard   PoopConsistency = "hard"
)

// PoopAIAnalysis is the structured judgment returned by the stool-photo
// analysis collaborator. The application stores it verbatim and never
// interprets the fields beyond display.
type PoopAIAnalysis struct {
	Color       string `json:"color"`
	Consistency string `json:"consistency"`
	IsNormal    bool   `json:"isNormal"`
	Description string `json:"description"`
	Warning     string `json:"warning,omitempty"`
	Advice      string `json:"advice"`
}

// DiaperChange records one diaper change. PoopType, Image and AIAnalysis are
// meaningful only when Type is dirty or both; the validator rejects them on
// wet-only changes.
type DiaperChange struct {
	ID         string           `json:"id"`
	Time       string           `json:"time"`
	Type       DiaperType       `json:"type"`
	PoopType   *PoopConsistency `json:"poopType,omitempty"`
	Notes      string           `json:"notes,omitempty"`
	Image      string           `json:"image,omitempty"` // opaque blob reference
	AIAnalysis *PoopAIAnalysis  `json:"aiAnalysis,omitempty"`
}
