package models

// FeedingType describes what the baby was fed with.
type FeedingType string

const (
	FeedingBreastmilk FeedingType = "breastmilk"
	FeedingFormula    FeedingType = "formula"
)

// Feeding is one bottle or breastfeeding session. Time is an ISO-8601
// timestamp string so records survive JSON round trips between the local
// store and the record backend unchanged.
type Feeding struct {
	ID       string      `json:"id"`
	Time     string      `json:"time"`
	Type     FeedingType `json:"type"`
	Quantity int         `json:"quantity"` // millilitres
}
