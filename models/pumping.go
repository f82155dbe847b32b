package models

// PumpingSide identifies which breast a pumping session used.
type PumpingSide string

const (
	PumpingLeft  PumpingSide = "left"
	PumpingRight PumpingSide = "right"
	PumpingBoth  PumpingSide = "both"
)

// PumpingSession records one breast-pumping session.
type PumpingSession struct {
	ID       string      `json:"id"`
	Time     string      `json:"time"`
	Volume   int         `json:"volume"`             // millilitres
	Duration *int        `json:"duration,omitempty"` // minutes
	Side     PumpingSide `json:"side,omitempty"`
	Notes    string      `json:"notes,omitempty"`
}
