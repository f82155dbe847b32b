package models

// Actions understood by the record backend. Every request is a POST to the
// single sheets endpoint with one of these in the action field.
const (
	ActionCreateBaby    = "createBaby"
	ActionGetBaby       = "getBaby"
	ActionGetData       = "getData"
	ActionSyncData      = "syncData"
	ActionDeleteAllData = "deleteAllData"
)

// ActionRequest is the request body of the record backend RPC. Which fields
// are required depends on the action: createBaby needs BirthDate, everything
// else needs BabyID, and syncData additionally needs Data.
type ActionRequest struct {
	Action    string        `json:"action"`
	BabyID    string        `json:"babyId,omitempty"`
	BirthDate string        `json:"birthDate,omitempty"`
	BabyName  string        `json:"babyName,omitempty"`
	Data      *DataSnapshot `json:"data,omitempty"`
}

// ActionResponse is the uniform response envelope. Success false carries a
// human-readable Error; Baby and Data are populated per-action.
type ActionResponse struct {
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Baby    *BabyProfile  `json:"baby,omitempty"`
	Data    *DataSnapshot `json:"data,omitempty"`
}
