package models

// StorageMode selects where records live: only on this device, or shared
// through the record backend under a baby ID.
type StorageMode string

const (
	StorageOffline StorageMode = "offline"
	StorageCloud   StorageMode = "cloud"
)

// BabyProfile is the backend's view of one baby: the shared ID plus the
// profile fields stored alongside it.
type BabyProfile struct {
	BabyID    string `json:"babyId"`
	BirthDate string `json:"birthDate"`
	BabyName  string `json:"babyName,omitempty"`
}

// BabyInfo is the persisted storage-mode configuration. BabyID is set if and
// only if StorageMode is cloud.
type BabyInfo struct {
	BabyID      string      `json:"babyId,omitempty"`
	BirthDate   string      `json:"birthDate"`
	BabyName    string      `json:"babyName,omitempty"`
	StorageMode StorageMode `json:"storageMode"`
}

// IsCloud reports whether the configuration names an active cloud baby ID.
func (b BabyInfo) IsCloud() bool {
	return b.StorageMode == StorageCloud && b.BabyID != ""
}
