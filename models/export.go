package models

// ExportVersion tags the export document layout. Import rejects documents
// with a different version rather than guessing at their shape.
const ExportVersion = 1

// ExportDocument is a full local backup: the storage-mode configuration plus
// all four collections. Importing one always forces the configuration into
// offline mode and drops any baby ID, so a restored backup can never write
// into someone else's cloud record set.
type ExportDocument struct {
	Version    int          `json:"version"`
	ExportedAt string       `json:"exportedAt"`
	Config     *BabyInfo    `json:"config"`
	Data       DataSnapshot `json:"data"`
}
