package utils

import "github.com/google/uuid"

// UUIDGenerator mints record IDs. Records keep the ID they were created with
// for their whole life; a regenerated ID would duplicate history on the next
// full sync.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUID (v7), falling back to v4 if the
// system clock misbehaves.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
