package utils

import (
	"crypto/rand"
	"fmt"
)

// BabyIDAlphabet is the character set baby IDs are drawn from. Visually
// confusable characters (0, O, 1, I) are excluded so an ID survives being
// read out loud or copied from a fridge note.
const BabyIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// BabyIDLength is the fixed length of every generated baby ID.
const BabyIDLength = 6

// BabyIDGenerator produces short shareable baby IDs. The ID is the sole key
// to a family's record set, so generation uses crypto/rand rather than a
// seeded PRNG; with a 32-character alphabet there are 32^6 (~1.07e9)
// possible IDs.
type BabyIDGenerator struct {
}

func NewBabyIDGenerator() *BabyIDGenerator {
	return &BabyIDGenerator{}
}

// Generate returns a fresh 6-character baby ID.
func (g *BabyIDGenerator) Generate() (string, error) {
	buf := make([]byte, BabyIDLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	id := make([]byte, BabyIDLength)
	for i, b := range buf {
		id[i] = BabyIDAlphabet[int(b)%len(BabyIDAlphabet)]
	}

	return string(id), nil
}

// IsValidBabyID reports whether s has the exact shape of a generated baby ID:
// 6 characters, all from the restricted alphabet.
func IsValidBabyID(s string) bool {
	if len(s) != BabyIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		found := false
		for j := 0; j < len(BabyIDAlphabet); j++ {
			if s[i] == BabyIDAlphabet[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
