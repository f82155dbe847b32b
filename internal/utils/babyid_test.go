package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Generate ────────────────────────────────────────────────────────────────

func TestBabyIDGenerator_LengthAndAlphabet(t *testing.T) {
	gen := NewBabyIDGenerator()

	for i := 0; i < 200; i++ {
		id, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, id, BabyIDLength)

		for _, c := range id {
			assert.True(t, strings.ContainsRune(BabyIDAlphabet, c),
				"id %q contains %q outside the alphabet", id, c)
		}
	}
}

func TestBabyIDGenerator_ConsecutiveIDsDiffer(t *testing.T) {
	gen := NewBabyIDGenerator()

	first, err := gen.Generate()
	require.NoError(t, err)
	second, err := gen.Generate()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBabyIDAlphabet_NoConfusableCharacters(t *testing.T) {
	for _, c := range "0O1Il" {
		assert.NotContains(t, BabyIDAlphabet, string(c))
	}
}

// ── IsValidBabyID ───────────────────────────────────────────────────────────

func TestIsValidBabyID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"generated shape", "ABC234", true},
		{"too short", "ABC23", false},
		{"too long", "ABC2345", false},
		{"lowercase rejected", "abc234", false},
		{"confusable zero rejected", "ABC230", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidBabyID(tt.id))
		})
	}
}
