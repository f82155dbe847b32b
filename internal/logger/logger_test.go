package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ReturnsLogger(t *testing.T) {
	log := NewLogger("test")
	require.NotNil(t, log)
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	assert.NotPanics(t, func() {
		log.Info().Msg("discarded")
	})
}

func TestGetChildLogger_Independent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)
}

func TestFromContext_NeverNil(t *testing.T) {
	log := FromContext(context.Background())
	require.NotNil(t, log)
}

func TestFromRequest_NeverNil(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	log := FromRequest(r)
	require.NotNil(t, log)
}
