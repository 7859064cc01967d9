package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	a := NewSession()
	b := NewSession()

	assert.False(t, a.IsZero())
	assert.NotEqual(t, a.ID, b.ID)

	parsed, err := uuid.Parse(a.String())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
}

func TestSession_IsZero(t *testing.T) {
	assert.True(t, Session{}.IsZero())
}
