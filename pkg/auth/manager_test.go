package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debate-hall/backend/internal/config"
)

func TestManager_DebateTokenRoundTrip(t *testing.T) {
	m, err := NewManager(config.JWTConfig{SigningKey: "test-key", TokenTTL: time.Hour})
	require.NoError(t, err)

	token, err := m.NewDebateToken("U1234567890")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "U1234567890", sub)
}

func TestManager_ParseRejectsForeignSignature(t *testing.T) {
	m1, err := NewManager(config.JWTConfig{SigningKey: "key-one", TokenTTL: time.Hour})
	require.NoError(t, err)
	m2, err := NewManager(config.JWTConfig{SigningKey: "key-two", TokenTTL: time.Hour})
	require.NoError(t, err)

	token, err := m1.NewDebateToken("U1")
	require.NoError(t, err)

	_, err = m2.Parse(token)
	assert.Error(t, err)
}

func TestManager_ParseRejectsExpired(t *testing.T) {
	m, err := NewManager(config.JWTConfig{SigningKey: "test-key", TokenTTL: time.Nanosecond})
	require.NoError(t, err)

	token, err := m.NewDebateToken("U1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager(config.JWTConfig{SigningKey: "", TokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "key"})
	assert.Error(t, err)
}
