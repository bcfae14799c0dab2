package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTGenerateParse(t *testing.T) {
	t.Parallel()
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}

	token, exp, err := m.Generate("user-1", "client")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "client", claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestJWTParseWrongSecret(t *testing.T) {
	t.Parallel()
	m := &JWTManager{Secret: []byte("secret-a"), TTL: time.Hour}
	token, _, err := m.Generate("user-1", "admin")
	require.NoError(t, err)

	other := &JWTManager{Secret: []byte("secret-b"), TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseExpired(t *testing.T) {
	t.Parallel()
	m := &JWTManager{Secret: []byte("test-secret"), TTL: -time.Minute}
	token, _, err := m.Generate("user-1", "client")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestJWTParseGarbage(t *testing.T) {
	t.Parallel()
	m := &JWTManager{Secret: []byte("test-secret"), TTL: time.Hour}
	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
