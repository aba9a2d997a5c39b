package client

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "demo-user",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestCredentials_OpaqueToken(t *testing.T) {
	c := NewCredentials("plain-api-key")
	assert.Equal(t, "plain-api-key", c.Token())
}

func TestCredentials_JWTExpiry(t *testing.T) {
	live := signedToken(t, time.Now().Add(time.Hour))
	expired := signedToken(t, time.Now().Add(-time.Hour))

	assert.Equal(t, live, NewCredentials(live).Token())
	assert.Equal(t, "", NewCredentials(expired).Token())
}

func TestCredentials_Clear(t *testing.T) {
	c := NewCredentials("abc")
	c.Clear()
	assert.Equal(t, "", c.Token())

	c.Set("def")
	assert.Equal(t, "def", c.Token())
}

func TestCredentials_NilSafe(t *testing.T) {
	var c *Credentials
	assert.Equal(t, "", c.Token())
	assert.NotPanics(t, c.Clear)
}
