package client

import (
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Credentials holds the bearer token sent with every request. It is passed to
// the client explicitly and cleared by the error classifier on a 401.
type Credentials struct {
	mu    sync.RWMutex
	token string
	now   func() time.Time
}

func NewCredentials(token string) *Credentials {
	return &Credentials{token: token, now: time.Now}
}

// Token returns the token to send, or "" when there is none or it is a JWT
// whose exp claim has passed. Methods are safe on a nil receiver.
func (c *Credentials) Token() string {
	if c == nil {
		return ""
	}
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" || c.expired(token) {
		return ""
	}
	return token
}

func (c *Credentials) Set(token string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Credentials) Clear() {
	c.Set("")
}

// expired only inspects the claims; signature verification is the server's job.
func (c *Credentials) expired(token string) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return c.now().After(claims.ExpiresAt.Time)
}
