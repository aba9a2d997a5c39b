package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// FallbackKey names the shared bucket in Snapshot.
const FallbackKey = "*"

// EndpointLimiter throttles outbound calls per API path. Registered paths get
// their own bucket; any other path draws from one shared fallback bucket so
// the set of limiters stays bounded.
type EndpointLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	fallback *rate.Limiter
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

// Status is a point-in-time view of one bucket.
type Status struct {
	RequestsPerSecond float64 `json:"requests_per_second"`
	Burst             int     `json:"burst"`
	Tokens            float64 `json:"tokens"`
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 5,
		BurstSize:         10,
	}
}

func NewEndpointLimiter(config RateLimitConfig, endpoints ...string) *EndpointLimiter {
	l := &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter, len(endpoints)),
		fallback: newLimiter(config.RequestsPerSecond, config.BurstSize),
		defaults: config,
	}
	for _, endpoint := range endpoints {
		l.limiters[endpoint] = newLimiter(config.RequestsPerSecond, config.BurstSize)
	}
	return l
}

func NewEndpointLimiterWithDefaults(endpoints ...string) *EndpointLimiter {
	return NewEndpointLimiter(DefaultConfig(), endpoints...)
}

func (l *EndpointLimiter) GetLimiter(endpoint string) *rate.Limiter {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limiter, exists := l.limiters[endpoint]; exists {
		return limiter
	}
	return l.fallback
}

// SetEndpointLimit registers endpoint or retunes its bucket in place, keeping
// any tokens already spent.
func (l *EndpointLimiter) SetEndpointLimit(endpoint string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists := l.limiters[endpoint]; exists {
		limiter.SetLimit(rate.Limit(rps))
		limiter.SetBurst(burst)
		return
	}
	l.limiters[endpoint] = newLimiter(rps, burst)
}

// Wait blocks until endpoint may send. It returns early with an error if ctx
// ends first or its deadline is too close for a token to arrive.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	return l.GetLimiter(endpoint).Wait(ctx)
}

func (l *EndpointLimiter) Allow(endpoint string) bool {
	return l.GetLimiter(endpoint).Allow()
}

func (l *EndpointLimiter) Snapshot() map[string]Status {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]Status, len(l.limiters)+1)
	for endpoint, limiter := range l.limiters {
		out[endpoint] = status(limiter)
	}
	out[FallbackKey] = status(l.fallback)
	return out
}

func newLimiter(rps float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}

func status(limiter *rate.Limiter) Status {
	return Status{
		RequestsPerSecond: float64(limiter.Limit()),
		Burst:             limiter.Burst(),
		Tokens:            limiter.Tokens(),
	}
}
