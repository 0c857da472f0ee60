// Package ratelimit provides per-client rate limiting using a token bucket.
package ratelimit

import (
	"sync"
	"time"
)

// Config holds rate limiter settings.
type Config struct {
	Capacity   int     // burst capacity per client
	RefillRate float64 // tokens per second
}

// DefaultConfig returns limits suited to interactive analysis traffic.
func DefaultConfig() Config {
	return Config{Capacity: 30, RefillRate: 10}
}

// TokenBucket allows a number of requests per time window, with tokens
// refilling at a steady rate.
type TokenBucket struct {
	capacity   int
	refillRate float64
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// allow checks if a token is available and consumes it if so.
func (tb *TokenBucket) allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill)
	tb.tokens += elapsed.Seconds() * tb.refillRate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Limiter tracks a token bucket per client key.
type Limiter struct {
	cfg     Config
	buckets map[string]*TokenBucket
	mu      sync.Mutex
}

// NewLimiter creates a limiter with the given config.
func NewLimiter(cfg Config) *Limiter {
	if cfg.Capacity <= 0 || cfg.RefillRate <= 0 {
		cfg = DefaultConfig()
	}
	return &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*TokenBucket),
	}
}

// Allow reports whether the client identified by key may proceed.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = newTokenBucket(l.cfg.Capacity, l.cfg.RefillRate)
		l.buckets[key] = bucket
	}
	l.mu.Unlock()

	return bucket.allow()
}
