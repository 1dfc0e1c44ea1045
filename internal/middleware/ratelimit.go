package middleware

import (
	"sync"
	"time"

	"github.com/genesis-zm/genesis-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type attemptData struct {
	count        int
	firstAttempt time.Time
}

// RateLimiter is a per-IP failure counter used on the login and public
// submission routes. Blocks expire on their own; there is no persistence.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptData
	blocked  map[string]time.Time

	maxAttempts int
	window      time.Duration
	blockFor    time.Duration
}

// NewRateLimiter builds a limiter blocking an IP after maxAttempts failures
// inside window.
func NewRateLimiter(maxAttempts int, window, blockFor time.Duration) *RateLimiter {
	return &RateLimiter{
		attempts:    make(map[string]*attemptData),
		blocked:     make(map[string]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		blockFor:    blockFor,
	}
}

// Allow returns false if the IP is currently blocked, cleaning up expired
// blocks as a side effect.
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if unblockTime, ok := r.blocked[ip]; ok {
		if time.Now().Before(unblockTime) {
			return false
		}
		delete(r.blocked, ip)
		delete(r.attempts, ip)
	}
	return true
}

// RecordFailure increments the failure count and blocks once the threshold
// is reached.
func (r *RateLimiter) RecordFailure(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Naive memory cap: a full reset allows a short bypass window but keeps
	// the map bounded.
	if len(r.attempts) > 10000 {
		r.attempts = make(map[string]*attemptData)
	}

	data, exists := r.attempts[ip]
	if !exists || time.Since(data.firstAttempt) > r.window {
		r.attempts[ip] = &attemptData{count: 1, firstAttempt: time.Now()}
		return
	}
	data.count++
	if data.count >= r.maxAttempts {
		r.blocked[ip] = time.Now().Add(r.blockFor)
	}
}

// Reset clears the counter for an IP (used on successful login).
func (r *RateLimiter) Reset(ip string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, ip)
	delete(r.blocked, ip)
}

// Gate returns a middleware rejecting requests from blocked IPs.
func (r *RateLimiter) Gate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !r.Allow(c.ClientIP()) {
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
