package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// tokenBucket tracks the remaining allowance for one client.
type tokenBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a token-bucket limiter keyed by client IP. Buckets refill
// continuously at the configured per-minute rate; idle buckets are dropped by
// a background sweep.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket

	ratePerSecond float64
	burst         float64
	now           func() time.Time
	stop          chan struct{}
}

// NewRateLimiter allows requestsPerMinute sustained requests per client with
// an equal burst allowance.
func NewRateLimiter(requestsPerMinute int) *RateLimiter {
	l := &RateLimiter{
		buckets:       make(map[string]*tokenBucket),
		ratePerSecond: float64(requestsPerMinute) / 60,
		burst:         float64(requestsPerMinute),
		now:           time.Now,
		stop:          make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether the client may proceed, and the remaining allowance.
func (l *RateLimiter) Allow(key string) (bool, int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok {
		b = &tokenBucket{tokens: l.burst, lastSeen: now}
		l.buckets[key] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * l.ratePerSecond
	if b.tokens > l.burst {
		b.tokens = l.burst
	}
	b.lastSeen = now

	if b.tokens < 1 {
		return false, 0
	}
	b.tokens--
	return true, int(b.tokens)
}

func (l *RateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := l.now().Add(-10 * time.Minute)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Stop terminates the background sweep.
func (l *RateLimiter) Stop() {
	close(l.stop)
}

// RateLimit returns middleware rejecting over-limit clients with 429.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, remaining := limiter.Allow(clientKey(r))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "terlalu banyak permintaan, coba lagi nanti",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
