package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per client IP and temporarily blocks
// an IP that exhausts its bucket.
type RateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	requests  int
	per       time.Duration
	blockTime time.Duration
}

func NewRateLimiter(requests int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		rl.mu.Lock()
		if blockedUntil, found := rl.blocked[ip]; found {
			if time.Now().Before(blockedUntil) {
				rl.mu.Unlock()
				http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
				return
			}
			delete(rl.blocked, ip)
		}

		limiter, exists := rl.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(rl.per), rl.requests)
			rl.limiters[ip] = limiter
		}
		rl.mu.Unlock()

		if !limiter.Allow() {
			rl.mu.Lock()
			rl.blocked[ip] = time.Now().Add(rl.blockTime)
			rl.mu.Unlock()
			http.Error(w, "Too many requests, you are temporarily blocked.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
