package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit applies a per-client-IP token bucket. Used on the credential
// endpoints (login, forgot/reset password) as a brute-force guard.
func RateLimit(requestsPerMinute int, burst int) func(http.Handler) http.Handler {
	var (
		mu       sync.Mutex
		visitors = make(map[string]*rate.Limiter)
	)
	limit := rate.Every(time.Minute / time.Duration(requestsPerMinute))

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := visitors[key]
		if !ok {
			l = rate.NewLimiter(limit, burst)
			visitors[key] = l
		}
		return l
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// chi's RealIP middleware has already rewritten RemoteAddr
			// from X-Forwarded-For / X-Real-IP where present.
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !limiterFor(ip).Allow() {
				writeJSONError(w, http.StatusTooManyRequests, "Too many requests, slow down.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
