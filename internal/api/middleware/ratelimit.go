package middleware

import (
	"net"
	"net/http"

	"github.com/sunny-bhakta/payments-service/internal/api/response"
)

// Allower decides whether the client identified by key may proceed.
type Allower interface {
	Allow(key string) bool
}

// RateLimit rejects requests from clients that have exhausted their budget
// with 429 and a Retry-After hint. onLimited may be nil.
// The key is the host part of RemoteAddr. The router only rewrites
// RemoteAddr from X-Forwarded-For/X-Real-IP when proxy headers are trusted;
// otherwise any client could pick a fresh bucket per request.
func RateLimit(limiter Allower, onLimited func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow(clientKey(r)) {
				if onLimited != nil {
					onLimited()
				}
				w.Header().Set("Retry-After", "1")
				response.Detail(w, http.StatusTooManyRequests)
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
