package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// UnmatchedRoute labels requests that did not resolve to a registered route,
// so arbitrary paths cannot blow up label cardinality.
const UnmatchedRoute = "unmatched"

// Metrics reports every request to onRequest, labelled by the chi route
// pattern rather than the raw path.
func Metrics(onRequest func(method, route string, status int, latency time.Duration)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := UnmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if p := rctx.RoutePattern(); p != "" {
					route = p
				}
			}
			onRequest(r.Method, route, statusOf(ww), time.Since(start))
		})
	}
}
