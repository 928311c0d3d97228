package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

var routeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// RedirectSlashes answers a path with a trailing slash with 307 to the same
// path without it, but only when the trimmed path is a registered route.
// Anything else falls through to the router (and its 404). 307 keeps the
// method and body, unlike chi's RedirectSlashes which sends 301. The
// redirect has an empty body.
func RedirectSlashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		rctx := chi.RouteContext(r.Context())
		if len(path) <= 1 || !strings.HasSuffix(path, "/") || rctx == nil || rctx.Routes == nil {
			next.ServeHTTP(w, r)
			return
		}
		if rctx.Routes.Match(chi.NewRouteContext(), r.Method, path) {
			next.ServeHTTP(w, r)
			return
		}

		trimmed := strings.TrimRight(path, "/")
		if trimmed == "" || !matchesAnyMethod(rctx.Routes, trimmed) {
			next.ServeHTTP(w, r)
			return
		}

		target := trimmed
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		w.Header().Set("Location", target)
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
}

func matchesAnyMethod(routes chi.Routes, path string) bool {
	for _, m := range routeMethods {
		if routes.Match(chi.NewRouteContext(), m, path) {
			return true
		}
	}
	return false
}
