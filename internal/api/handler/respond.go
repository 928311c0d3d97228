package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sunny-bhakta/payments-service/internal/api/response"
)

// NotFound replaces chi's plain-text 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	response.Detail(w, http.StatusNotFound)
}

// MethodNotAllowed replaces chi's empty 405. chi only sets Allow on its own
// default handler, so the header is rebuilt here.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if allowed := allowedMethods(r); len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	response.Detail(w, http.StatusMethodNotAllowed)
}

var candidateMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	var allowed []string
	for _, m := range candidateMethods {
		if rctx.Routes.Match(chi.NewRouteContext(), m, r.URL.Path) {
			allowed = append(allowed, m)
		}
	}
	return allowed
}
