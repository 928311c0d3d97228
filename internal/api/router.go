package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sunny-bhakta/payments-service/internal/api/handler"
	apimw "github.com/sunny-bhakta/payments-service/internal/api/middleware"
	"github.com/sunny-bhakta/payments-service/internal/config"
	"github.com/sunny-bhakta/payments-service/internal/metrics"
)

const openAPIPath = "/openapi.json"

// Deps carries the optional collaborators of the router. A nil Metrics
// disables both instrumentation and /metrics; a nil Limiter disables rate
// limiting. Register, when set, mounts extra routes behind the full
// middleware chain.
type Deps struct {
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	Limiter  apimw.Allower
	Register func(r chi.Router)
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(cfg config.HTTPConfig, deps Deps, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	var onRequest func(method, route string, status int, latency time.Duration)
	var onRateLimited func()
	if deps.Metrics != nil {
		onRequest, onRateLimited = deps.Metrics.HTTPHooks()
	}

	// --- global middleware (applied to every route) ---
	// Recoverer sits inside the logger and metrics so a recovered panic is
	// still logged and counted as a 500 with its correlation id.
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	if onRequest != nil {
		r.Use(apimw.Metrics(onRequest))
	}
	r.Use(apimw.Recoverer(logger))
	if cfg.TrustProxyHeaders {
		r.Use(chimw.RealIP)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", apimw.CorrelationHeader},
		ExposedHeaders: []string{apimw.CorrelationHeader},
		MaxAge:         300,
	}))
	r.Use(apimw.RedirectSlashes)
	r.Use(chimw.RequestSize(cfg.MaxBodyBytes))
	if deps.Limiter != nil {
		r.Use(apimw.RateLimit(deps.Limiter, onRateLimited))
	}

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// --- handler instances ---
	hh := handler.NewHealthHandler()

	// --- routes ---
	r.Get("/health", hh.Health)

	if cfg.DocsEnabled {
		dh := handler.NewDocsHandler(openAPIPath)
		r.Get(openAPIPath, dh.OpenAPI)
		r.Get("/docs", dh.SwaggerUI)
		r.Get("/redoc", dh.ReDoc)
	}

	// Raw Prometheus scrape endpoint
	if deps.Metrics != nil && deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	if deps.Register != nil {
		deps.Register(r)
	}

	return r
}
