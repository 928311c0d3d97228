package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sunny-bhakta/payments-service/internal/config"
	"github.com/sunny-bhakta/payments-service/internal/domain"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Environment != "development" {
		t.Fatalf("expected environment=development, got %q", cfg.App.Environment)
	}
	if cfg.HTTP.Addr() != "0.0.0.0:8000" {
		t.Fatalf("expected addr 0.0.0.0:8000, got %q", cfg.HTTP.Addr())
	}
	if cfg.HTTP.ShutdownTimeout != 25*time.Second {
		t.Fatalf("expected shutdown timeout 25s, got %s", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.HTTP.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected 1 MiB body cap, got %d", cfg.HTTP.MaxBodyBytes)
	}
	if !cfg.HTTP.DocsEnabled || !cfg.Metrics.Enabled {
		t.Fatal("expected docs and metrics enabled by default")
	}
	if len(cfg.HTTP.CORSOrigins) != 1 || cfg.HTTP.CORSOrigins[0] != "*" {
		t.Fatalf("expected CORS origins [*], got %v", cfg.HTTP.CORSOrigins)
	}
	if cfg.RateLimit.Enabled() {
		t.Fatal("expected rate limiting disabled by default")
	}
	if cfg.HTTP.TrustProxyHeaders {
		t.Fatal("expected proxy headers untrusted by default")
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"PAYMENTS_ENV":                       "production",
		"PAYMENTS_HTTP_HOST":                 "127.0.0.1",
		"PAYMENTS_HTTP_PORT":                 "9090",
		"PAYMENTS_HTTP_WRITE_TIMEOUT":        "3s",
		"PAYMENTS_HTTP_DOCS_ENABLED":         "false",
		"PAYMENTS_HTTP_CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
		"PAYMENTS_HTTP_TRUST_PROXY_HEADERS":  "true",
		"PAYMENTS_METRICS_ENABLED":           "false",
		"PAYMENTS_RATE_LIMIT_RPS":            "2.5",
		"PAYMENTS_RATE_LIMIT_BURST":          "5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Environment != "production" {
		t.Fatalf("expected environment=production, got %q", cfg.App.Environment)
	}
	if cfg.HTTP.Addr() != "127.0.0.1:9090" {
		t.Fatalf("expected addr 127.0.0.1:9090, got %q", cfg.HTTP.Addr())
	}
	if cfg.HTTP.WriteTimeout != 3*time.Second {
		t.Fatalf("expected write timeout 3s, got %s", cfg.HTTP.WriteTimeout)
	}
	if cfg.HTTP.DocsEnabled || cfg.Metrics.Enabled {
		t.Fatal("expected docs and metrics disabled")
	}
	if len(cfg.HTTP.CORSOrigins) != 2 {
		t.Fatalf("expected two CORS origins, got %v", cfg.HTTP.CORSOrigins)
	}
	if !cfg.HTTP.TrustProxyHeaders {
		t.Fatal("expected proxy headers trusted")
	}
	if !cfg.RateLimit.Enabled() || cfg.RateLimit.RPS != 2.5 || cfg.RateLimit.Burst != 5 {
		t.Fatalf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
}

func TestLoadFrom_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port out of range": {"PAYMENTS_HTTP_PORT": "70000"},
		"port not a number": {"PAYMENTS_HTTP_PORT": "http"},
		"bad duration":      {"PAYMENTS_HTTP_READ_TIMEOUT": "soon"},
		"zero timeout":      {"PAYMENTS_HTTP_IDLE_TIMEOUT": "0s"},
		"unknown log level": {"PAYMENTS_LOG_LEVEL": "verbose"},
		"negative rate":     {"PAYMENTS_RATE_LIMIT_RPS": "-1"},
		"zero burst":        {"PAYMENTS_RATE_LIMIT_BURST": "0"},
		"zero body cap":     {"PAYMENTS_HTTP_MAX_BODY_BYTES": "0"},
	}

	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.LoadFrom(vars)
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("PAYMENTS_HTTP_PORT", "8123")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 8123 {
		t.Fatalf("expected port 8123, got %d", cfg.HTTP.Port)
	}
}
