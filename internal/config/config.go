package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/sunny-bhakta/payments-service/internal/domain"
)

var validate = validator.New()

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default; nothing is required.
type Config struct {
	App       AppConfig       `envPrefix:"PAYMENTS_"`
	HTTP      HTTPConfig      `envPrefix:"PAYMENTS_HTTP_"`
	Metrics   MetricsConfig   `envPrefix:"PAYMENTS_METRICS_"`
	RateLimit RateLimitConfig `envPrefix:"PAYMENTS_RATE_LIMIT_"`
}

type AppConfig struct {
	Environment string `env:"ENV" envDefault:"development" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
}

type HTTPConfig struct {
	Host              string        `env:"HOST" envDefault:"0.0.0.0" validate:"required"`
	Port              int           `env:"PORT" envDefault:"8000" validate:"gte=0,lte=65535"`
	ReadTimeout       time.Duration `env:"READ_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT" envDefault:"120s" validate:"gt=0"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"25s" validate:"gt=0"`
	MaxBodyBytes      int64         `env:"MAX_BODY_BYTES" envDefault:"1048576" validate:"gt=0"`
	DocsEnabled       bool          `env:"DOCS_ENABLED" envDefault:"true"`
	CORSOrigins       []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*" validate:"min=1,dive,required"`
	// TrustProxyHeaders takes the client address from X-Forwarded-For /
	// X-Real-IP. Enable only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// Addr returns the host:port the server binds to.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type MetricsConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`
}

// RateLimitConfig controls the optional per-client limiter.
// RPS of zero disables it.
type RateLimitConfig struct {
	RPS   float64 `env:"RPS" envDefault:"0" validate:"gte=0"`
	Burst int     `env:"BURST" envDefault:"20" validate:"gte=1"`
}

// Enabled reports whether requests should be rate limited at all.
func (c RateLimitConfig) Enabled() bool { return c.RPS > 0 }

// Load parses the process environment into Config and validates it.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", domain.ErrInvalidConfig, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return cfg, nil
}
