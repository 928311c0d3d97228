package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sunny-bhakta/payments-service/internal/domain"
)

// New builds a zap logger for the given environment. Development and local
// environments get coloured console output; everything else gets JSON.
func New(env, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	if IsDevelopment(env) {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(
		zap.String("service", domain.ServiceName),
		zap.String("env", env),
	), nil
}

// IsDevelopment reports whether env selects the human-readable encoder.
func IsDevelopment(env string) bool {
	return env == "development" || env == "local"
}
