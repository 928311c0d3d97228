package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sunny-bhakta/payments-service/internal/app"
	"github.com/sunny-bhakta/payments-service/internal/config"
	"github.com/sunny-bhakta/payments-service/internal/domain"
	"github.com/sunny-bhakta/payments-service/internal/logger"
)

func main() {
	// ---- configuration ----
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	// ---- HTTP server ----
	application, err := app.New(cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("failed to bootstrap application", zap.Error(err))
	}
	// Bind synchronously so a taken port fails startup instead of a goroutine.
	if err := application.Listen(); err != nil {
		zapLogger.Fatal("failed to bind listener", zap.Error(err))
	}
	zapLogger.Info("service ready",
		zap.String("version", domain.Version),
		zap.String("addr", application.Addr()),
	)

	serveErr := make(chan error, 1)
	go func() { serveErr <- application.Serve() }()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zapLogger.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-serveErr:
		zapLogger.Fatal("server error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
