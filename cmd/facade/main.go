package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/processgpt/ai-facade-go/internal/config"
	"github.com/processgpt/ai-facade-go/internal/logger"
	"github.com/processgpt/ai-facade-go/internal/observability"
	"github.com/processgpt/ai-facade-go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(cfg.Debug)
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TelemetryURL != "" {
		tp, err := observability.Setup(ctx, cfg.TelemetryURL)
		if err != nil {
			logg.Fatal("failed to set up telemetry", zap.Error(err))
		}
		defer tp.Shutdown(context.Background())
	}

	health := server.ProbeModel(cfg.ModelName, cfg.ModelsPath)
	if !health.ModelLoaded {
		logg.Warn("model artifacts not found, serving in loading state",
			zap.String("models_path", cfg.ModelsPath),
		)
	}

	srv, err := server.New(cfg, health, logg)
	if err != nil {
		logg.Fatal("failed to create server", zap.Error(err))
	}

	if relay := srv.Relay(); relay != nil {
		if err := relay.CheckHealth(ctx); err != nil {
			logg.Warn("upstream runtime not reachable yet", zap.Error(err))
		} else {
			logg.Info("upstream runtime reachable", zap.String("upstream", cfg.UpstreamURL))
		}
	}

	logg.Info("facade server starting",
		zap.String("address", cfg.Address),
		zap.String("model", cfg.Model),
		zap.Bool("model_loaded", health.ModelLoaded),
	)
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logg.Fatal("server error", zap.Error(err))
	}
}
