package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"todoapi/internal/shared"
	"todoapi/pkg/api"
)

func main() {
	ctx := context.Background()

	cfg, err := shared.LoadConfig()

	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	logger := shared.NewLogger(cfg.Environment)

	telemetry, err := shared.InitTelemetry(ctx, "todoapi", cfg.OTLPEndpoint)

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize telemetry")
	}

	defer telemetry.Shutdown(ctx)

	metrics := shared.NewAppMetrics()

	srv, closeDB, err := api.BuildServer(ctx, cfg, logger, metrics)

	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build server")
	}

	defer closeDB()

	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("environment", cfg.Environment).
			Msg("server starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info().Msg("shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}
