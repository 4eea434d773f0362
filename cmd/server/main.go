// Package main is the entry point for the flight lookup service.
//
//	@title			Flight Lookup API
//	@version		1.0.0
//	@description	Looks up flight status from the AviationStack flight-data API and returns normalized flights.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-lookup/flight-lookup-service/internal/config"
	"github.com/flight-lookup/flight-lookup-service/internal/infrastructure/logger"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := logger.New(cfg.Logging.LoggerConfig())
	logger.SetGlobal(log)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("upstream", cfg.Upstream.BaseURL).
		Bool("metrics", cfg.Metrics.Enabled).
		Msg("Configuration loaded")

	if !cfg.Upstream.HasAPIKey() {
		log.Warn().Msg("FLIGHT_API_KEY is not set; flight lookups will fail until it is configured")
	}

	e := newServer(cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
