// Package main is the entry point for the flight search gateway.
//
//	@title			Flight Search Gateway API
//	@version		1.0.0
//	@description	Airport autocomplete and flight search with caching, ranking, and synthetic fallback.
//
//	@host			localhost:8080
//	@BasePath		/api/v1
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
	"github.com/rs/zerolog"

	// Import generated docs for swagger
	_ "github.com/skysearch/flight-search-gateway/docs"

	gatewayhttp "github.com/skysearch/flight-search-gateway/internal/adapter/http"
	"github.com/skysearch/flight-search-gateway/internal/adapter/http/middleware"
	"github.com/skysearch/flight-search-gateway/internal/adapter/skyapi"
	"github.com/skysearch/flight-search-gateway/internal/adapter/synthetic"
	"github.com/skysearch/flight-search-gateway/internal/cache"
	"github.com/skysearch/flight-search-gateway/internal/config"
	"github.com/skysearch/flight-search-gateway/internal/directory"
	"github.com/skysearch/flight-search-gateway/internal/domain"
	"github.com/skysearch/flight-search-gateway/internal/infrastructure/logger"
	"github.com/skysearch/flight-search-gateway/internal/infrastructure/timeutil"
	"github.com/skysearch/flight-search-gateway/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "flight-search-gateway",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("remote_enabled", cfg.Search.EnableRemote).
		Bool("prefer_local", cfg.Search.PreferLocal).
		Msg("Configuration loaded")

	gateway := buildGateway(cfg, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log)
	gatewayhttp.RegisterRoutes(e, gatewayhttp.NewHandler(gateway))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildGateway wires the retrieval stack: directory, TTL cache, remote
// client, and synthesizer. The remote serves as the primary flight source
// only when enabled; the synthesizer is always available as the fallback so
// a search can never come back empty-handed.
func buildGateway(cfg *config.Config, log zerolog.Logger) *usecase.Gateway {
	dir := directory.New(directory.WithMinQueryLength(cfg.Search.MinQueryLength))
	airportCache := cache.New[[]domain.Airport](cfg.Search.CacheTTL, timeutil.NewRealClock())

	synthSource := usecase.NewSyntheticSource(synthetic.New(dir), cfg.Search.SyntheticLatency)

	opts := usecase.Options{
		Flights:        synthSource,
		PreferLocal:    cfg.Search.PreferLocal,
		MinQueryLength: cfg.Search.MinQueryLength,
		Log:            log,
	}

	if cfg.Search.EnableRemote {
		client := skyapi.New(skyapi.Config{
			BaseURL: cfg.SkyAPI.BaseURL,
			APIKey:  cfg.SkyAPI.Key,
			APIHost: cfg.SkyAPI.Host,
			Timeout: cfg.SkyAPI.Timeout,
		}, log)

		opts.Airports = client
		opts.Flights = client
		opts.Fallback = synthSource
	}

	return usecase.NewGateway(dir, airportCache, opts)
}

// gracefulShutdown blocks until an interrupt signal, then drains the server.
func gracefulShutdown(e *echo.Echo, log zerolog.Logger) {
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
