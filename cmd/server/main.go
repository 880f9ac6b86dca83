// Package main is the entry point for the smart search service.
//
//	@title						GP Smart Search API
//	@version					1.0.0
//	@description				Progressive search over peer-to-peer package delivery ads: exact matches first, then geographic and date proximity, then a package-type fallback.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/gp-senegal/smart-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
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
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/gp-senegal/smart-search/docs"

	"github.com/gp-senegal/smart-search/internal/adapter/geocoding"
	searchhttp "github.com/gp-senegal/smart-search/internal/adapter/http"
	"github.com/gp-senegal/smart-search/internal/adapter/http/middleware"
	"github.com/gp-senegal/smart-search/internal/adapter/store/sqlite"
	"github.com/gp-senegal/smart-search/internal/config"
	"github.com/gp-senegal/smart-search/internal/domain"
	"github.com/gp-senegal/smart-search/internal/infrastructure/logger"
	"github.com/gp-senegal/smart-search/internal/infrastructure/timeutil"
	"github.com/gp-senegal/smart-search/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	store, err := sqlite.New(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("Failed to open ad store")
	}
	defer store.Close()

	if cfg.Store.SeedFile != "" {
		seedStore(store, cfg.Store.SeedFile, log)
	}

	geocoder := buildGeocoder(cfg, log)

	resolver := usecase.NewSearchResolver(store, geocoder, timeutil.NewRealClock(), nil)
	handler := searchhttp.NewSearchHandler(resolver)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	searchhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// buildGeocoder assembles the geocoding chain: the Nominatim client, wrapped
// in a Redis cache when one is configured.
func buildGeocoder(cfg *config.Config, log *logger.Logger) domain.Geocoder {
	var geocoder domain.Geocoder = geocoding.NewNominatimClient(geocoding.Config{
		BaseURL:   cfg.Geocoder.BaseURL,
		Timeout:   cfg.Geocoder.Timeout,
		UserAgent: cfg.Geocoder.UserAgent,
	})

	if cfg.Redis.Addr == "" {
		log.Info().Msg("Geocode cache disabled (no REDIS_ADDR)")
		return geocoder
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	log.Info().Str("addr", cfg.Redis.Addr).Msg("Geocode cache enabled")
	return geocoding.NewCachedGeocoder(geocoder, client, cfg.Geocoder.CacheTTL, log.WithComponent("geocode_cache").Logger)
}

// seedStore loads ads from the configured seed file. A missing or broken
// seed file is logged but never prevents startup.
func seedStore(store *sqlite.Store, path string, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	inserted, err := store.Seed(ctx, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Failed to seed ad store")
		return
	}
	log.Info().Int("inserted", inserted).Str("path", path).Msg("Ad store seeded")
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
