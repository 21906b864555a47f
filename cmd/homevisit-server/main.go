package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/homevisit/homevisit/internal/config"
	"github.com/homevisit/homevisit/internal/domain/homevisit"
	"github.com/homevisit/homevisit/internal/platform/catalog"
	"github.com/homevisit/homevisit/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "homevisit-server",
		Short: "Home visit booking API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the booking API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

// rateLimitConfig maps configured limits onto the middleware config,
// falling back to the defaults when rate limiting is not configured.
func rateLimitConfig(cfg *config.Config) middleware.RateLimitConfig {
	out := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if out.RequestsPerSecond <= 0 {
		return middleware.DefaultRateLimitConfig()
	}
	return out
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Option catalog
	catalogs, err := catalog.LoadSet(cfg.OptionsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", cfg.OptionsFile).Msg("failed to load option catalog")
	}
	cat, err := catalogs.For(cfg.DefaultLanguage)
	if err != nil {
		logger.Fatal().Err(err).Str("language", cfg.DefaultLanguage).Msg("unsupported default language")
	}
	logger.Info().
		Str("file", cfg.OptionsFile).
		Str("language", cat.Language()).
		Int("categories", len(cat.Categories())).
		Msg("option catalog loaded")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// API group
	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(rateLimitConfig(cfg)))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Home visit domain
	service, err := homevisit.NewService(catalogs, cfg.DefaultLanguage)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build booking service")
	}
	homevisit.NewHandler(service).Register(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
