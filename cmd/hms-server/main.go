package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/domain/analytics"
	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/medrecord"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/platform/db"
	"github.com/hms/hms/internal/platform/middleware"
	"github.com/hms/hms/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Hospital record-keeping API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(initDBCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func initDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the database file and entity tables, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			handle, err := db.Open(ctx, cfg.DatabaseFile)
			if err != nil {
				return err
			}
			defer handle.Close()

			if err := store.EnsureSchema(ctx, handle); err != nil {
				return err
			}
			fmt.Printf("Schema ensured in %s\n", cfg.DatabaseFile)
			return nil
		},
	}
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

	// Database: a corrupt or unopenable file aborts startup.
	ctx := context.Background()
	handle, err := db.Open(ctx, cfg.DatabaseFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer handle.Close()

	if err := store.EnsureSchema(ctx, handle); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}
	logger.Info().Str("file", cfg.DatabaseFile).Msg("database ready")

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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(handle))

	// Entity modules share one generic record store.
	apiV1 := e.Group("/api/v1")
	st := store.New(handle)

	patient.NewHandler(patient.NewService(patient.NewRepoSQLite(st))).RegisterRoutes(apiV1)
	doctor.NewHandler(doctor.NewService(doctor.NewRepoSQLite(st))).RegisterRoutes(apiV1)
	appointment.NewHandler(appointment.NewService(appointment.NewRepoSQLite(st))).RegisterRoutes(apiV1)
	medrecord.NewHandler(medrecord.NewService(medrecord.NewRepoSQLite(st))).RegisterRoutes(apiV1)
	billing.NewHandler(billing.NewService(billing.NewRepoSQLite(st))).RegisterRoutes(apiV1)
	analytics.NewHandler(analytics.NewService(analytics.NewRepoSQLite(handle))).RegisterRoutes(apiV1)

	// Graceful shutdown
	addr := ":" + cfg.Port
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()
	logger.Info().Str("addr", addr).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
