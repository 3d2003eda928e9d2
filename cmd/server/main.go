package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitrine-app/vitrine/internal/config"
	"github.com/vitrine-app/vitrine/internal/db"
	"github.com/vitrine-app/vitrine/internal/logger"
	"github.com/vitrine-app/vitrine/internal/server"
	"github.com/vitrine-app/vitrine/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Pretty)

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer database.Close()

	sqlDB, err := database.GetSQLDB()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to access database connection")
	}
	if err := db.RunMigrations(sqlDB, cfg.Database.MigrationsPath); err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	store := buildStore(cfg)

	srv := server.New(cfg, database, store)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Log.Fatal().Err(err).Msg("Server failed")
	case sig := <-quit:
		logger.Log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}

// buildStore wires the S3-compatible blob store, or a disabled stand-in
// when no storage backend is configured
func buildStore(cfg *config.Config) storage.BlobStore {
	if cfg.Storage.Endpoint == "" || cfg.Storage.Bucket == "" {
		logger.Log.Warn().Msg("Blob storage not configured; file uploads are disabled")
		return storage.Disabled{}
	}

	store, err := storage.NewS3Store(context.Background(), cfg.Storage)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("Failed to initialize blob storage")
	}

	logger.Log.Info().
		Str("endpoint", cfg.Storage.Endpoint).
		Str("bucket", cfg.Storage.Bucket).
		Msg("Blob storage initialized")

	return store
}
