package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/njprem/Travel_Diary_BackEnd/internal/config"
	"github.com/njprem/Travel_Diary_BackEnd/internal/logging"
	"github.com/njprem/Travel_Diary_BackEnd/internal/presentation"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/file"
	storage "github.com/njprem/Travel_Diary_BackEnd/internal/repository/minio"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/ports"
	"github.com/njprem/Travel_Diary_BackEnd/internal/repository/postgres"
	"github.com/njprem/Travel_Diary_BackEnd/internal/service"
	transporthttp "github.com/njprem/Travel_Diary_BackEnd/internal/transport/http"
	"github.com/njprem/Travel_Diary_BackEnd/internal/unsplash"
)

func main() {
	cfg := config.Load()

	logger, closeLogs := logging.New(logging.Config{
		Level:        cfg.LogLevel,
		Format:       cfg.LogFormat,
		Output:       os.Stdout,
		LogstashAddr: cfg.LogstashTCPAddr,
	})
	defer closeLogs()
	logging.SetGlobal(logger)

	ctx := context.Background()

	store, cleanup := openStore(cfg, logger)
	defer cleanup()

	var snapshots ports.ObjectStorage
	if cfg.SnapshotsEnabled() {
		client, err := storage.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			logger.Fatal().Err(err).Msg("minio client")
		}
		bucket := storage.NewBucketStorage(client, cfg.MinIOBucketSnapshots)
		if err := bucket.EnsureBucket(ctx); err != nil {
			logger.Fatal().Err(err).Str("bucket", cfg.MinIOBucketSnapshots).Msg("ensure snapshot bucket")
		}
		snapshots = bucket
	}

	var search ports.ImageSearch
	if cfg.UnsplashAccessKey != "" {
		search = unsplash.NewClient(cfg.UnsplashAccessKey, cfg.UnsplashTimeout, unsplash.WithBaseURL(cfg.UnsplashAPIURL))
	} else {
		logger.Warn().Msg("UNSPLASH_ACCESS_KEY not set, image lookups use the fallback url")
	}

	destinations := service.NewDestinationService(store, snapshots, logger)
	images := service.NewImageService(search, cfg.ImageLookupConcurrency, logger)

	renderer, err := presentation.NewRenderer()
	if err != nil {
		logger.Fatal().Err(err).Msg("load templates")
	}

	e := transporthttp.NewRouter(cfg.AllowOrigins, logger)
	transporthttp.RegisterDestinations(e, destinations, logger)
	transporthttp.RegisterImages(e, images)
	transporthttp.RegisterPages(e, destinations, images, renderer, cfg.StaticDir, logger)
	if cfg.EnableSwagger {
		transporthttp.RegisterSwagger(e)
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("travel diary api starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}

func openStore(cfg config.Config, logger zerolog.Logger) (ports.DestinationStore, func()) {
	if cfg.StoreDriver != config.StoreDriverPostgres {
		logger.Info().Str("path", cfg.UserDestinationsFile).Msg("using file store")
		return file.NewDestinationStore(cfg.UserDestinationsFile), func() {}
	}

	db, err := postgres.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migrate database")
	}
	return postgres.NewDestinationRepo(db), func() { _ = db.Close() }
}
