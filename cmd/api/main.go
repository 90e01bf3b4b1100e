package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tasklens/config"
	extractionHTTP "tasklens/internal/extraction/delivery/http"
	"tasklens/internal/extraction/repository"
	memoryRepo "tasklens/internal/extraction/repository/memory"
	sqliteRepo "tasklens/internal/extraction/repository/sqlite"
	"tasklens/internal/extraction/usecase"
	"tasklens/internal/httpserver"
	"tasklens/internal/middleware"
	"tasklens/internal/settings"
	"tasklens/pkg/llmprovider"
	"tasklens/pkg/log"
)

// @title       TaskLens API
// @description LLM-powered task extraction from web pages, with daily quotas and extraction history.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting TaskLens...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	quotaRepo, historyRepo, cleanup, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize storage: ", err)
		return
	}
	defer cleanup()
	logger.Infof(ctx, "Storage driver: %s", cfg.Storage.Driver)

	// 4. LLM provider registry
	registry, err := llmprovider.InitializeRegistry(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize providers: ", err)
		return
	}
	logger.Infof(ctx, "Providers configured: %v", registry.Names())

	// 5. Extraction domain
	settingsProvider := settings.FromConfig(cfg)
	extractionUC := usecase.New(logger, registry, settingsProvider, quotaRepo, historyRepo, cfg.Extraction.DailyLimit)
	extractionHandler := extractionHTTP.New(logger, extractionUC)

	mw := middleware.New(logger, cfg.RateLimit)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ExtractionHandler: extractionHandler,
		Middleware:        mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildStorage wires the configured quota/history backing store.
func buildStorage(cfg *config.Config, logger log.Logger) (repository.QuotaRepository, repository.HistoryRepository, func(), error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqliteRepo.NewStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return sqliteRepo.NewQuotaRepository(store), sqliteRepo.NewHistoryRepository(store), func() { _ = store.Close() }, nil

	case "memory", "":
		ttl, err := time.ParseDuration(cfg.Storage.HistoryTTL)
		if err != nil || ttl <= 0 {
			ttl = 30 * 24 * time.Hour
		}
		return memoryRepo.NewQuotaRepository(), memoryRepo.NewHistoryRepository(cfg.Storage.HistorySize, ttl), func() {}, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
