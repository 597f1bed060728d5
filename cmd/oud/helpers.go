package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/config"
	"github.com/Veraticus/oud-emporium/internal/llm"
	"github.com/Veraticus/oud-emporium/internal/recommend"
	"github.com/Veraticus/oud-emporium/internal/storage"
	"github.com/spf13/viper"
)

// loadConfig reads the typed configuration out of viper.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// initStorage opens the catalog database and runs migrations.
func initStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadCatalog returns the catalog from the configured database, or the
// built-in assortment when no database is configured.
func loadCatalog(ctx context.Context, cfg config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Catalog.Database == "" {
		return catalog.Default(), nil
	}

	store, err := initStorage(ctx, cfg.Catalog.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Warn("failed to close catalog database", "error", closeErr)
		}
	}()

	return catalog.Load(ctx, store, logger)
}

// newRecommender builds the recommendation client. Without an API key the
// client has no model and every request takes the fallback path. The
// returned func releases the model service's background workers.
func newRecommender(ctx context.Context, cfg config.Config, cat *catalog.Catalog, logger *slog.Logger) (*recommend.Client, func(), error) {
	if logger == nil {
		logger = slog.Default()
	}

	llmCfg := llm.Config{
		Provider:    cfg.LLM.Provider,
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		MaxRetries:  cfg.LLM.MaxRetries,
		RetryDelay:  cfg.LLM.RetryDelay,
		CacheTTL:    cfg.LLM.CacheTTL,
		RateLimit:   cfg.LLM.RateLimit,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxTokens,
	}

	opts := []recommend.Option{
		recommend.WithLogger(logger),
		recommend.WithTimeout(cfg.Timeout),
	}

	client, err := llm.NewClient(ctx, llmCfg)
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		logger.Info("no API key configured, recommendations use the catalog fallback",
			"provider", cfg.LLM.Provider)
		return recommend.NewClient(cat, opts...), func() {}, nil
	case err != nil:
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	svc := llm.NewService(client, llmCfg, logger)
	opts = append(opts, recommend.WithModel(svc))
	return recommend.NewClient(cat, opts...), svc.Close, nil
}
