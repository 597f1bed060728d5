package llm

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/Veraticus/oud-emporium/internal/service"
)

// Service wraps a Client with a result cache, a rate limiter and retries.
// The caller decides which results are worth caching through Remember.
type Service struct {
	client      Client
	cache       *recommendationCache
	logger      *slog.Logger
	rateLimiter *rateLimiter
	retryOpts   service.RetryOptions
}

// NewService builds a Service around client using the tuning in cfg.
func NewService(client Client, cfg Config, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}

	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = 500 * time.Millisecond
	}

	return &Service{
		client:      client,
		cache:       newRecommendationCache(cfg.CacheTTL),
		logger:      logger,
		retryOpts:   retryOpts,
		rateLimiter: newRateLimiter(cfg.RateLimit),
	}
}

// Provider names the underlying model provider.
func (s *Service) Provider() string {
	return s.client.Provider()
}

// Cached returns a previously remembered recommendation for key.
func (s *Service) Cached(key string) (model.Recommendation, bool) {
	rec, ok := s.cache.get(key)
	if ok {
		s.logger.Debug("recommendation cache hit", "key", key)
	}
	return rec, ok
}

// Remember caches rec under key.
func (s *Service) Remember(key string, rec model.Recommendation) {
	s.cache.set(key, rec)
}

// Recommend waits for a rate limit token then calls the provider, retrying
// transient failures.
func (s *Service) Recommend(ctx context.Context, req Request) (model.Recommendation, error) {
	if err := s.rateLimiter.wait(ctx); err != nil {
		return model.Recommendation{}, err
	}

	var rec model.Recommendation
	err := common.WithRetry(ctx, func() error {
		var callErr error
		rec, callErr = s.client.Recommend(ctx, req)
		return callErr
	}, s.retryOpts)
	if err != nil {
		return model.Recommendation{}, fmt.Errorf("%s recommendation failed: %w", s.client.Provider(), err)
	}

	return rec, nil
}

// Close stops the cache and rate limiter background goroutines.
func (s *Service) Close() {
	s.cache.Close()
	s.rateLimiter.Close()
}
