// Package recommend turns visitor preferences into a single product
// suggestion, asking a generative model when one is available and falling
// back to a catalog pick when it is not.
package recommend

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/llm"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Text used for every fallback result.
const (
	FallbackReasoning = "This is a mock recommendation. In a real application with a valid API key, " +
		"the model would provide a detailed analysis based on your choices. " +
		"This choice was selected randomly as a placeholder."
	FallbackOccasion = "Any special event where you want to feel unique."
)

// DefaultTimeout bounds a model call when no timeout is configured.
const DefaultTimeout = 20 * time.Second

// Source records where a Result came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// FallbackReason explains why the model answer was not used.
type FallbackReason string

const (
	ReasonNone           FallbackReason = ""
	ReasonNoCredential   FallbackReason = "no_credential"
	ReasonTransport      FallbackReason = "transport"
	ReasonParse          FallbackReason = "parse"
	ReasonUnknownProduct FallbackReason = "unknown_product"
	ReasonTimeout        FallbackReason = "timeout"
	ReasonRateLimited    FallbackReason = "rate_limited"
	ReasonCanceled       FallbackReason = "canceled"
)

// Result is a recommendation whose ProductID is always in the catalog.
type Result struct {
	model.Recommendation
	Source    Source
	Reason    FallbackReason
	RequestID string
}

// ModelService is the model path used by Client. *llm.Service satisfies it.
type ModelService interface {
	Recommend(ctx context.Context, req llm.Request) (model.Recommendation, error)
	Cached(key string) (model.Recommendation, bool)
	Remember(key string, rec model.Recommendation)
	Provider() string
}

// Client resolves preferences to a Result. Recommend never fails.
type Client struct {
	catalog *catalog.Catalog
	model   ModelService
	logger  *slog.Logger
	timeout time.Duration
	group   singleflight.Group

	rngMu sync.Mutex
	rng   *rand.Rand
}

// Option configures a Client.
type Option func(*Client)

// WithModel sets the model path. Without one every request falls back.
func WithModel(svc ModelService) Option {
	return func(c *Client) { c.model = svc }
}

// WithTimeout bounds each model call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRand sets the source used for fallback picks.
func WithRand(r *rand.Rand) Option {
	return func(c *Client) { c.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a Client over cat.
func NewClient(cat *catalog.Catalog, opts ...Option) *Client {
	c := &Client{
		catalog: cat,
		logger:  slog.Default(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasModel reports whether a model path is configured.
func (c *Client) HasModel() bool {
	return c.model != nil
}

// Recommend returns a product suggestion for prefs. Identical concurrent
// requests share one model call. The shared call is bounded by the client
// timeout only; a caller whose ctx ends first gets its own fallback.
func (c *Client) Recommend(ctx context.Context, prefs model.Preferences) Result {
	prefs = prefs.Normalize()
	key := prefs.Key()

	flight := c.group.DoChan(key, func() (any, error) {
		return c.resolve(context.WithoutCancel(ctx), key, prefs), nil
	})

	select {
	case res := <-flight:
		return res.Val.(Result)
	case <-ctx.Done():
		requestID := uuid.NewString()
		return c.fallback(c.logger.With("request_id", requestID), requestID, classify(ctx.Err()), ctx.Err())
	}
}

func (c *Client) resolve(ctx context.Context, key string, prefs model.Preferences) Result {
	requestID := uuid.NewString()
	logger := c.logger.With("request_id", requestID)

	if c.model == nil {
		return c.fallback(logger, requestID, ReasonNoCredential, nil)
	}

	if rec, ok := c.model.Cached(key); ok && c.catalog.Contains(rec.ProductID) {
		logger.Debug("recommendation served from cache", "product_id", rec.ProductID)
		return Result{Recommendation: rec, Source: SourceCache, RequestID: requestID}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	rec, err := c.model.Recommend(callCtx, BuildRequest(prefs, c.catalog.Summaries()))
	if err != nil {
		return c.fallback(logger, requestID, classify(err), err)
	}

	if !c.catalog.Contains(rec.ProductID) {
		logger.Warn("model recommended a product outside the catalog", "product_id", rec.ProductID)
		return c.fallback(logger, requestID, ReasonUnknownProduct, nil)
	}

	c.model.Remember(key, rec)
	logger.Info("recommendation generated",
		"provider", c.model.Provider(),
		"product_id", rec.ProductID,
		"duration", time.Since(start))

	return Result{Recommendation: rec, Source: SourceModel, RequestID: requestID}
}

// Fallback returns a catalog pick with the fixed fallback text.
func (c *Client) Fallback() model.Recommendation {
	p := c.catalog.At(c.pick(c.catalog.Len()))
	return model.Recommendation{
		ProductID:          p.ID,
		Reasoning:          FallbackReasoning,
		OccasionSuggestion: FallbackOccasion,
	}
}

func (c *Client) fallback(logger *slog.Logger, requestID string, reason FallbackReason, err error) Result {
	rec := c.Fallback()
	attrs := []any{"reason", string(reason), "product_id", rec.ProductID}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	logger.Warn("using fallback recommendation", attrs...)
	return Result{Recommendation: rec, Source: SourceFallback, Reason: reason, RequestID: requestID}
}

func (c *Client) pick(n int) int {
	if c.rng == nil {
		return rand.IntN(n)
	}
	c.rngMu.Lock()
	defer c.rngMu.Unlock()
	return c.rng.IntN(n)
}

func classify(err error) FallbackReason {
	switch {
	case errors.Is(err, llm.ErrNoCredential):
		return ReasonNoCredential
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, context.Canceled):
		return ReasonCanceled
	case errors.Is(err, common.ErrRateLimit):
		return ReasonRateLimited
	case errors.Is(err, llm.ErrMalformedResponse):
		return ReasonParse
	default:
		return ReasonTransport
	}
}
