package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient returns the queued errors in order, then rec.
type scriptedClient struct {
	rec   model.Recommendation
	errs  []error
	calls atomic.Int32
}

func (c *scriptedClient) Provider() string { return "scripted" }

func (c *scriptedClient) Recommend(_ context.Context, _ Request) (model.Recommendation, error) {
	n := int(c.calls.Add(1))
	if n <= len(c.errs) {
		return model.Recommendation{}, c.errs[n-1]
	}
	return c.rec, nil
}

func fastConfig() Config {
	return Config{MaxRetries: 3, RetryDelay: time.Millisecond, RateLimit: 600}
}

func TestService_RetriesTransientFailures(t *testing.T) {
	client := &scriptedClient{
		rec:  model.Recommendation{ProductID: "oud-001", Reasoning: "r", OccasionSuggestion: "o"},
		errs: []error{common.Retryable(errors.New("503")), common.Retryable(errors.New("503"))},
	}
	svc := NewService(client, fastConfig(), nil)
	defer svc.Close()

	rec, err := svc.Recommend(context.Background(), Request{Prompt: "p"})
	require.NoError(t, err)
	assert.Equal(t, "oud-001", rec.ProductID)
	assert.Equal(t, int32(3), client.calls.Load())
}

func TestService_DoesNotRetryPermanentFailures(t *testing.T) {
	client := &scriptedClient{errs: []error{ErrMalformedResponse}}
	svc := NewService(client, fastConfig(), nil)
	defer svc.Close()

	_, err := svc.Recommend(context.Background(), Request{Prompt: "p"})
	require.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, int32(1), client.calls.Load())
}

func TestService_GivesUpAfterMaxRetries(t *testing.T) {
	transient := common.Retryable(errors.New("overloaded"))
	client := &scriptedClient{errs: []error{transient, transient, transient, transient}}
	svc := NewService(client, fastConfig(), nil)
	defer svc.Close()

	_, err := svc.Recommend(context.Background(), Request{Prompt: "p"})
	require.ErrorIs(t, err, common.ErrMaxRetries)
	assert.Equal(t, int32(3), client.calls.Load())
}

func TestService_RateLimitRespectsContext(t *testing.T) {
	client := &scriptedClient{rec: model.Recommendation{ProductID: "oud-001"}}
	svc := NewService(client, Config{RateLimit: 1}, nil)
	defer svc.Close()

	_, err := svc.Recommend(context.Background(), Request{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = svc.Recommend(ctx, Request{})
	require.ErrorIs(t, err, common.ErrRateLimit)
	assert.Equal(t, int32(1), client.calls.Load())
}

func TestService_CacheIsExplicit(t *testing.T) {
	svc := NewService(&scriptedClient{}, fastConfig(), nil)
	defer svc.Close()

	_, ok := svc.Cached("k")
	assert.False(t, ok)

	rec := model.Recommendation{ProductID: "oud-004"}
	svc.Remember("k", rec)

	got, ok := svc.Cached("k")
	require.True(t, ok)
	assert.Equal(t, rec, got)
	assert.Equal(t, "scripted", svc.Provider())
}
