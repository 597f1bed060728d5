package recommend

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/oud-emporium/internal/catalog"
	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRecommender records calls and answers with a fixed product.
type countingRecommender struct {
	calls atomic.Int32
	last  atomic.Value
	gate  chan struct{}
}

func (c *countingRecommender) Recommend(_ context.Context, prefs model.Preferences) Result {
	c.calls.Add(1)
	c.last.Store(prefs)
	if c.gate != nil {
		<-c.gate
	}
	return Result{
		Recommendation: model.Recommendation{ProductID: "oud-001", Reasoning: "r", OccasionSuggestion: "o"},
		Source:         SourceModel,
	}
}

var labels = stubTranslator{
	"occasion_eveningGala":       "Evening Gala",
	"occasion_intimateDinner":    "Intimate Dinner",
	"mood_confidentPowerful":     "Confident & Powerful",
	"mood_romanticSophisticated": "Romantic & Sophisticated",
	"errorScentSelection":        "Please select at least one scent family.",
}

func TestSession_InitialDraft(t *testing.T) {
	s := NewSession(&countingRecommender{}, labels)
	snap := s.Snapshot()

	assert.Equal(t, StateIdle, snap.State)
	assert.Equal(t, Occasions[0], snap.Draft.Occasion)
	assert.Equal(t, Moods[0], snap.Draft.Mood)
	assert.Empty(t, snap.Draft.Scents)
	assert.Nil(t, snap.Result)
}

func TestSession_EmptySelectionFailsWithoutCallingModel(t *testing.T) {
	rec := &countingRecommender{}
	s := NewSession(rec, labels)

	_, err := s.Submit(context.Background())

	require.ErrorIs(t, err, ErrEmptyScentSelection)
	assert.Equal(t, "Please select at least one scent family.", common.UserMessage(err))
	assert.Zero(t, rec.calls.Load())

	snap := s.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.Nil(t, snap.Result)
	require.ErrorIs(t, snap.Err, ErrEmptyScentSelection)
}

func TestSession_EmptySelectionWithoutTranslator(t *testing.T) {
	s := NewSession(&countingRecommender{}, nil)

	_, err := s.Submit(context.Background())

	require.ErrorIs(t, err, ErrEmptyScentSelection)
	assert.Equal(t, "Please select at least one scent family.", common.UserMessage(err))
	assert.Equal(t, 1, strings.Count(err.Error(), ErrEmptyScentSelection.Error()))
}

func TestSession_SuccessfulSubmission(t *testing.T) {
	rec := &countingRecommender{}
	s := NewSession(rec, labels)
	s.SetOccasion("intimateDinner")
	s.SetMood("romanticSophisticated")
	assert.True(t, s.ToggleScent("Floral"))
	assert.True(t, s.ToggleScent("Woody"))

	res, err := s.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "oud-001", res.ProductID)

	sent := rec.last.Load().(model.Preferences)
	assert.Equal(t, "Intimate Dinner", sent.Occasion)
	assert.Equal(t, "Romantic & Sophisticated", sent.Mood)
	assert.Equal(t, []string{"Floral", "Woody"}, sent.Scents)

	snap := s.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "oud-001", snap.Result.ProductID)
	assert.NoError(t, snap.Err)
}

func TestSession_FreeTextLabelsPassThrough(t *testing.T) {
	rec := &countingRecommender{}
	s := NewSession(rec, labels)
	s.SetOccasion("Beach wedding")
	s.ToggleScent("Citrus")

	_, err := s.Submit(context.Background())
	require.NoError(t, err)

	sent := rec.last.Load().(model.Preferences)
	assert.Equal(t, "Beach wedding", sent.Occasion)
	assert.Equal(t, "Confident & Powerful", sent.Mood)
}

func TestSession_ToggleScent(t *testing.T) {
	s := NewSession(&countingRecommender{}, nil)

	assert.True(t, s.ToggleScent("Spicy"))
	assert.True(t, s.IsSelected("spicy"))
	assert.False(t, s.ToggleScent("Spicy"))
	assert.False(t, s.IsSelected("Spicy"))
	assert.Empty(t, s.Snapshot().Draft.Scents)
}

func TestSession_RejectsSubmissionWhileLoading(t *testing.T) {
	rec := &countingRecommender{gate: make(chan struct{})}
	s := NewSession(rec, labels)
	s.ToggleScent("Woody")

	ticket, err := s.Begin()
	require.NoError(t, err)
	assert.Equal(t, StateLoading, s.State())

	done := make(chan Result)
	go func() { done <- s.Resolve(context.Background(), ticket) }()

	s.ToggleScent("Leather")
	_, err = s.Begin()
	require.ErrorIs(t, err, ErrSessionBusy)
	assert.Equal(t, StateLoading, s.State())

	close(rec.gate)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("request never completed")
	}

	assert.Equal(t, int32(1), rec.calls.Load())
	assert.Equal(t, StateSucceeded, s.State())
	assert.Equal(t, []string{"Woody"}, rec.last.Load().(model.Preferences).Scents)
}

func TestSession_ResubmitDiscardsPriorOutcome(t *testing.T) {
	rec := &countingRecommender{}
	s := NewSession(rec, labels)

	_, err := s.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, StateFailed, s.State())

	s.ToggleScent("Gourmand")
	_, err = s.Submit(context.Background())
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.NoError(t, snap.Err)

	s.ToggleScent("Gourmand")
	_, err = s.Submit(context.Background())
	require.Error(t, err)
	assert.Nil(t, s.Snapshot().Result)
}

func TestSession_ResetDropsStaleResult(t *testing.T) {
	rec := &countingRecommender{}
	s := NewSession(rec, labels)
	s.ToggleScent("Fresh")

	ticket, err := s.Begin()
	require.NoError(t, err)
	s.Reset()

	s.Resolve(context.Background(), ticket)

	snap := s.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Result)
	assert.Equal(t, []string{"Fresh"}, snap.Draft.Scents)
}

func TestSession_WithFallbackClient(t *testing.T) {
	cat := catalog.Default()
	s := NewSession(NewClient(cat), labels)
	s.ToggleScent("Woody")

	for i := 0; i < 100; i++ {
		res, err := s.Submit(context.Background())
		require.NoError(t, err)
		require.Equal(t, StateSucceeded, s.State())
		require.True(t, cat.Contains(res.ProductID))
	}
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "unknown", State(42).String())
}
