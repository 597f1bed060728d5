package recommend

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/Veraticus/oud-emporium/internal/llm"
	"github.com/Veraticus/oud-emporium/internal/model"
)

// fakeModel is a scripted ModelService.
type fakeModel struct {
	rec     model.Recommendation
	err     error
	block   chan struct{}
	calls   atomic.Int32
	mu      sync.Mutex
	cache   map[string]model.Recommendation
	lastReq llm.Request
}

func newFakeModel(rec model.Recommendation, err error) *fakeModel {
	return &fakeModel{rec: rec, err: err, cache: map[string]model.Recommendation{}}
}

func (f *fakeModel) Provider() string { return "fake" }

func (f *fakeModel) Recommend(ctx context.Context, req llm.Request) (model.Recommendation, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.lastReq = req
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return model.Recommendation{}, ctx.Err()
		}
	}
	return f.rec, f.err
}

func (f *fakeModel) Cached(key string) (model.Recommendation, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.cache[key]
	return rec, ok
}

func (f *fakeModel) Remember(key string, rec model.Recommendation) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cache[key] = rec
}

func (f *fakeModel) cached() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cache)
}

// stubTranslator resolves keys from a fixed table.
type stubTranslator map[string]string

func (s stubTranslator) Translate(key string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return key
}

func (s stubTranslator) Language() string { return "en" }
