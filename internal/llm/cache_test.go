package llm

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationCache(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		cache := newRecommendationCache(5 * time.Minute)
		defer cache.Close()

		_, found := cache.get("non-existent")
		assert.False(t, found)

		rec := model.Recommendation{ProductID: "oud-001", Reasoning: "woody", OccasionSuggestion: "gala"}
		cache.set("evening gala|confident|woody", rec)

		retrieved, found := cache.get("evening gala|confident|woody")
		assert.True(t, found)
		assert.Equal(t, rec, retrieved)
		assert.Equal(t, 1, cache.size())

		cache.clear()
		assert.Equal(t, 0, cache.size())
		_, found = cache.get("evening gala|confident|woody")
		assert.False(t, found)
	})

	t.Run("expiration", func(t *testing.T) {
		cache := newRecommendationCache(50 * time.Millisecond)
		defer cache.Close()

		cache.set("key", model.Recommendation{ProductID: "oud-002"})

		_, found := cache.get("key")
		assert.True(t, found)

		time.Sleep(100 * time.Millisecond)

		_, found = cache.get("key")
		assert.False(t, found)
	})

	t.Run("cleanup evicts expired entries", func(t *testing.T) {
		cache := newRecommendationCache(20 * time.Millisecond)
		defer cache.Close()

		cache.set("key", model.Recommendation{ProductID: "oud-002"})

		assert.Eventually(t, func() bool { return cache.size() == 0 }, time.Second, 10*time.Millisecond)
	})

	t.Run("concurrent access", func(t *testing.T) {
		cache := newRecommendationCache(5 * time.Minute)
		defer cache.Close()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 50; j++ {
					key := fmt.Sprintf("k%d", j%5)
					cache.set(key, model.Recommendation{ProductID: fmt.Sprintf("oud-%03d", i)})
					_, _ = cache.get(key)
					_ = cache.size()
				}
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 5, cache.size())
	})

	t.Run("close is idempotent", func(t *testing.T) {
		cache := newRecommendationCache(0)
		require.Equal(t, time.Hour, cache.ttl)
		cache.Close()
		cache.Close()
	})
}
