package llm

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Veraticus/oud-emporium/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	t.Run("waits for refill", func(t *testing.T) {
		// 600 per minute refills one token every 100ms.
		rl := newRateLimiter(600)
		defer rl.Close()
		ctx := context.Background()

		for i := 0; i < 600; i++ {
			require.True(t, rl.tryAcquire())
		}

		start := time.Now()
		require.NoError(t, rl.wait(ctx))
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("context cancellation", func(t *testing.T) {
		rl := newRateLimiter(1)
		defer rl.Close()

		require.NoError(t, rl.wait(context.Background()))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error)
		go func() {
			done <- rl.wait(ctx)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		err := <-done
		require.ErrorIs(t, err, common.ErrRateLimit)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("tryAcquire", func(t *testing.T) {
		rl := newRateLimiter(5)
		defer rl.Close()

		for i := 0; i < 5; i++ {
			assert.True(t, rl.tryAcquire(), "Expected tryAcquire to succeed for attempt %d", i+1)
		}
		assert.False(t, rl.tryAcquire(), "Expected tryAcquire to fail after tokens exhausted")
		assert.Equal(t, 0, rl.available())
	})

	t.Run("reset", func(t *testing.T) {
		rl := newRateLimiter(3)
		defer rl.Close()

		for i := 0; i < 3; i++ {
			require.True(t, rl.tryAcquire())
		}
		assert.False(t, rl.tryAcquire())

		rl.reset()

		assert.Equal(t, 3, rl.available())
	})

	t.Run("default rate limit", func(t *testing.T) {
		rl := newRateLimiter(0)
		defer rl.Close()

		assert.Equal(t, 30, rl.capacity)
	})

	t.Run("concurrent access", func(t *testing.T) {
		rl := newRateLimiter(100)
		defer rl.Close()
		ctx := context.Background()

		var acquired atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					if rl.wait(ctx) == nil {
						acquired.Add(1)
					}
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(100), acquired.Load())
	})
}
