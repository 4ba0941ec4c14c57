//go:build unit

package ratelimit_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/errs"
	"wedding-rsvp/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

type failingStore struct{}

func (failingStore) Update(context.Context, string, func([]time.Time) ([]time.Time, bool)) error {
	return errs.New("disk full")
}

func stores(t *testing.T) map[string]ratelimit.WindowStore {
	t.Helper()
	fs, err := ratelimit.NewFileStore(t.TempDir(), time.Second)
	require.NoError(t, err)
	return map[string]ratelimit.WindowStore{
		"memory": ratelimit.NewMemoryStore(),
		"file":   fs,
	}
}

func TestLimiter(t *testing.T) {
	ctx := context.Background()

	for name, store := range stores(t) {
		t.Run(name+": limit reached then window slides", func(t *testing.T) {
			clk := clock.NewMockClock(start)
			limiter := ratelimit.NewLimiter(store, clk)

			for i := 0; i < 10; i++ {
				require.NoError(t, limiter.CheckAndRecord(ctx, "1.2.3.4", "lookup", 10), "request %d", i+1)
				clk.Add(time.Second)
			}

			err := limiter.CheckAndRecord(ctx, "1.2.3.4", "lookup", 10)
			assert.ErrorIs(t, err, ratelimit.ErrRateLimited)
			assert.True(t, errs.Is(err, errs.ErrRateLimited))

			clk.Set(start.Add(61 * time.Second))
			assert.NoError(t, limiter.CheckAndRecord(ctx, "1.2.3.4", "lookup", 10))
		})

		t.Run(name+": keys are per client and endpoint", func(t *testing.T) {
			limiter := ratelimit.NewLimiter(store, clock.NewMockClock(start))

			require.NoError(t, limiter.CheckAndRecord(ctx, "5.5.5.5", "submit", 1))
			assert.ErrorIs(t, limiter.CheckAndRecord(ctx, "5.5.5.5", "submit", 1), ratelimit.ErrRateLimited)
			assert.NoError(t, limiter.CheckAndRecord(ctx, "5.5.5.5", "lookup", 1))
			assert.NoError(t, limiter.CheckAndRecord(ctx, "6.6.6.6", "submit", 1))
		})
	}

	t.Run("rejected attempts are not recorded", func(t *testing.T) {
		store := ratelimit.NewMemoryStore()
		clk := clock.NewMockClock(start)
		limiter := ratelimit.NewLimiter(store, clk)

		require.NoError(t, limiter.CheckAndRecord(ctx, "c", "e", 2))
		require.NoError(t, limiter.CheckAndRecord(ctx, "c", "e", 2))
		for i := 0; i < 5; i++ {
			assert.ErrorIs(t, limiter.CheckAndRecord(ctx, "c", "e", 2), ratelimit.ErrRateLimited)
		}
		assert.Equal(t, 2, store.Len(ratelimit.Key("c", "e")))
	})

	t.Run("entry exactly one window old is pruned", func(t *testing.T) {
		clk := clock.NewMockClock(start)
		limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), clk)

		require.NoError(t, limiter.CheckAndRecord(ctx, "c", "e", 1))
		clk.Add(59 * time.Second)
		assert.ErrorIs(t, limiter.CheckAndRecord(ctx, "c", "e", 1), ratelimit.ErrRateLimited)
		clk.Add(time.Second)
		assert.NoError(t, limiter.CheckAndRecord(ctx, "c", "e", 1))
	})

	t.Run("non-positive limit disables the check", func(t *testing.T) {
		limiter := ratelimit.NewLimiter(failingStore{}, clock.NewMockClock(start))
		assert.NoError(t, limiter.CheckAndRecord(ctx, "c", "e", 0))
	})

	t.Run("store failure is a server fault", func(t *testing.T) {
		limiter := ratelimit.NewLimiter(failingStore{}, clock.NewMockClock(start))

		err := limiter.CheckAndRecord(ctx, "c", "e", 3)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrServerFault))
		assert.False(t, errs.Is(err, errs.ErrRateLimited))
	})
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()

	t.Run("corrupt window file is treated as empty", func(t *testing.T) {
		dir := t.TempDir()
		store, err := ratelimit.NewFileStore(dir, time.Second)
		require.NoError(t, err)

		key := ratelimit.Key("c", "e")
		require.NoError(t, os.WriteFile(store.Path(key), []byte("{not json"), 0o600))

		limiter := ratelimit.NewLimiter(store, clock.NewMockClock(start))
		assert.NoError(t, limiter.CheckAndRecord(ctx, "c", "e", 1))

		data, err := os.ReadFile(store.Path(key))
		require.NoError(t, err)
		assert.JSONEq(t, "[1780315200000]", string(data))
	})

	t.Run("file names are hashed keys inside the directory", func(t *testing.T) {
		dir := t.TempDir()
		store, err := ratelimit.NewFileStore(dir, time.Second)
		require.NoError(t, err)

		path := store.Path("../../etc/passwd_lookup")
		assert.Equal(t, dir, filepath.Dir(path))
		assert.Len(t, filepath.Base(path), len("0123456789abcdef.json"))
	})

	t.Run("concurrent callers never exceed the limit", func(t *testing.T) {
		store, err := ratelimit.NewFileStore(t.TempDir(), 5*time.Second)
		require.NoError(t, err)
		limiter := ratelimit.NewLimiter(store, clock.NewMockClock(start))

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			admitted int
		)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.CheckAndRecord(ctx, "c", "e", 5) == nil {
					mu.Lock()
					admitted++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 5, admitted)
	})
}
