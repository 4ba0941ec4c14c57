// Package ratelimit caps requests per client per endpoint with a sliding
// window of recent request timestamps.
package ratelimit

import (
	"context"
	"time"

	"wedding-rsvp/internal/pkg/clock"
	"wedding-rsvp/internal/pkg/errs"
)

const DefaultWindow = 60 * time.Second

var ErrRateLimited = errs.NewKind("rate limit exceeded", errs.ErrRateLimited)

// WindowStore persists one timestamp list per key.
type WindowStore interface {
	// Update calls fn with the stored window for key while holding that key's lock.
	// The returned list is persisted only when save is true.
	Update(ctx context.Context, key string, fn func(window []time.Time) (next []time.Time, save bool)) error
}

type Limiter struct {
	store  WindowStore
	clock  clock.Clock
	window time.Duration
}

func NewLimiter(store WindowStore, clk clock.Clock) *Limiter {
	return &Limiter{
		store:  store,
		clock:  clk,
		window: DefaultWindow,
	}
}

// CheckAndRecord admits the request and records it, or fails with
// ErrRateLimited when limit requests were already recorded within the window.
// A rejected attempt is not recorded. A non-positive limit disables the check.
func (l *Limiter) CheckAndRecord(ctx context.Context, clientKey, endpoint string, limit int) error {
	if limit <= 0 {
		return nil
	}

	now := l.clock.Now()
	limited := false

	err := l.store.Update(ctx, Key(clientKey, endpoint), func(window []time.Time) ([]time.Time, bool) {
		recent := Prune(window, now, l.window)
		if len(recent) >= limit {
			limited = true
			return nil, false
		}
		return append(recent, now), true
	})
	if err != nil {
		return errs.WrapMark(err, errs.ErrServerFault, "failed to update rate limit window")
	}
	if limited {
		return ErrRateLimited
	}
	return nil
}

func Key(clientKey, endpoint string) string {
	return clientKey + "_" + endpoint
}

// Prune keeps the timestamps younger than window relative to now.
func Prune(stamps []time.Time, now time.Time, window time.Duration) []time.Time {
	recent := make([]time.Time, 0, len(stamps)+1)
	for _, ts := range stamps {
		if now.Sub(ts) < window {
			recent = append(recent, ts)
		}
	}
	return recent
}
