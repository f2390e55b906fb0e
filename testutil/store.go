// Package testutil provides shared helpers for store-backed tests.
// Every helper builds on the in-memory key-value store with the simulated
// latency zeroed out, so the full test suite stays fast.
package testutil

import (
	"sync"
	"testing"
	"time"

	"github.com/rigreport/rigreport/internal/kv"
	"github.com/rigreport/rigreport/internal/store"
)

// NewStore returns a seeded Store backed by a fresh in-memory key-value
// store, with no simulated latency. Extra options are applied after the
// defaults, so a test can still override the clock.
func NewStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	all := append([]store.Option{store.WithLatency(0, 0)}, opts...)
	return store.New(kv.NewMemory(), all...)
}

// NewStoreWithBacking is NewStore against a caller-supplied backing store.
// Use it to test persistence across store reconstruction: build one store,
// mutate it, then build a second store over the same backing.
func NewStoreWithBacking(t *testing.T, backing kv.Store, opts ...store.Option) *store.Store {
	t.Helper()
	all := append([]store.Option{store.WithLatency(0, 0)}, opts...)
	return store.New(backing, all...)
}

// Clock is a stepping fake time source. Each call to Now advances the
// reported time by the configured step, so consecutive writes get strictly
// increasing timestamps without sleeping.
type Clock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewClock returns a Clock starting at start, advancing by step per Now call.
func NewClock(start time.Time, step time.Duration) *Clock {
	return &Clock{now: start, step: step}
}

// Now returns the current fake time, then advances it.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
