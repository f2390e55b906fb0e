package store

import "github.com/rigreport/rigreport/internal/kv"

// collection is one in-memory entity list mirrored to the backing store.
// It is hydrated once at store construction and written back in full after
// every mutation. All access is serialized by the owning Store's mutex.
type collection[T any] struct {
	key     string
	seed    func() []T
	idOf    func(T) string
	records []T
}

func newCollection[T any](key string, seed func() []T, idOf func(T) string) *collection[T] {
	return &collection[T]{key: key, seed: seed, idOf: idOf}
}

// none is the seed for collections that start out empty.
func none[T any]() []T { return []T{} }

func (c *collection[T]) storageKey() string { return c.key }

// hydrate loads the persisted array for this collection, falling back to the
// compiled-in seed when nothing usable is stored (first run, post-purge, or
// corrupt value).
func (c *collection[T]) hydrate(s kv.Store) {
	var stored []T
	if s.Get(c.key, &stored) && stored != nil {
		c.records = stored
		return
	}
	c.records = c.seed()
}

func (c *collection[T]) persistTo(s kv.Store) {
	records := c.records
	if records == nil {
		records = []T{}
	}
	s.Set(c.key, records)
}

func (c *collection[T]) resetToSeed() { c.records = c.seed() }

func (c *collection[T]) clear() { c.records = []T{} }

// list returns a copy so callers can mutate the result freely.
func (c *collection[T]) list() []T {
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

func (c *collection[T]) find(id string) (int, bool) {
	for i, rec := range c.records {
		if c.idOf(rec) == id {
			return i, true
		}
	}
	return 0, false
}

// append, replace, and removeWhere build a fresh slice instead of mutating
// the existing one, so a caller still holding an earlier list() result never
// observes a write happening under it.
func (c *collection[T]) append(rec T) {
	next := make([]T, 0, len(c.records)+1)
	next = append(next, c.records...)
	c.records = append(next, rec)
}

func (c *collection[T]) replace(i int, rec T) {
	next := make([]T, len(c.records))
	copy(next, c.records)
	next[i] = rec
	c.records = next
}

func (c *collection[T]) removeWhere(drop func(T) bool) int {
	next := make([]T, 0, len(c.records))
	removed := 0
	for _, rec := range c.records {
		if drop(rec) {
			removed++
			continue
		}
		next = append(next, rec)
	}
	c.records = next
	return removed
}

// where returns the records matching keep, as a non-nil slice.
func (c *collection[T]) where(keep func(T) bool) []T {
	out := []T{}
	for _, rec := range c.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out
}
