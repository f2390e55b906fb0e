// Package query is the data-access layer between consumers (HTTP handlers,
// services) and the store. It reproduces the fetch-on-mount /
// mutate-then-invalidate contract the original view layer depends on: reads
// go through a client-side cache keyed by entity kind plus optional id or
// parent id, and every successful mutation invalidates exactly the keys
// that could now be stale, so consumers stay consistent without a full
// reload.
package query

import (
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rigreport/rigreport/internal/store"
)

// Cache key roots, one per entity kind. Scoped keys are derived as
// "<kind>/<id>" for single records and "<kind>/<parent-kind>/<parent-id>"
// for FK-filtered lists.
const (
	kindBoats             = "boats"
	kindEquipment         = "equipment"
	kindMaintenance       = "maintenance"
	kindReservations      = "reservations"
	kindSlips             = "slips"
	kindSlipMembers       = "slip-members"
	kindMemberAssignments = "slip-member-assignments"
	kindBoatAssignments   = "slip-boat-assignments"
	kindSlipPayments      = "slip-payments"
	kindSlipReservations  = "slip-reservations"
	kindDemoUsers         = "demo-users"
)

// Client wraps the store facade with a query cache.
type Client struct {
	store *store.Store
	cache *gocache.Cache
}

// New builds a Client over the given store. Cached entries expire on their
// own after five minutes; the expiry is a safety net — invalidation on
// mutation is what keeps readers fresh.
func New(s *store.Store) *Client {
	return &Client{
		store: s,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// cached returns the value under key if present, otherwise fetches, fills
// the cache, and returns the fetched value. Errors are never cached.
func cached[T any](c *Client, key string, fetch func() (T, error)) (T, error) {
	if v, ok := c.cache.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}
	v, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}
	c.cache.Set(key, v, gocache.DefaultExpiration)
	return v, nil
}

func (c *Client) invalidate(keys ...string) {
	for _, k := range keys {
		c.cache.Delete(k)
	}
}

// invalidatePrefix drops every cached entry whose key starts with prefix.
// Used when a mutation's blast radius is not a fixed key set — a boat delete
// cascading into maintenance entries, for one.
func (c *Client) invalidatePrefix(prefix string) {
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

func recordKey(kind, id string) string { return kind + "/" + id }

func scopedKey(kind, parentKind, parentID string) string {
	return kind + "/" + parentKind + "/" + parentID
}
