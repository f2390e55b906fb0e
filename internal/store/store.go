// Package store implements the RigReport data store: eleven entity
// collections held in memory, mirrored to a persisted key-value backing
// layer after every mutation, with simulated request latency in front of
// every operation so consumers exercise their loading states.
//
// The store is deliberately policy-free. It assigns ids and timestamps,
// merges patches, and cascades boat deletion into maintenance entries —
// nothing else. Business rules such as the severity→boat-status coupling
// live in the service layer.
package store

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/kv"
	"github.com/rigreport/rigreport/internal/seed"
)

// DataVersion is the compiled-in dataset version. Any persisted marker that
// does not match it exactly triggers a full purge of every collection key at
// construction time, so fresh seed data is used. Bump it whenever the seed
// data or the persisted shape of any entity changes.
const DataVersion = "3"

// Storage keys. Every key shares the prefix so the kv layer can host
// unrelated data (the demo session, for one) without collisions.
const (
	keyPrefix  = "rigreport:"
	versionKey = keyPrefix + "version"

	keyBoats             = keyPrefix + "boats"
	keyEquipment         = keyPrefix + "equipment"
	keyMaintenance       = keyPrefix + "maintenance"
	keyReservations      = keyPrefix + "reservations"
	keySlips             = keyPrefix + "slips"
	keySlipMembers       = keyPrefix + "slip-members"
	keyMemberAssignments = keyPrefix + "slip-member-assignments"
	keyBoatAssignments   = keyPrefix + "slip-boat-assignments"
	keySlipPayments      = keyPrefix + "slip-payments"
	keySlipReservations  = keyPrefix + "slip-reservations"
	keyDemoUsers         = keyPrefix + "demo-users"
)

// persistable is what the Store needs from a collection when it does not
// care about the element type: bootstrap, reset, and clear.
type persistable interface {
	storageKey() string
	hydrate(kv.Store)
	persistTo(kv.Store)
	resetToSeed()
	clear()
}

// Store is the single facade through which all entity data is read and
// written. It is the only writer to the backing store.
//
// All operations are serialized by one mutex: concurrent updates to the
// same record resolve to last-write-wins with no conflict detection. The
// store does not observe context cancellation: an issued write always runs
// to completion and persists.
type Store struct {
	mu       sync.Mutex
	kv       kv.Store
	clock    func() time.Time
	validate *validator.Validate

	latencyMin time.Duration
	latencyMax time.Duration

	boats             *collection[domain.Boat]
	equipment         *collection[domain.Equipment]
	maintenance       *collection[domain.MaintenanceEntry]
	reservations      *collection[domain.Reservation]
	slips             *collection[domain.Slip]
	slipMembers       *collection[domain.SlipMember]
	memberAssignments *collection[domain.SlipMemberAssignment]
	boatAssignments   *collection[domain.SlipBoatAssignment]
	slipPayments      *collection[domain.SlipPayment]
	slipReservations  *collection[domain.SlipReservation]
	users             *collection[domain.DemoUser]

	all []persistable
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLatency sets the simulated latency window applied before every store
// operation. Pass (0, 0) to disable the delay entirely (tests do).
func WithLatency(min, max time.Duration) Option {
	return func(s *Store) {
		s.latencyMin, s.latencyMax = min, max
	}
}

// WithClock overrides the timestamp source. Tests use a stepping fake clock
// to make updatedAt assertions deterministic.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// New builds a Store over the given backing layer.
//
// Construction runs the version bootstrap first: if the persisted version
// marker is absent or differs from DataVersion, every collection key is
// purged and the new marker written. Each collection is then hydrated from
// the backing store, falling back to its compiled-in seed.
func New(backing kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:         backing,
		clock:      time.Now,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		latencyMin: 200 * time.Millisecond,
		latencyMax: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.boats = newCollection(keyBoats, seed.Boats, func(b domain.Boat) string { return b.ID })
	s.equipment = newCollection(keyEquipment, seed.Equipment, func(e domain.Equipment) string { return e.ID })
	s.maintenance = newCollection(keyMaintenance, seed.Maintenance, func(m domain.MaintenanceEntry) string { return m.ID })
	s.reservations = newCollection(keyReservations, none[domain.Reservation], func(r domain.Reservation) string { return r.ID })
	s.slips = newCollection(keySlips, seed.Slips, func(sl domain.Slip) string { return sl.ID })
	s.slipMembers = newCollection(keySlipMembers, seed.SlipMembers, func(m domain.SlipMember) string { return m.ID })
	s.memberAssignments = newCollection(keyMemberAssignments, none[domain.SlipMemberAssignment], func(a domain.SlipMemberAssignment) string { return a.ID })
	s.boatAssignments = newCollection(keyBoatAssignments, none[domain.SlipBoatAssignment], func(a domain.SlipBoatAssignment) string { return a.ID })
	s.slipPayments = newCollection(keySlipPayments, none[domain.SlipPayment], func(p domain.SlipPayment) string { return p.ID })
	s.slipReservations = newCollection(keySlipReservations, none[domain.SlipReservation], func(r domain.SlipReservation) string { return r.ID })
	s.users = newCollection(keyDemoUsers, seed.DemoUsers, func(u domain.DemoUser) string { return u.ID })

	s.all = []persistable{
		s.boats, s.equipment, s.maintenance, s.reservations, s.slips,
		s.slipMembers, s.memberAssignments, s.boatAssignments,
		s.slipPayments, s.slipReservations, s.users,
	}

	s.bootstrap()
	return s
}

// bootstrap applies the version-gated purge, then hydrates every collection.
// Migration-by-erasure: a mismatched marker discards all persisted data
// rather than transforming it. Acceptable for a demo whose data is
// disposable.
func (s *Store) bootstrap() {
	var stored string
	if !s.kv.Get(versionKey, &stored) || stored != DataVersion {
		for _, c := range s.all {
			s.kv.Remove(c.storageKey())
		}
		s.kv.Set(versionKey, DataVersion)
	}
	for _, c := range s.all {
		c.hydrate(s.kv)
	}
}

// Reset discards all in-memory collections, re-seeds them from the
// compiled-in defaults, and persists every collection. It backs the demo's
// "start over" action.
func (s *Store) Reset() {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.all {
		c.resetToSeed()
		c.persistTo(s.kv)
	}
	s.kv.Set(versionKey, DataVersion)
}

// Clear purges every persisted key (version marker included) and empties the
// in-memory collections. The next Store constructed over the same backing
// layer starts from seed data again.
func (s *Store) Clear() {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.all {
		c.clear()
		s.kv.Remove(c.storageKey())
	}
	s.kv.Remove(versionKey)
}

// simulateLatency sleeps for a uniformly random duration in the configured
// window. It runs before the mutex is taken so a slow "request" does not
// block the whole store.
func (s *Store) simulateLatency() {
	if s.latencyMax <= 0 {
		return
	}
	d := s.latencyMin
	if s.latencyMax > s.latencyMin {
		d += time.Duration(rand.Int64N(int64(s.latencyMax - s.latencyMin)))
	}
	time.Sleep(d)
}

// newID mints a new record id: the clock's unix milliseconds in base 36
// plus a short random suffix. Collisions under rapid successive calls are
// treated as negligible for demo-scale data; this is not a UUID on purpose —
// the ids read nicely in the UI and in persisted JSON.
func (s *Store) newID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return strconv.FormatInt(s.clock().UnixMilli(), 36) + "-" + string(suffix)
}

// checkPatch validates a patch struct field-by-field before it is merged.
// Patches carry no ID field, so record identity can never be overridden.
func (s *Store) checkPatch(patch any) error {
	if err := s.validate.Struct(patch); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// --- generic operation bodies ----------------------------------------------
//
// The per-entity facade methods (boat.go, equipment.go, ...) are thin typed
// wrappers around these. Keeping the bodies generic keeps the eleven kinds
// behaviorally identical.

func listAll[T any](s *Store, c *collection[T]) ([]T, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.list(), nil
}

func listWhere[T any](s *Store, c *collection[T], keep func(T) bool) ([]T, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.where(keep), nil
}

func getByID[T any](s *Store, c *collection[T], kind, id string) (T, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := c.find(id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("store: %s %q: %w", kind, id, domain.ErrNotFound)
	}
	return c.records[i], nil
}

// createRecord appends and persists a new record. The stamp callback assigns
// the id and whichever timestamp fields the entity kind defines — that
// varies per kind, so it stays in the typed wrapper.
func createRecord[T any](s *Store, c *collection[T], rec T, stamp func(*T, time.Time)) (T, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	stamp(&rec, s.clock())
	c.append(rec)
	c.persistTo(s.kv)
	return rec, nil
}

// updateRecord merges a patch into an existing record via the typed merge
// callback, which also refreshes updatedAt where the entity has one.
// A missing id is a NotFound error naming the entity kind and id.
func updateRecord[T any](s *Store, c *collection[T], kind, id string, merge func(*T, time.Time)) (T, error) {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := c.find(id)
	if !ok {
		var zero T
		return zero, fmt.Errorf("store: %s %q: %w", kind, id, domain.ErrNotFound)
	}
	rec := c.records[i]
	merge(&rec, s.clock())
	c.replace(i, rec)
	c.persistTo(s.kv)
	return rec, nil
}

// deleteRecord is idempotent: deleting an id that is already gone is not an
// error and leaves the collection untouched.
func deleteRecord[T any](s *Store, c *collection[T], id string) error {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	if removed := c.removeWhere(func(rec T) bool { return c.idOf(rec) == id }); removed > 0 {
		c.persistTo(s.kv)
	}
	return nil
}
