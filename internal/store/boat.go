package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListBoats returns a copy of the boat collection.
func (s *Store) ListBoats(ctx context.Context) ([]domain.Boat, error) {
	return listAll(s, s.boats)
}

// GetBoat returns a single boat by id, or domain.ErrNotFound.
func (s *Store) GetBoat(ctx context.Context, id string) (domain.Boat, error) {
	return getByID(s, s.boats, "boat", id)
}

// CreateBoat assigns an id and both timestamps, then appends and persists.
// Whatever id or timestamps the caller set on b are discarded.
func (s *Store) CreateBoat(ctx context.Context, b domain.Boat) (domain.Boat, error) {
	return createRecord(s, s.boats, b, func(b *domain.Boat, now time.Time) {
		b.ID = s.newID()
		b.CreatedAt = now
		b.UpdatedAt = now
	})
}

// UpdateBoat shallow-merges the patch onto the stored boat and refreshes
// updatedAt. CreatedAt and the id are never touched.
func (s *Store) UpdateBoat(ctx context.Context, id string, patch domain.BoatPatch) (domain.Boat, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.Boat{}, fmt.Errorf("store.Store.UpdateBoat: %w", err)
	}
	return updateRecord(s, s.boats, "boat", id, func(b *domain.Boat, now time.Time) {
		patch.Apply(b)
		b.UpdatedAt = now
	})
}

// DeleteBoat removes the boat and cascades into the maintenance collection:
// every entry whose boatId references the deleted boat goes with it.
// Reservations and slip-boat assignments referencing the boat are left in
// place. Deleting an unknown id is a no-op.
func (s *Store) DeleteBoat(ctx context.Context, id string) error {
	s.simulateLatency()
	s.mu.Lock()
	defer s.mu.Unlock()
	if removed := s.boats.removeWhere(func(b domain.Boat) bool { return b.ID == id }); removed > 0 {
		s.boats.persistTo(s.kv)
	}
	if removed := s.maintenance.removeWhere(func(m domain.MaintenanceEntry) bool { return m.BoatID == id }); removed > 0 {
		s.maintenance.persistTo(s.kv)
	}
	return nil
}
