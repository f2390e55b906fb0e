package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListSlips returns a copy of the slip collection.
func (s *Store) ListSlips(ctx context.Context) ([]domain.Slip, error) {
	return listAll(s, s.slips)
}

// GetSlip returns a single slip by id.
func (s *Store) GetSlip(ctx context.Context, id string) (domain.Slip, error) {
	return getByID(s, s.slips, "slip", id)
}

// CreateSlip assigns an id and both timestamps, then appends and persists.
func (s *Store) CreateSlip(ctx context.Context, sl domain.Slip) (domain.Slip, error) {
	return createRecord(s, s.slips, sl, func(sl *domain.Slip, now time.Time) {
		sl.ID = s.newID()
		sl.CreatedAt = now
		sl.UpdatedAt = now
	})
}

// UpdateSlip shallow-merges the patch and refreshes updatedAt.
func (s *Store) UpdateSlip(ctx context.Context, id string, patch domain.SlipPatch) (domain.Slip, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.Slip{}, fmt.Errorf("store.Store.UpdateSlip: %w", err)
	}
	return updateRecord(s, s.slips, "slip", id, func(sl *domain.Slip, now time.Time) {
		patch.Apply(sl)
		sl.UpdatedAt = now
	})
}

// DeleteSlip removes a slip. Assignments, payments, and slip reservations
// referencing it are left in place.
func (s *Store) DeleteSlip(ctx context.Context, id string) error {
	return deleteRecord(s, s.slips, id)
}
