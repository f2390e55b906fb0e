package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListSlipReservations returns a copy of the slip reservation collection.
func (s *Store) ListSlipReservations(ctx context.Context) ([]domain.SlipReservation, error) {
	return listAll(s, s.slipReservations)
}

// ListSlipReservationsForSlip returns the reservations against one slip.
func (s *Store) ListSlipReservationsForSlip(ctx context.Context, slipID string) ([]domain.SlipReservation, error) {
	return listWhere(s, s.slipReservations, func(r domain.SlipReservation) bool { return r.SlipID == slipID })
}

// GetSlipReservation returns a single slip reservation by id.
func (s *Store) GetSlipReservation(ctx context.Context, id string) (domain.SlipReservation, error) {
	return getByID(s, s.slipReservations, "slip reservation", id)
}

// CreateSlipReservation assigns an id and stamps createdAt.
func (s *Store) CreateSlipReservation(ctx context.Context, r domain.SlipReservation) (domain.SlipReservation, error) {
	return createRecord(s, s.slipReservations, r, func(r *domain.SlipReservation, now time.Time) {
		r.ID = s.newID()
		r.CreatedAt = now
	})
}

// UpdateSlipReservation shallow-merges the patch.
func (s *Store) UpdateSlipReservation(ctx context.Context, id string, patch domain.SlipReservationPatch) (domain.SlipReservation, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.SlipReservation{}, fmt.Errorf("store.Store.UpdateSlipReservation: %w", err)
	}
	return updateRecord(s, s.slipReservations, "slip reservation", id, func(r *domain.SlipReservation, _ time.Time) {
		patch.Apply(r)
	})
}

// DeleteSlipReservation removes a slip reservation.
func (s *Store) DeleteSlipReservation(ctx context.Context, id string) error {
	return deleteRecord(s, s.slipReservations, id)
}
