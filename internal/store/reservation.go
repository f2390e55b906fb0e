package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListReservations returns a copy of the boat reservation collection.
func (s *Store) ListReservations(ctx context.Context) ([]domain.Reservation, error) {
	return listAll(s, s.reservations)
}

// ListReservationsForBoat returns the reservations whose boatId matches.
func (s *Store) ListReservationsForBoat(ctx context.Context, boatID string) ([]domain.Reservation, error) {
	return listWhere(s, s.reservations, func(r domain.Reservation) bool { return r.BoatID == boatID })
}

// GetReservation returns a single reservation by id.
func (s *Store) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	return getByID(s, s.reservations, "reservation", id)
}

// CreateReservation assigns an id and stamps createdAt. Reservations have no
// updatedAt.
func (s *Store) CreateReservation(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	return createRecord(s, s.reservations, r, func(r *domain.Reservation, now time.Time) {
		r.ID = s.newID()
		r.CreatedAt = now
	})
}

// UpdateReservation shallow-merges the patch onto the stored reservation.
func (s *Store) UpdateReservation(ctx context.Context, id string, patch domain.ReservationPatch) (domain.Reservation, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.Reservation{}, fmt.Errorf("store.Store.UpdateReservation: %w", err)
	}
	return updateRecord(s, s.reservations, "reservation", id, func(r *domain.Reservation, _ time.Time) {
		patch.Apply(r)
	})
}

// DeleteReservation removes a reservation.
func (s *Store) DeleteReservation(ctx context.Context, id string) error {
	return deleteRecord(s, s.reservations, id)
}
