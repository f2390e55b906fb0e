package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
)

// ReservationService implements business logic for boat reservations.
type ReservationService struct {
	data *query.Client
}

// NewReservationService constructs a ReservationService.
func NewReservationService(data *query.Client) *ReservationService {
	return &ReservationService{data: data}
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.data.Reservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.List: %w", err)
	}
	return reservations, nil
}

// ListByBoatID returns the reservations for one boat.
func (s *ReservationService) ListByBoatID(ctx context.Context, boatID string) ([]domain.Reservation, error) {
	reservations, err := s.data.ReservationsForBoat(ctx, boatID)
	if err != nil {
		return nil, fmt.Errorf("service.ReservationService.ListByBoatID: %w", err)
	}
	return reservations, nil
}

// GetByID returns a single reservation.
func (s *ReservationService) GetByID(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := s.data.Reservation(ctx, id)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.GetByID: %w", err)
	}
	return r, nil
}

// Create validates the reservation, verifies the boat exists, then persists.
// Returns domain.ErrNotFound when the boat does not exist.
func (s *ReservationService) Create(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	if err := validateReservation(r); err != nil {
		return domain.Reservation{}, err
	}
	if _, err := s.data.Boat(ctx, r.BoatID); err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	created, err := s.data.CreateReservation(ctx, r)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Create: %w", err)
	}
	return created, nil
}

// Update applies a patch to an existing reservation.
func (s *ReservationService) Update(ctx context.Context, id string, patch domain.ReservationPatch) (domain.Reservation, error) {
	if patch.StartDate != nil && patch.EndDate != nil && patch.EndDate.Before(*patch.StartDate) {
		return domain.Reservation{}, fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	updated, err := s.data.UpdateReservation(ctx, id, patch)
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("service.ReservationService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a reservation.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if err := s.data.DeleteReservation(ctx, id); err != nil {
		return fmt.Errorf("service.ReservationService.Delete: %w", err)
	}
	return nil
}

// validateReservation enforces the rules common to reservation creation.
//   - ReservedBy and Email must be non-empty.
//   - EndDate must not be before StartDate.
func validateReservation(r domain.Reservation) error {
	if strings.TrimSpace(r.ReservedBy) == "" {
		return fmt.Errorf("%w: reservedBy is required", domain.ErrValidation)
	}
	if strings.TrimSpace(r.Email) == "" {
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if r.EndDate.Before(r.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	return nil
}
