// Package service contains the business rules layered above the data store.
// Services validate inputs and apply cross-entity policy (the severity to
// boat-status coupling lives here, in MaintenanceService.ReportIssue); the
// store below them is policy-free, and the query layer in between keeps the
// cache honest. No storage mechanics live here.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
)

// BoatService implements business logic for Boat operations.
type BoatService struct {
	data *query.Client
}

// NewBoatService constructs a BoatService backed by the provided data client.
func NewBoatService(data *query.Client) *BoatService {
	return &BoatService{data: data}
}

// List returns all boats.
func (s *BoatService) List(ctx context.Context) ([]domain.Boat, error) {
	boats, err := s.data.Boats(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BoatService.List: %w", err)
	}
	return boats, nil
}

// GetByID returns a single boat by id.
func (s *BoatService) GetByID(ctx context.Context, id string) (domain.Boat, error) {
	b, err := s.data.Boat(ctx, id)
	if err != nil {
		return domain.Boat{}, fmt.Errorf("service.BoatService.GetByID: %w", err)
	}
	return b, nil
}

// Create validates and persists a new boat. A boat with no explicit status
// starts out OK.
func (s *BoatService) Create(ctx context.Context, b domain.Boat) (domain.Boat, error) {
	if strings.TrimSpace(b.DisplayName) == "" {
		return domain.Boat{}, fmt.Errorf("%w: displayName is required", domain.ErrValidation)
	}
	if b.Status == "" {
		b.Status = domain.BoatStatusOK
	}
	created, err := s.data.CreateBoat(ctx, b)
	if err != nil {
		return domain.Boat{}, fmt.Errorf("service.BoatService.Create: %w", err)
	}
	return created, nil
}

// Update applies a patch to an existing boat.
func (s *BoatService) Update(ctx context.Context, id string, patch domain.BoatPatch) (domain.Boat, error) {
	updated, err := s.data.UpdateBoat(ctx, id, patch)
	if err != nil {
		return domain.Boat{}, fmt.Errorf("service.BoatService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a boat (maintenance entries cascade in the store).
func (s *BoatService) Delete(ctx context.Context, id string) error {
	if err := s.data.DeleteBoat(ctx, id); err != nil {
		return fmt.Errorf("service.BoatService.Delete: %w", err)
	}
	return nil
}

// MarkOK is the manual "boat is fine again" action: it sets the status back
// to OK regardless of what it was.
func (s *BoatService) MarkOK(ctx context.Context, id string) (domain.Boat, error) {
	status := domain.BoatStatusOK
	updated, err := s.data.UpdateBoat(ctx, id, domain.BoatPatch{Status: &status})
	if err != nil {
		return domain.Boat{}, fmt.Errorf("service.BoatService.MarkOK: %w", err)
	}
	return updated, nil
}
