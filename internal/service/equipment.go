package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
)

// EquipmentService implements business logic for Equipment operations.
type EquipmentService struct {
	data *query.Client
}

// NewEquipmentService constructs an EquipmentService.
func NewEquipmentService(data *query.Client) *EquipmentService {
	return &EquipmentService{data: data}
}

// List returns all equipment.
func (s *EquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	items, err := s.data.Equipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EquipmentService.List: %w", err)
	}
	return items, nil
}

// GetByID returns a single equipment record.
func (s *EquipmentService) GetByID(ctx context.Context, id string) (domain.Equipment, error) {
	e, err := s.data.EquipmentItem(ctx, id)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("service.EquipmentService.GetByID: %w", err)
	}
	return e, nil
}

// Create validates and persists a new equipment record.
func (s *EquipmentService) Create(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	if strings.TrimSpace(e.Name) == "" {
		return domain.Equipment{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if e.Status == "" {
		e.Status = domain.EquipmentStatusAvailable
	}
	created, err := s.data.CreateEquipment(ctx, e)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("service.EquipmentService.Create: %w", err)
	}
	return created, nil
}

// Update applies a patch to an existing equipment record.
func (s *EquipmentService) Update(ctx context.Context, id string, patch domain.EquipmentPatch) (domain.Equipment, error) {
	updated, err := s.data.UpdateEquipment(ctx, id, patch)
	if err != nil {
		return domain.Equipment{}, fmt.Errorf("service.EquipmentService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an equipment record.
func (s *EquipmentService) Delete(ctx context.Context, id string) error {
	if err := s.data.DeleteEquipment(ctx, id); err != nil {
		return fmt.Errorf("service.EquipmentService.Delete: %w", err)
	}
	return nil
}
