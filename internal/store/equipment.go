package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListEquipment returns a copy of the equipment collection.
func (s *Store) ListEquipment(ctx context.Context) ([]domain.Equipment, error) {
	return listAll(s, s.equipment)
}

// GetEquipment returns a single equipment record by id.
func (s *Store) GetEquipment(ctx context.Context, id string) (domain.Equipment, error) {
	return getByID(s, s.equipment, "equipment", id)
}

// CreateEquipment assigns an id and both timestamps, then appends and persists.
func (s *Store) CreateEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	return createRecord(s, s.equipment, e, func(e *domain.Equipment, now time.Time) {
		e.ID = s.newID()
		e.CreatedAt = now
		e.UpdatedAt = now
	})
}

// UpdateEquipment shallow-merges the patch and refreshes updatedAt.
func (s *Store) UpdateEquipment(ctx context.Context, id string, patch domain.EquipmentPatch) (domain.Equipment, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.Equipment{}, fmt.Errorf("store.Store.UpdateEquipment: %w", err)
	}
	return updateRecord(s, s.equipment, "equipment", id, func(e *domain.Equipment, now time.Time) {
		patch.Apply(e)
		e.UpdatedAt = now
	})
}

// DeleteEquipment removes an equipment record. No cascade: maintenance
// entries referencing the equipment stay.
func (s *Store) DeleteEquipment(ctx context.Context, id string) error {
	return deleteRecord(s, s.equipment, id)
}
