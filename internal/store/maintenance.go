package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListMaintenance returns a copy of the maintenance collection.
func (s *Store) ListMaintenance(ctx context.Context) ([]domain.MaintenanceEntry, error) {
	return listAll(s, s.maintenance)
}

// ListMaintenanceForBoat returns the entries whose boatId matches, in
// collection order. A linear filter is plenty at demo scale.
func (s *Store) ListMaintenanceForBoat(ctx context.Context, boatID string) ([]domain.MaintenanceEntry, error) {
	return listWhere(s, s.maintenance, func(m domain.MaintenanceEntry) bool { return m.BoatID == boatID })
}

// GetMaintenanceEntry returns a single maintenance entry by id.
func (s *Store) GetMaintenanceEntry(ctx context.Context, id string) (domain.MaintenanceEntry, error) {
	return getByID(s, s.maintenance, "maintenance entry", id)
}

// CreateMaintenanceEntry assigns an id and stamps reportedAt. ReportedAt is
// the entry's only store-managed timestamp; it is fixed here and never
// refreshed by updates.
func (s *Store) CreateMaintenanceEntry(ctx context.Context, m domain.MaintenanceEntry) (domain.MaintenanceEntry, error) {
	return createRecord(s, s.maintenance, m, func(m *domain.MaintenanceEntry, now time.Time) {
		m.ID = s.newID()
		m.ReportedAt = now
	})
}

// UpdateMaintenanceEntry shallow-merges the patch. Resolution fields
// (resolvedBy, resolvedAt) are ordinary patch fields the caller sets
// explicitly; the store derives nothing.
func (s *Store) UpdateMaintenanceEntry(ctx context.Context, id string, patch domain.MaintenanceEntryPatch) (domain.MaintenanceEntry, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.MaintenanceEntry{}, fmt.Errorf("store.Store.UpdateMaintenanceEntry: %w", err)
	}
	return updateRecord(s, s.maintenance, "maintenance entry", id, func(m *domain.MaintenanceEntry, _ time.Time) {
		patch.Apply(m)
	})
}

// DeleteMaintenanceEntry removes a maintenance entry.
func (s *Store) DeleteMaintenanceEntry(ctx context.Context, id string) error {
	return deleteRecord(s, s.maintenance, id)
}
