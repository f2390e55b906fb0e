package query

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// Maintenance returns all maintenance entries.
func (c *Client) Maintenance(ctx context.Context) ([]domain.MaintenanceEntry, error) {
	return cached(c, kindMaintenance, func() ([]domain.MaintenanceEntry, error) {
		return c.store.ListMaintenance(ctx)
	})
}

// MaintenanceForBoat returns the entries for one boat, cached under the
// boat-scoped key.
func (c *Client) MaintenanceForBoat(ctx context.Context, boatID string) ([]domain.MaintenanceEntry, error) {
	return cached(c, scopedKey(kindMaintenance, "boat", boatID), func() ([]domain.MaintenanceEntry, error) {
		return c.store.ListMaintenanceForBoat(ctx, boatID)
	})
}

// MaintenanceEntry returns one entry.
func (c *Client) MaintenanceEntry(ctx context.Context, id string) (domain.MaintenanceEntry, error) {
	return cached(c, recordKey(kindMaintenance, id), func() (domain.MaintenanceEntry, error) {
		return c.store.GetMaintenanceEntry(ctx, id)
	})
}

// CreateMaintenanceEntry creates an entry and invalidates both the global
// maintenance list and the subject boat's scoped list.
func (c *Client) CreateMaintenanceEntry(ctx context.Context, m domain.MaintenanceEntry) (domain.MaintenanceEntry, error) {
	created, err := c.store.CreateMaintenanceEntry(ctx, m)
	if err != nil {
		return domain.MaintenanceEntry{}, err
	}
	c.invalidate(kindMaintenance, scopedKey(kindMaintenance, "boat", created.BoatID))
	return created, nil
}

// UpdateMaintenanceEntry patches an entry. The patch may move the entry to
// a different boat, so both the record's current boat-scoped list and the
// global list are invalidated, plus every boat-scoped list as a safety net
// when boatId changed.
func (c *Client) UpdateMaintenanceEntry(ctx context.Context, id string, patch domain.MaintenanceEntryPatch) (domain.MaintenanceEntry, error) {
	updated, err := c.store.UpdateMaintenanceEntry(ctx, id, patch)
	if err != nil {
		return domain.MaintenanceEntry{}, err
	}
	if patch.BoatID != nil {
		c.invalidatePrefix(kindMaintenance)
	} else {
		c.invalidate(kindMaintenance, recordKey(kindMaintenance, id),
			scopedKey(kindMaintenance, "boat", updated.BoatID))
	}
	return updated, nil
}

// DeleteMaintenanceEntry deletes an entry. The entry is gone by the time we
// would read its boatId, so all maintenance keys are invalidated.
func (c *Client) DeleteMaintenanceEntry(ctx context.Context, id string) error {
	if err := c.store.DeleteMaintenanceEntry(ctx, id); err != nil {
		return err
	}
	c.invalidatePrefix(kindMaintenance)
	return nil
}
