package query

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// Boats returns all boats, cached under the kind key.
func (c *Client) Boats(ctx context.Context) ([]domain.Boat, error) {
	return cached(c, kindBoats, func() ([]domain.Boat, error) {
		return c.store.ListBoats(ctx)
	})
}

// Boat returns one boat, cached under its record key.
func (c *Client) Boat(ctx context.Context, id string) (domain.Boat, error) {
	return cached(c, recordKey(kindBoats, id), func() (domain.Boat, error) {
		return c.store.GetBoat(ctx, id)
	})
}

// CreateBoat creates a boat and invalidates the boat list.
func (c *Client) CreateBoat(ctx context.Context, b domain.Boat) (domain.Boat, error) {
	created, err := c.store.CreateBoat(ctx, b)
	if err != nil {
		return domain.Boat{}, err
	}
	c.invalidate(kindBoats)
	return created, nil
}

// UpdateBoat patches a boat and invalidates the list and the record key.
func (c *Client) UpdateBoat(ctx context.Context, id string, patch domain.BoatPatch) (domain.Boat, error) {
	updated, err := c.store.UpdateBoat(ctx, id, patch)
	if err != nil {
		return domain.Boat{}, err
	}
	c.invalidate(kindBoats, recordKey(kindBoats, id))
	return updated, nil
}

// DeleteBoat deletes a boat. Besides the boat keys, every maintenance key is
// invalidated because the store cascades the delete into that collection.
func (c *Client) DeleteBoat(ctx context.Context, id string) error {
	if err := c.store.DeleteBoat(ctx, id); err != nil {
		return err
	}
	c.invalidate(kindBoats, recordKey(kindBoats, id))
	c.invalidatePrefix(kindMaintenance)
	return nil
}
