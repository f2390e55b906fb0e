package query

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// Equipment returns all equipment, cached under the kind key.
func (c *Client) Equipment(ctx context.Context) ([]domain.Equipment, error) {
	return cached(c, kindEquipment, func() ([]domain.Equipment, error) {
		return c.store.ListEquipment(ctx)
	})
}

// EquipmentItem returns one equipment record.
func (c *Client) EquipmentItem(ctx context.Context, id string) (domain.Equipment, error) {
	return cached(c, recordKey(kindEquipment, id), func() (domain.Equipment, error) {
		return c.store.GetEquipment(ctx, id)
	})
}

// CreateEquipment creates an equipment record and invalidates the list.
func (c *Client) CreateEquipment(ctx context.Context, e domain.Equipment) (domain.Equipment, error) {
	created, err := c.store.CreateEquipment(ctx, e)
	if err != nil {
		return domain.Equipment{}, err
	}
	c.invalidate(kindEquipment)
	return created, nil
}

// UpdateEquipment patches an equipment record.
func (c *Client) UpdateEquipment(ctx context.Context, id string, patch domain.EquipmentPatch) (domain.Equipment, error) {
	updated, err := c.store.UpdateEquipment(ctx, id, patch)
	if err != nil {
		return domain.Equipment{}, err
	}
	c.invalidate(kindEquipment, recordKey(kindEquipment, id))
	return updated, nil
}

// DeleteEquipment deletes an equipment record.
func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	if err := c.store.DeleteEquipment(ctx, id); err != nil {
		return err
	}
	c.invalidate(kindEquipment, recordKey(kindEquipment, id))
	return nil
}
