package query

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// Reservations returns all boat reservations.
func (c *Client) Reservations(ctx context.Context) ([]domain.Reservation, error) {
	return cached(c, kindReservations, func() ([]domain.Reservation, error) {
		return c.store.ListReservations(ctx)
	})
}

// ReservationsForBoat returns the reservations for one boat.
func (c *Client) ReservationsForBoat(ctx context.Context, boatID string) ([]domain.Reservation, error) {
	return cached(c, scopedKey(kindReservations, "boat", boatID), func() ([]domain.Reservation, error) {
		return c.store.ListReservationsForBoat(ctx, boatID)
	})
}

// Reservation returns one reservation.
func (c *Client) Reservation(ctx context.Context, id string) (domain.Reservation, error) {
	return cached(c, recordKey(kindReservations, id), func() (domain.Reservation, error) {
		return c.store.GetReservation(ctx, id)
	})
}

// CreateReservation creates a reservation and invalidates the global list
// and the boat-scoped list.
func (c *Client) CreateReservation(ctx context.Context, r domain.Reservation) (domain.Reservation, error) {
	created, err := c.store.CreateReservation(ctx, r)
	if err != nil {
		return domain.Reservation{}, err
	}
	c.invalidate(kindReservations, scopedKey(kindReservations, "boat", created.BoatID))
	return created, nil
}

// UpdateReservation patches a reservation.
func (c *Client) UpdateReservation(ctx context.Context, id string, patch domain.ReservationPatch) (domain.Reservation, error) {
	updated, err := c.store.UpdateReservation(ctx, id, patch)
	if err != nil {
		return domain.Reservation{}, err
	}
	if patch.BoatID != nil {
		c.invalidatePrefix(kindReservations)
	} else {
		c.invalidate(kindReservations, recordKey(kindReservations, id),
			scopedKey(kindReservations, "boat", updated.BoatID))
	}
	return updated, nil
}

// DeleteReservation deletes a reservation.
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	if err := c.store.DeleteReservation(ctx, id); err != nil {
		return err
	}
	c.invalidatePrefix(kindReservations)
	return nil
}
