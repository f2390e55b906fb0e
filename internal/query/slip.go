package query

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// Slips returns all slips.
func (c *Client) Slips(ctx context.Context) ([]domain.Slip, error) {
	return cached(c, kindSlips, func() ([]domain.Slip, error) {
		return c.store.ListSlips(ctx)
	})
}

// Slip returns one slip.
func (c *Client) Slip(ctx context.Context, id string) (domain.Slip, error) {
	return cached(c, recordKey(kindSlips, id), func() (domain.Slip, error) {
		return c.store.GetSlip(ctx, id)
	})
}

// CreateSlip creates a slip and invalidates the slip list.
func (c *Client) CreateSlip(ctx context.Context, sl domain.Slip) (domain.Slip, error) {
	created, err := c.store.CreateSlip(ctx, sl)
	if err != nil {
		return domain.Slip{}, err
	}
	c.invalidate(kindSlips)
	return created, nil
}

// UpdateSlip patches a slip.
func (c *Client) UpdateSlip(ctx context.Context, id string, patch domain.SlipPatch) (domain.Slip, error) {
	updated, err := c.store.UpdateSlip(ctx, id, patch)
	if err != nil {
		return domain.Slip{}, err
	}
	c.invalidate(kindSlips, recordKey(kindSlips, id))
	return updated, nil
}

// DeleteSlip deletes a slip. No cascade, so only slip keys go stale.
func (c *Client) DeleteSlip(ctx context.Context, id string) error {
	if err := c.store.DeleteSlip(ctx, id); err != nil {
		return err
	}
	c.invalidate(kindSlips, recordKey(kindSlips, id))
	return nil
}

// SlipMembers returns all marina members.
func (c *Client) SlipMembers(ctx context.Context) ([]domain.SlipMember, error) {
	return cached(c, kindSlipMembers, func() ([]domain.SlipMember, error) {
		return c.store.ListSlipMembers(ctx)
	})
}

// SlipMember returns one member.
func (c *Client) SlipMember(ctx context.Context, id string) (domain.SlipMember, error) {
	return cached(c, recordKey(kindSlipMembers, id), func() (domain.SlipMember, error) {
		return c.store.GetSlipMember(ctx, id)
	})
}

// CreateSlipMember creates a member and invalidates the member list.
func (c *Client) CreateSlipMember(ctx context.Context, m domain.SlipMember) (domain.SlipMember, error) {
	created, err := c.store.CreateSlipMember(ctx, m)
	if err != nil {
		return domain.SlipMember{}, err
	}
	c.invalidate(kindSlipMembers)
	return created, nil
}

// UpdateSlipMember patches a member.
func (c *Client) UpdateSlipMember(ctx context.Context, id string, patch domain.SlipMemberPatch) (domain.SlipMember, error) {
	updated, err := c.store.UpdateSlipMember(ctx, id, patch)
	if err != nil {
		return domain.SlipMember{}, err
	}
	c.invalidate(kindSlipMembers, recordKey(kindSlipMembers, id))
	return updated, nil
}

// DeleteSlipMember deletes a member.
func (c *Client) DeleteSlipMember(ctx context.Context, id string) error {
	if err := c.store.DeleteSlipMember(ctx, id); err != nil {
		return err
	}
	c.invalidate(kindSlipMembers, recordKey(kindSlipMembers, id))
	return nil
}

// SlipMemberAssignments returns all member assignment rows.
func (c *Client) SlipMemberAssignments(ctx context.Context) ([]domain.SlipMemberAssignment, error) {
	return cached(c, kindMemberAssignments, func() ([]domain.SlipMemberAssignment, error) {
		return c.store.ListSlipMemberAssignments(ctx)
	})
}

// SlipMemberAssignmentsForSlip returns the member assignments for one slip.
func (c *Client) SlipMemberAssignmentsForSlip(ctx context.Context, slipID string) ([]domain.SlipMemberAssignment, error) {
	return cached(c, scopedKey(kindMemberAssignments, "slip", slipID), func() ([]domain.SlipMemberAssignment, error) {
		return c.store.ListSlipMemberAssignmentsForSlip(ctx, slipID)
	})
}

// SlipMemberAssignment returns one member assignment row.
func (c *Client) SlipMemberAssignment(ctx context.Context, id string) (domain.SlipMemberAssignment, error) {
	return cached(c, recordKey(kindMemberAssignments, id), func() (domain.SlipMemberAssignment, error) {
		return c.store.GetSlipMemberAssignment(ctx, id)
	})
}

// CreateSlipMemberAssignment creates an assignment row and invalidates the
// global list and the slip-scoped list.
func (c *Client) CreateSlipMemberAssignment(ctx context.Context, a domain.SlipMemberAssignment) (domain.SlipMemberAssignment, error) {
	created, err := c.store.CreateSlipMemberAssignment(ctx, a)
	if err != nil {
		return domain.SlipMemberAssignment{}, err
	}
	c.invalidate(kindMemberAssignments, scopedKey(kindMemberAssignments, "slip", created.SlipID))
	return created, nil
}

// DeleteSlipMemberAssignment deletes an assignment row.
func (c *Client) DeleteSlipMemberAssignment(ctx context.Context, id string) error {
	if err := c.store.DeleteSlipMemberAssignment(ctx, id); err != nil {
		return err
	}
	c.invalidatePrefix(kindMemberAssignments)
	return nil
}

// SlipBoatAssignments returns all boat assignment rows.
func (c *Client) SlipBoatAssignments(ctx context.Context) ([]domain.SlipBoatAssignment, error) {
	return cached(c, kindBoatAssignments, func() ([]domain.SlipBoatAssignment, error) {
		return c.store.ListSlipBoatAssignments(ctx)
	})
}

// SlipBoatAssignmentsForSlip returns the boat assignments for one slip.
func (c *Client) SlipBoatAssignmentsForSlip(ctx context.Context, slipID string) ([]domain.SlipBoatAssignment, error) {
	return cached(c, scopedKey(kindBoatAssignments, "slip", slipID), func() ([]domain.SlipBoatAssignment, error) {
		return c.store.ListSlipBoatAssignmentsForSlip(ctx, slipID)
	})
}

// SlipBoatAssignment returns one boat assignment row.
func (c *Client) SlipBoatAssignment(ctx context.Context, id string) (domain.SlipBoatAssignment, error) {
	return cached(c, recordKey(kindBoatAssignments, id), func() (domain.SlipBoatAssignment, error) {
		return c.store.GetSlipBoatAssignment(ctx, id)
	})
}

// CreateSlipBoatAssignment creates an assignment row.
func (c *Client) CreateSlipBoatAssignment(ctx context.Context, a domain.SlipBoatAssignment) (domain.SlipBoatAssignment, error) {
	created, err := c.store.CreateSlipBoatAssignment(ctx, a)
	if err != nil {
		return domain.SlipBoatAssignment{}, err
	}
	c.invalidate(kindBoatAssignments, scopedKey(kindBoatAssignments, "slip", created.SlipID))
	return created, nil
}

// DeleteSlipBoatAssignment deletes an assignment row.
func (c *Client) DeleteSlipBoatAssignment(ctx context.Context, id string) error {
	if err := c.store.DeleteSlipBoatAssignment(ctx, id); err != nil {
		return err
	}
	c.invalidatePrefix(kindBoatAssignments)
	return nil
}

// SlipPayments returns all payment rows.
func (c *Client) SlipPayments(ctx context.Context) ([]domain.SlipPayment, error) {
	return cached(c, kindSlipPayments, func() ([]domain.SlipPayment, error) {
		return c.store.ListSlipPayments(ctx)
	})
}

// SlipPaymentsForSlip returns the payments for one slip.
func (c *Client) SlipPaymentsForSlip(ctx context.Context, slipID string) ([]domain.SlipPayment, error) {
	return cached(c, scopedKey(kindSlipPayments, "slip", slipID), func() ([]domain.SlipPayment, error) {
		return c.store.ListSlipPaymentsForSlip(ctx, slipID)
	})
}

// CreateSlipPayment creates a payment and invalidates the global and
// slip-scoped lists.
func (c *Client) CreateSlipPayment(ctx context.Context, p domain.SlipPayment) (domain.SlipPayment, error) {
	created, err := c.store.CreateSlipPayment(ctx, p)
	if err != nil {
		return domain.SlipPayment{}, err
	}
	c.invalidate(kindSlipPayments, scopedKey(kindSlipPayments, "slip", created.SlipID))
	return created, nil
}

// UpdateSlipPayment patches a payment.
func (c *Client) UpdateSlipPayment(ctx context.Context, id string, patch domain.SlipPaymentPatch) (domain.SlipPayment, error) {
	updated, err := c.store.UpdateSlipPayment(ctx, id, patch)
	if err != nil {
		return domain.SlipPayment{}, err
	}
	c.invalidate(kindSlipPayments, recordKey(kindSlipPayments, id),
		scopedKey(kindSlipPayments, "slip", updated.SlipID))
	return updated, nil
}

// DeleteSlipPayment deletes a payment.
func (c *Client) DeleteSlipPayment(ctx context.Context, id string) error {
	if err := c.store.DeleteSlipPayment(ctx, id); err != nil {
		return err
	}
	c.invalidatePrefix(kindSlipPayments)
	return nil
}

// SlipReservations returns all slip reservations.
func (c *Client) SlipReservations(ctx context.Context) ([]domain.SlipReservation, error) {
	return cached(c, kindSlipReservations, func() ([]domain.SlipReservation, error) {
		return c.store.ListSlipReservations(ctx)
	})
}

// SlipReservationsForSlip returns the reservations for one slip.
func (c *Client) SlipReservationsForSlip(ctx context.Context, slipID string) ([]domain.SlipReservation, error) {
	return cached(c, scopedKey(kindSlipReservations, "slip", slipID), func() ([]domain.SlipReservation, error) {
		return c.store.ListSlipReservationsForSlip(ctx, slipID)
	})
}

// CreateSlipReservation creates a slip reservation.
func (c *Client) CreateSlipReservation(ctx context.Context, r domain.SlipReservation) (domain.SlipReservation, error) {
	created, err := c.store.CreateSlipReservation(ctx, r)
	if err != nil {
		return domain.SlipReservation{}, err
	}
	c.invalidate(kindSlipReservations, scopedKey(kindSlipReservations, "slip", created.SlipID))
	return created, nil
}

// UpdateSlipReservation patches a slip reservation.
func (c *Client) UpdateSlipReservation(ctx context.Context, id string, patch domain.SlipReservationPatch) (domain.SlipReservation, error) {
	updated, err := c.store.UpdateSlipReservation(ctx, id, patch)
	if err != nil {
		return domain.SlipReservation{}, err
	}
	c.invalidate(kindSlipReservations, recordKey(kindSlipReservations, id),
		scopedKey(kindSlipReservations, "slip", updated.SlipID))
	return updated, nil
}

// DeleteSlipReservation deletes a slip reservation.
func (c *Client) DeleteSlipReservation(ctx context.Context, id string) error {
	if err := c.store.DeleteSlipReservation(ctx, id); err != nil {
		return err
	}
	c.invalidatePrefix(kindSlipReservations)
	return nil
}
