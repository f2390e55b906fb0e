package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListSlipPayments returns a copy of the payment collection.
func (s *Store) ListSlipPayments(ctx context.Context) ([]domain.SlipPayment, error) {
	return listAll(s, s.slipPayments)
}

// ListSlipPaymentsForSlip returns the payments recorded against one slip.
func (s *Store) ListSlipPaymentsForSlip(ctx context.Context, slipID string) ([]domain.SlipPayment, error) {
	return listWhere(s, s.slipPayments, func(p domain.SlipPayment) bool { return p.SlipID == slipID })
}

// GetSlipPayment returns a single payment by id.
func (s *Store) GetSlipPayment(ctx context.Context, id string) (domain.SlipPayment, error) {
	return getByID(s, s.slipPayments, "slip payment", id)
}

// CreateSlipPayment assigns an id and stamps createdAt.
func (s *Store) CreateSlipPayment(ctx context.Context, p domain.SlipPayment) (domain.SlipPayment, error) {
	return createRecord(s, s.slipPayments, p, func(p *domain.SlipPayment, now time.Time) {
		p.ID = s.newID()
		p.CreatedAt = now
	})
}

// UpdateSlipPayment shallow-merges the patch.
func (s *Store) UpdateSlipPayment(ctx context.Context, id string, patch domain.SlipPaymentPatch) (domain.SlipPayment, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.SlipPayment{}, fmt.Errorf("store.Store.UpdateSlipPayment: %w", err)
	}
	return updateRecord(s, s.slipPayments, "slip payment", id, func(p *domain.SlipPayment, _ time.Time) {
		patch.Apply(p)
	})
}

// DeleteSlipPayment removes a payment row.
func (s *Store) DeleteSlipPayment(ctx context.Context, id string) error {
	return deleteRecord(s, s.slipPayments, id)
}
