package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
)

// SlipService implements business logic for the marina domain: slips,
// members, assignment rows, payments, and slip reservations. It is one
// service because assignments and payments always need the parent slip
// checked, and splitting five near-trivial services would add nothing.
type SlipService struct {
	data *query.Client
}

// NewSlipService constructs a SlipService.
func NewSlipService(data *query.Client) *SlipService {
	return &SlipService{data: data}
}

// --- slips ------------------------------------------------------------------

// ListSlips returns all slips.
func (s *SlipService) ListSlips(ctx context.Context) ([]domain.Slip, error) {
	slips, err := s.data.Slips(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SlipService.ListSlips: %w", err)
	}
	return slips, nil
}

// GetSlip returns a single slip.
func (s *SlipService) GetSlip(ctx context.Context, id string) (domain.Slip, error) {
	sl, err := s.data.Slip(ctx, id)
	if err != nil {
		return domain.Slip{}, fmt.Errorf("service.SlipService.GetSlip: %w", err)
	}
	return sl, nil
}

// CreateSlip validates and persists a new slip.
func (s *SlipService) CreateSlip(ctx context.Context, sl domain.Slip) (domain.Slip, error) {
	if strings.TrimSpace(sl.Number) == "" {
		return domain.Slip{}, fmt.Errorf("%w: number is required", domain.ErrValidation)
	}
	if sl.Status == "" {
		sl.Status = domain.SlipAvailable
	}
	created, err := s.data.CreateSlip(ctx, sl)
	if err != nil {
		return domain.Slip{}, fmt.Errorf("service.SlipService.CreateSlip: %w", err)
	}
	return created, nil
}

// UpdateSlip applies a patch to an existing slip.
func (s *SlipService) UpdateSlip(ctx context.Context, id string, patch domain.SlipPatch) (domain.Slip, error) {
	updated, err := s.data.UpdateSlip(ctx, id, patch)
	if err != nil {
		return domain.Slip{}, fmt.Errorf("service.SlipService.UpdateSlip: %w", err)
	}
	return updated, nil
}

// DeleteSlip removes a slip.
func (s *SlipService) DeleteSlip(ctx context.Context, id string) error {
	if err := s.data.DeleteSlip(ctx, id); err != nil {
		return fmt.Errorf("service.SlipService.DeleteSlip: %w", err)
	}
	return nil
}

// --- members ----------------------------------------------------------------

// ListMembers returns all marina members.
func (s *SlipService) ListMembers(ctx context.Context) ([]domain.SlipMember, error) {
	members, err := s.data.SlipMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SlipService.ListMembers: %w", err)
	}
	return members, nil
}

// GetMember returns a single member.
func (s *SlipService) GetMember(ctx context.Context, id string) (domain.SlipMember, error) {
	m, err := s.data.SlipMember(ctx, id)
	if err != nil {
		return domain.SlipMember{}, fmt.Errorf("service.SlipService.GetMember: %w", err)
	}
	return m, nil
}

// CreateMember validates and persists a new member.
func (s *SlipService) CreateMember(ctx context.Context, m domain.SlipMember) (domain.SlipMember, error) {
	if strings.TrimSpace(m.Name) == "" {
		return domain.SlipMember{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(m.Email) == "" {
		return domain.SlipMember{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	created, err := s.data.CreateSlipMember(ctx, m)
	if err != nil {
		return domain.SlipMember{}, fmt.Errorf("service.SlipService.CreateMember: %w", err)
	}
	return created, nil
}

// UpdateMember applies a patch to an existing member.
func (s *SlipService) UpdateMember(ctx context.Context, id string, patch domain.SlipMemberPatch) (domain.SlipMember, error) {
	updated, err := s.data.UpdateSlipMember(ctx, id, patch)
	if err != nil {
		return domain.SlipMember{}, fmt.Errorf("service.SlipService.UpdateMember: %w", err)
	}
	return updated, nil
}

// DeleteMember removes a member.
func (s *SlipService) DeleteMember(ctx context.Context, id string) error {
	if err := s.data.DeleteSlipMember(ctx, id); err != nil {
		return fmt.Errorf("service.SlipService.DeleteMember: %w", err)
	}
	return nil
}

// --- assignments ------------------------------------------------------------

// ListMemberAssignments returns the member assignments for one slip.
func (s *SlipService) ListMemberAssignments(ctx context.Context, slipID string) ([]domain.SlipMemberAssignment, error) {
	rows, err := s.data.SlipMemberAssignmentsForSlip(ctx, slipID)
	if err != nil {
		return nil, fmt.Errorf("service.SlipService.ListMemberAssignments: %w", err)
	}
	return rows, nil
}

// GetMemberAssignment returns one member assignment row.
func (s *SlipService) GetMemberAssignment(ctx context.Context, id string) (domain.SlipMemberAssignment, error) {
	a, err := s.data.SlipMemberAssignment(ctx, id)
	if err != nil {
		return domain.SlipMemberAssignment{}, fmt.Errorf("service.SlipService.GetMemberAssignment: %w", err)
	}
	return a, nil
}

// AssignMember links a member to a slip after verifying both exist.
// Duplicate assignments are allowed — the store keeps join rows as-is.
func (s *SlipService) AssignMember(ctx context.Context, a domain.SlipMemberAssignment) (domain.SlipMemberAssignment, error) {
	if _, err := s.data.Slip(ctx, a.SlipID); err != nil {
		return domain.SlipMemberAssignment{}, fmt.Errorf("service.SlipService.AssignMember: %w", err)
	}
	if _, err := s.data.SlipMember(ctx, a.MemberID); err != nil {
		return domain.SlipMemberAssignment{}, fmt.Errorf("service.SlipService.AssignMember: %w", err)
	}
	created, err := s.data.CreateSlipMemberAssignment(ctx, a)
	if err != nil {
		return domain.SlipMemberAssignment{}, fmt.Errorf("service.SlipService.AssignMember: %w", err)
	}
	return created, nil
}

// UnassignMember removes a member assignment row.
func (s *SlipService) UnassignMember(ctx context.Context, id string) error {
	if err := s.data.DeleteSlipMemberAssignment(ctx, id); err != nil {
		return fmt.Errorf("service.SlipService.UnassignMember: %w", err)
	}
	return nil
}

// ListBoatAssignments returns the boat assignments for one slip.
func (s *SlipService) ListBoatAssignments(ctx context.Context, slipID string) ([]domain.SlipBoatAssignment, error) {
	rows, err := s.data.SlipBoatAssignmentsForSlip(ctx, slipID)
	if err != nil {
		return nil, fmt.Errorf("service.SlipService.ListBoatAssignments: %w", err)
	}
	return rows, nil
}

// GetBoatAssignment returns one boat assignment row.
func (s *SlipService) GetBoatAssignment(ctx context.Context, id string) (domain.SlipBoatAssignment, error) {
	a, err := s.data.SlipBoatAssignment(ctx, id)
	if err != nil {
		return domain.SlipBoatAssignment{}, fmt.Errorf("service.SlipService.GetBoatAssignment: %w", err)
	}
	return a, nil
}

// AssignBoat links a boat to a slip after verifying both exist.
func (s *SlipService) AssignBoat(ctx context.Context, a domain.SlipBoatAssignment) (domain.SlipBoatAssignment, error) {
	if _, err := s.data.Slip(ctx, a.SlipID); err != nil {
		return domain.SlipBoatAssignment{}, fmt.Errorf("service.SlipService.AssignBoat: %w", err)
	}
	if _, err := s.data.Boat(ctx, a.BoatID); err != nil {
		return domain.SlipBoatAssignment{}, fmt.Errorf("service.SlipService.AssignBoat: %w", err)
	}
	created, err := s.data.CreateSlipBoatAssignment(ctx, a)
	if err != nil {
		return domain.SlipBoatAssignment{}, fmt.Errorf("service.SlipService.AssignBoat: %w", err)
	}
	return created, nil
}

// UnassignBoat removes a boat assignment row.
func (s *SlipService) UnassignBoat(ctx context.Context, id string) error {
	if err := s.data.DeleteSlipBoatAssignment(ctx, id); err != nil {
		return fmt.Errorf("service.SlipService.UnassignBoat: %w", err)
	}
	return nil
}

// --- payments ---------------------------------------------------------------

// ListPayments returns the payments for one slip.
func (s *SlipService) ListPayments(ctx context.Context, slipID string) ([]domain.SlipPayment, error) {
	payments, err := s.data.SlipPaymentsForSlip(ctx, slipID)
	if err != nil {
		return nil, fmt.Errorf("service.SlipService.ListPayments: %w", err)
	}
	return payments, nil
}

// RecordPayment validates and persists a payment against a slip.
func (s *SlipService) RecordPayment(ctx context.Context, p domain.SlipPayment) (domain.SlipPayment, error) {
	if p.Amount <= 0 {
		return domain.SlipPayment{}, fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if _, err := s.data.Slip(ctx, p.SlipID); err != nil {
		return domain.SlipPayment{}, fmt.Errorf("service.SlipService.RecordPayment: %w", err)
	}
	if p.Status == "" {
		p.Status = domain.PaymentPending
	}
	created, err := s.data.CreateSlipPayment(ctx, p)
	if err != nil {
		return domain.SlipPayment{}, fmt.Errorf("service.SlipService.RecordPayment: %w", err)
	}
	return created, nil
}

// UpdatePayment applies a patch to an existing payment.
func (s *SlipService) UpdatePayment(ctx context.Context, id string, patch domain.SlipPaymentPatch) (domain.SlipPayment, error) {
	updated, err := s.data.UpdateSlipPayment(ctx, id, patch)
	if err != nil {
		return domain.SlipPayment{}, fmt.Errorf("service.SlipService.UpdatePayment: %w", err)
	}
	return updated, nil
}

// DeletePayment removes a payment row.
func (s *SlipService) DeletePayment(ctx context.Context, id string) error {
	if err := s.data.DeleteSlipPayment(ctx, id); err != nil {
		return fmt.Errorf("service.SlipService.DeletePayment: %w", err)
	}
	return nil
}

// --- slip reservations ------------------------------------------------------

// ListSlipReservations returns the reservations for one slip.
func (s *SlipService) ListSlipReservations(ctx context.Context, slipID string) ([]domain.SlipReservation, error) {
	reservations, err := s.data.SlipReservationsForSlip(ctx, slipID)
	if err != nil {
		return nil, fmt.Errorf("service.SlipService.ListSlipReservations: %w", err)
	}
	return reservations, nil
}

// ReserveSlip validates and persists a slip reservation.
func (s *SlipService) ReserveSlip(ctx context.Context, r domain.SlipReservation) (domain.SlipReservation, error) {
	if strings.TrimSpace(r.ReservedBy) == "" {
		return domain.SlipReservation{}, fmt.Errorf("%w: reservedBy is required", domain.ErrValidation)
	}
	if r.EndDate.Before(r.StartDate) {
		return domain.SlipReservation{}, fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	if _, err := s.data.Slip(ctx, r.SlipID); err != nil {
		return domain.SlipReservation{}, fmt.Errorf("service.SlipService.ReserveSlip: %w", err)
	}
	created, err := s.data.CreateSlipReservation(ctx, r)
	if err != nil {
		return domain.SlipReservation{}, fmt.Errorf("service.SlipService.ReserveSlip: %w", err)
	}
	return created, nil
}

// UpdateSlipReservation applies a patch to an existing slip reservation.
func (s *SlipService) UpdateSlipReservation(ctx context.Context, id string, patch domain.SlipReservationPatch) (domain.SlipReservation, error) {
	updated, err := s.data.UpdateSlipReservation(ctx, id, patch)
	if err != nil {
		return domain.SlipReservation{}, fmt.Errorf("service.SlipService.UpdateSlipReservation: %w", err)
	}
	return updated, nil
}

// CancelSlipReservation removes a slip reservation.
func (s *SlipService) CancelSlipReservation(ctx context.Context, id string) error {
	if err := s.data.DeleteSlipReservation(ctx, id); err != nil {
		return fmt.Errorf("service.SlipService.CancelSlipReservation: %w", err)
	}
	return nil
}
