package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// The store accepts duplicate assignment rows for the same (slip, member) or
// (slip, boat) pair — uniqueness is a picker concern in the UI, not a data
// rule.

// ListSlipMemberAssignments returns a copy of the member assignment collection.
func (s *Store) ListSlipMemberAssignments(ctx context.Context) ([]domain.SlipMemberAssignment, error) {
	return listAll(s, s.memberAssignments)
}

// ListSlipMemberAssignmentsForSlip returns the member assignments for one slip.
func (s *Store) ListSlipMemberAssignmentsForSlip(ctx context.Context, slipID string) ([]domain.SlipMemberAssignment, error) {
	return listWhere(s, s.memberAssignments, func(a domain.SlipMemberAssignment) bool { return a.SlipID == slipID })
}

// GetSlipMemberAssignment returns a single member assignment by id.
func (s *Store) GetSlipMemberAssignment(ctx context.Context, id string) (domain.SlipMemberAssignment, error) {
	return getByID(s, s.memberAssignments, "slip member assignment", id)
}

// CreateSlipMemberAssignment assigns an id and stamps createdAt.
func (s *Store) CreateSlipMemberAssignment(ctx context.Context, a domain.SlipMemberAssignment) (domain.SlipMemberAssignment, error) {
	return createRecord(s, s.memberAssignments, a, func(a *domain.SlipMemberAssignment, now time.Time) {
		a.ID = s.newID()
		a.CreatedAt = now
	})
}

// UpdateSlipMemberAssignment shallow-merges the patch.
func (s *Store) UpdateSlipMemberAssignment(ctx context.Context, id string, patch domain.SlipMemberAssignmentPatch) (domain.SlipMemberAssignment, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.SlipMemberAssignment{}, fmt.Errorf("store.Store.UpdateSlipMemberAssignment: %w", err)
	}
	return updateRecord(s, s.memberAssignments, "slip member assignment", id, func(a *domain.SlipMemberAssignment, _ time.Time) {
		patch.Apply(a)
	})
}

// DeleteSlipMemberAssignment removes a member assignment row.
func (s *Store) DeleteSlipMemberAssignment(ctx context.Context, id string) error {
	return deleteRecord(s, s.memberAssignments, id)
}

// ListSlipBoatAssignments returns a copy of the boat assignment collection.
func (s *Store) ListSlipBoatAssignments(ctx context.Context) ([]domain.SlipBoatAssignment, error) {
	return listAll(s, s.boatAssignments)
}

// ListSlipBoatAssignmentsForSlip returns the boat assignments for one slip.
func (s *Store) ListSlipBoatAssignmentsForSlip(ctx context.Context, slipID string) ([]domain.SlipBoatAssignment, error) {
	return listWhere(s, s.boatAssignments, func(a domain.SlipBoatAssignment) bool { return a.SlipID == slipID })
}

// GetSlipBoatAssignment returns a single boat assignment by id.
func (s *Store) GetSlipBoatAssignment(ctx context.Context, id string) (domain.SlipBoatAssignment, error) {
	return getByID(s, s.boatAssignments, "slip boat assignment", id)
}

// CreateSlipBoatAssignment assigns an id and stamps createdAt.
func (s *Store) CreateSlipBoatAssignment(ctx context.Context, a domain.SlipBoatAssignment) (domain.SlipBoatAssignment, error) {
	return createRecord(s, s.boatAssignments, a, func(a *domain.SlipBoatAssignment, now time.Time) {
		a.ID = s.newID()
		a.CreatedAt = now
	})
}

// UpdateSlipBoatAssignment shallow-merges the patch.
func (s *Store) UpdateSlipBoatAssignment(ctx context.Context, id string, patch domain.SlipBoatAssignmentPatch) (domain.SlipBoatAssignment, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.SlipBoatAssignment{}, fmt.Errorf("store.Store.UpdateSlipBoatAssignment: %w", err)
	}
	return updateRecord(s, s.boatAssignments, "slip boat assignment", id, func(a *domain.SlipBoatAssignment, _ time.Time) {
		patch.Apply(a)
	})
}

// DeleteSlipBoatAssignment removes a boat assignment row.
func (s *Store) DeleteSlipBoatAssignment(ctx context.Context, id string) error {
	return deleteRecord(s, s.boatAssignments, id)
}
