package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rigreport/rigreport/internal/domain"
)

// ListSlipMembers returns a copy of the slip member collection.
func (s *Store) ListSlipMembers(ctx context.Context) ([]domain.SlipMember, error) {
	return listAll(s, s.slipMembers)
}

// GetSlipMember returns a single slip member by id.
func (s *Store) GetSlipMember(ctx context.Context, id string) (domain.SlipMember, error) {
	return getByID(s, s.slipMembers, "slip member", id)
}

// CreateSlipMember assigns an id and both timestamps, then appends and persists.
func (s *Store) CreateSlipMember(ctx context.Context, m domain.SlipMember) (domain.SlipMember, error) {
	return createRecord(s, s.slipMembers, m, func(m *domain.SlipMember, now time.Time) {
		m.ID = s.newID()
		m.CreatedAt = now
		m.UpdatedAt = now
	})
}

// UpdateSlipMember shallow-merges the patch and refreshes updatedAt.
func (s *Store) UpdateSlipMember(ctx context.Context, id string, patch domain.SlipMemberPatch) (domain.SlipMember, error) {
	if err := s.checkPatch(patch); err != nil {
		return domain.SlipMember{}, fmt.Errorf("store.Store.UpdateSlipMember: %w", err)
	}
	return updateRecord(s, s.slipMembers, "slip member", id, func(m *domain.SlipMember, now time.Time) {
		patch.Apply(m)
		m.UpdatedAt = now
	})
}

// DeleteSlipMember removes a slip member. Assignments and payments
// referencing the member are left in place.
func (s *Store) DeleteSlipMember(ctx context.Context, id string) error {
	return deleteRecord(s, s.slipMembers, id)
}
