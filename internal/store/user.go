package store

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// The demo user directory is read-only: it is seeded, survives resets, and
// has no create/update/delete operations.

// ListDemoUsers returns a copy of the user directory.
func (s *Store) ListDemoUsers(ctx context.Context) ([]domain.DemoUser, error) {
	return listAll(s, s.users)
}

// GetDemoUser returns a single directory entry by id.
func (s *Store) GetDemoUser(ctx context.Context, id string) (domain.DemoUser, error) {
	return getByID(s, s.users, "demo user", id)
}
