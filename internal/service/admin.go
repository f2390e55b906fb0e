package service

import (
	"context"
	"fmt"

	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/query"
)

// AdminService exposes the demo housekeeping operations and the read-only
// user directory.
type AdminService struct {
	data *query.Client
}

// NewAdminService constructs an AdminService.
func NewAdminService(data *query.Client) *AdminService {
	return &AdminService{data: data}
}

// Reset re-seeds every collection from the compiled-in defaults. Backs the
// demo's "start over" button.
func (s *AdminService) Reset(ctx context.Context) {
	s.data.Reset(ctx)
}

// Clear purges all persisted data and empties the in-memory collections.
func (s *AdminService) Clear(ctx context.Context) {
	s.data.Clear(ctx)
}

// Users returns the seeded demo user directory.
func (s *AdminService) Users(ctx context.Context) ([]domain.DemoUser, error) {
	users, err := s.data.DemoUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AdminService.Users: %w", err)
	}
	return users, nil
}

// User returns one directory entry.
func (s *AdminService) User(ctx context.Context, id string) (domain.DemoUser, error) {
	u, err := s.data.DemoUser(ctx, id)
	if err != nil {
		return domain.DemoUser{}, fmt.Errorf("service.AdminService.User: %w", err)
	}
	return u, nil
}
