package query

import (
	"context"

	"github.com/rigreport/rigreport/internal/domain"
)

// DemoUsers returns the seeded user directory.
func (c *Client) DemoUsers(ctx context.Context) ([]domain.DemoUser, error) {
	return cached(c, kindDemoUsers, func() ([]domain.DemoUser, error) {
		return c.store.ListDemoUsers(ctx)
	})
}

// DemoUser returns one directory entry.
func (c *Client) DemoUser(ctx context.Context, id string) (domain.DemoUser, error) {
	return cached(c, recordKey(kindDemoUsers, id), func() (domain.DemoUser, error) {
		return c.store.GetDemoUser(ctx, id)
	})
}
