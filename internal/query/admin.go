package query

import "context"

// Reset re-seeds the whole store and flushes the cache wholesale — every
// collection changed, so there is nothing selective to do.
func (c *Client) Reset(ctx context.Context) {
	c.store.Reset()
	c.cache.Flush()
}

// Clear purges the persisted store and flushes the cache.
func (c *Client) Clear(ctx context.Context) {
	c.store.Clear()
	c.cache.Flush()
}
