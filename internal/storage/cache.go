package storage

import (
	"context"
	"slices"

	"promo-pages/internal/cache"
)

// Cache holds the most recently loaded catalog for readers that must not
// touch the source on every request.
type Cache struct {
	snap cache.Snapshot[Catalog]
}

func NewCache() *Cache {
	return &Cache{}
}

// Get returns a copy of the cached catalog; ok is false before the first
// Update.
func (c *Cache) Get() (Catalog, bool) {
	cat, ok := c.snap.Load()
	cat.Campaigns = slices.Clone(cat.Campaigns)
	return cat, ok
}

func (c *Cache) Update(cat Catalog) {
	cat.Campaigns = slices.Clone(cat.Campaigns)
	c.snap.Store(cat)
}

// Refresh loads src into c. On error the previous catalog stays in place.
func Refresh(ctx context.Context, src Source, c *Cache) (int, error) {
	cat, err := src.Load(ctx)
	if err != nil {
		return 0, err
	}
	c.Update(cat)
	return len(cat.Campaigns), nil
}
