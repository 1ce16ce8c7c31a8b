package catalog

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const snapshotKey = "inventory"

// CachedProvider wraps another Provider with a TTL snapshot cache so that a
// burst of chat turns does not hammer the backing store. Staleness within the
// TTL is acceptable: the engine already tolerates the catalog drifting
// between prompt construction and reply.
type CachedProvider struct {
	inner Provider
	cache *gocache.Cache
}

// NewCachedProvider caches inner's snapshots for ttl.
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: gocache.New(ttl, 2*ttl),
	}
}

// ListAll returns the cached snapshot, refreshing it from the inner provider
// on expiry. Errors from the inner provider are returned uncached.
func (c *CachedProvider) ListAll(ctx context.Context) ([]Product, error) {
	if v, ok := c.cache.Get(snapshotKey); ok {
		snap := v.([]Product)
		out := make([]Product, len(snap))
		copy(out, snap)
		return out, nil
	}

	products, err := c.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.Set(snapshotKey, products, gocache.DefaultExpiration)

	out := make([]Product, len(products))
	copy(out, products)
	return out, nil
}

// Invalidate drops the cached snapshot, forcing the next ListAll to hit the
// backing store. The seed-file watcher calls this on reload.
func (c *CachedProvider) Invalidate() {
	c.cache.Delete(snapshotKey)
}
