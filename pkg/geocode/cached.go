package geocode

import (
	"context"
	"sync"
)

type cachedPoint struct {
	point Point
	ok    bool
}

// CachedGeocoder memoizes lookups by exact query string so repeated
// addresses never hit the external service twice. The cache is
// unbounded and lives for the process lifetime; misses are cached as
// well so a vague address is only tried once per session.
type CachedGeocoder struct {
	next    Geocoder
	mu      sync.RWMutex
	entries map[string]cachedPoint
}

func NewCachedGeocoder(next Geocoder) *CachedGeocoder {
	return &CachedGeocoder{
		next:    next,
		entries: make(map[string]cachedPoint),
	}
}

func (c *CachedGeocoder) Geocode(ctx context.Context, query string) (Point, bool) {
	c.mu.RLock()
	entry, hit := c.entries[query]
	c.mu.RUnlock()
	if hit {
		return entry.point, entry.ok
	}

	point, ok := c.next.Geocode(ctx, query)

	c.mu.Lock()
	c.entries[query] = cachedPoint{point: point, ok: ok}
	c.mu.Unlock()

	return point, ok
}

// Len reports the number of memoized queries.
func (c *CachedGeocoder) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
