package imagefetch

import (
	"context"
	"sync"

	"github.com/narendra2074/drought-marathwada/internal/domain"
	"github.com/narendra2074/drought-marathwada/internal/observability"
)

// CachedResolver wraps an ImageResolver with an in-memory LRU cache keyed by
// image reference. Only live payloads are cached; fallback resolutions pass
// through uncached so a transient upstream failure can recover on the next
// request.
type CachedResolver struct {
	inner   domain.ImageResolver
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedResolver creates a cache decorator around a resolver.
func NewCachedResolver(inner domain.ImageResolver, maxEntries int, metrics *observability.Metrics) *CachedResolver {
	return &CachedResolver{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

// Resolve returns the cached payload when present, marked Source=cache so the
// caller can tell it did not hit the network. The payload bytes are identical
// to the original live resolution.
func (c *CachedResolver) Resolve(ctx context.Context, imageRef string) domain.Resolution {
	if res, ok := c.cache.get(imageRef); ok {
		c.metrics.ImageCacheTotal.WithLabelValues("hit").Inc()
		res.Source = domain.ImageSourceCache
		return res
	}
	c.metrics.ImageCacheTotal.WithLabelValues("miss").Inc()

	res := c.inner.Resolve(ctx, imageRef)
	if !res.IsFallback() {
		c.cache.put(imageRef, res)
	}
	return res
}

// lruCache is a simple thread-safe LRU cache for image resolutions.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value domain.Resolution
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) (domain.Resolution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return domain.Resolution{}, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value domain.Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
