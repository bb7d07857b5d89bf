// internal/app/features/news/cache.go
package news

import (
	"sync"
	"time"

	"github.com/dalemusser/eventhub/internal/domain/models"
)

// DefaultCacheTTL is how long an aggregated article list stays fresh.
const DefaultCacheTTL = 2 * time.Minute

// Cache holds the last aggregated article list. Staleness, not
// correctness, is the only risk, so a single mutex is all the
// coordination it needs.
type Cache struct {
	mu        sync.Mutex
	articles  []models.Article
	fetchedAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewCache creates a cache with the given TTL. A TTL of zero uses the
// default.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{ttl: ttl, now: time.Now}
}

// Get returns the cached articles if they are still within the TTL.
func (c *Cache) Get() ([]models.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.articles == nil || c.now().Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.articles, true
}

// GetStale returns whatever is cached regardless of age. Used when all
// upstream sources fail and stale data beats no data.
func (c *Cache) GetStale() ([]models.Article, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.articles == nil {
		return nil, false
	}
	return c.articles, true
}

// Set replaces the cached articles and restarts the TTL window.
func (c *Cache) Set(articles []models.Article) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.articles = articles
	c.fetchedAt = c.now()
}

// SetClock overrides the cache's time source. Test hook.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
