package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/DrGermanius/Gophercash/internal/model"
)

type cacheItem struct {
	balance model.LedgerBalance
	expires time.Time
}

// CachedGateway keeps successful lookups for ttl. Failures are never cached.
type CachedGateway struct {
	next Gateway
	ttl  time.Duration
	now  func() time.Time

	mu    sync.RWMutex
	items map[string]cacheItem
}

func NewCachedGateway(next Gateway, ttl time.Duration) *CachedGateway {
	return &CachedGateway{
		next:  next,
		ttl:   ttl,
		now:   time.Now,
		items: make(map[string]cacheItem),
	}
}

func (c *CachedGateway) GetBalance(ctx context.Context, taxID string) (model.LedgerBalance, error) {
	c.mu.RLock()
	item, ok := c.items[taxID]
	c.mu.RUnlock()
	if ok && c.now().Before(item.expires) {
		return item.balance, nil
	}

	lb, err := c.next.GetBalance(ctx, taxID)
	if err != nil {
		return model.LedgerBalance{}, err
	}

	c.mu.Lock()
	c.items[taxID] = cacheItem{balance: lb, expires: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return lb, nil
}

// Invalidate drops a cached balance, e.g. after a local credit charge.
func (c *CachedGateway) Invalidate(taxID string) {
	c.mu.Lock()
	delete(c.items, taxID)
	c.mu.Unlock()
}
