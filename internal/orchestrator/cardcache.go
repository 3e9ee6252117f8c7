package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
)

type CardCacheService interface {
	GetOrFetch(ctx context.Context, key string, fn func(ctx context.Context) (a2a.AgentCard, error)) (a2a.AgentCard, error)
}

type cardEntry struct {
	val     a2a.AgentCard
	expiry  time.Time
	ready   bool
	waiters []chan cardOrErr
}

type cardOrErr struct {
	card a2a.AgentCard
	err  error
}

// CardCache keeps discovered agent cards for a TTL. Concurrent lookups of
// the same key share one fetch, which is not cancelled when any one caller
// gives up. Failed fetches are not cached.
type CardCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	items   map[string]*cardEntry
	metrics *obs.Metrics
	now     func() time.Time
}

func NewCardCache(ttl time.Duration, m *obs.Metrics) *CardCache {
	return &CardCache{ttl: ttl, items: make(map[string]*cardEntry), metrics: m, now: time.Now}
}

func (c *CardCache) GetOrFetch(ctx context.Context, key string, fn func(ctx context.Context) (a2a.AgentCard, error)) (a2a.AgentCard, error) {
	c.mu.Lock()
	entry, found := c.items[key]

	if found && entry.ready && c.now().Before(entry.expiry) {
		val := entry.val
		c.mu.Unlock()
		if c.metrics != nil {
			c.metrics.IncCacheHits()
		}
		return val, nil
	}

	ch := make(chan cardOrErr, 1)
	if found && !entry.ready {
		// a fetch is in flight: wait for it
		entry.waiters = append(entry.waiters, ch)
		c.mu.Unlock()
		return waitCard(ctx, ch)
	}

	entry = &cardEntry{waiters: []chan cardOrErr{ch}}
	c.items[key] = entry
	c.mu.Unlock()

	// detached: each caller stops waiting on its own ctx, the fetch carries on
	go c.fetch(context.WithoutCancel(ctx), key, entry, fn)
	return waitCard(ctx, ch)
}

func (c *CardCache) fetch(ctx context.Context, key string, entry *cardEntry, fn func(ctx context.Context) (a2a.AgentCard, error)) {
	card, err := fn(ctx)

	c.mu.Lock()
	if err != nil {
		delete(c.items, key)
	} else {
		entry.val = card
		entry.expiry = c.now().Add(c.ttl)
		entry.ready = true
	}
	waiters := entry.waiters
	entry.waiters = nil
	c.mu.Unlock()

	for _, w := range waiters {
		w <- cardOrErr{card: card, err: err}
		close(w)
	}
}

func waitCard(ctx context.Context, ch <-chan cardOrErr) (a2a.AgentCard, error) {
	select {
	case <-ctx.Done():
		return a2a.AgentCard{}, ctx.Err()
	case r := <-ch:
		return r.card, r.err
	}
}
