package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reef-world/finsync/pkg/domain/interfaces"
	"github.com/reef-world/finsync/pkg/domain/model"
)

type scoreEntry struct {
	average   float64
	expiresAt time.Time
}

// ScoreCache is an in-memory interfaces.ScoreCache for development and tests
type ScoreCache struct {
	mu      sync.RWMutex
	entries map[string]scoreEntry
	now     func() time.Time
}

var _ interfaces.ScoreCache = &ScoreCache{}

func NewScoreCache() *ScoreCache {
	return &ScoreCache{
		entries: make(map[string]scoreEntry),
		now:     time.Now,
	}
}

// NewScoreCacheWithClock injects a clock for expiry tests
func NewScoreCacheWithClock(now func() time.Time) *ScoreCache {
	return &ScoreCache{
		entries: make(map[string]scoreEntry),
		now:     now,
	}
}

func (c *ScoreCache) Put(ctx context.Context, averages []model.LocationAverage, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(ttl)
	for _, avg := range averages {
		c.entries[avg.Key()] = scoreEntry{
			average:   avg.Average,
			expiresAt: expiresAt,
		}
	}
	return nil
}

func (c *ScoreCache) Get(ctx context.Context, country, location string) (float64, error) {
	key := model.LocationAverage{Country: country, Location: location}.Key()

	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if !exists || c.now().After(entry.expiresAt) {
		return 0, goerr.Wrap(model.ErrScoreNotFound, "no cached average",
			goerr.V("country", country), goerr.V("location", location))
	}
	return entry.average, nil
}

func (c *ScoreCache) Close() error {
	return nil
}
