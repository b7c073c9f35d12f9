package forecasting

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mohdanas86/hotelRevnue/internal/domain"
)

type cacheEntry struct {
	result    *domain.ForecastResult
	createdAt time.Time
}

// resultCache guarda previsões por chave com expiração por tempo. A
// expiração é avaliada de forma preguiçosa na leitura: entradas vencidas
// são removidas no acesso, nunca varridas em segundo plano.
type resultCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func newResultCache(ttl time.Duration, now func() time.Time) *resultCache {
	return &resultCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

func (c *resultCache) Get(key string) (*domain.ForecastResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(entry.createdAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}

	logrus.WithField("key", key).Info("forecast: cache hit")
	return entry.result, true
}

func (c *resultCache) Set(key string, result *domain.ForecastResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{result: result, createdAt: c.now()}
}

func (c *resultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
	logrus.Info("forecast: cache limpo")
}

func (c *resultCache) Status(maxAgeHours int) domain.CacheStatus {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return domain.CacheStatus{
		CachedEntries: len(c.entries),
		CacheKeys:     keys,
		MaxAgeHours:   maxAgeHours,
	}
}
