package backtest

import (
	"sync"
	"time"

	"nifty-navigator/internal/domain"
)

// Cache memoizes per-symbol backtest results for the process lifetime.
// A symbol's result is computed once, on first access, and returned
// unchanged afterwards even if the symbol's current decision changes:
// numbers already shown on the dashboard must not shift under the user.
// There is no invalidation, by design.
//
// The cache is an explicit object rather than package state so servers
// can scope it per instance and tests can start clean. Writes are
// guarded for concurrent request handlers.
type Cache struct {
	mu          sync.RWMutex
	results     map[string]*domain.BacktestResult
	historyDays int
}

func NewCache(historyDays int) *Cache {
	return &Cache{
		results:     make(map[string]*domain.BacktestResult),
		historyDays: historyDays,
	}
}

// Get returns the cached result for symbol, computing it from the given
// decision on first access. The decision argument is ignored on hits.
func (c *Cache) Get(symbol string, decision domain.Decision, endDate time.Time) *domain.BacktestResult {
	c.mu.RLock()
	cached, ok := c.results[symbol]
	c.mu.RUnlock()
	if ok {
		return cached
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.results[symbol]; ok {
		return cached
	}
	result := GenerateOutcome(symbol, decision, Seed(symbol), c.historyDays, endDate)
	c.results[symbol] = result
	return result
}

// Len reports how many symbols have been materialized.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.results)
}
