package api

import (
	"context"
	"sync/atomic"
)

// WorkerPool bounds concurrent request processing with two lanes: a wide
// one for cheap board queries (moves, apply) and a narrow one for bot
// searches, which pin a core for their whole budget.
type WorkerPool struct {
	querySem     chan struct{}
	searchSem    chan struct{}
	queuedQuery  int64
	queuedSearch int64
	activeQuery  int64
	activeSearch int64
	totalQuery   int64
	totalSearch  int64
}

// PoolConfig configures the worker pool.
type PoolConfig struct {
	MaxQueryWorkers  int // max concurrent board queries (default 100)
	MaxSearchWorkers int // max concurrent bot searches (default 4)
}

// NewWorkerPool creates a pool, substituting defaults for non-positive
// limits.
func NewWorkerPool(config PoolConfig) *WorkerPool {
	if config.MaxQueryWorkers <= 0 {
		config.MaxQueryWorkers = 100
	}
	if config.MaxSearchWorkers <= 0 {
		config.MaxSearchWorkers = 4
	}
	return &WorkerPool{
		querySem:  make(chan struct{}, config.MaxQueryWorkers),
		searchSem: make(chan struct{}, config.MaxSearchWorkers),
	}
}

// AcquireQuery takes a query slot, waiting until one frees or the context
// is cancelled.
func (p *WorkerPool) AcquireQuery(ctx context.Context) error {
	atomic.AddInt64(&p.queuedQuery, 1)
	defer atomic.AddInt64(&p.queuedQuery, -1)

	select {
	case p.querySem <- struct{}{}:
		atomic.AddInt64(&p.activeQuery, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReleaseQuery returns a query slot.
func (p *WorkerPool) ReleaseQuery() {
	atomic.AddInt64(&p.activeQuery, -1)
	atomic.AddInt64(&p.totalQuery, 1)
	<-p.querySem
}

// AcquireSearch takes a search slot, waiting until one frees or the
// context is cancelled.
func (p *WorkerPool) AcquireSearch(ctx context.Context) error {
	atomic.AddInt64(&p.queuedSearch, 1)
	defer atomic.AddInt64(&p.queuedSearch, -1)

	select {
	case p.searchSem <- struct{}{}:
		atomic.AddInt64(&p.activeSearch, 1)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReleaseSearch returns a search slot.
func (p *WorkerPool) ReleaseSearch() {
	atomic.AddInt64(&p.activeSearch, -1)
	atomic.AddInt64(&p.totalSearch, 1)
	<-p.searchSem
}

// PoolStats is a snapshot of pool activity.
type PoolStats struct {
	ActiveQuery  int64 `json:"active_query"`
	ActiveSearch int64 `json:"active_search"`
	QueuedQuery  int64 `json:"queued_query"`
	QueuedSearch int64 `json:"queued_search"`
	TotalQuery   int64 `json:"total_query"`
	TotalSearch  int64 `json:"total_search"`
	MaxQuery     int   `json:"max_query"`
	MaxSearch    int   `json:"max_search"`
}

// Stats returns current pool statistics.
func (p *WorkerPool) Stats() PoolStats {
	return PoolStats{
		ActiveQuery:  atomic.LoadInt64(&p.activeQuery),
		ActiveSearch: atomic.LoadInt64(&p.activeSearch),
		QueuedQuery:  atomic.LoadInt64(&p.queuedQuery),
		QueuedSearch: atomic.LoadInt64(&p.queuedSearch),
		TotalQuery:   atomic.LoadInt64(&p.totalQuery),
		TotalSearch:  atomic.LoadInt64(&p.totalSearch),
		MaxQuery:     cap(p.querySem),
		MaxSearch:    cap(p.searchSem),
	}
}
