package api

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolBasic(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{MaxQueryWorkers: 2, MaxSearchWorkers: 1})

	ctx := context.Background()
	require.NoError(t, pool.AcquireQuery(ctx))

	stats := pool.Stats()
	assert.EqualValues(t, 1, stats.ActiveQuery)

	pool.ReleaseQuery()
	stats = pool.Stats()
	assert.EqualValues(t, 0, stats.ActiveQuery)
	assert.EqualValues(t, 1, stats.TotalQuery)
}

func TestWorkerPoolDefaults(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{})
	stats := pool.Stats()
	assert.Equal(t, 100, stats.MaxQuery)
	assert.Equal(t, 4, stats.MaxSearch)
}

func TestWorkerPoolSearchLaneFillsUp(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{MaxQueryWorkers: 10, MaxSearchWorkers: 2})

	ctx := context.Background()
	require.NoError(t, pool.AcquireSearch(ctx))
	require.NoError(t, pool.AcquireSearch(ctx))
	assert.EqualValues(t, 2, pool.Stats().ActiveSearch)

	// A third acquisition blocks until the context gives up.
	timeout, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()
	err := pool.AcquireSearch(timeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	pool.ReleaseSearch()
	pool.ReleaseSearch()
	assert.EqualValues(t, 2, pool.Stats().TotalSearch)
}

func TestWorkerPoolCancelledContext(t *testing.T) {
	pool := NewWorkerPool(PoolConfig{MaxQueryWorkers: 1, MaxSearchWorkers: 1})

	ctx := context.Background()
	require.NoError(t, pool.AcquireQuery(ctx))

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.Error(t, pool.AcquireQuery(cancelled))

	pool.ReleaseQuery()
}
