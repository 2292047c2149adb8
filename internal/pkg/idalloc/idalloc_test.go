package idalloc_test

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edulab/booklib-backend/internal/pkg/idalloc"
	"github.com/edulab/booklib-backend/internal/pkg/logger"
	"github.com/edulab/booklib-backend/internal/pkg/testdb"
)

func TestNextIsMonotonicWithinBlock(t *testing.T) {
	gormDB := testdb.Open(t)
	a := idalloc.New(gormDB, logger.NewNop(), 100)

	prev := int64(0)
	for i := 0; i < 100; i++ {
		id, err := a.Next(context.Background())
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		prev = id
	}
}

func TestNextRefillsAcrossBlocks(t *testing.T) {
	gormDB := testdb.Open(t)
	a := idalloc.New(gormDB, logger.NewNop(), 10)

	seen := map[int64]struct{}{}
	for i := 0; i < 35; i++ {
		id, err := a.Next(context.Background())
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "id %d handed out twice", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 35)
}

func TestAllocatorsShareTheSequence(t *testing.T) {
	gormDB := testdb.Open(t)
	a := idalloc.New(gormDB, logger.NewNop(), 10)
	b := idalloc.New(gormDB, logger.NewNop(), 10)

	seen := map[int64]struct{}{}
	for i := 0; i < 10; i++ {
		ida, err := a.Next(context.Background())
		require.NoError(t, err)
		idb, err := b.Next(context.Background())
		require.NoError(t, err)
		seen[ida] = struct{}{}
		seen[idb] = struct{}{}
	}
	assert.Len(t, seen, 20)
}

func TestNextIsSafeForConcurrentUse(t *testing.T) {
	gormDB := testdb.Open(t)
	a := idalloc.New(gormDB, logger.NewNop(), 100)

	// warm the first block so goroutines stay off the store
	_, err := a.Next(context.Background())
	require.NoError(t, err)

	const workers = 8
	const perWorker = 10
	var mu sync.Mutex
	var wg sync.WaitGroup
	all := make([]int64, 0, workers*perWorker)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := a.Next(context.Background())
				if err != nil {
					t.Error(err)
					return
				}
				mu.Lock()
				all = append(all, id)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	for i := 1; i < len(all); i++ {
		require.NotEqual(t, all[i-1], all[i], "duplicate id %d", all[i])
	}
}
