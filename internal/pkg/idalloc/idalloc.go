// Package idalloc hands out ids from the shared id_sequence row in blocks,
// so person and book rows draw from one monotonic sequence with at most one
// store round-trip per block.
package idalloc

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/edulab/booklib-backend/internal/pkg/logger"
)

// DefaultBlockSize matches the allocation batch of the original schema.
const DefaultBlockSize = 100

// SeqRowID is the primary key of the single id_sequence row.
const SeqRowID = 1

type Allocator struct {
	db        *gorm.DB
	log       *logger.Logger
	blockSize int64

	mu   sync.Mutex
	next int64
	max  int64
}

func New(db *gorm.DB, log *logger.Logger, blockSize int64) *Allocator {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Allocator{
		db:        db,
		log:       log.With("component", "idalloc"),
		blockSize: blockSize,
		next:      1,
		max:       0,
	}
}

// Next returns the next id from the current block, refilling from the store
// when the block is exhausted.
func (a *Allocator) Next(ctx context.Context) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.next > a.max {
		if err := a.refill(ctx); err != nil {
			return 0, err
		}
	}
	id := a.next
	a.next++
	return id, nil
}

// refill bumps the sequence row in a single statement on the base handle,
// never inside a caller transaction: a rolled-back operation burns its ids
// instead of reusing them.
func (a *Allocator) refill(ctx context.Context) error {
	var hi int64
	if err := a.db.WithContext(ctx).Raw(
		"UPDATE id_sequence SET next_val = next_val + ? WHERE id = ? RETURNING next_val",
		a.blockSize, SeqRowID,
	).Scan(&hi).Error; err != nil {
		a.log.Error("Failed to allocate id block", "error", err)
		return err
	}
	a.max = hi
	a.next = hi - a.blockSize + 1
	a.log.Debug("Allocated id block", "from", a.next, "to", a.max)
	return nil
}
