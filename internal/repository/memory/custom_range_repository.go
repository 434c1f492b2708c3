package memory

import (
	"context"
	"sync"

	"github.com/vytor/powerdrill/internal/logger"
	"github.com/vytor/powerdrill/internal/models"
	"github.com/vytor/powerdrill/internal/repository"
)

// customRangeRepository keeps ranges for the lifetime of the process only.
type customRangeRepository struct {
	mu     sync.RWMutex
	ranges map[models.Variant]models.CustomRange
}

// NewCustomRangeRepository creates an empty session-scoped range store.
func NewCustomRangeRepository() repository.CustomRangeRepository {
	return &customRangeRepository{ranges: map[models.Variant]models.CustomRange{}}
}

func (r *customRangeRepository) Get(ctx context.Context, variant models.Variant) (*models.CustomRange, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cr, ok := r.ranges[variant]
	if !ok {
		return nil, nil
	}
	return &cr, nil
}

func (r *customRangeRepository) Save(ctx context.Context, variant models.Variant, cr models.CustomRange) error {
	logger.FromContext(ctx).WithPrefix("range_repo").Debug("saving custom range: variant=%s, range=%s", variant, cr)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ranges[variant] = cr
	return nil
}
