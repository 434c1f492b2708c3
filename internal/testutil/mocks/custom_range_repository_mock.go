package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/powerdrill/internal/models"
)

// MockCustomRangeRepository is a mock implementation of repository.CustomRangeRepository
type MockCustomRangeRepository struct {
	mock.Mock
}

func (m *MockCustomRangeRepository) Get(ctx context.Context, variant models.Variant) (*models.CustomRange, error) {
	args := m.Called(ctx, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CustomRange), args.Error(1)
}

func (m *MockCustomRangeRepository) Save(ctx context.Context, variant models.Variant, r models.CustomRange) error {
	args := m.Called(ctx, variant, r)
	return args.Error(0)
}
