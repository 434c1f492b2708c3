package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vytor/powerdrill/internal/models"
)

// MockHighScoreRepository is a mock implementation of repository.HighScoreRepository
type MockHighScoreRepository struct {
	mock.Mock
}

func (m *MockHighScoreRepository) List(ctx context.Context, variant models.Variant) ([]models.HighScoreEntry, error) {
	args := m.Called(ctx, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.HighScoreEntry), args.Error(1)
}

func (m *MockHighScoreRepository) Replace(ctx context.Context, variant models.Variant, entries []models.HighScoreEntry) error {
	args := m.Called(ctx, variant, entries)
	return args.Error(0)
}

func (m *MockHighScoreRepository) Clear(ctx context.Context, variant models.Variant) error {
	args := m.Called(ctx, variant)
	return args.Error(0)
}
