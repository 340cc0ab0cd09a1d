package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/usecase"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

// MockSummaryRepository is a mock of SummaryRepository
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) Summarize(ctx context.Context, sets domain.PointSets) (string, error) {
	args := m.Called(ctx, sets)
	return args.String(0), args.Error(1)
}

func TestSummaryUseCase_Summarize(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("cache hit skips generation", func(t *testing.T) {
		mockPoints := &MockPointRepository{}
		mockSummary := &MockSummaryRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("Get", mock.Anything, "summary:area").
			Return("cached summary", true, nil)

		pointUC := usecase.NewPointUseCase(mockPoints, logger)
		uc := usecase.NewSummaryUseCase(pointUC, mockSummary, mockCache, logger, ttl)

		resp := uc.Summarize(ctx)

		assert.Equal(t, "cached summary", resp.Summary)
		assert.True(t, resp.Cached)
		mockSummary.AssertNotCalled(t, "Summarize")
		mockPoints.AssertNotCalled(t, "ListByCategory")
	})

	t.Run("success is cached", func(t *testing.T) {
		mockPoints := &MockPointRepository{}
		mockSummary := &MockSummaryRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("Get", mock.Anything, "summary:area").Return("", false, nil)
		mockAllCategories(mockPoints,
			[]domain.AccessibilityPoint{testPoint("b1", domain.CategoryBarrier)},
			[]domain.AccessibilityPoint{},
			[]domain.AccessibilityPoint{},
		)
		mockSummary.On("Summarize", mock.Anything, mock.Anything).
			Return("one barrier reported near the entrance", nil)
		mockCache.On("Set", mock.Anything, "summary:area", "one barrier reported near the entrance", ttl).
			Return(nil)

		pointUC := usecase.NewPointUseCase(mockPoints, logger)
		uc := usecase.NewSummaryUseCase(pointUC, mockSummary, mockCache, logger, ttl)

		resp := uc.Summarize(ctx)

		assert.Equal(t, "one barrier reported near the entrance", resp.Summary)
		assert.False(t, resp.Cached)
		mockCache.AssertExpectations(t)
	})

	t.Run("empty point sets short-circuit", func(t *testing.T) {
		mockPoints := &MockPointRepository{}
		mockSummary := &MockSummaryRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("Get", mock.Anything, "summary:area").Return("", false, nil)
		mockAllCategories(mockPoints, nil, nil, nil)

		pointUC := usecase.NewPointUseCase(mockPoints, logger)
		uc := usecase.NewSummaryUseCase(pointUC, mockSummary, mockCache, logger, ttl)

		resp := uc.Summarize(ctx)

		assert.Equal(t, usecase.SummaryNoData, resp.Summary)
		mockSummary.AssertNotCalled(t, "Summarize")
		mockCache.AssertNotCalled(t, "Set")
	})

	t.Run("generation failure masked by fallback", func(t *testing.T) {
		mockPoints := &MockPointRepository{}
		mockSummary := &MockSummaryRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("Get", mock.Anything, "summary:area").Return("", false, nil)
		mockAllCategories(mockPoints,
			[]domain.AccessibilityPoint{testPoint("b1", domain.CategoryBarrier)},
			nil, nil,
		)
		mockSummary.On("Summarize", mock.Anything, mock.Anything).
			Return("", errors.ErrInternalServer)

		pointUC := usecase.NewPointUseCase(mockPoints, logger)
		uc := usecase.NewSummaryUseCase(pointUC, mockSummary, mockCache, logger, ttl)

		resp := uc.Summarize(ctx)

		assert.Equal(t, usecase.SummaryFallback, resp.Summary)
		mockCache.AssertNotCalled(t, "Set")
	})

	t.Run("points load failure masked by fallback", func(t *testing.T) {
		mockPoints := &MockPointRepository{}
		mockSummary := &MockSummaryRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("Get", mock.Anything, "summary:area").Return("", false, nil)
		mockPoints.On("ListByCategory", mock.Anything, domain.CategoryBarrier).
			Return(nil, errors.ErrDatabaseError)

		pointUC := usecase.NewPointUseCase(mockPoints, logger)
		uc := usecase.NewSummaryUseCase(pointUC, mockSummary, mockCache, logger, ttl)

		resp := uc.Summarize(ctx)

		assert.Equal(t, usecase.SummaryFallback, resp.Summary)
		mockSummary.AssertNotCalled(t, "Summarize")
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		mockPoints := &MockPointRepository{}
		mockSummary := &MockSummaryRepository{}
		mockCache := &MockCacheRepository{}

		mockCache.On("Get", mock.Anything, "summary:area").Return("", false, nil)
		mockAllCategories(mockPoints,
			[]domain.AccessibilityPoint{testPoint("b1", domain.CategoryBarrier)},
			nil, nil,
		)
		mockSummary.On("Summarize", mock.Anything, mock.Anything).
			Return("generated summary", nil)
		mockCache.On("Set", mock.Anything, "summary:area", "generated summary", ttl).
			Return(errors.ErrCacheError)

		pointUC := usecase.NewPointUseCase(mockPoints, logger)
		uc := usecase.NewSummaryUseCase(pointUC, mockSummary, mockCache, logger, ttl)

		resp := uc.Summarize(ctx)

		assert.Equal(t, "generated summary", resp.Summary)
	})
}
