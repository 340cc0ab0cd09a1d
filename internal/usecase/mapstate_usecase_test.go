package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/mapsync"
	"github.com/accessibility-map/internal/usecase"
	"github.com/accessibility-map/internal/usecase/dto"
)

func startedSession(t *testing.T) *mapsync.Session {
	t.Helper()

	engine := mapsync.NewEngine(mapsync.NewVirtualProvider(), zap.NewNop())
	session := mapsync.NewSession(engine, mapsync.NewView(), zap.NewNop())

	err := session.Start(context.Background(), "test-map",
		domain.Coordinates{Lat: 28.6139, Lon: 77.2090}, 12, mapsync.ThemeLight)
	require.NoError(t, err)
	return session
}

func TestMapStateUseCase_GetState(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("markers mirror visible points", func(t *testing.T) {
		mockRepo := &MockPointRepository{}
		mockAllCategories(mockRepo,
			[]domain.AccessibilityPoint{testPoint("b1", domain.CategoryBarrier)},
			[]domain.AccessibilityPoint{testPoint("f1", domain.CategoryFacilitator)},
			[]domain.AccessibilityPoint{},
		)

		session := startedSession(t)
		pointUC := usecase.NewPointUseCase(mockRepo, logger)
		uc := usecase.NewMapStateUseCase(pointUC, session, logger)

		state, err := uc.GetState(ctx, dto.LayerQuery{})

		require.NoError(t, err)
		assert.Equal(t, "light", state.Theme)
		assert.Equal(t, 2, state.Total)
		require.Len(t, state.Markers, 2)
		assert.Equal(t, "b1", state.Markers[0].PointID)
		assert.Equal(t, "f1", state.Markers[1].PointID)
	})

	t.Run("disabled layer removes markers", func(t *testing.T) {
		mockRepo := &MockPointRepository{}
		mockAllCategories(mockRepo,
			[]domain.AccessibilityPoint{testPoint("b1", domain.CategoryBarrier)},
			[]domain.AccessibilityPoint{testPoint("f1", domain.CategoryFacilitator)},
			[]domain.AccessibilityPoint{},
		)

		session := startedSession(t)
		pointUC := usecase.NewPointUseCase(mockRepo, logger)
		uc := usecase.NewMapStateUseCase(pointUC, session, logger)

		state, err := uc.GetState(ctx, dto.LayerQuery{Barriers: ptrBool(false)})

		require.NoError(t, err)
		assert.Equal(t, 1, state.Total)
		assert.Equal(t, "f1", state.Markers[0].PointID)
		assert.False(t, state.Visibility.Barriers)
	})

	t.Run("points load failure propagates", func(t *testing.T) {
		mockRepo := &MockPointRepository{}
		mockRepo.On("ListByCategory", mock.Anything, domain.CategoryBarrier).
			Return(nil, assert.AnError)

		session := startedSession(t)
		pointUC := usecase.NewPointUseCase(mockRepo, logger)
		uc := usecase.NewMapStateUseCase(pointUC, session, logger)

		state, err := uc.GetState(ctx, dto.LayerQuery{})

		assert.Nil(t, state)
		assert.Error(t, err)
	})
}

func TestMapStateUseCase_SetTheme(t *testing.T) {
	logger := zap.NewNop()

	session := startedSession(t)
	pointUC := usecase.NewPointUseCase(&MockPointRepository{}, logger)
	uc := usecase.NewMapStateUseCase(pointUC, session, logger)

	assert.Equal(t, "dark", uc.SetTheme("dark"))
	assert.Equal(t, mapsync.ThemeDark, session.Engine().Theme())

	// unknown themes fall back to light
	assert.Equal(t, "light", uc.SetTheme("sepia"))
}
