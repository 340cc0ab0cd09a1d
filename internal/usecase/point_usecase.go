package usecase

import (
	"context"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// PointUseCase отдаёт точки доступности с учётом видимости слоёв
type PointUseCase struct {
	pointRepo repository.PointRepository
	logger    *zap.Logger
}

func NewPointUseCase(pointRepo repository.PointRepository, logger *zap.Logger) *PointUseCase {
	return &PointUseCase{
		pointRepo: pointRepo,
		logger:    logger,
	}
}

// ListSets загружает три независимых набора категорий
func (uc *PointUseCase) ListSets(ctx context.Context) (domain.PointSets, error) {
	var sets domain.PointSets
	for _, c := range domain.Categories {
		points, err := uc.pointRepo.ListByCategory(ctx, c)
		if err != nil {
			uc.logger.Error("Failed to list points",
				zap.String("category", string(c)), zap.Error(err))
			return domain.PointSets{}, err
		}
		sets = sets.WithCategory(c, points)
	}
	return sets, nil
}

// ListVisible возвращает точки включённых слоёв в фиксированном порядке
// категорий
func (uc *PointUseCase) ListVisible(ctx context.Context, query dto.LayerQuery) (*dto.PointsResponse, error) {
	sets, err := uc.ListSets(ctx)
	if err != nil {
		return nil, err
	}

	vis := domain.DefaultLayerVisibility()
	if query.Barriers != nil {
		vis.Barriers = *query.Barriers
	}
	if query.Facilitators != nil {
		vis.Facilitators = *query.Facilitators
	}
	if query.POIs != nil {
		vis.POIs = *query.POIs
	}

	points := domain.VisiblePoints(sets, vis)
	return &dto.PointsResponse{
		Points: points,
		Total:  len(points),
	}, nil
}

// GetByID возвращает одну точку
func (uc *PointUseCase) GetByID(ctx context.Context, id string) (*domain.AccessibilityPoint, error) {
	point, err := uc.pointRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return point, nil
}
