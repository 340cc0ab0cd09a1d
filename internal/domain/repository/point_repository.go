package repository

import (
	"context"

	"github.com/accessibility-map/internal/domain"
)

// PointRepository - доступ к точкам доступности. Живые запросы хранилища
// отдают точки категории упорядоченными по created_at DESC.
type PointRepository interface {
	GetByID(ctx context.Context, id string) (*domain.AccessibilityPoint, error)
	ListByCategory(ctx context.Context, category domain.Category) ([]domain.AccessibilityPoint, error)
	ListByCategories(ctx context.Context, categories []domain.Category) ([]domain.AccessibilityPoint, error)
	Insert(ctx context.Context, point *domain.AccessibilityPoint) (string, error)
}
