package repository

import (
	"context"

	"github.com/accessibility-map/internal/domain"
)

// SummaryRepository - внешний сервис генерации natural-language сводки
// по набору точек. Задержка произвольна; вызывающий ограничивает её
// контекстом.
type SummaryRepository interface {
	Summarize(ctx context.Context, sets domain.PointSets) (string, error)
}
