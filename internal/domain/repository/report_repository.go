package repository

import (
	"context"

	"github.com/accessibility-map/internal/domain"
)

// ReportRepository - персистентность отчётов пользователей. Insert
// назначает ID, статус pending и серверную отметку времени.
type ReportRepository interface {
	Insert(ctx context.Context, record *domain.ReportRecord) (*domain.ReportRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.ReportRecord, error)
	ListRecent(ctx context.Context, limit int) ([]domain.ReportRecord, error)
}
