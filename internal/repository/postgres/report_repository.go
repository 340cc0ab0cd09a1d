package postgres

import (
	"context"
	"encoding/json"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Insert сохраняет отчёт: назначает ID, статус pending и серверную
// отметку времени, возвращает сохранённую запись
func (r *reportRepository) Insert(ctx context.Context, record *domain.ReportRecord) (*domain.ReportRecord, error) {
	query := `
		INSERT INTO reports (id, category, lat, lon, description, tags, status, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), $8)
		RETURNING id, status, created_at
	`

	tagsJSON, err := json.Marshal(record.Tags)
	if err != nil {
		r.logger.Error("Failed to marshal report tags", zap.Error(err))
		return nil, errors.ErrPersistenceFailure
	}

	saved := *record
	err = r.db.QueryRowContext(ctx, query,
		uuid.New().String(), record.Category,
		record.Coordinates.Lat, record.Coordinates.Lon,
		record.Description, tagsJSON,
		domain.ReportStatusPending, record.UserID,
	).Scan(&saved.ID, &saved.Status, &saved.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to insert report", zap.Error(err))
		return nil, errors.ErrPersistenceFailure
	}

	return &saved, nil
}

func (r *reportRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.ReportRecord, error) {
	query := `
		SELECT id, category, lat, lon, description, tags, status, created_at, user_id
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	return r.list(ctx, query, userID, limit)
}

func (r *reportRepository) ListRecent(ctx context.Context, limit int) ([]domain.ReportRecord, error) {
	query := `
		SELECT id, category, lat, lon, description, tags, status, created_at, user_id
		FROM reports
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.list(ctx, query, limit)
}

func (r *reportRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.ReportRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list reports", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	records := make([]domain.ReportRecord, 0)
	for rows.Next() {
		var record domain.ReportRecord
		var tagsJSON []byte

		err := rows.Scan(
			&record.ID, &record.Category,
			&record.Coordinates.Lat, &record.Coordinates.Lon,
			&record.Description, &tagsJSON, &record.Status,
			&record.CreatedAt, &record.UserID,
		)
		if err != nil {
			r.logger.Error("Failed to scan report row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}

		record.Tags = make(map[string]string)
		if len(tagsJSON) > 0 {
			if err := json.Unmarshal(tagsJSON, &record.Tags); err != nil {
				r.logger.Warn("Failed to unmarshal report tags",
					zap.String("id", record.ID), zap.Error(err))
			}
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Report rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return records, nil
}
