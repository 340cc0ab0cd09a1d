package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

type pointRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPointRepository(db *DB) repository.PointRepository {
	return &pointRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *pointRepository) GetByID(ctx context.Context, id string) (*domain.AccessibilityPoint, error) {
	query := `
		SELECT id, category, lat, lon, tags, created_at, user_id
		FROM points
		WHERE id = $1
	`

	point, err := scanPoint(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrPointNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get point by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return point, nil
}

func (r *pointRepository) ListByCategory(ctx context.Context, category domain.Category) ([]domain.AccessibilityPoint, error) {
	return r.ListByCategories(ctx, []domain.Category{category})
}

func (r *pointRepository) ListByCategories(ctx context.Context, categories []domain.Category) ([]domain.AccessibilityPoint, error) {
	// тот же порядок, что у живого запроса хранилища: новые точки первыми
	query := `
		SELECT id, category, lat, lon, tags, created_at, user_id
		FROM points
		WHERE category = ANY($1)
		ORDER BY created_at DESC
	`

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(names))
	if err != nil {
		r.logger.Error("Failed to list points", zap.Strings("categories", names), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	points := make([]domain.AccessibilityPoint, 0)
	for rows.Next() {
		point, err := scanPoint(rows)
		if err != nil {
			r.logger.Error("Failed to scan point row", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		points = append(points, *point)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Point rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return points, nil
}

func (r *pointRepository) Insert(ctx context.Context, point *domain.AccessibilityPoint) (string, error) {
	if !utils.ValidateCoordinates(point.Coordinates.Lat, point.Coordinates.Lon) {
		return "", errors.ErrInvalidCoordinates
	}

	query := `
		INSERT INTO points (id, category, lat, lon, tags, created_at, user_id)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6)
		RETURNING id
	`

	tagsJSON, err := json.Marshal(point.Tags)
	if err != nil {
		r.logger.Error("Failed to marshal point tags", zap.Error(err))
		return "", errors.ErrDatabaseError
	}

	id := point.ID
	if id == "" {
		id = uuid.New().String()
	}

	var inserted string
	err = r.db.QueryRowContext(ctx, query,
		id, point.Category, point.Coordinates.Lat, point.Coordinates.Lon,
		tagsJSON, point.UserID,
	).Scan(&inserted)
	if err != nil {
		r.logger.Error("Failed to insert point", zap.Error(err))
		return "", errors.ErrDatabaseError
	}

	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPoint(row rowScanner) (*domain.AccessibilityPoint, error) {
	var point domain.AccessibilityPoint
	var tagsJSON []byte

	err := row.Scan(
		&point.ID, &point.Category,
		&point.Coordinates.Lat, &point.Coordinates.Lon,
		&tagsJSON, &point.CreatedAt, &point.UserID,
	)
	if err != nil {
		return nil, err
	}

	point.Tags = make(map[string]string)
	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &point.Tags); err != nil {
			return nil, err
		}
	}

	return &point, nil
}
