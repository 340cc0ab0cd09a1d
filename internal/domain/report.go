package domain

import (
	"strings"
	"time"

	"github.com/accessibility-map/internal/pkg/errors"
)

// ReportStatus - статус модерации отчёта
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

// ReportDraft - черновик отчёта пользователя до отправки.
// Заполняется постепенно; Coordinates остаются nil, пока пользователь
// не выбрал место на карте.
type ReportDraft struct {
	Category    Category
	Coordinates *Coordinates
	Description string
	Tags        map[string]string
}

// ReportRecord - готовый к сохранению отчёт. Неизменяем после композиции;
// Status и CreatedAt назначает слой персистентности при вставке.
type ReportRecord struct {
	ID          string            `json:"id" db:"id"`
	Category    Category          `json:"category" db:"category"`
	Coordinates Coordinates       `json:"coordinates"`
	Description string            `json:"description" db:"description"`
	Tags        map[string]string `json:"tags" db:"tags"`
	Status      ReportStatus      `json:"status" db:"status"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UserID      string            `json:"user_id" db:"user_id"`
}

// ComposeReport собирает черновик в готовый к сохранению отчёт.
// Валидация выполняется в фиксированном порядке: координаты, описание,
// идентичность. Дефолтные теги категории применяются только при отсутствии;
// tags.description перезаписывается всегда. Черновик не мутируется.
func ComposeReport(draft ReportDraft, userID string) (*ReportRecord, error) {
	if draft.Coordinates == nil {
		return nil, errors.ErrMissingCoordinates
	}
	description := strings.TrimSpace(draft.Description)
	if description == "" {
		return nil, errors.ErrMissingDescription
	}
	if userID == "" {
		return nil, errors.ErrUnauthenticated
	}

	tags := make(map[string]string, len(draft.Tags)+3)
	for k, v := range draft.Tags {
		tags[k] = v
	}

	switch draft.Category {
	case CategoryBarrier:
		ensureTag(tags, "barrier", "unknown")
	case CategoryFacilitator:
		ensureTag(tags, "amenity", "unknown")
	case CategoryPOI:
		ensureTag(tags, "wheelchair", "yes")
		ensureTag(tags, "amenity", "unknown")
	default:
		return nil, errors.ErrInvalidCategory
	}

	tags["description"] = draft.Description

	return &ReportRecord{
		Category:    draft.Category,
		Coordinates: *draft.Coordinates,
		Description: draft.Description,
		Tags:        tags,
		UserID:      userID,
	}, nil
}

func ensureTag(tags map[string]string, key, fallback string) {
	if _, ok := tags[key]; !ok {
		tags[key] = fallback
	}
}

// Point конвертирует одобренный отчёт в точку доступности
func (r *ReportRecord) Point() AccessibilityPoint {
	userID := r.UserID
	return AccessibilityPoint{
		ID:          r.ID,
		Category:    r.Category,
		Coordinates: r.Coordinates,
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
		UserID:      &userID,
	}
}
