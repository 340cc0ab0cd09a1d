package dto

import (
	"time"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/mapsync"
)

// PointsResponse - видимые точки в фиксированном порядке категорий
type PointsResponse struct {
	Points []domain.AccessibilityPoint `json:"points"`
	Total  int                         `json:"total"`
}

// ReportsResponse - список отчётов пользователя
type ReportsResponse struct {
	Reports []domain.ReportRecord `json:"reports"`
	Total   int                   `json:"total"`
}

// SummaryResponse - сводка по району. Никогда не несёт ошибку:
// сбои генерации маскируются фиксированным сообщением.
type SummaryResponse struct {
	Summary     string    `json:"summary"`
	Cached      bool      `json:"cached"`
	GeneratedAt time.Time `json:"generated_at"`
}

// AuthResponse - результат входа
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// MapStateResponse - наблюдаемое состояние серверной сессии карты
type MapStateResponse struct {
	Theme      string                    `json:"theme"`
	Visibility domain.MapLayerVisibility `json:"visibility"`
	Markers    []mapsync.MarkerState     `json:"markers"`
	Total      int                       `json:"total"`
}
