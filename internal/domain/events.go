package domain

import "time"

// Stream names (должны совпадать с потребителями живой ленты)
const (
	StreamPointsChanged    = "stream:points:changed"
	StreamReportsSubmitted = "stream:reports:submitted"
)

// PointChangedEvent - событие изменения набора точек одной категории.
// Потребитель перечитывает категорию целиком: лента сигнализирует об
// изменении, но не переносит сами данные.
type PointChangedEvent struct {
	Category   Category  `json:"category"`
	PointID    string    `json:"point_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ReportSubmittedEvent - событие принятого отчёта пользователя
type ReportSubmittedEvent struct {
	ReportID    string      `json:"report_id"`
	Category    Category    `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	UserID      string      `json:"user_id"`
	SubmittedAt time.Time   `json:"submitted_at"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
