package repository

import (
	"context"

	"github.com/accessibility-map/internal/domain"
)

// StreamRepository - живая лента изменений поверх Redis Streams
type StreamRepository interface {
	CreateConsumerGroup(ctx context.Context, stream, group string) error
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)
	AckMessage(ctx context.Context, stream, group, messageID string) error
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
