package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/mapsync"
	"github.com/accessibility-map/internal/worker"
	"go.uber.org/zap"
)

const (
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep      = time.Second            // пауза при ошибке чтения
)

// PointFeedWorker потребляет живую ленту изменений точек и держит
// mapsync view актуальным: на каждое событие перечитывается затронутая
// категория целиком.
type PointFeedWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	pointRepo    repository.PointRepository
	view         *mapsync.View
	consumerName string
	maxBatchSize int
}

// NewPointFeedWorker создает новый PointFeedWorker
func NewPointFeedWorker(
	streamRepo repository.StreamRepository,
	pointRepo repository.PointRepository,
	view *mapsync.View,
	consumerGroup string,
	maxBatchSize int,
	logger *zap.Logger,
) *PointFeedWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &PointFeedWorker{
		BaseWorker:   worker.NewBaseWorker("point-feed", consumerGroup, logger),
		streamRepo:   streamRepo,
		pointRepo:    pointRepo,
		view:         view,
		consumerName: consumerName,
		maxBatchSize: maxBatchSize,
	}
}

// Start запускает воркер: начальная полная загрузка view, затем
// основной цикл потребления ленты
func (w *PointFeedWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting PointFeedWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPointsChanged, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// начальная загрузка: view заполняется до первого события
	for _, c := range domain.Categories {
		if err := w.refreshCategory(ctx, c); err != nil {
			logger.Error("Initial category load failed",
				zap.String("category", string(c)), zap.Error(err))
		}
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(errorSleep)
				continue
			}
			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и обрабатывает пачку событий.
// Возвращает количество обработанных сообщений.
func (w *PointFeedWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPointsChanged,
		w.ConsumerGroup(),
		w.consumerName,
		w.maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	// несколько событий одной категории сворачиваются в одно обновление
	touched := make(map[domain.Category]struct{})
	for _, msg := range messages {
		var event domain.PointChangedEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil || !event.Category.Valid() {
			// битое сообщение пропускается и ACK-ается вместе с пачкой,
			// чтобы не застревало в pending
			logger.Warn("Failed to parse point event, skipping",
				zap.String("message_id", msg.ID))
			continue
		}
		touched[event.Category] = struct{}{}
	}

	for category := range touched {
		if err := w.refreshCategory(ctx, category); err != nil {
			logger.Error("Failed to refresh category",
				zap.String("category", string(category)), zap.Error(err))
			// события не ACK-аются: пачка будет перечитана
			return 0, err
		}
	}

	for _, msg := range messages {
		if err := w.streamRepo.AckMessage(ctx, domain.StreamPointsChanged, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Warn("Failed to ack message",
				zap.String("message_id", msg.ID), zap.Error(err))
		}
	}

	logger.Debug("Point feed batch processed",
		zap.Int("message_count", len(messages)),
		zap.Int("categories_refreshed", len(touched)))
	return len(messages), nil
}

func (w *PointFeedWorker) refreshCategory(ctx context.Context, category domain.Category) error {
	points, err := w.pointRepo.ListByCategory(ctx, category)
	if err != nil {
		return err
	}
	w.view.SetCategory(category, points)
	return nil
}
