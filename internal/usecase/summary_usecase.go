package usecase

import (
	"context"
	"time"

	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/usecase/dto"
	"go.uber.org/zap"
)

const summaryCacheKey = "summary:area"

const (
	// SummaryNoData - фиксированный ответ при пустом наборе точек
	SummaryNoData = "No accessibility data available for this area yet."

	// SummaryFallback маскирует любой сбой генерации; пользователь может
	// повторить запрос сам, автоматических ретраев нет
	SummaryFallback = "The area summary is temporarily unavailable. Please try again later."
)

// SummaryUseCase генерирует natural-language сводку по району.
// Сбои нижних слоёв никогда не поднимаются к клиенту.
type SummaryUseCase struct {
	pointUC     *PointUseCase
	summaryRepo repository.SummaryRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

func NewSummaryUseCase(
	pointUC *PointUseCase,
	summaryRepo repository.SummaryRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SummaryUseCase {
	return &SummaryUseCase{
		pointUC:     pointUC,
		summaryRepo: summaryRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// Summarize возвращает сводку: из кеша, от внешнего сервиса либо
// фиксированный fallback. Пустой набор точек коротко замыкается в
// сообщение об отсутствии данных без обращения к сервису.
func (uc *SummaryUseCase) Summarize(ctx context.Context) *dto.SummaryResponse {
	if cached, ok, err := uc.cacheRepo.Get(ctx, summaryCacheKey); err == nil && ok {
		return &dto.SummaryResponse{
			Summary:     cached,
			Cached:      true,
			GeneratedAt: time.Now().UTC(),
		}
	}

	sets, err := uc.pointUC.ListSets(ctx)
	if err != nil {
		uc.logger.Error("Failed to load points for summary", zap.Error(err))
		return fallbackResponse()
	}

	if sets.Total() == 0 {
		return &dto.SummaryResponse{
			Summary:     SummaryNoData,
			GeneratedAt: time.Now().UTC(),
		}
	}

	summary, err := uc.summaryRepo.Summarize(ctx, sets)
	if err != nil {
		uc.logger.Error("Summarization failed", zap.Error(err))
		return fallbackResponse()
	}

	if err := uc.cacheRepo.Set(ctx, summaryCacheKey, summary, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache summary", zap.Error(err))
	}

	return &dto.SummaryResponse{
		Summary:     summary,
		GeneratedAt: time.Now().UTC(),
	}
}

func fallbackResponse() *dto.SummaryResponse {
	return &dto.SummaryResponse{
		Summary:     SummaryFallback,
		GeneratedAt: time.Now().UTC(),
	}
}
