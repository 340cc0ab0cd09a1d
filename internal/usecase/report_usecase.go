package usecase

import (
	"context"
	"time"

	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/domain/repository"
	"github.com/accessibility-map/internal/usecase/dto"
	"go.uber.org/zap"
)

const defaultReportsLimit = 50

// ReportUseCase принимает отчёты пользователей: композиция черновика,
// сохранение и публикация события в живую ленту
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewReportUseCase(
	reportRepo repository.ReportRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo: reportRepo,
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// Submit валидирует и сохраняет отчёт. Ошибки валидации возвращаются
// вызывающему для исправления; ретраев нет, повторная отправка -
// решение пользователя.
func (uc *ReportUseCase) Submit(ctx context.Context, req dto.SubmitReportRequest, userID string) (*domain.ReportRecord, error) {
	draft := domain.ReportDraft{
		Category:    domain.Category(req.Category),
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.Lat != nil && req.Lon != nil {
		draft.Coordinates = &domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	}

	record, err := domain.ComposeReport(draft, userID)
	if err != nil {
		return nil, err
	}

	saved, err := uc.reportRepo.Insert(ctx, record)
	if err != nil {
		uc.logger.Error("Failed to persist report",
			zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	// best-effort событие; сбой ленты не откатывает сохранённый отчёт
	event := domain.ReportSubmittedEvent{
		ReportID:    saved.ID,
		Category:    saved.Category,
		Coordinates: saved.Coordinates,
		UserID:      saved.UserID,
		SubmittedAt: time.Now().UTC(),
	}
	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamReportsSubmitted, event); err != nil {
		uc.logger.Warn("Failed to publish report event",
			zap.String("report_id", saved.ID), zap.Error(err))
	}

	uc.logger.Info("Report submitted",
		zap.String("report_id", saved.ID),
		zap.String("category", string(saved.Category)),
		zap.String("user_id", saved.UserID),
	)
	return saved, nil
}

// ListMine возвращает последние отчёты пользователя
func (uc *ReportUseCase) ListMine(ctx context.Context, userID string) (*dto.ReportsResponse, error) {
	reports, err := uc.reportRepo.ListByUser(ctx, userID, defaultReportsLimit)
	if err != nil {
		uc.logger.Error("Failed to list reports",
			zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	return &dto.ReportsResponse{
		Reports: reports,
		Total:   len(reports),
	}, nil
}
