package handler

import (
	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/accessibility-map/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SummaryHandler - обработчик сводки по району. Эндпоинт никогда не
// возвращает ошибку клиенту: сбои генерации маскируются fallback текстом.
type SummaryHandler struct {
	summaryUC *usecase.SummaryUseCase
	logger    *zap.Logger
}

func NewSummaryHandler(summaryUC *usecase.SummaryUseCase, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryUC: summaryUC,
		logger:    logger,
	}
}

// Get - сводка доступности района
func (h *SummaryHandler) Get(c *fiber.Ctx) error {
	result := h.summaryUC.Summarize(c.Context())
	return utils.SendSuccess(c, result, nil)
}
