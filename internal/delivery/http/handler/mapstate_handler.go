package handler

import (
	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/accessibility-map/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MapStateHandler - отладочный обработчик серверной сессии карты
type MapStateHandler struct {
	mapStateUC *usecase.MapStateUseCase
	logger     *zap.Logger
}

func NewMapStateHandler(mapStateUC *usecase.MapStateUseCase, logger *zap.Logger) *MapStateHandler {
	return &MapStateHandler{
		mapStateUC: mapStateUC,
		logger:     logger,
	}
}

// GetState - состояние маркеров после сверки с текущими точками
func (h *MapStateHandler) GetState(c *fiber.Ctx) error {
	result, err := h.mapStateUC.GetState(c.Context(), ParseLayerQuery(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// SetTheme - переключение темы сессии (?theme=dark|light)
func (h *MapStateHandler) SetTheme(c *fiber.Ctx) error {
	applied := h.mapStateUC.SetTheme(c.Query("theme", "light"))
	return utils.SendSuccess(c, fiber.Map{"theme": applied}, nil)
}
