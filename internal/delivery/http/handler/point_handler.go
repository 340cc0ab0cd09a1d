package handler

import (
	"strconv"

	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/accessibility-map/internal/usecase"
	"github.com/accessibility-map/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PointHandler - обработчик запросов точек доступности
type PointHandler struct {
	pointUC *usecase.PointUseCase
	logger  *zap.Logger
}

func NewPointHandler(pointUC *usecase.PointUseCase, logger *zap.Logger) *PointHandler {
	return &PointHandler{
		pointUC: pointUC,
		logger:  logger,
	}
}

// List - видимые точки с учётом query-параметров слоёв
// (?barriers=false&facilitators=true&pois=true; отсутствие параметра
// означает включённый слой)
func (h *PointHandler) List(c *fiber.Ctx) error {
	result, err := h.pointUC.ListVisible(c.Context(), ParseLayerQuery(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetByID - одна точка по идентификатору
func (h *PointHandler) GetByID(c *fiber.Ctx) error {
	point, err := h.pointUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, point, nil)
}

// ParseLayerQuery извлекает видимость слоёв из query-параметров
func ParseLayerQuery(c *fiber.Ctx) dto.LayerQuery {
	return dto.LayerQuery{
		Barriers:     parseBoolParam(c, "barriers"),
		Facilitators: parseBoolParam(c, "facilitators"),
		POIs:         parseBoolParam(c, "pois"),
	}
}

func parseBoolParam(c *fiber.Ctx, name string) *bool {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
