package handler

import (
	"github.com/accessibility-map/internal/delivery/http/middleware"
	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/accessibility-map/internal/pkg/validator"
	"github.com/accessibility-map/internal/usecase"
	"github.com/accessibility-map/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHandler - обработчик отчётов пользователей
type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// Submit - приём нового отчёта. Ошибки валидации возвращаются inline;
// ретраев нет, повторная отправка - действие пользователя.
func (h *ReportHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitReportRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthenticated)
	}

	record, err := h.reportUC.Submit(c.Context(), req, user.ID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{
		Data: record,
	})
}

// ListMine - последние отчёты текущего пользователя
func (h *ReportHandler) ListMine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthenticated)
	}

	result, err := h.reportUC.ListMine(c.Context(), user.ID)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

func currentUser(c *fiber.Ctx) (domain.User, bool) {
	user, ok := c.Locals(middleware.LocalsUser).(domain.User)
	return user, ok
}
