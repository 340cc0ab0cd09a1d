package handler

import (
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/accessibility-map/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthHandler - обработчик анонимного входа
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// SignInAnonymously - выпуск токена анонимного пользователя
func (h *AuthHandler) SignInAnonymously(c *fiber.Ctx) error {
	result, err := h.authUC.SignInAnonymously()
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Me - текущий пользователь из токена
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return utils.SendError(c, errors.ErrUnauthenticated)
	}

	return utils.SendSuccess(c, user, nil)
}
