package middleware

import (
	"strings"

	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/pkg/utils"
	"github.com/accessibility-map/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	// LocalsUser - ключ пользователя в fiber locals
	LocalsUser = "auth_user"
)

// Auth проверяет Bearer токен и кладёт пользователя в locals.
// Отчёты требуют идентичности; запросы без валидного токена отклоняются.
func Auth(authUC *usecase.AuthUseCase, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return utils.SendError(c, errors.ErrUnauthenticated)
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			return utils.SendError(c, errors.ErrInvalidToken)
		}

		user, err := authUC.Verify(token)
		if err != nil {
			logger.Warn("Token verification failed", zap.Error(err))
			return utils.SendError(c, err)
		}

		c.Locals(LocalsUser, user)
		return c.Next()
	}
}
