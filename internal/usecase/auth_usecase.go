package usecase

import (
	"github.com/accessibility-map/internal/domain"
	"github.com/accessibility-map/internal/pkg/auth"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthUseCase - анонимная идентичность поверх JWT. Ядро трактует
// идентификатор пользователя как непрозрачную строку.
type AuthUseCase struct {
	jwt    *auth.JWTManager
	logger *zap.Logger
}

func NewAuthUseCase(jwt *auth.JWTManager, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		jwt:    jwt,
		logger: logger,
	}
}

// SignInAnonymously выпускает токен для нового анонимного пользователя
func (uc *AuthUseCase) SignInAnonymously() (*dto.AuthResponse, error) {
	token, user, err := uc.jwt.IssueAnonymous()
	if err != nil {
		uc.logger.Error("Failed to issue anonymous token", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	uc.logger.Info("Anonymous user signed in", zap.String("user_id", user.ID))
	return &dto.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Verify проверяет токен и возвращает пользователя
func (uc *AuthUseCase) Verify(token string) (domain.User, error) {
	user, err := uc.jwt.Verify(token)
	if err != nil {
		return domain.User{}, errors.ErrInvalidToken
	}
	return user, nil
}
