package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/accessibility-map/internal/pkg/auth"
	"github.com/accessibility-map/internal/pkg/errors"
	"github.com/accessibility-map/internal/usecase"
)

func TestAuthUseCase_SignInAnonymously(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", "accessibility-map", time.Hour)
	uc := usecase.NewAuthUseCase(jwtManager, zap.NewNop())

	resp, err := uc.SignInAnonymously()
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.True(t, resp.User.Anonymous)

	user, err := uc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, user.ID)
}

func TestAuthUseCase_Verify_InvalidToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", "accessibility-map", time.Hour)
	uc := usecase.NewAuthUseCase(jwtManager, zap.NewNop())

	_, err := uc.Verify("garbage")
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
}
