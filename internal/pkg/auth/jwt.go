package auth

import (
	"fmt"
	"time"

	"github.com/accessibility-map/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTManager выпускает и проверяет токены анонимной идентичности.
// Ядро трактует subject токена как непрозрачный идентификатор пользователя.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	return &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
}

// IssueAnonymous выпускает токен для нового анонимного пользователя
func (m *JWTManager) IssueAnonymous() (string, domain.User, error) {
	user := domain.User{
		ID:        uuid.New().String(),
		Anonymous: true,
	}

	token, err := m.issue(user)
	return token, user, err
}

func (m *JWTManager) issue(user domain.User) (string, error) {
	now := time.Now().UTC()

	claims := jwt.MapClaims{
		"iss": m.issuer,
		"sub": user.ID,
		"iat": now.Unix(),
		"exp": now.Add(m.ttl).Unix(),
		"jti": uuid.New().String(),
		"anm": user.Anonymous,
	}
	if user.DisplayName != nil {
		claims["name"] = *user.DisplayName
	}
	if user.Email != nil {
		claims["email"] = *user.Email
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify проверяет подпись и срок действия токена и возвращает пользователя
func (m *JWTManager) Verify(tokenStr string) (domain.User, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		return domain.User{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return domain.User{}, jwt.ErrTokenInvalidClaims
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return domain.User{}, jwt.ErrTokenInvalidSubject
	}

	user := domain.User{ID: sub}
	if anm, ok := claims["anm"].(bool); ok {
		user.Anonymous = anm
	}
	if name, ok := claims["name"].(string); ok && name != "" {
		user.DisplayName = &name
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		user.Email = &email
	}

	return user, nil
}
