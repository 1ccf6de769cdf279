// Package jwt выпускает и проверяет access токены сервера заметок.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/notekeeper/internal/models"
)

// ErrInvalidToken возвращается для любого токена, не прошедшего проверку
var ErrInvalidToken = errors.New("invalid token")

// UserData — идентичность пользователя в поле "data" токена
type UserData struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// Claims represents JWT claims
type Claims struct {
	Data UserData `json:"data"`
	jwt.RegisteredClaims
}

// User returns user identity stored in claims
func (c *Claims) User() models.User {
	return models.User{Email: c.Data.Email, ID: c.Data.ID}
}

// Service provides JWT token generation and validation
type Service struct {
	clock  clockwork.Clock
	secret []byte
	ttl    time.Duration
}

// NewService creates a new JWT service.
// secret should be a cryptographically secure random string
func NewService(secret string, ttl time.Duration, clock clockwork.Clock) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clock,
	}
}

// TTL returns lifetime of issued tokens
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue creates a signed access token for user.
// Каждый токен получает уникальный jti, по которому его можно отозвать.
func (s *Service) Issue(user models.User) (string, *Claims, error) {
	now := s.clock.Now()

	claims := &Claims{
		Data: UserData{Email: user.Email, ID: user.ID},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, claims, nil
}

// Validate checks signature and expiry of token and returns its claims
func (s *Service) Validate(token string) (*Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%w: token has no id", ErrInvalidToken)
	}

	return &claims, nil
}
