package auth

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/notekeeper/internal/models"
)

// segmentParser декодирует base64 сегменты токена, допуская паддинг.
// Подпись не проверяется: доверие к токену — на стороне сервера.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// identityClaims — полезная нагрузка, которую сервер кладет в "data"
type identityClaims struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// Claims представляет декодированную полезную нагрузку access токена.
// Доверие есть только к data.email и data.id. ExpiresAt нужен лишь для
// отображения и равен nil, если exp отсутствует или не разобран.
// Остальные claims не читаются: их типы на разных серверах отличаются.
type Claims struct {
	Data      *identityClaims
	ExpiresAt *jwt.NumericDate
}

// payload — поля полезной нагрузки, которые читает клиент
type payload struct {
	Data *identityClaims `json:"data"`
	Exp  json.RawMessage `json:"exp"`
}

// User возвращает идентичность пользователя из claims
func (c *Claims) User() models.User {
	if c.Data == nil {
		return models.User{}
	}
	return models.User{Email: c.Data.Email, ID: c.Data.ID}
}

// ParseClaims декодирует второй сегмент токена вида header.payload.signature
func ParseClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(parts))
	}

	// Сервер может кодировать payload стандартным base64, а не base64url
	segment := strings.NewReplacer("+", "-", "/", "_").Replace(parts[1])

	raw, err := segmentParser.DecodeSegment(segment)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode payload: %v", ErrMalformedToken, err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal claims: %v", ErrMalformedToken, err)
	}

	if p.Data == nil {
		return nil, fmt.Errorf("%w: claims have no user data", ErrMalformedToken)
	}

	return &Claims{Data: p.Data, ExpiresAt: parseExpiry(p.Exp)}, nil
}

// parseExpiry разбирает exp; некорректное значение равносильно отсутствию
func parseExpiry(raw json.RawMessage) *jwt.NumericDate {
	if len(raw) == 0 {
		return nil
	}
	var exp jwt.NumericDate
	if err := json.Unmarshal(raw, &exp); err != nil {
		return nil
	}
	return &exp
}
