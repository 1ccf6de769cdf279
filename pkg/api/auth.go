package api

import "encoding/json"

// LoginRequest представляет запрос на аутентификацию (POST /api/auth)
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию (POST /api/reg)
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// TokenResponse представляет ответ сервера на успешный логин.
// Raw хранит тело ответа целиком: кроме accessToken сервер может вернуть
// произвольные поля, и вызывающая сторона получает их без потерь.
type TokenResponse struct {
	AccessToken string          `json:"accessToken"`
	Raw         json.RawMessage `json:"-"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}

// RegisterResponse представляет ответ на успешную регистрацию
type RegisterResponse struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}
