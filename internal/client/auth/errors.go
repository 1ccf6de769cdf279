package auth

import (
	"errors"
	"fmt"
)

// DuplicateAccountMessage — текст ошибки при повторной регистрации e-mail
const DuplicateAccountMessage = "Пользователь с таким e-mail уже зарегистрирован"

var (
	// ErrMalformedToken indicates that the access token cannot be decoded
	ErrMalformedToken = errors.New("malformed access token")

	// ErrTokenNotReceived indicates that the login response has no accessToken
	ErrTokenNotReceived = fmt.Errorf("%w: token not received from server", ErrMalformedToken)

	// ErrInvalidProfile indicates that the profile response has no user identity
	ErrInvalidProfile = errors.New("invalid user profile")

	// ErrNotAuthenticated indicates that the operation requires a session
	ErrNotAuthenticated = errors.New("not authenticated")
)

// DuplicateAccountError возвращается при ответе 409 на регистрацию.
// Сообщение фиксировано и не зависит от тела ответа сервера.
type DuplicateAccountError struct {
	Message string
	Status  int
}

func (e *DuplicateAccountError) Error() string {
	return e.Message
}
