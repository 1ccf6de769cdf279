package models

import "time"

// Account — учетная запись пользователя на стороне сервера
type Account struct {
	CreatedAt    time.Time
	LastLogin    *time.Time
	Email        string
	PasswordHash string
	ID           int64
}

// User возвращает публичную идентичность учетной записи
func (a *Account) User() User {
	return User{Email: a.Email, ID: a.ID}
}
