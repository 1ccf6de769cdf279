package models

// User представляет идентичность пользователя текущей сессии.
// Сериализуется в локальное хранилище как {"email": ..., "id": ...}.
type User struct {
	Email string `json:"email"`
	ID    int64  `json:"id"`
}

// IsZero сообщает, что ни одно поле идентичности не заполнено
func (u User) IsZero() bool {
	return u.Email == "" && u.ID == 0
}

// Merge возвращает копию u, в которой непустые поля other заменяют текущие
func (u User) Merge(other User) User {
	if other.Email != "" {
		u.Email = other.Email
	}
	if other.ID != 0 {
		u.ID = other.ID
	}
	return u
}
