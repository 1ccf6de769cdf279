package storage

import (
	"context"
)

// Ключи сессии в локальном хранилище
const (
	// KeyToken хранит bearer токен как есть
	KeyToken = "token"
	// KeyUser хранит JSON {"email": ..., "id": ...}
	KeyUser = "user"
)

// LocalStorage defines durable key/value storage on the client.
// Values are opaque strings, callers are responsible for serialization.
type LocalStorage interface {
	// Get returns the value stored under key.
	// Returns ErrKeyNotFound if the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
