package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/iudanet/notekeeper/internal/client/api"
	"github.com/iudanet/notekeeper/internal/client/storage"
	"github.com/iudanet/notekeeper/internal/models"
	pkgapi "github.com/iudanet/notekeeper/pkg/api"
)

// APIClient describes the remote auth endpoints used by Manager
type APIClient interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (json.RawMessage, error)
	GetProfile(ctx context.Context, token string) (json.RawMessage, error)
	Logout(ctx context.Context, token string) error
}

// Compile-time check that api.Client implements APIClient
var _ APIClient = (*api.Client)(nil)

// Session — снимок состояния сессии. User != nil только если Token не пуст.
type Session struct {
	User  *models.User
	Token string
}

// Authenticated сообщает, что сессия содержит токен
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	Response json.RawMessage       // тело ответа /api/reg
	Login    *pkgapi.TokenResponse // ответ автологина; nil если сервер вернул пустое тело
}

// Manager владеет токеном и идентичностью пользователя.
// Каждое изменение состояния в памяти повторяется в локальном хранилище.
type Manager struct {
	api   APIClient
	store storage.LocalStorage
	user  *models.User
	token string
	mu    sync.RWMutex
}

// NewManager создает менеджер и восстанавливает сессию из хранилища
func NewManager(ctx context.Context, apiClient APIClient, store storage.LocalStorage) (*Manager, error) {
	m := &Manager{
		api:   apiClient,
		store: store,
	}

	if err := m.restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}

	return m, nil
}

// Login выполняет аутентификацию и сохраняет сессию.
// При любой ошибке состояние сессии не меняется.
func (m *Manager) Login(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
	resp, err := m.api.Login(ctx, pkgapi.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	if resp.AccessToken == "" {
		return nil, ErrTokenNotReceived
	}

	claims, err := ParseClaims(resp.AccessToken)
	if err != nil {
		return nil, err
	}
	user := claims.User()

	// Хранилище и память меняются под одной блокировкой,
	// иначе параллельный Logout может разминуться с записью
	m.mu.Lock()
	if err := m.persist(ctx, resp.AccessToken, &user, m.snapshot()); err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("failed to save session: %w", err)
	}
	m.token = resp.AccessToken
	m.user = &user
	m.mu.Unlock()

	slog.InfoContext(ctx, "logged in", "email", user.Email, "user_id", user.ID)

	return resp, nil
}

// Register регистрирует пользователя и сразу выполняет вход с теми же данными.
// Ошибка автологина возвращается без изменений.
func (m *Manager) Register(ctx context.Context, email, password, confirmPassword string) (*RegisterResult, error) {
	raw, err := m.api.Register(ctx, pkgapi.RegisterRequest{
		Email:           email,
		Password:        password,
		ConfirmPassword: confirmPassword,
	})
	if err != nil {
		if code, ok := api.StatusCode(err); ok && code == http.StatusConflict {
			return nil, &DuplicateAccountError{
				Status:  http.StatusConflict,
				Message: DuplicateAccountMessage,
			}
		}
		return nil, err
	}

	result := &RegisterResult{Response: raw}
	if !truthy(raw) {
		slog.WarnContext(ctx, "registration returned empty body, skipping auto-login", "email", email)
		return result, nil
	}

	loginResp, err := m.Login(ctx, email, password)
	if err != nil {
		slog.ErrorContext(ctx, "auto-login after registration failed", "error", err)
		return nil, err
	}
	result.Login = loginResp

	return result, nil
}

// FetchUserData обновляет идентичность пользователя из профиля на сервере.
// Профиль приводится к схеме models.User и сливается с текущей идентичностью.
// Без токена запрос уходит без Authorization, и отказ сервера
// возвращается как *api.RemoteError.
func (m *Manager) FetchUserData(ctx context.Context) (*models.User, error) {
	current := m.Session()

	raw, err := m.api.GetProfile(ctx, current.Token)
	if err != nil {
		return nil, err
	}

	if !current.Authenticated() {
		// Пользователь без токена нарушил бы инвариант сессии
		return nil, fmt.Errorf("%w: server returned profile for anonymous request", ErrNotAuthenticated)
	}

	var profile models.User
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}
	if profile.IsZero() {
		return nil, fmt.Errorf("%w: no email or id in response", ErrInvalidProfile)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Сессия могла смениться, пока шел запрос
	if m.token != current.Token {
		return nil, fmt.Errorf("%w: session changed during profile refresh", ErrNotAuthenticated)
	}

	var merged models.User
	if m.user != nil {
		merged = *m.user
	}
	merged = merged.Merge(profile)

	data, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyUser, string(data)); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	m.user = &merged
	out := merged

	return &out, nil
}

// Logout завершает сессию. Ошибка сервера логируется и не прерывает выход:
// токен и пользователь всегда удаляются из памяти и из хранилища.
// Возвращается только ошибка удаления из локального хранилища.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx, m.Token()); err != nil {
		slog.WarnContext(ctx, "failed to logout on server", "error", err)
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	err := m.clearStorage(ctx)
	m.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}

	slog.InfoContext(ctx, "logged out")

	return nil
}

// Token возвращает текущий bearer токен или пустую строку
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// User возвращает копию идентичности пользователя или nil
func (m *Manager) User() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}

// IsAuthenticated сообщает, что сессия содержит токен
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// UserEmail возвращает e-mail текущего пользователя или пустую строку
func (m *Manager) UserEmail() string {
	if u := m.User(); u != nil {
		return u.Email
	}
	return ""
}

// Session возвращает согласованный снимок токена и пользователя
func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot()
}

// snapshot копирует состояние сессии; вызывающий держит m.mu
func (m *Manager) snapshot() Session {
	s := Session{Token: m.token}
	if m.user != nil {
		u := *m.user
		s.User = &u
	}
	return s
}

// Claims декодирует claims текущего токена
func (m *Manager) Claims() (*Claims, error) {
	token := m.Token()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return ParseClaims(token)
}

// restore читает сессию из хранилища и приводит ее к инварианту
// "пользователь есть только при наличии токена"
func (m *Manager) restore(ctx context.Context) error {
	token, err := m.readKey(ctx, storage.KeyToken)
	if err != nil {
		return err
	}
	userJSON, err := m.readKey(ctx, storage.KeyUser)
	if err != nil {
		return err
	}

	if token == "" {
		if userJSON != "" {
			slog.DebugContext(ctx, "dropping stored user without token")
			if err := m.store.Delete(ctx, storage.KeyUser); err != nil {
				return fmt.Errorf("failed to delete orphan user: %w", err)
			}
		}
		return nil
	}

	var user models.User
	if userJSON == "" || json.Unmarshal([]byte(userJSON), &user) != nil || user.IsZero() {
		// Пользователь поврежден или отсутствует: восстанавливаем из токена
		claims, err := ParseClaims(token)
		if err != nil {
			slog.WarnContext(ctx, "stored token is malformed, clearing session", "error", err)
			return m.clearStorage(ctx)
		}
		user = claims.User()
		if err := m.persist(ctx, token, &user, Session{}); err != nil {
			return fmt.Errorf("failed to repair stored user: %w", err)
		}
	}

	m.token = token
	m.user = &user

	return nil
}

// readKey возвращает значение ключа или пустую строку, если ключа нет
func (m *Manager) readKey(ctx context.Context, key string) (string, error) {
	value, err := m.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, nil
}

// persist сохраняет токен и пользователя. При сбое записи пользователя
// хранилище возвращается к prev, чтобы не расходиться с памятью.
func (m *Manager) persist(ctx context.Context, token string, user *models.User, prev Session) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if err := m.store.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}

	if err := m.store.Set(ctx, storage.KeyUser, string(data)); err != nil {
		if rbErr := m.rollback(ctx, prev); rbErr != nil {
			slog.ErrorContext(ctx, "failed to roll back stored session", "error", rbErr)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// rollback возвращает хранилище к снимку prev
func (m *Manager) rollback(ctx context.Context, prev Session) error {
	if !prev.Authenticated() {
		return m.clearStorage(ctx)
	}
	if err := m.store.Set(ctx, storage.KeyToken, prev.Token); err != nil {
		return err
	}
	if prev.User == nil {
		return m.store.Delete(ctx, storage.KeyUser)
	}
	data, err := json.Marshal(prev.User)
	if err != nil {
		return err
	}
	return m.store.Set(ctx, storage.KeyUser, string(data))
}

// clearStorage удаляет оба ключа сессии, даже если первый не удалился
func (m *Manager) clearStorage(ctx context.Context) error {
	return errors.Join(
		m.store.Delete(ctx, storage.KeyToken),
		m.store.Delete(ctx, storage.KeyUser),
	)
}

// truthy повторяет семантику "truthy" для JSON тела ответа
func truthy(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false", "0", `""`:
		return false
	default:
		return true
	}
}
