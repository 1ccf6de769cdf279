package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/internal/server/jwt"
	"github.com/iudanet/notekeeper/internal/server/storage"
	"github.com/iudanet/notekeeper/internal/validation"
	"github.com/iudanet/notekeeper/pkg/api"
)

const (
	msgInvalidBody        = "invalid request body"
	msgInternal           = "internal server error"
	msgInvalidCredentials = "invalid credentials"
	msgUserExists         = "user already exists"
	msgPasswordMismatch   = "passwords do not match"
	msgUnauthorized       = "authentication required"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger   *slog.Logger
	users    storage.UserStorage
	tokens   storage.TokenStorage
	jwt      *jwt.Service
	clock    clockwork.Clock
	hashCost int
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens storage.TokenStorage, jwtService *jwt.Service, clock clockwork.Clock) *AuthHandler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AuthHandler{
		logger:   logger,
		users:    users,
		tokens:   tokens,
		jwt:      jwtService,
		clock:    clock,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register обрабатывает POST /api/reg
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if err := validation.ValidateEmail(req.Email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Password != req.ConfirmPassword {
		sendError(h.logger, w, msgPasswordMismatch, http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), h.hashCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	account := &models.Account{
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    h.clock.Now(),
	}

	if err := h.users.CreateUser(ctx, account); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", req.Email))
			sendError(h.logger, w, msgUserExists, http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered",
		slog.String("email", account.Email),
		slog.Int64("user_id", account.ID))

	sendJSON(h.logger, w, api.RegisterResponse{Email: account.Email, ID: account.ID}, http.StatusCreated)
}

// Login обрабатывает POST /api/auth
// Проверяет пароль и выдает access token
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(h.logger, w, "email and password are required", http.StatusBadRequest)
		return
	}

	account, err := h.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", req.Email))
			sendError(h.logger, w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: wrong password", slog.String("email", req.Email))
		sendError(h.logger, w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	token, _, err := h.jwt.Issue(account.User())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue access token", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	if err := h.users.UpdateLastLogin(ctx, account.ID, h.clock.Now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in", slog.Int64("user_id", account.ID))

	sendJSON(h.logger, w, api.TokenResponse{AccessToken: token}, http.StatusOK)
}

// Profile обрабатывает GET /api/auth
// Возвращает профиль владельца токена
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	account, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			sendError(h.logger, w, "user not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, account.User(), http.StatusOK)
}

// Logout обрабатывает DELETE /api/auth
// Отзывает токен запроса до истечения его срока
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := GetClaims(ctx)
	if !ok {
		sendError(h.logger, w, msgUnauthorized, http.StatusUnauthorized)
		return
	}

	expiresAt := h.clock.Now().Add(h.jwt.TTL())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := h.tokens.RevokeToken(ctx, claims.ID, expiresAt); err != nil {
		h.logger.ErrorContext(ctx, "failed to revoke token", slog.Any("error", err))
		sendError(h.logger, w, msgInternal, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged out", slog.Int64("user_id", claims.Data.ID))

	w.WriteHeader(http.StatusNoContent)
}
