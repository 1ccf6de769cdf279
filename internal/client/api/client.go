package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/notekeeper/internal/correlation"
	"github.com/iudanet/notekeeper/internal/models"
	"github.com/iudanet/notekeeper/pkg/api"
)

const (
	pathAuth     = "/api/auth"
	pathRegister = "/api/reg"
	pathNotes    = "/api/notes"

	maxRedirects = 10
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Authorization при редиректе переносит сам net/http,
			// и только если новый хост совпадает с исходным
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
	}
}

// Login выполняет аутентификацию по email и паролю.
// Наличие accessToken в ответе не проверяется: это задача вызывающей стороны.
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, pathAuth, "", req, &raw); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	resp := &api.TokenResponse{Raw: raw}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, resp); err != nil {
			return nil, fmt.Errorf("login request failed: %w",
				&TransportError{Op: http.MethodPost + " " + pathAuth, Err: fmt.Errorf("failed to decode response: %w", err)})
		}
	}

	return resp, nil
}

// Register регистрирует нового пользователя и возвращает тело ответа как есть
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, pathRegister, "", req, &raw); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return raw, nil
}

// GetProfile получает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context, token string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodGet, pathAuth, token, nil, &raw); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return raw, nil
}

// Logout завершает сессию на сервере
func (c *Client) Logout(ctx context.Context, token string) error {
	if err := c.doRequest(ctx, http.MethodDelete, pathAuth, token, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// ListNotes возвращает все заметки пользователя в порядке сервера
func (c *Client) ListNotes(ctx context.Context, token string) ([]models.Note, error) {
	var notes []models.Note
	if err := c.doRequest(ctx, http.MethodGet, pathNotes, token, nil, &notes); err != nil {
		return nil, fmt.Errorf("list notes request failed: %w", err)
	}
	return notes, nil
}

// CreateNote создает заметку и возвращает ее серверное представление
func (c *Client) CreateNote(ctx context.Context, token string, req api.CreateNoteRequest) (*models.Note, error) {
	var note models.Note
	if err := c.doRequest(ctx, http.MethodPost, pathNotes, token, req, &note); err != nil {
		return nil, fmt.Errorf("create note request failed: %w", err)
	}
	return &note, nil
}

// DeleteNote удаляет заметку по идентификатору
func (c *Client) DeleteNote(ctx context.Context, token string, id int64) error {
	path := pathNotes + "/" + strconv.FormatInt(id, 10)
	if err := c.doRequest(ctx, http.MethodDelete, path, token, nil, nil); err != nil {
		return fmt.Errorf("delete note request failed: %w", err)
	}
	return nil
}

// doRequest выполняет HTTP запрос.
// token добавляется как Bearer, если не пустой.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	op := method + " " + path
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id, ok := correlation.ID(ctx); ok {
		req.Header.Set(correlation.HeaderName, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	slog.DebugContext(ctx, "api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		remoteErr := &RemoteError{StatusCode: resp.StatusCode, Body: respBody}
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil {
			remoteErr.Message = errResp.Message
			if remoteErr.Message == "" {
				remoteErr.Message = errResp.Error
			}
		}
		return remoteErr
	}

	// Декодируем успешный ответ
	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &TransportError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
		}
	}

	return nil
}
