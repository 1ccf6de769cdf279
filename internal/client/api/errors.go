package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransportError сообщает, что ответ сервера не получен или не может быть прочитан:
// сеть недоступна, тело ответа оборвано или не является ожидаемым JSON.
type TransportError struct {
	Err error
	Op  string // "POST /api/auth"
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError сообщает о не-2xx ответе. Тело ответа сохраняется как есть.
type RemoteError struct {
	Body       []byte
	Message    string // message/error из тела, если сервер прислал JSON
	StatusCode int
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// Payload возвращает тело ответа как JSON, либо nil если тело не JSON
func (e *RemoteError) Payload() json.RawMessage {
	if len(e.Body) == 0 || !json.Valid(e.Body) {
		return nil
	}
	return json.RawMessage(e.Body)
}

// StatusCode возвращает HTTP статус из цепочки ошибок err
func StatusCode(err error) (int, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.StatusCode, true
	}
	return 0, false
}

// IsTransport сообщает, содержит ли цепочка err ошибку транспорта
func IsTransport(err error) bool {
	var transportErr *TransportError
	return errors.As(err, &transportErr)
}
