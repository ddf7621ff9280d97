package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized бэкенд ответил 401 или токена нет: сессия завершена.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrNoToken у источника токенов нет действующего токена.
	ErrNoToken = errors.New("backend: no access token")
)

// StatusError неуспешный HTTP-ответ бэкенда.
type StatusError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend %s %s: %d: %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("backend %s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// IsStatus проверяет, что err является StatusError с данным кодом.
func IsStatus(err error, status int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Status == status
}

// parseDetail достаёт поле "detail" из ответа об ошибке. Бэкенд кладёт туда строку
// либо список ошибок валидации, во втором случае возвращается сырой JSON.
func parseDetail(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			return s
		}
		return string(payload.Detail)
	}
	return payload.Message
}
