package service

import (
	"errors"
	"fmt"
	"net/http"

	"csa-console/internal/backend"
	"csa-console/internal/roster"
	"csa-console/internal/session"
)

// AppError описывает прикладную ошибку сервиса:
// код для клиента, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrBadRequest конструирует AppError для ошибок валидации или некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrUnauthorized сессии нет, она истекла или бэкенд отверг токен.
func ErrUnauthorized(msg string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: msg,
		Status:  http.StatusUnauthorized,
	}
}

// ErrForbidden действие запрещено: не та роль или неверный PIN.
func ErrForbidden(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrDomain конструирует AppError для конфликтов состояния (например, NOT_EDITING).
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusConflict,
	}
}

func errInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL",
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// fromBackend переводит ошибку бэкенд-клиента в AppError.
// 401 завершает сессию, 404 и прочие 4xx передаются клиенту, остальное превращается в 502.
func fromBackend(msg string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrUnauthorized) {
		return &AppError{Code: "UNAUTHORIZED", Message: "session expired, please log in again", Status: http.StatusUnauthorized, Err: err}
	}
	if errors.Is(err, session.ErrExpired) || errors.Is(err, session.ErrNotFound) {
		return &AppError{Code: "UNAUTHORIZED", Message: "session expired, please log in again", Status: http.StatusUnauthorized, Err: err}
	}

	var se *backend.StatusError
	if errors.As(err, &se) {
		detail := se.Detail
		if detail == "" {
			detail = msg
		}
		switch {
		case se.Status == http.StatusNotFound:
			return &AppError{Code: "NOT_FOUND", Message: detail, Status: http.StatusNotFound, Err: err}
		case se.Status == http.StatusForbidden:
			return &AppError{Code: "FORBIDDEN", Message: detail, Status: http.StatusForbidden, Err: err}
		case se.Status >= 400 && se.Status < 500:
			return &AppError{Code: "BAD_REQUEST", Message: detail, Status: http.StatusBadRequest, Err: err}
		}
	}
	return &AppError{Code: "BACKEND_ERROR", Message: msg, Status: http.StatusBadGateway, Err: err}
}

// fromEditor переводит ошибки редактора состава.
func fromEditor(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, roster.ErrNotEditing):
		return ErrDomain("NOT_EDITING", "roster is not in edit mode")
	case errors.Is(err, roster.ErrAlreadyEditing):
		return ErrDomain("ALREADY_EDITING", "roster is already in edit mode")
	case errors.Is(err, roster.ErrSaving):
		return ErrDomain("SAVE_IN_PROGRESS", "roster save is in progress")
	case errors.Is(err, roster.ErrUnknownMember):
		return ErrNotFound("team member not found")
	case errors.Is(err, roster.ErrUnknownField), errors.Is(err, roster.ErrInvalidAccessRights):
		return ErrBadRequest(err.Error())
	default:
		return errInternal("roster edit failed", err)
	}
}

// IsNotFound помогает определить, соответствует ли ошибка HTTP-статусу 404.
func IsNotFound(err error) bool {
	var app *AppError
	return errors.As(err, &app) && app.Status == http.StatusNotFound
}
