// Package session хранит сессии дашборда: токен бэкенда и профиль вошедшего пользователя.
package session

import (
	"context"
	"errors"
	"time"

	"csa-console/internal/model"
)

var (
	// ErrNotFound сессии нет или она истекла по неактивности.
	ErrNotFound = errors.New("session not found")
	// ErrExpired срок действия токена бэкенда истёк.
	ErrExpired = errors.New("session token expired")
)

// Session сессия пользователя дашборда.
type Session struct {
	ID          string     `json:"id"`
	AccessToken string     `json:"access_token"`
	User        model.User `json:"user"`
	CreatedAt   time.Time  `json:"created_at"`
	// ExpiresAt срок жизни токена из claim exp, нулевой если токен не JWT.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Expired проверяет срок действия токена на момент now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Store хранилище сессий с TTL по неактивности.
type Store interface {
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (Session, error)
	Touch(ctx context.Context, id string, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}
