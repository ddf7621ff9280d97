package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"csa-console/internal/model"
)

// Manager создаёт и проверяет сессии. Каждый успешный Resolve продлевает TTL неактивности.
type Manager struct {
	store Store
	idle  time.Duration
	now   func() time.Time
}

// NewManager создаёт менеджер. idle задаёт время неактивности, после которого сессия исчезает.
func NewManager(store Store, idle time.Duration) *Manager {
	if idle <= 0 {
		idle = time.Hour
	}
	return &Manager{store: store, idle: idle, now: time.Now}
}

// Create заводит сессию по результату логина на бэкенде.
func (m *Manager) Create(ctx context.Context, login model.LoginResult) (Session, error) {
	exp, err := TokenExpiry(login.AccessToken)
	if err != nil {
		return Session{}, err
	}
	s := Session{
		ID:          uuid.NewString(),
		AccessToken: login.AccessToken,
		User:        login.Profile(),
		CreatedAt:   m.now().UTC(),
		ExpiresAt:   exp,
	}
	if s.Expired(m.now()) {
		return Session{}, ErrExpired
	}
	if err := m.store.Save(ctx, s, m.idle); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Resolve находит живую сессию и продлевает её. Сессия с истёкшим токеном удаляется.
func (m *Manager) Resolve(ctx context.Context, id string) (Session, error) {
	if id == "" {
		return Session{}, ErrNotFound
	}
	s, err := m.store.Get(ctx, id)
	if err != nil {
		return Session{}, err
	}
	if s.Expired(m.now()) {
		_ = m.store.Delete(ctx, id)
		return Session{}, ErrExpired
	}
	if err := m.store.Touch(ctx, id, m.idle); err != nil {
		return Session{}, err
	}
	return s, nil
}

// Destroy завершает сессию.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}

// Tokens источник токенов бэкенда, привязанный к сессии.
// Invalidate удаляет сессию: 401 от бэкенда означает выход пользователя.
func (m *Manager) Tokens(s Session) *Tokens {
	return &Tokens{m: m, s: s}
}

// Tokens реализует backend.TokenSource для одной сессии.
type Tokens struct {
	m *Manager
	s Session
}

func (t *Tokens) Token(context.Context) (string, error) {
	if t.s.Expired(t.m.now()) {
		return "", ErrExpired
	}
	if t.s.AccessToken == "" {
		return "", fmt.Errorf("session %s: %w", t.s.ID, ErrNotFound)
	}
	return t.s.AccessToken, nil
}

func (t *Tokens) Invalidate(ctx context.Context) error {
	if err := t.m.store.Delete(ctx, t.s.ID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}
