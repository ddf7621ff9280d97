package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"csa-console/internal/backend"
	"csa-console/internal/model"
	"csa-console/internal/session"
)

// Authenticator вход на бэкенде по email и паролю.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (model.LoginResult, error)
}

// AuthService вход, выход и проверка сессий дашборда.
type AuthService struct {
	backend  Authenticator
	sessions *session.Manager
	drafts   *Drafts
	log      *slog.Logger
}

func NewAuthService(backend Authenticator, sessions *session.Manager, drafts *Drafts, log *slog.Logger) *AuthService {
	return &AuthService{
		backend:  backend,
		sessions: sessions,
		drafts:   drafts,
		log:      log,
	}
}

// Login проверяет учётные данные на бэкенде и заводит сессию.
func (s *AuthService) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return session.Session{}, ErrBadRequest("email is invalid")
	}
	if password == "" {
		return session.Session{}, ErrBadRequest("password is required")
	}

	login, err := s.backend.Login(ctx, email, password)
	if err != nil {
		var se *backend.StatusError
		if errors.As(err, &se) && (se.Status == http.StatusBadRequest || se.Status == http.StatusUnauthorized) {
			return session.Session{}, ErrUnauthorized("incorrect email or password")
		}
		return session.Session{}, fromBackend("login failed", err)
	}

	sess, err := s.sessions.Create(ctx, login)
	if err != nil {
		if errors.Is(err, session.ErrExpired) {
			return session.Session{}, ErrUnauthorized("backend issued an expired token")
		}
		return session.Session{}, errInternal("failed to create session", err)
	}

	s.log.Info("user logged in",
		slog.String("user_id", sess.User.UUID),
		slog.String("access_rights", string(sess.User.AccessRights)),
	)
	return sess, nil
}

// Logout завершает сессию и выбрасывает несохранённый черновик состава.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	s.drafts.Drop(sessionID)
	if err := s.sessions.Destroy(ctx, sessionID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return errInternal("failed to destroy session", err)
	}
	return nil
}

// Resolve находит живую сессию по id. Истёкшая сессия уносит с собой черновик.
func (s *AuthService) Resolve(ctx context.Context, sessionID string) (session.Session, error) {
	sess, err := s.sessions.Resolve(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrExpired) {
			s.drafts.Drop(sessionID)
			return session.Session{}, ErrUnauthorized("session expired, please log in again")
		}
		return session.Session{}, errInternal("failed to load session", err)
	}
	return sess, nil
}
