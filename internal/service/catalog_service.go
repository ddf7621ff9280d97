package service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"csa-console/internal/model"
	"csa-console/internal/session"
)

// CatalogService схемы, вопросы и промпт оценки.
// Читать может любой вошедший пользователь, менять только Admin.
type CatalogService struct {
	backends BackendFunc
	pin      PinGuard
	log      *slog.Logger
}

func NewCatalogService(backends BackendFunc, pin PinGuard, log *slog.Logger) *CatalogService {
	return &CatalogService{backends: backends, pin: pin, log: log}
}

func (s *CatalogService) Schemes(ctx context.Context, sess session.Session) ([]model.Scheme, error) {
	schemes, err := s.backends(sess).ListSchemes(ctx)
	if err != nil {
		return nil, fromBackend("failed to load schemes", err)
	}
	return schemes, nil
}

// DistinctSchemes имена схем, назначенных хотя бы одному пользователю.
func (s *CatalogService) DistinctSchemes(ctx context.Context, sess session.Session) ([]string, error) {
	names, err := s.backends(sess).DistinctSchemes(ctx)
	if err != nil {
		return nil, fromBackend("failed to load schemes", err)
	}
	return normalizeSchemes(names), nil
}

// CreateScheme заводит схему. fileURL (картинка схемы) необязателен.
func (s *CatalogService) CreateScheme(ctx context.Context, sess session.Session, name, fileURL string) (model.Message, error) {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return model.Message{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Message{}, ErrBadRequest("scheme_name is required")
	}
	if fileURL != "" {
		if u, err := url.Parse(fileURL); err != nil || u.Scheme == "" || u.Host == "" {
			return model.Message{}, ErrBadRequest("file_url must be an absolute URL")
		}
	}

	msg, err := s.backends(sess).CreateScheme(ctx, name, fileURL)
	if err != nil {
		return model.Message{}, fromBackend("failed to create scheme", err)
	}
	s.log.Info("scheme created", slog.String("scheme", model.NormalizeSchemeName(name)), slog.String("user_id", sess.User.UUID))
	return msg, nil
}

func (s *CatalogService) DeleteScheme(ctx context.Context, sess session.Session, name, pin string) error {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return err
	}
	if err := s.pin.Check(pin); err != nil {
		return err
	}
	if err := s.backends(sess).DeleteScheme(ctx, name); err != nil {
		return fromBackend("failed to delete scheme", err)
	}
	s.log.Info("scheme deleted", slog.String("scheme", name), slog.String("user_id", sess.User.UUID))
	return nil
}

func (s *CatalogService) Questions(ctx context.Context, sess session.Session, scheme string) ([]model.Question, error) {
	qs, err := s.backends(sess).QuestionsByScheme(ctx, scheme)
	if err != nil {
		return nil, fromBackend("failed to load questions", err)
	}
	return qs, nil
}

func (s *CatalogService) Question(ctx context.Context, sess session.Session, id string) (model.Question, error) {
	q, err := s.backends(sess).GetQuestion(ctx, id)
	if err != nil {
		return model.Question{}, fromBackend("failed to load question", err)
	}
	return q, nil
}

func (s *CatalogService) CreateQuestion(ctx context.Context, sess session.Session, q model.Question) (string, error) {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return "", err
	}
	if err := validateQuestion(q); err != nil {
		return "", err
	}
	id, err := s.backends(sess).CreateQuestion(ctx, q)
	if err != nil {
		return "", fromBackend("failed to create question", err)
	}
	return id, nil
}

func (s *CatalogService) UpdateQuestion(ctx context.Context, sess session.Session, id string, q model.Question) error {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return err
	}
	if err := validateQuestion(q); err != nil {
		return err
	}
	if err := s.backends(sess).UpdateQuestion(ctx, id, q); err != nil {
		return fromBackend("failed to update question", err)
	}
	return nil
}

func (s *CatalogService) DeleteQuestion(ctx context.Context, sess session.Session, id, pin string) error {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return err
	}
	if err := s.pin.Check(pin); err != nil {
		return err
	}
	if err := s.backends(sess).DeleteQuestion(ctx, id); err != nil {
		return fromBackend("failed to delete question", err)
	}
	s.log.Info("question deleted", slog.String("question_id", id), slog.String("user_id", sess.User.UUID))
	return nil
}

func (s *CatalogService) Prompt(ctx context.Context, sess session.Session) (model.Prompt, error) {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return model.Prompt{}, err
	}
	p, err := s.backends(sess).CurrentPrompt(ctx)
	if err != nil {
		return model.Prompt{}, fromBackend("failed to load prompt", err)
	}
	return p, nil
}

func (s *CatalogService) UpdatePrompt(ctx context.Context, sess session.Session, text string) (model.Message, error) {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return model.Message{}, err
	}
	if strings.TrimSpace(text) == "" {
		return model.Message{}, ErrBadRequest("prompt_text is required")
	}
	msg, err := s.backends(sess).UpdatePrompt(ctx, text)
	if err != nil {
		return model.Message{}, fromBackend("failed to update prompt", err)
	}
	return msg, nil
}

// RevertPrompt возвращает промпт по умолчанию. Требует PIN.
func (s *CatalogService) RevertPrompt(ctx context.Context, sess session.Session, pin string) error {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return err
	}
	if err := s.pin.Check(pin); err != nil {
		return err
	}
	if err := s.backends(sess).RevertPrompt(ctx); err != nil {
		return fromBackend("failed to revert prompt", err)
	}
	s.log.Info("prompt reverted to default", slog.String("user_id", sess.User.UUID))
	return nil
}

// RollbackPrompt возвращает предыдущую сохранённую версию промпта.
func (s *CatalogService) RollbackPrompt(ctx context.Context, sess session.Session) (model.Message, error) {
	if err := requireRole(sess, model.AccessAdmin); err != nil {
		return model.Message{}, err
	}
	msg, err := s.backends(sess).RollbackPrompt(ctx)
	if err != nil {
		return model.Message{}, fromBackend("failed to roll back prompt", err)
	}
	return msg, nil
}

func validateQuestion(q model.Question) error {
	switch {
	case strings.TrimSpace(q.SchemeName) == "":
		return ErrBadRequest("scheme_name is required")
	case strings.TrimSpace(q.Title) == "":
		return ErrBadRequest("title is required")
	case strings.TrimSpace(q.QuestionDetails) == "":
		return ErrBadRequest("question_details is required")
	case strings.TrimSpace(q.Ideal) == "":
		return ErrBadRequest("ideal is required")
	}
	return nil
}
