package service

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"csa-console/internal/export"
	"csa-console/internal/model"
	"csa-console/internal/scoring"
	"csa-console/internal/session"
)

// ProgressService попытки и средние баллы стажёров.
// Стажёр видит только себя, тренер и администратор видят любого.
type ProgressService struct {
	backends BackendFunc
}

func NewProgressService(backends BackendFunc) *ProgressService {
	return &ProgressService{backends: backends}
}

func (s *ProgressService) Attempts(ctx context.Context, sess session.Session, userID string) ([]model.Attempt, error) {
	if err := canSee(sess, userID); err != nil {
		return nil, err
	}
	attempts, err := s.backends(sess).AttemptsByUser(ctx, userID)
	if err != nil {
		return nil, fromBackend("failed to load attempts", err)
	}
	return attempts, nil
}

// Scores средние баллы по схемам с "All" первой.
func (s *ProgressService) Scores(ctx context.Context, sess session.Session, userID string) (scoring.Summary, error) {
	if err := canSee(sess, userID); err != nil {
		return scoring.Summary{}, err
	}
	scores, err := s.backends(sess).AverageScores(ctx, userID)
	if err != nil {
		return scoring.Summary{}, fromBackend("failed to load scores", err)
	}
	return scoring.Summarize(scores), nil
}

// ExportAttempts пишет попытки пользователя в CSV и возвращает имя файла.
func (s *ProgressService) ExportAttempts(ctx context.Context, sess session.Session, userID string, w io.Writer) (string, error) {
	if err := canSee(sess, userID); err != nil {
		return "", err
	}

	be := s.backends(sess)
	var (
		user     model.User
		attempts []model.Attempt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = be.GetUser(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		attempts, err = be.AttemptsByUser(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", fromBackend("failed to load attempts", err)
	}

	if err := export.Attempts(w, user, attempts); err != nil {
		return "", errInternal("failed to write csv", err)
	}
	return export.AttemptsFilename(user), nil
}

func canSee(sess session.Session, userID string) error {
	if userID == "" {
		return ErrBadRequest("user id is required")
	}
	if sess.User.AccessRights == model.AccessTrainee && sess.User.UUID != userID {
		return ErrForbidden("FORBIDDEN", "trainees can only see their own progress")
	}
	return nil
}
