// Package service содержит логику экранов дашборда поверх внешнего бэкенда:
// вход и сессии, редактирование состава, каталог схем и вопросов, прогресс стажёров.
package service

import (
	"context"

	"csa-console/internal/model"
	"csa-console/internal/session"
)

// Backend вызовы внешнего REST-бэкенда, которыми пользуются сервисы.
type Backend interface {
	ListUsers(ctx context.Context) ([]model.TeamMember, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	CreateUser(ctx context.Context, u model.NewUser) (string, error)
	UpdateUser(ctx context.Context, id string, u model.UserUpdate) error
	UpdateUserSchemes(ctx context.Context, id string, schemes []string) error
	DeleteUser(ctx context.Context, id string) error

	ListSchemes(ctx context.Context) ([]model.Scheme, error)
	DistinctSchemes(ctx context.Context) ([]string, error)
	CreateScheme(ctx context.Context, name, fileURL string) (model.Message, error)
	DeleteScheme(ctx context.Context, name string) error

	QuestionsByScheme(ctx context.Context, scheme string) ([]model.Question, error)
	GetQuestion(ctx context.Context, id string) (model.Question, error)
	CreateQuestion(ctx context.Context, q model.Question) (string, error)
	UpdateQuestion(ctx context.Context, id string, q model.Question) error
	DeleteQuestion(ctx context.Context, id string) error

	AttemptsByUser(ctx context.Context, userID string) ([]model.Attempt, error)
	AverageScores(ctx context.Context, userID string) ([]model.SchemeScores, error)

	CurrentPrompt(ctx context.Context) (model.Prompt, error)
	UpdatePrompt(ctx context.Context, text string) (model.Message, error)
	RevertPrompt(ctx context.Context) error
	RollbackPrompt(ctx context.Context) (model.Message, error)
}

// BackendFunc выдаёт клиент бэкенда, подписывающий запросы токеном данной сессии.
type BackendFunc func(s session.Session) Backend

// requireRole проверяет роль пользователя сессии.
func requireRole(s session.Session, roles ...model.AccessRights) error {
	for _, r := range roles {
		if s.User.AccessRights == r {
			return nil
		}
	}
	return ErrForbidden("FORBIDDEN", "insufficient permissions")
}
