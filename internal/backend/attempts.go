package backend

import (
	"context"
	"net/http"
	"net/url"

	"csa-console/internal/model"
)

// AttemptsByUser GET /attempt/user/{user_id}. 404 означает, что попыток нет.
func (c *Client) AttemptsByUser(ctx context.Context, userID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := c.do(ctx, request{method: http.MethodGet, path: "/attempt/user/" + url.PathEscape(userID)}, &attempts)
	if IsStatus(err, http.StatusNotFound) {
		return []model.Attempt{}, nil
	}
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

// GetAttempt GET /attempt/{id}.
func (c *Client) GetAttempt(ctx context.Context, id string) (model.Attempt, error) {
	var a model.Attempt
	if err := c.do(ctx, request{method: http.MethodGet, path: "/attempt/" + url.PathEscape(id)}, &a); err != nil {
		return model.Attempt{}, err
	}
	return a, nil
}

// CreateAttempt POST /attempt. Бэкенд сразу оценивает ответ и возвращает попытку с баллами.
func (c *Client) CreateAttempt(ctx context.Context, a model.NewAttempt) (model.Attempt, error) {
	var created model.Attempt
	if err := c.do(ctx, request{method: http.MethodPost, path: "/attempt", body: a}, &created); err != nil {
		return model.Attempt{}, err
	}
	return created, nil
}

// AverageScores GET /attempt/average_scores/user/{user_id}.
func (c *Client) AverageScores(ctx context.Context, userID string) ([]model.SchemeScores, error) {
	scores := []model.SchemeScores{}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/attempt/average_scores/user/" + url.PathEscape(userID)}, &scores); err != nil {
		return nil, err
	}
	return scores, nil
}
