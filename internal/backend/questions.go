package backend

import (
	"context"
	"net/http"
	"net/url"

	"csa-console/internal/model"
)

// QuestionsByScheme GET /questions/scheme/{name}. 404 означает пустую схему.
func (c *Client) QuestionsByScheme(ctx context.Context, scheme string) ([]model.Question, error) {
	var qs []model.Question
	err := c.do(ctx, request{method: http.MethodGet, path: "/questions/scheme/" + url.PathEscape(scheme)}, &qs)
	if IsStatus(err, http.StatusNotFound) {
		return []model.Question{}, nil
	}
	if err != nil {
		return nil, err
	}
	return qs, nil
}

// AllQuestions GET /questions/all.
func (c *Client) AllQuestions(ctx context.Context) ([]model.Question, error) {
	qs := []model.Question{}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/questions/all"}, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// GetQuestion GET /question/{id}.
func (c *Client) GetQuestion(ctx context.Context, id string) (model.Question, error) {
	var q model.Question
	if err := c.do(ctx, request{method: http.MethodGet, path: "/question/" + url.PathEscape(id)}, &q); err != nil {
		return model.Question{}, err
	}
	return q, nil
}

// CreateQuestion POST /question, возвращает id нового вопроса.
func (c *Client) CreateQuestion(ctx context.Context, q model.Question) (string, error) {
	var id string
	if err := c.do(ctx, request{method: http.MethodPost, path: "/question", body: q}, &id); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateQuestion PUT /question/{id}.
func (c *Client) UpdateQuestion(ctx context.Context, id string, q model.Question) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/question/" + url.PathEscape(id), body: q}, nil)
}

// DeleteQuestion DELETE /question/{id} вместе с попытками.
func (c *Client) DeleteQuestion(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/question/" + url.PathEscape(id)}, nil)
}
