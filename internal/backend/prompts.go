package backend

import (
	"context"
	"net/http"

	"csa-console/internal/model"
)

// CurrentPrompt GET /prompt.
func (c *Client) CurrentPrompt(ctx context.Context) (model.Prompt, error) {
	var p model.Prompt
	if err := c.do(ctx, request{method: http.MethodGet, path: "/prompt"}, &p); err != nil {
		return model.Prompt{}, err
	}
	return p, nil
}

// UpdatePrompt PUT /prompt.
func (c *Client) UpdatePrompt(ctx context.Context, text string) (model.Message, error) {
	var msg model.Message
	err := c.do(ctx, request{method: http.MethodPut, path: "/prompt", body: model.Prompt{PromptText: text}}, &msg)
	return msg, err
}

// RevertPrompt DELETE /prompt: возврат к промпту по умолчанию.
func (c *Client) RevertPrompt(ctx context.Context) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/prompt"}, nil)
}

// RollbackPrompt POST /prompt/rollback: возврат к предыдущей сохранённой версии.
func (c *Client) RollbackPrompt(ctx context.Context) (model.Message, error) {
	var msg model.Message
	err := c.do(ctx, request{method: http.MethodPost, path: "/prompt/rollback"}, &msg)
	return msg, err
}
