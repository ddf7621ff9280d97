package backend

import (
	"context"
	"net/http"
	"net/url"

	"csa-console/internal/model"
)

// ListUsers GET /user. Бэкенд отвечает 404, когда пользователей нет: это пустой список.
func (c *Client) ListUsers(ctx context.Context) ([]model.TeamMember, error) {
	var users []model.TeamMember
	err := c.do(ctx, request{method: http.MethodGet, path: "/user"}, &users)
	if IsStatus(err, http.StatusNotFound) {
		return []model.TeamMember{}, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser GET /user/{id}.
func (c *Client) GetUser(ctx context.Context, id string) (model.User, error) {
	var u model.User
	if err := c.do(ctx, request{method: http.MethodGet, path: "/user/" + url.PathEscape(id)}, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// CreateUser POST /user, возвращает uuid нового пользователя.
func (c *Client) CreateUser(ctx context.Context, u model.NewUser) (string, error) {
	var id string
	if err := c.do(ctx, request{method: http.MethodPost, path: "/user", body: u}, &id); err != nil {
		return "", err
	}
	return id, nil
}

// UpdateUser PUT /user/{id}.
func (c *Client) UpdateUser(ctx context.Context, id string, u model.UserUpdate) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/user/" + url.PathEscape(id), body: u}, nil)
}

// UpdateUserSchemes PUT /scheme/{user_id} с полным списком схем пользователя.
func (c *Client) UpdateUserSchemes(ctx context.Context, id string, schemes []string) error {
	if schemes == nil {
		schemes = []string{}
	}
	body := model.SchemeAssignment{UserID: id, SchemesList: schemes}
	return c.do(ctx, request{method: http.MethodPut, path: "/scheme/" + url.PathEscape(id), body: body}, nil)
}

// DeleteUser DELETE /user/{id}.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/user/" + url.PathEscape(id)}, nil)
}
