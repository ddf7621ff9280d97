package backend

import (
	"context"
	"net/http"
	"net/url"

	"csa-console/internal/model"
)

// ListSchemes GET /scheme.
func (c *Client) ListSchemes(ctx context.Context) ([]model.Scheme, error) {
	schemes := []model.Scheme{}
	if err := c.do(ctx, request{method: http.MethodGet, path: "/scheme"}, &schemes); err != nil {
		return nil, err
	}
	return schemes, nil
}

// DistinctSchemes GET /distinct/scheme. 404 от бэкенда означает, что схем нет.
func (c *Client) DistinctSchemes(ctx context.Context) ([]string, error) {
	var names []string
	err := c.do(ctx, request{method: http.MethodGet, path: "/distinct/scheme"}, &names)
	if IsStatus(err, http.StatusNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return names, nil
}

// CreateScheme POST /scheme. Бэкенд принимает имя и ссылку на картинку query-параметрами.
func (c *Client) CreateScheme(ctx context.Context, name, fileURL string) (model.Message, error) {
	var msg model.Message
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/scheme",
		query:  url.Values{"scheme_name": {name}, "file_url": {fileURL}},
	}, &msg)
	return msg, err
}

// DeleteScheme DELETE /scheme/{name} вместе с вопросами и попытками.
func (c *Client) DeleteScheme(ctx context.Context, name string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/scheme/" + url.PathEscape(name)}, nil)
}
