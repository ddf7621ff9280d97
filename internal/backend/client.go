// Package backend типизированный клиент внешнего REST-бэкенда тренажёра.
// Токен доступа не берётся из глобального состояния: его отдаёт TokenSource,
// переданный клиенту явно.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"csa-console/internal/model"
)

// TokenSource источник bearer-токена для запросов.
// Invalidate вызывается, когда бэкенд отвечает 401.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
	Invalidate(ctx context.Context) error
}

// Client клиент бэкенда. Копии, полученные через WithTokens, делят http.Client.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

// New создаёт клиент без токена. httpClient == nil означает клиент с таймаутом 15 секунд.
func New(baseURL string, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
	}
}

// WithTokens возвращает копию клиента, подписывающую запросы токенами из ts.
func (c *Client) WithTokens(ts TokenSource) *Client {
	cp := *c
	cp.tokens = ts
	return &cp
}

// request описывает один вызов бэкенда.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	form   url.Values
	public bool
}

func (c *Client) do(ctx context.Context, r request, out any) error {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.form != nil:
		body = strings.NewReader(r.form.Encode())
		contentType = "application/x-www-form-urlencoded"
	case r.body != nil:
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", r.method, r.path, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", r.method, r.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if !r.public {
		if c.tokens == nil {
			return ErrUnauthorized
		}
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnauthorized, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s: %w", r.method, r.path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && !r.public {
		c.log.Warn("backend rejected token, dropping session",
			slog.String("method", r.method),
			slog.String("path", r.path),
		)
		if c.tokens != nil {
			if err := c.tokens.Invalidate(ctx); err != nil {
				c.log.Error("invalidate session", slog.Any("err", err))
			}
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{
			Method: r.method,
			Path:   r.path,
			Status: resp.StatusCode,
			Detail: parseDetail(payload),
		}
	}

	if out == nil || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", r.method, r.path, err)
	}
	return nil
}

// Login обменивает email и пароль на токен (POST /token, form-encoded).
func (c *Client) Login(ctx context.Context, email, password string) (model.LoginResult, error) {
	var res model.LoginResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/token",
		form:   url.Values{"username": {email}, "password": {password}},
		public: true,
	}, &res)
	if err != nil {
		return model.LoginResult{}, err
	}
	return res, nil
}

// StaticToken источник с фиксированным токеном, Invalidate только забывает его.
type StaticToken struct {
	mu    sync.Mutex
	token string
}

// NewStaticToken оборачивает готовый токен.
func NewStaticToken(token string) *StaticToken {
	return &StaticToken{token: token}
}

// Token возвращает токен или ErrNoToken.
func (s *StaticToken) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

// Invalidate забывает токен.
func (s *StaticToken) Invalidate(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
