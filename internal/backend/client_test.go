package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csa-console/internal/backend"
	"csa-console/internal/model"
)

type captured struct {
	method string
	path   string
	auth   string
	body   string
}

type recorder struct {
	mu    sync.Mutex
	calls []captured
}

func (r *recorder) all() []captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]captured(nil), r.calls...)
}

func newServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request)) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.calls = append(rec.calls, captured{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   string(body),
		})
		rec.mu.Unlock()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestClient_Login(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		_ = json.NewEncoder(w).Encode(model.LoginResult{
			AccessToken:  "tok-1",
			TokenType:    "bearer",
			UUID:         "u-1",
			Email:        "admin@cpf.gov.sg",
			AccessRights: model.AccessAdmin,
		})
	})

	c := backend.New(srv.URL, nil, nil)
	res, err := c.Login(context.Background(), "admin@cpf.gov.sg", "pw")
	require.NoError(t, err)

	assert.Equal(t, "tok-1", res.AccessToken)
	assert.Equal(t, model.AccessAdmin, res.AccessRights)
	require.Len(t, calls.all(), 1)
	assert.Equal(t, "/token", calls.all()[0].path)
	assert.Empty(t, calls.all()[0].auth)
	assert.Contains(t, calls.all()[0].body, "username=admin%40cpf.gov.sg")
}

func TestClient_BearerToken(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.TeamMember{{UUID: "1", Name: "Alice", Schemes: []string{"Careshield"}}})
	})

	c := backend.New(srv.URL, nil, nil).WithTokens(backend.NewStaticToken("tok-1"))
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 1)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bearer tok-1", calls.all()[0].auth)
}

func TestClient_UnauthorizedInvalidatesToken(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Could not validate credentials"}`))
	})

	tokens := backend.NewStaticToken("expired")
	c := backend.New(srv.URL, nil, nil).WithTokens(tokens)

	err := c.DeleteUser(context.Background(), "1")
	assert.ErrorIs(t, err, backend.ErrUnauthorized)

	_, err = tokens.Token(context.Background())
	assert.ErrorIs(t, err, backend.ErrNoToken)

	// без токена запрос не уходит
	err = c.DeleteUser(context.Background(), "1")
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestClient_NoTokenSource(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {})

	c := backend.New(srv.URL, nil, nil)
	_, err := c.ListUsers(context.Background())

	assert.ErrorIs(t, err, backend.ErrUnauthorized)
	assert.Empty(t, calls.all())
}

func TestClient_StatusError(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"Internal server error"}`))
	})

	c := backend.New(srv.URL, nil, nil).WithTokens(backend.NewStaticToken("tok"))
	err := c.UpdateUserSchemes(context.Background(), "1", []string{"Careshield"})

	var se *backend.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.Status)
	assert.Equal(t, "Internal server error", se.Detail)
	assert.Equal(t, "/scheme/1", se.Path)
}

func TestClient_UpdateUserSchemesBody(t *testing.T) {
	srv, calls := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"Schemes updated successfully"}`))
	})

	c := backend.New(srv.URL, nil, nil).WithTokens(backend.NewStaticToken("tok"))
	require.NoError(t, c.UpdateUserSchemes(context.Background(), "u-2", nil))

	assert.Equal(t, http.MethodPut, calls.all()[0].method)
	assert.JSONEq(t, `{"user_id":"u-2","schemesList":[]}`, calls.all()[0].body)
}

func TestClient_NotFoundMeansEmpty(t *testing.T) {
	srv, _ := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"No users found"}`))
	})

	c := backend.New(srv.URL, nil, nil).WithTokens(backend.NewStaticToken("tok"))

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)

	schemes, err := c.DistinctSchemes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, schemes)

	_, err = c.GetQuestion(context.Background(), "q-1")
	assert.True(t, backend.IsStatus(err, http.StatusNotFound))
}
