package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csa-console/internal/model"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)

	got, err := TokenExpiry(signedToken(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	got, err = TokenExpiry("not-a-jwt")
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestManager_CreateResolveDestroy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, time.Hour)

	login := model.LoginResult{AccessToken: signedToken(t, time.Now().Add(time.Hour)), UUID: "u-1", Name: "Admin", AccessRights: model.AccessAdmin}
	s, err := m.Create(ctx, login)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "u-1", s.User.UUID)

	got, err := m.Resolve(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.AccessToken, got.AccessToken)

	require.NoError(t, m.Destroy(ctx, s.ID))
	_, err = m.Resolve(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_IdleTimeout(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	m := NewManager(store, time.Hour)
	m.now = store.now

	s, err := m.Create(ctx, model.LoginResult{AccessToken: "opaque"})
	require.NoError(t, err)

	// активность продлевает сессию
	now = now.Add(50 * time.Minute)
	_, err = m.Resolve(ctx, s.ID)
	require.NoError(t, err)

	now = now.Add(50 * time.Minute)
	_, err = m.Resolve(ctx, s.ID)
	require.NoError(t, err)

	now = now.Add(61 * time.Minute)
	_, err = m.Resolve(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := NewMemoryStore()
	m := NewManager(store, 24*time.Hour)
	m.now = func() time.Time { return now }

	_, err := m.Create(ctx, model.LoginResult{AccessToken: signedToken(t, now.Add(-time.Minute))})
	assert.ErrorIs(t, err, ErrExpired)

	s, err := m.Create(ctx, model.LoginResult{AccessToken: signedToken(t, now.Add(10*time.Minute))})
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	_, err = m.Resolve(ctx, s.ID)
	assert.ErrorIs(t, err, ErrExpired)

	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTokens_InvalidateDropsSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	m := NewManager(store, time.Hour)

	s, err := m.Create(ctx, model.LoginResult{AccessToken: "opaque"})
	require.NoError(t, err)

	ts := m.Tokens(s)
	tok, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "opaque", tok)

	require.NoError(t, ts.Invalidate(ctx))
	_, err = store.Get(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileTokens(t *testing.T) {
	ctx := context.Background()
	ft := NewFileTokens(filepath.Join(t.TempDir(), "csactl", "session.json"))

	_, err := ft.Token(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, ft.Save(model.LoginResult{AccessToken: "tok", Email: "admin@cpf.gov.sg"}))
	tok, err := ft.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)

	require.NoError(t, ft.Invalidate(ctx))
	_, err = ft.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}
