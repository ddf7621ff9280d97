package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"csa-console/internal/backend"
	"csa-console/internal/model"
	"csa-console/internal/roster"
	"csa-console/internal/service"
	"csa-console/internal/service/mocks"
	"csa-console/internal/session"
)

func TestAuthService_LoginResolveLogout(t *testing.T) {
	ctx := context.Background()
	auth := new(mocks.Authenticator)
	auth.On("Login", mock.Anything, "ann@example.com", "secret").Return(model.LoginResult{
		AccessToken:  "opaque-token",
		TokenType:    "bearer",
		UUID:         "1",
		Email:        "ann@example.com",
		Name:         "Ann",
		AccessRights: model.AccessTrainer,
	}, nil).Once()

	drafts := service.NewDrafts()
	svc := service.NewAuthService(auth, session.NewManager(session.NewMemoryStore(), 0), drafts, discardLog)

	sess, err := svc.Login(ctx, " ann@example.com ", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Ann", sess.User.Name)

	got, err := svc.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "opaque-token", got.AccessToken)

	drafts.PutIfAbsent(sess.ID, roster.NewEditor(nil))
	require.NoError(t, svc.Logout(ctx, sess.ID))
	assert.Equal(t, 0, drafts.Len())

	_, err = svc.Resolve(ctx, sess.ID)
	assert.Equal(t, http.StatusUnauthorized, appErr(t, err).Status)
	auth.AssertExpectations(t)
}

func TestAuthService_LoginErrors(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		password       string
		mockBehavior   func(a *mocks.Authenticator)
		expectedStatus int
	}{
		{
			name:           "Invalid email",
			email:          "not-an-email",
			password:       "x",
			mockBehavior:   func(a *mocks.Authenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Empty password",
			email:          "ann@example.com",
			mockBehavior:   func(a *mocks.Authenticator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "Wrong credentials",
			email:    "ann@example.com",
			password: "bad",
			mockBehavior: func(a *mocks.Authenticator) {
				a.On("Login", mock.Anything, "ann@example.com", "bad").
					Return(model.LoginResult{}, &backend.StatusError{Status: http.StatusUnauthorized, Detail: "Incorrect email or password"})
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "Backend down",
			email:    "ann@example.com",
			password: "x",
			mockBehavior: func(a *mocks.Authenticator) {
				a.On("Login", mock.Anything, "ann@example.com", "x").
					Return(model.LoginResult{}, &backend.StatusError{Status: http.StatusServiceUnavailable})
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.Authenticator)
			tt.mockBehavior(auth)
			svc := service.NewAuthService(auth, session.NewManager(session.NewMemoryStore(), 0), service.NewDrafts(), discardLog)

			_, err := svc.Login(context.Background(), tt.email, tt.password)
			assert.Equal(t, tt.expectedStatus, appErr(t, err).Status)
			auth.AssertExpectations(t)
		})
	}
}
