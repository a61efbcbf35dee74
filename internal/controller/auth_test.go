package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/backend/mocks"
	"github.com/yferhat/taskdeck/internal/controller"
	"github.com/yferhat/taskdeck/internal/domain/auth"
	"github.com/yferhat/taskdeck/internal/notify"
	"github.com/yferhat/taskdeck/internal/session"
)

func TestAuthLoginSuccess(t *testing.T) {
	ctx := context.Background()
	creds := auth.Credentials{Email: "sam@example.com", Password: "hunter2"}

	authAPI := &mocks.AuthAPI{}
	authAPI.On("Login", ctx, creds).Return("jwt-123", nil)
	sessions := session.NewStore(authAPI, nil, nil, session.Options{})

	center := newCenter()
	var redirected string
	ctrl := controller.NewAuth(sessions, center, func(route string) { redirected = route }, nil)

	require.NoError(t, ctrl.Login(ctx, creds))
	require.True(t, sessions.IsAuthenticated())
	require.Equal(t, controller.ProjectsRoute, redirected)

	visible := center.Notifications()
	require.Len(t, visible, 1)
	require.Equal(t, "Welcome back!", visible[0].Message)
}

func TestAuthLoginRejected(t *testing.T) {
	ctx := context.Background()
	creds := auth.Credentials{Email: "sam@example.com", Password: "wrong"}

	authAPI := &mocks.AuthAPI{}
	authAPI.On("Login", ctx, creds).Return("", backend.ErrAuthFailed)
	sessions := session.NewStore(authAPI, nil, nil, session.Options{})

	center := newCenter()
	var redirected string
	ctrl := controller.NewAuth(sessions, center, func(route string) { redirected = route }, nil)

	require.Error(t, ctrl.Login(ctx, creds))
	require.False(t, sessions.IsAuthenticated())
	require.Empty(t, redirected)

	visible := center.Notifications()
	require.Len(t, visible, 1)
	require.Equal(t, notify.KindError, visible[0].Kind)
	require.Equal(t, "Login failed. Please check your credentials.", visible[0].Message)
}

func TestAuthLoginValidationNeverReachesNetwork(t *testing.T) {
	authAPI := &mocks.AuthAPI{}
	sessions := session.NewStore(authAPI, nil, nil, session.Options{})
	ctrl := controller.NewAuth(sessions, newCenter(), nil, nil)

	err := ctrl.Login(context.Background(), auth.Credentials{Email: "not-an-email", Password: "x"})
	require.ErrorIs(t, err, auth.ErrEmailRequired)
	authAPI.AssertNotCalled(t, "Login")
}

func TestAuthRegister(t *testing.T) {
	ctx := context.Background()
	reg := auth.Registration{FullName: "Sam Doe", Email: "sam@example.com", Password: "hunter2"}

	authAPI := &mocks.AuthAPI{}
	authAPI.On("Register", ctx, reg).Return(nil)
	sessions := session.NewStore(authAPI, nil, nil, session.Options{})

	center := newCenter()
	var redirected string
	ctrl := controller.NewAuth(sessions, center, func(route string) { redirected = route }, nil)

	require.NoError(t, ctrl.Register(ctx, reg))
	require.False(t, sessions.IsAuthenticated(), "registration issues no token")
	require.Equal(t, session.LoginRoute, redirected)

	visible := center.Notifications()
	require.Len(t, visible, 1)
	require.Equal(t, "Registration successful! Please login.", visible[0].Message)
}

func TestAuthRegisterShortPassword(t *testing.T) {
	authAPI := &mocks.AuthAPI{}
	sessions := session.NewStore(authAPI, nil, nil, session.Options{})
	ctrl := controller.NewAuth(sessions, newCenter(), nil, nil)

	reg := auth.Registration{FullName: "Sam Doe", Email: "sam@example.com", Password: "short"}
	require.ErrorIs(t, ctrl.Register(context.Background(), reg), auth.ErrPasswordTooShort)
	authAPI.AssertNotCalled(t, "Register")
}
