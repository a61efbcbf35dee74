package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/yferhat/taskdeck/internal/domain/auth"
	"github.com/yferhat/taskdeck/internal/notify"
	"github.com/yferhat/taskdeck/internal/session"
)

// ProjectsRoute is where a successful login lands.
const ProjectsRoute = "/projects"

// Auth drives the login and register forms. Validation failures block
// submission entirely; rejected submissions leave the form editable and
// the session untouched.
type Auth struct {
	sessions *session.Store
	notify   *notify.Center
	redirect func(route string)
	logger   *slog.Logger
}

// NewAuth creates the auth controller. redirect carries navigation
// intents and may be nil.
func NewAuth(sessions *session.Store, notifier *notify.Center, redirect func(route string), logger *slog.Logger) *Auth {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Auth{sessions: sessions, notify: notifier, redirect: redirect, logger: logger}
}

// Login validates the form, authenticates, and on success redirects to
// the project list.
func (a *Auth) Login(ctx context.Context, creds auth.Credentials) error {
	if err := creds.Validate(); err != nil {
		return err
	}
	if err := a.sessions.Login(ctx, creds); err != nil {
		a.notify.Error("Login failed. Please check your credentials.")
		return err
	}
	a.notify.Success("Welcome back!")
	if a.redirect != nil {
		a.redirect(ProjectsRoute)
	}
	return nil
}

// Register validates the form, creates the account, and on success
// redirects to the login screen.
func (a *Auth) Register(ctx context.Context, reg auth.Registration) error {
	if err := reg.Validate(); err != nil {
		return err
	}
	if err := a.sessions.Register(ctx, reg); err != nil {
		a.notify.Error("Registration failed. Please try again.")
		return fmt.Errorf("registering account: %w", err)
	}
	a.notify.Success("Registration successful! Please login.")
	if a.redirect != nil {
		a.redirect(session.LoginRoute)
	}
	return nil
}
