// Package session owns the authentication token lifecycle: login stores
// it, logout clears it, and every outbound request consults it.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/domain/auth"
	"github.com/yferhat/taskdeck/internal/kvstore"
)

// tokenKey is the storage key under which the token persists across runs.
const tokenKey = "auth_token"

// Storage persists the token across process restarts. kvstore.Store
// satisfies it; absence is reported as kvstore.ErrNotFound.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Options tune session behavior.
type Options struct {
	// LogoutOnUnauthorized clears the session when a backend call comes
	// back 401 or 403. Off by default.
	LogoutOnUnauthorized bool
}

// Store holds the single active token for the process.
type Store struct {
	mu     sync.Mutex
	token  string
	auth   backend.AuthAPI
	store  Storage
	logger *slog.Logger
	opts   Options
}

// NewStore creates a session store and restores any persisted token.
// storage may be nil, in which case the token lives only in memory.
func NewStore(authAPI backend.AuthAPI, storage Storage, logger *slog.Logger, opts Options) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Store{auth: authAPI, store: storage, logger: logger, opts: opts}
	if storage != nil {
		token, err := storage.Get(tokenKey)
		switch {
		case err == nil:
			s.token = token
		case !errors.Is(err, kvstore.ErrNotFound):
			logger.Warn("failed to restore session token", "error", err)
		}
	}
	return s
}

// Login authenticates and stores the issued token, overwriting any prior
// value. The token presence makes IsAuthenticated true; its validity is
// still the server's call.
func (s *Store) Login(ctx context.Context, creds auth.Credentials) error {
	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("logging in: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Set(tokenKey, token); err != nil {
			s.logger.Warn("failed to persist session token", "error", err)
		}
	}
	return nil
}

// Register creates a new account. No token is issued until login.
func (s *Store) Register(ctx context.Context, reg auth.Registration) error {
	if err := s.auth.Register(ctx, reg); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	return nil
}

// Logout clears the active token unconditionally. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Delete(tokenKey); err != nil {
			s.logger.Warn("failed to clear persisted token", "error", err)
		}
	}
}

// Token returns the active token, if any. Satisfies api.TokenSource.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// IsAuthenticated reports whether a token is stored. This is a presence
// check only, never a validity check.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.Token()
	return ok
}

// HandleAuthError clears the session on a 401/403 response when
// LogoutOnUnauthorized is set. Other errors pass through untouched.
func (s *Store) HandleAuthError(err error) {
	if err == nil || !s.opts.LogoutOnUnauthorized {
		return
	}
	if backend.IsUnauthorized(err) {
		s.logger.Info("clearing session after unauthorized response")
		s.Logout()
	}
}
