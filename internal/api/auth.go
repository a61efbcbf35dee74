package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/domain/auth"
)

// AuthClient implements backend.AuthAPI over HTTP.
type AuthClient struct {
	c *Client
}

// NewAuthClient creates an auth API client.
func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

// Register creates a new account.
func (a *AuthClient) Register(ctx context.Context, reg auth.Registration) error {
	if _, err := a.c.do(ctx, http.MethodPost, "/auth/register", reg); err != nil {
		return fmt.Errorf("registering: %w", err)
	}
	return nil
}

// Login authenticates and returns the issued token. Fails with
// backend.ErrAuthFailed when the call is rejected or no accepted response
// shape yields a token.
func (a *AuthClient) Login(ctx context.Context, creds auth.Credentials) (string, error) {
	data, err := a.c.do(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return "", fmt.Errorf("%w: %v", backend.ErrAuthFailed, err)
	}
	return extractToken(data)
}

// extractToken accepts the token shapes seen across backends, first match
// wins: a "token" field, an "accessToken" field, or a bare string body.
func extractToken(data []byte) (string, error) {
	var obj struct {
		Token       string `json:"token"`
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		if obj.Token != "" {
			return obj.Token, nil
		}
		if obj.AccessToken != "" {
			return obj.AccessToken, nil
		}
	}

	var bare string
	if err := json.Unmarshal(data, &bare); err == nil && bare != "" {
		return bare, nil
	}

	return "", fmt.Errorf("%w: no token in response", backend.ErrAuthFailed)
}
