// Package api implements the backend contracts over HTTP. Every request
// passes through a single augmentation point that attaches the bearer
// token when one exists.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/yferhat/taskdeck/internal/backend"
)

// TokenSource supplies the bearer token for outbound requests.
// session.Store satisfies it.
type TokenSource interface {
	Token() (string, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func() (string, bool)

func (f TokenSourceFunc) Token() (string, bool) {
	return f()
}

// Client is the shared HTTP plumbing behind the typed API clients.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a client rooted at baseURL. A nil tokens source sends
// every request unauthenticated.
func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &bearerTransport{tokens: tokens, next: http.DefaultTransport},
		},
		logger: logger,
	}
}

// bearerTransport attaches Authorization: Bearer <token> when a token is
// present; requests are otherwise sent unauthenticated rather than blocked.
type bearerTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token, ok := t.tokens.Token(); ok && token != "" {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return t.next.RoundTrip(req)
}

// do sends a JSON request and returns the response body. Non-2xx responses
// become *backend.StatusError; a context deadline becomes backend.ErrTimeout.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, backend.ErrTimeout
		}
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Debug("backend rejected request",
			"method", method, "path", path, "status", resp.StatusCode)
		return nil, &backend.StatusError{Code: resp.StatusCode}
	}

	return data, nil
}

func decodeOne[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &out, nil
}
