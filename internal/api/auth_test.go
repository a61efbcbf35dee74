package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/domain/auth"
)

func TestExtractToken_Shapes(t *testing.T) {
	cases := map[string]string{
		"token field":       `{"token":"abc"}`,
		"accessToken field": `{"accessToken":"abc"}`,
		"bare string body":  `"abc"`,
		"token wins":        `{"token":"abc","accessToken":"other"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			token, err := extractToken([]byte(body))
			require.NoError(t, err)
			require.Equal(t, "abc", token)
		})
	}
}

func TestExtractToken_NoShapeMatches(t *testing.T) {
	for _, body := range []string{`{}`, `{"jwt":"abc"}`, `42`, `""`} {
		_, err := extractToken([]byte(body))
		require.ErrorIs(t, err, backend.ErrAuthFailed, "body %s", body)
	}
}

func TestAuthClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"token":"jwt-123"}`))
	}))
	defer srv.Close()

	client := NewAuthClient(NewClient(srv.URL, nil, nil))
	token, err := client.Login(context.Background(), auth.Credentials{Email: "sam@example.com", Password: "hunter2"})
	require.NoError(t, err)
	require.Equal(t, "jwt-123", token)
}

func TestAuthClient_LoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewAuthClient(NewClient(srv.URL, nil, nil))
	_, err := client.Login(context.Background(), auth.Credentials{Email: "sam@example.com", Password: "wrong"})
	require.ErrorIs(t, err, backend.ErrAuthFailed)
}

func TestAuthClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	client := NewAuthClient(NewClient(srv.URL, nil, nil))
	reg := auth.Registration{FullName: "Sam Doe", Email: "sam@example.com", Password: "hunter2"}
	require.NoError(t, client.Register(context.Background(), reg))
}
