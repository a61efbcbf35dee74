package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnv blanks every TASKDECK variable so ambient settings cannot leak
// into a test. Load treats empty values as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TASKDECK_CONFIG_PATH",
		"TASKDECK_API_BASE_URL",
		"TASKDECK_API_PROJECT_TIMEOUT",
		"TASKDECK_PROJECT_PAGE_SIZE",
		"TASKDECK_TASK_PAGE_SIZE",
		"TASKDECK_NOTIFY_DURATION",
		"TASKDECK_SESSION_STORE_PATH",
		"TASKDECK_LOGOUT_ON_UNAUTHORIZED",
		"TASKDECK_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://localhost:8080/api", cfg.API.BaseURL)
	require.Equal(t, 10*time.Second, cfg.API.ProjectTimeout)
	require.Equal(t, 6, cfg.Pages.ProjectPageSize)
	require.Equal(t, 4, cfg.Pages.TaskPageSize)
	require.Equal(t, 3*time.Second, cfg.Notify.Duration)
	require.Equal(t, "taskdeck.db", cfg.Session.StorePath)
	require.False(t, cfg.Session.LogoutOnUnauthorized)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `api:
  base_url: http://backend:9090/api
pages:
  project_page_size: 12
session:
  logout_on_unauthorized: true
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	t.Setenv("TASKDECK_CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://backend:9090/api", cfg.API.BaseURL)
	require.Equal(t, 12, cfg.Pages.ProjectPageSize)
	require.Equal(t, 4, cfg.Pages.TaskPageSize, "fields the file omits keep their defaults")
	require.True(t, cfg.Session.LogoutOnUnauthorized)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://from-file/api\n"), 0o644))
	t.Setenv("TASKDECK_CONFIG_PATH", path)

	t.Setenv("TASKDECK_API_BASE_URL", "http://from-env/api")
	t.Setenv("TASKDECK_API_PROJECT_TIMEOUT", "2s")
	t.Setenv("TASKDECK_TASK_PAGE_SIZE", "9")
	t.Setenv("TASKDECK_NOTIFY_DURATION", "500ms")
	t.Setenv("TASKDECK_SESSION_STORE_PATH", ":memory:")
	t.Setenv("TASKDECK_LOGOUT_ON_UNAUTHORIZED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://from-env/api", cfg.API.BaseURL)
	require.Equal(t, 2*time.Second, cfg.API.ProjectTimeout)
	require.Equal(t, 9, cfg.Pages.TaskPageSize)
	require.Equal(t, 500*time.Millisecond, cfg.Notify.Duration)
	require.Equal(t, ":memory:", cfg.Session.StorePath)
	require.True(t, cfg.Session.LogoutOnUnauthorized)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"TASKDECK_API_PROJECT_TIMEOUT":    "soon",
		"TASKDECK_PROJECT_PAGE_SIZE":      "six",
		"TASKDECK_TASK_PAGE_SIZE":         "4.5",
		"TASKDECK_NOTIFY_DURATION":        "forever",
		"TASKDECK_LOGOUT_ON_UNAUTHORIZED": "maybe",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			require.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("TASKDECK_CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}
