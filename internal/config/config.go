package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Pages   PagesConfig   `yaml:"pages"`
	Notify  NotifyConfig  `yaml:"notify"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	ProjectTimeout time.Duration `yaml:"project_timeout"`
}

type PagesConfig struct {
	ProjectPageSize int `yaml:"project_page_size"`
	TaskPageSize    int `yaml:"task_page_size"`
}

type NotifyConfig struct {
	Duration time.Duration `yaml:"duration"`
}

type SessionConfig struct {
	StorePath            string `yaml:"store_path"`
	LogoutOnUnauthorized bool   `yaml:"logout_on_unauthorized"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080/api",
			ProjectTimeout: 10 * time.Second,
		},
		Pages: PagesConfig{
			ProjectPageSize: 6,
			TaskPageSize:    4,
		},
		Notify: NotifyConfig{
			Duration: 3 * time.Second,
		},
		Session: SessionConfig{
			StorePath:            "taskdeck.db",
			LogoutOnUnauthorized: false,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("TASKDECK_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if baseURL := os.Getenv("TASKDECK_API_BASE_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if timeoutStr := os.Getenv("TASKDECK_API_PROJECT_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TASKDECK_API_PROJECT_TIMEOUT: %w", err)
		}
		cfg.API.ProjectTimeout = timeout
	}
	if sizeStr := os.Getenv("TASKDECK_PROJECT_PAGE_SIZE"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TASKDECK_PROJECT_PAGE_SIZE: %w", err)
		}
		cfg.Pages.ProjectPageSize = size
	}
	if sizeStr := os.Getenv("TASKDECK_TASK_PAGE_SIZE"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TASKDECK_TASK_PAGE_SIZE: %w", err)
		}
		cfg.Pages.TaskPageSize = size
	}
	if durStr := os.Getenv("TASKDECK_NOTIFY_DURATION"); durStr != "" {
		dur, err := time.ParseDuration(durStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TASKDECK_NOTIFY_DURATION: %w", err)
		}
		cfg.Notify.Duration = dur
	}
	if storePath := os.Getenv("TASKDECK_SESSION_STORE_PATH"); storePath != "" {
		cfg.Session.StorePath = storePath
	}
	if logoutStr := os.Getenv("TASKDECK_LOGOUT_ON_UNAUTHORIZED"); logoutStr != "" {
		logout, err := strconv.ParseBool(logoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TASKDECK_LOGOUT_ON_UNAUTHORIZED: %w", err)
		}
		cfg.Session.LogoutOnUnauthorized = logout
	}
	if level := os.Getenv("TASKDECK_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
