// Package app assembles the client stack from configuration: session
// storage, HTTP clients, the session store, the notification center, and
// factories for the screen controllers.
package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/yferhat/taskdeck/internal/api"
	"github.com/yferhat/taskdeck/internal/config"
	"github.com/yferhat/taskdeck/internal/controller"
	"github.com/yferhat/taskdeck/internal/kvstore"
	"github.com/yferhat/taskdeck/internal/notify"
	"github.com/yferhat/taskdeck/internal/session"
)

// App holds the wired client stack.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Store    *kvstore.Store
	Sessions *session.Store
	Center   *notify.Center
	Auth     *api.AuthClient
	Projects *api.ProjectClient
	Tasks    *api.TaskClient
}

// New wires the stack from cfg. A nil logger gets a text handler on stderr
// at the configured level.
func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: parseLogLevel(cfg.Log.Level),
		}))
	}

	store, err := kvstore.Open(cfg.Session.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening session store: %w", err)
	}

	a := &App{
		Config: cfg,
		Logger: logger,
		Store:  store,
		Center: notify.NewCenter(cfg.Notify.Duration),
	}

	// The client reads the token lazily, which lets it exist before the
	// session store that produces tokens.
	client := api.NewClient(cfg.API.BaseURL, api.TokenSourceFunc(func() (string, bool) {
		if a.Sessions == nil {
			return "", false
		}
		return a.Sessions.Token()
	}), logger)

	a.Auth = api.NewAuthClient(client)
	a.Projects = api.NewProjectClient(client, cfg.API.ProjectTimeout)
	a.Tasks = api.NewTaskClient(client)
	a.Sessions = session.NewStore(a.Auth, store, logger, session.Options{
		LogoutOnUnauthorized: cfg.Session.LogoutOnUnauthorized,
	})
	return a, nil
}

// Close releases the backing session store.
func (a *App) Close() error {
	return a.Store.Close()
}

// ProjectList builds the project screen controller with the configured
// page size.
func (a *App) ProjectList() *controller.ProjectList {
	return controller.NewProjectList(a.Projects, a.Sessions, a.Center, a.Logger, a.Config.Pages.ProjectPageSize)
}

// TaskList builds the task panel controller with the configured page size.
func (a *App) TaskList() *controller.TaskList {
	return controller.NewTaskList(a.Tasks, a.Sessions, a.Center, a.Logger, a.Config.Pages.TaskPageSize)
}

// ProjectDetail builds the detail screen controller around a fresh task
// panel and returns both.
func (a *App) ProjectDetail() (*controller.ProjectDetail, *controller.TaskList) {
	tasks := a.TaskList()
	return controller.NewProjectDetail(a.Projects, tasks, a.Sessions, a.Logger), tasks
}

// AuthScreen builds the login/registration controller.
func (a *App) AuthScreen(redirect func(route string)) *controller.Auth {
	return controller.NewAuth(a.Sessions, a.Center, redirect, a.Logger)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
