package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/domain/project"
	"github.com/yferhat/taskdeck/internal/notify"
	"github.com/yferhat/taskdeck/internal/session"
	"github.com/yferhat/taskdeck/internal/view"
)

// DefaultProjectPageSize matches the project grid layout.
const DefaultProjectPageSize = 6

// ProjectList drives the project overview screen: the derived list view,
// the dashboard statistics, and the create/update/delete actions.
type ProjectList struct {
	api      backend.ProjectAPI
	sessions *session.Store
	notify   *notify.Center
	logger   *slog.Logger

	// View derives the filtered, paginated project list.
	View *view.Collection[project.Project]

	mu         sync.Mutex
	state      ScreenState
	errMessage string
	stats      project.AggregateStats
}

// NewProjectList creates the project list controller. A non-positive
// pageSize falls back to DefaultProjectPageSize.
func NewProjectList(api backend.ProjectAPI, sessions *session.Store, notifier *notify.Center, logger *slog.Logger, pageSize int) *ProjectList {
	if pageSize <= 0 {
		pageSize = DefaultProjectPageSize
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ProjectList{
		api:      api,
		sessions: sessions,
		notify:   notifier,
		logger:   logger,
		View:     view.New(pageSize, func(p project.Project) string { return p.Title }),
	}
}

// Load fetches the full project collection, feeds it into the view, and
// recomputes the dashboard statistics from the unfiltered set. On failure
// the collection is cleared, not left stale, and the banner is set; no
// notification is pushed for a passive load.
func (l *ProjectList) Load(ctx context.Context) error {
	l.setState(StateLoading, "")

	projects, err := l.api.List(ctx)
	if err != nil {
		l.sessions.HandleAuthError(err)
		l.View.SetItems(nil)
		l.mu.Lock()
		l.stats = project.AggregateStats{}
		l.state = StateFailed
		l.errMessage = loadErrorMessage(err, "projects")
		l.mu.Unlock()
		return fmt.Errorf("loading projects: %w", err)
	}

	l.View.SetItems(projects)
	l.mu.Lock()
	l.stats = project.ComputeStats(projects)
	l.state = StateReady
	l.errMessage = ""
	l.mu.Unlock()
	return nil
}

// Create validates and creates a project, then reloads. Validation
// failures block submission before any network call.
func (l *ProjectList) Create(ctx context.Context, req project.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := l.api.Create(ctx, req); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to create project. Please try again.")
		return fmt.Errorf("creating project: %w", err)
	}
	l.notify.Success("Project created successfully!")
	return l.Load(ctx)
}

// Update validates and updates a project, then reloads.
func (l *ProjectList) Update(ctx context.Context, id int64, req project.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := l.api.Update(ctx, id, req); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to update project.")
		return fmt.Errorf("updating project: %w", err)
	}
	l.notify.Success("Project updated successfully!")
	return l.Load(ctx)
}

// Delete removes a project after explicit confirmation, then reloads.
// Declining the confirmation performs nothing.
func (l *ProjectList) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm("Are you sure you want to delete this project?") {
		return nil
	}
	if err := l.api.Delete(ctx, id); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to delete project. Please try again.")
		return fmt.Errorf("deleting project: %w", err)
	}
	l.notify.Success("Project deleted successfully!")
	return l.Load(ctx)
}

// Logout clears the session and tells the user.
func (l *ProjectList) Logout() {
	l.sessions.Logout()
	l.notify.Info("You have been logged out.")
}

// State returns the screen's lifecycle state.
func (l *ProjectList) State() ScreenState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// ErrorMessage returns the banner text, empty when the screen is healthy.
func (l *ProjectList) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMessage
}

// Stats returns the dashboard statistics computed from the last
// successful load.
func (l *ProjectList) Stats() project.AggregateStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stats
}

func (l *ProjectList) setState(state ScreenState, errMessage string) {
	l.mu.Lock()
	l.state = state
	l.errMessage = errMessage
	l.mu.Unlock()
}
