package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/domain/task"
	"github.com/yferhat/taskdeck/internal/notify"
	"github.com/yferhat/taskdeck/internal/session"
	"github.com/yferhat/taskdeck/internal/view"
)

// DefaultTaskPageSize matches the task panel layout.
const DefaultTaskPageSize = 4

// ErrNoProject indicates the task list has no project bound yet.
var ErrNoProject = errors.New("no project selected")

// TaskList drives the task panel of a project's detail screen. Every
// successful load, including mutation-triggered reloads, fires the
// OnChanged callback so the owning screen can refresh the parent
// project's statistics.
type TaskList struct {
	api      backend.TaskAPI
	sessions *session.Store
	notify   *notify.Center
	logger   *slog.Logger

	// View derives the filtered, paginated task list.
	View *view.Collection[task.Task]

	mu         sync.Mutex
	projectID  int64
	state      ScreenState
	errMessage string
	onChanged  func()
}

// NewTaskList creates the task list controller. A non-positive pageSize
// falls back to DefaultTaskPageSize.
func NewTaskList(api backend.TaskAPI, sessions *session.Store, notifier *notify.Center, logger *slog.Logger, pageSize int) *TaskList {
	if pageSize <= 0 {
		pageSize = DefaultTaskPageSize
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &TaskList{
		api:      api,
		sessions: sessions,
		notify:   notifier,
		logger:   logger,
		View:     view.New(pageSize, func(t task.Task) string { return t.Title }),
	}
}

// SetOnChanged registers the tasks-changed callback.
func (l *TaskList) SetOnChanged(fn func()) {
	l.mu.Lock()
	l.onChanged = fn
	l.mu.Unlock()
}

// SetProject binds the list to a project and loads its tasks.
func (l *TaskList) SetProject(ctx context.Context, projectID int64) error {
	l.mu.Lock()
	l.projectID = projectID
	l.mu.Unlock()
	return l.Load(ctx)
}

// ProjectID returns the bound project id, 0 when unbound.
func (l *TaskList) ProjectID() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.projectID
}

// Load fetches the bound project's tasks wholesale. On success the view
// is refilled and the tasks-changed callback fires; on failure the
// collection is cleared and only the banner is set.
func (l *TaskList) Load(ctx context.Context) error {
	l.mu.Lock()
	projectID := l.projectID
	l.mu.Unlock()
	if projectID == 0 {
		return ErrNoProject
	}

	l.setState(StateLoading, "")

	tasks, err := l.api.ListByProject(ctx, projectID)
	if err != nil {
		l.sessions.HandleAuthError(err)
		l.View.SetItems(nil)
		l.setState(StateFailed, loadErrorMessage(err, "tasks"))
		return fmt.Errorf("loading tasks: %w", err)
	}

	l.View.SetItems(tasks)
	l.setState(StateReady, "")

	l.mu.Lock()
	changed := l.onChanged
	l.mu.Unlock()
	if changed != nil {
		changed()
	}
	return nil
}

// Create validates and creates a task in the bound project, then reloads.
func (l *TaskList) Create(ctx context.Context, req task.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	projectID := l.projectID
	l.mu.Unlock()
	if projectID == 0 {
		return ErrNoProject
	}
	if _, err := l.api.Create(ctx, projectID, req); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to create task. Please try again.")
		return fmt.Errorf("creating task: %w", err)
	}
	l.notify.Success("Task created successfully!")
	return l.Load(ctx)
}

// Update validates and updates a task, then reloads.
func (l *TaskList) Update(ctx context.Context, id int64, req task.Request) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := l.api.Update(ctx, id, req); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to update task.")
		return fmt.Errorf("updating task: %w", err)
	}
	l.notify.Success("Task updated successfully!")
	return l.Load(ctx)
}

// Complete marks a task done, then reloads so the view reflects the
// server-computed completion fields.
func (l *TaskList) Complete(ctx context.Context, id int64) error {
	if _, err := l.api.Complete(ctx, id); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to complete task.")
		return fmt.Errorf("completing task: %w", err)
	}
	l.notify.Success("Task completed!")
	return l.Load(ctx)
}

// Delete removes a task after explicit confirmation, then reloads.
func (l *TaskList) Delete(ctx context.Context, id int64, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm("Are you sure you want to delete this task?") {
		return nil
	}
	if err := l.api.Delete(ctx, id); err != nil {
		l.sessions.HandleAuthError(err)
		l.notify.Error("Failed to delete task.")
		return fmt.Errorf("deleting task: %w", err)
	}
	l.notify.Success("Task deleted successfully!")
	return l.Load(ctx)
}

// SetSearchTerm forwards to the view; changing the term resets to the
// first page.
func (l *TaskList) SetSearchTerm(term string) {
	l.View.SetSearchTerm(term)
}

// State returns the screen's lifecycle state.
func (l *TaskList) State() ScreenState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// ErrorMessage returns the banner text, empty when the screen is healthy.
func (l *TaskList) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errMessage
}

func (l *TaskList) setState(state ScreenState, errMessage string) {
	l.mu.Lock()
	l.state = state
	l.errMessage = errMessage
	l.mu.Unlock()
}
