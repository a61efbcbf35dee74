package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/yferhat/taskdeck/internal/backend"
	"github.com/yferhat/taskdeck/internal/domain/project"
	"github.com/yferhat/taskdeck/internal/session"
)

// ErrNoProjectID indicates the detail screen was entered without an id.
var ErrNoProjectID = errors.New("no project ID provided")

// ProjectDetail drives a single project's screen: the header with its
// aggregate fields and the owned task list. Task changes trigger a silent
// refresh of the header numbers, with no full reload and no notification.
//
// Overlapping loads are not versioned; a slower response may overwrite a
// newer one. That matches the reference behavior and is the accepted
// consistency gap here.
type ProjectDetail struct {
	api      backend.ProjectAPI
	sessions *session.Store
	logger   *slog.Logger

	// Tasks is the owned task panel.
	Tasks *TaskList

	mu         sync.Mutex
	project    *project.Project
	state      ScreenState
	errMessage string
}

// NewProjectDetail creates the detail controller and wires the task
// list's change events to the stats refresh.
func NewProjectDetail(api backend.ProjectAPI, tasks *TaskList, sessions *session.Store, logger *slog.Logger) *ProjectDetail {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &ProjectDetail{
		api:      api,
		sessions: sessions,
		logger:   logger,
		Tasks:    tasks,
	}
	tasks.SetOnChanged(d.refreshStats)
	return d
}

// Load fetches the project and its tasks concurrently. A task load
// failure leaves the screen usable (the task panel carries its own
// banner); a project fetch failure fails the screen, with the timeout
// surfaced as its own message.
func (d *ProjectDetail) Load(ctx context.Context, id int64) error {
	if id <= 0 {
		d.setState(StateFailed, "No project ID provided")
		return ErrNoProjectID
	}

	d.setState(StateLoading, "")

	var proj *project.Project
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := d.api.Get(gctx, id)
		if err != nil {
			return err
		}
		proj = p
		return nil
	})
	g.Go(func() error {
		// The task panel reports its own failures; they must not cancel
		// the project fetch.
		if err := d.Tasks.SetProject(gctx, id); err != nil {
			d.logger.Debug("task load failed", "project_id", id, "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		d.sessions.HandleAuthError(err)
		d.mu.Lock()
		d.project = nil
		d.state = StateFailed
		d.errMessage = loadErrorMessage(err, "project")
		d.mu.Unlock()
		return fmt.Errorf("loading project %d: %w", id, err)
	}

	d.mu.Lock()
	d.project = proj
	d.state = StateReady
	d.errMessage = ""
	d.mu.Unlock()
	return nil
}

// Project returns the loaded project, nil before a successful load.
func (d *ProjectDetail) Project() *project.Project {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.project == nil {
		return nil
	}
	p := *d.project
	return &p
}

// State returns the screen's lifecycle state.
func (d *ProjectDetail) State() ScreenState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// ErrorMessage returns the banner text, empty when the screen is healthy.
func (d *ProjectDetail) ErrorMessage() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.errMessage
}

func (d *ProjectDetail) setState(state ScreenState, errMessage string) {
	d.mu.Lock()
	d.state = state
	d.errMessage = errMessage
	d.mu.Unlock()
}

// refreshStats silently re-fetches the parent project so its aggregate
// fields stay consistent after any child-task mutation. Failures are
// logged and swallowed; the stale numbers stand until the next change.
func (d *ProjectDetail) refreshStats() {
	d.mu.Lock()
	var id int64
	if d.project != nil {
		id = d.project.ID
	}
	d.mu.Unlock()
	if id == 0 {
		return
	}

	p, err := d.api.Get(context.Background(), id)
	if err != nil {
		d.logger.Debug("stats refresh failed", "project_id", id, "error", err)
		return
	}

	d.mu.Lock()
	if d.project != nil && d.project.ID == id {
		d.project = p
	}
	d.mu.Unlock()
}
