package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/yferhat/taskdeck/internal/domain/project"
)

// DefaultProjectTimeout bounds a single project fetch so a hung backend
// surfaces as a distinct "timed out" failure instead of a generic one.
const DefaultProjectTimeout = 10 * time.Second

// ProjectClient implements backend.ProjectAPI over HTTP.
type ProjectClient struct {
	c          *Client
	getTimeout time.Duration
}

// NewProjectClient creates a project API client. A non-positive getTimeout
// falls back to DefaultProjectTimeout.
func NewProjectClient(c *Client, getTimeout time.Duration) *ProjectClient {
	if getTimeout <= 0 {
		getTimeout = DefaultProjectTimeout
	}
	return &ProjectClient{c: c, getTimeout: getTimeout}
}

// List fetches all projects for the current user.
func (p *ProjectClient) List(ctx context.Context) ([]project.Project, error) {
	data, err := p.c.do(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return decodeList[project.Project](data)
}

// Get fetches a single project by ID.
func (p *ProjectClient) Get(ctx context.Context, id int64) (*project.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, p.getTimeout)
	defer cancel()

	data, err := p.c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return decodeOne[project.Project](data)
}

// Create creates a new project.
func (p *ProjectClient) Create(ctx context.Context, req project.Request) (*project.Project, error) {
	data, err := p.c.do(ctx, http.MethodPost, "/projects", req)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	return decodeOne[project.Project](data)
}

// Update updates an existing project.
func (p *ProjectClient) Update(ctx context.Context, id int64, req project.Request) (*project.Project, error) {
	data, err := p.c.do(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), req)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return decodeOne[project.Project](data)
}

// Delete deletes a project by ID.
func (p *ProjectClient) Delete(ctx context.Context, id int64) error {
	if _, err := p.c.do(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}
