package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yferhat/taskdeck/internal/domain/task"
)

// TaskClient implements backend.TaskAPI over HTTP.
type TaskClient struct {
	c *Client
}

// NewTaskClient creates a task API client.
func NewTaskClient(c *Client) *TaskClient {
	return &TaskClient{c: c}
}

// ListByProject fetches all tasks belonging to a project.
func (t *TaskClient) ListByProject(ctx context.Context, projectID int64) ([]task.Task, error) {
	data, err := t.c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d/tasks", projectID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return decodeList[task.Task](data)
}

// Create creates a new task within a project.
func (t *TaskClient) Create(ctx context.Context, projectID int64, req task.Request) (*task.Task, error) {
	data, err := t.c.do(ctx, http.MethodPost, fmt.Sprintf("/projects/%d/tasks", projectID), req)
	if err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return decodeOne[task.Task](data)
}

// Update updates an existing task.
func (t *TaskClient) Update(ctx context.Context, id int64, req task.Request) (*task.Task, error) {
	data, err := t.c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), req)
	if err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return decodeOne[task.Task](data)
}

// Delete deletes a task by ID.
func (t *TaskClient) Delete(ctx context.Context, id int64) error {
	if _, err := t.c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// Complete marks a task as done.
func (t *TaskClient) Complete(ctx context.Context, id int64) (*task.Task, error) {
	data, err := t.c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/complete", id), struct{}{})
	if err != nil {
		return nil, fmt.Errorf("completing task: %w", err)
	}
	return decodeOne[task.Task](data)
}
