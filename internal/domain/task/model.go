package task

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates the task states the backend reports.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Task represents a task within a project.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Completed reports whether the task is done. Some backends report
// "COMPLETED" instead of "DONE"; both count.
func (t Task) Completed() bool {
	switch strings.ToUpper(string(t.Status)) {
	case "DONE", "COMPLETED":
		return true
	}
	return false
}

// Request defines task creation and update inputs. DueDate uses the
// backend's YYYY-MM-DD format.
type Request struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

var (
	// ErrTitleRequired indicates a missing task title.
	ErrTitleRequired = errors.New("task title is required")
	// ErrDescriptionRequired indicates a missing task description.
	ErrDescriptionRequired = errors.New("task description is required")
	// ErrDueDateRequired indicates a missing due date.
	ErrDueDateRequired = errors.New("task due date is required")
)

// Validate checks the form constraints before the request leaves the client.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrDescriptionRequired
	}
	if strings.TrimSpace(r.DueDate) == "" {
		return ErrDueDateRequired
	}
	return nil
}
