// Package backend defines the contracts of the REST backend the client
// consumes. Implementations live in internal/api; tests use the mocks
// subpackage.
package backend

import (
	"context"

	"github.com/yferhat/taskdeck/internal/domain/auth"
	"github.com/yferhat/taskdeck/internal/domain/project"
	"github.com/yferhat/taskdeck/internal/domain/task"
)

// AuthAPI provides account registration and login.
type AuthAPI interface {
	Register(ctx context.Context, reg auth.Registration) error
	// Login authenticates and returns the bearer token issued by the
	// backend.
	Login(ctx context.Context, creds auth.Credentials) (string, error)
}

// ProjectAPI provides project CRUD.
type ProjectAPI interface {
	List(ctx context.Context) ([]project.Project, error)
	Get(ctx context.Context, id int64) (*project.Project, error)
	Create(ctx context.Context, req project.Request) (*project.Project, error)
	Update(ctx context.Context, id int64, req project.Request) (*project.Project, error)
	Delete(ctx context.Context, id int64) error
}

// TaskAPI provides task CRUD within a project.
type TaskAPI interface {
	ListByProject(ctx context.Context, projectID int64) ([]task.Task, error)
	Create(ctx context.Context, projectID int64, req task.Request) (*task.Task, error)
	Update(ctx context.Context, id int64, req task.Request) (*task.Task, error)
	Delete(ctx context.Context, id int64) error
	Complete(ctx context.Context, id int64) (*task.Task, error)
}
