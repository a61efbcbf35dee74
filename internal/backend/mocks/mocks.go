package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yferhat/taskdeck/internal/domain/auth"
	"github.com/yferhat/taskdeck/internal/domain/project"
	"github.com/yferhat/taskdeck/internal/domain/task"
)

// AuthAPI is a mock for backend.AuthAPI.
type AuthAPI struct {
	mock.Mock
}

func (m *AuthAPI) Register(ctx context.Context, reg auth.Registration) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *AuthAPI) Login(ctx context.Context, creds auth.Credentials) (string, error) {
	args := m.Called(ctx, creds)
	return args.String(0), args.Error(1)
}

// ProjectAPI is a mock for backend.ProjectAPI.
type ProjectAPI struct {
	mock.Mock
}

func (m *ProjectAPI) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Get(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Create(ctx context.Context, req project.Request) (*project.Project, error) {
	args := m.Called(ctx, req)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Update(ctx context.Context, id int64, req project.Request) (*project.Project, error) {
	args := m.Called(ctx, id, req)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectAPI) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// TaskAPI is a mock for backend.TaskAPI.
type TaskAPI struct {
	mock.Mock
}

func (m *TaskAPI) ListByProject(ctx context.Context, projectID int64) ([]task.Task, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]task.Task); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskAPI) Create(ctx context.Context, projectID int64, req task.Request) (*task.Task, error) {
	args := m.Called(ctx, projectID, req)
	if tk, ok := args.Get(0).(*task.Task); ok {
		return tk, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskAPI) Update(ctx context.Context, id int64, req task.Request) (*task.Task, error) {
	args := m.Called(ctx, id, req)
	if tk, ok := args.Get(0).(*task.Task); ok {
		return tk, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TaskAPI) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TaskAPI) Complete(ctx context.Context, id int64) (*task.Task, error) {
	args := m.Called(ctx, id)
	if tk, ok := args.Get(0).(*task.Task); ok {
		return tk, args.Error(1)
	}
	return nil, args.Error(1)
}
