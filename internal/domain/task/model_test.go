package task_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yferhat/taskdeck/internal/domain/task"
)

func TestCompleted(t *testing.T) {
	require.True(t, task.Task{Status: task.StatusDone}.Completed())
	require.True(t, task.Task{Status: "COMPLETED"}.Completed())
	require.True(t, task.Task{Status: "done"}.Completed())
	require.False(t, task.Task{Status: task.StatusTodo}.Completed())
	require.False(t, task.Task{Status: task.StatusInProgress}.Completed())
	require.False(t, task.Task{}.Completed())
}

func TestRequestValidate(t *testing.T) {
	valid := task.Request{Title: "Write docs", Description: "for the release", DueDate: "2026-09-01"}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Title = ""
	require.ErrorIs(t, missing.Validate(), task.ErrTitleRequired)

	missing = valid
	missing.Description = "   "
	require.ErrorIs(t, missing.Validate(), task.ErrDescriptionRequired)

	missing = valid
	missing.DueDate = ""
	require.ErrorIs(t, missing.Validate(), task.ErrDueDateRequired)
}
