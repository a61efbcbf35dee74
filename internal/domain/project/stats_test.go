package project_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yferhat/taskdeck/internal/domain/project"
)

func TestComputeStats(t *testing.T) {
	projects := []project.Project{
		{ID: 1, Title: "Alpha", TotalTasks: 10, CompletedTasks: 4},
		{ID: 2, Title: "Beta", TotalTasks: 0, CompletedTasks: 0},
		{ID: 3, Title: "Gamma", TotalTasks: 5, CompletedTasks: 5},
	}

	stats := project.ComputeStats(projects)
	require.Equal(t, 15, stats.TotalTasks)
	require.Equal(t, 9, stats.CompletedTasks)
	require.Equal(t, 60, stats.CompletedPercentage)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := project.ComputeStats(nil)
	require.Equal(t, project.AggregateStats{}, stats)
}

func TestComputeStats_Rounding(t *testing.T) {
	projects := []project.Project{
		{ID: 1, Title: "Alpha", TotalTasks: 3, CompletedTasks: 1},
	}
	// 33.33% rounds down to 33
	require.Equal(t, 33, project.ComputeStats(projects).CompletedPercentage)

	projects[0].CompletedTasks = 2
	// 66.67% rounds up to 67
	require.Equal(t, 67, project.ComputeStats(projects).CompletedPercentage)
}

func TestRequestValidate(t *testing.T) {
	require.NoError(t, project.Request{Title: "Alpha", Description: "first"}.Validate())
	require.ErrorIs(t, project.Request{Title: "  ", Description: "first"}.Validate(), project.ErrTitleRequired)
	require.ErrorIs(t, project.Request{Title: "Alpha"}.Validate(), project.ErrDescriptionRequired)
}
