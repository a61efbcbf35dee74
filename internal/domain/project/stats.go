package project

import "math"

// AggregateStats summarizes task completion across the full project set.
type AggregateStats struct {
	TotalTasks          int `json:"totalTasks"`
	CompletedTasks      int `json:"completedTasks"`
	CompletedPercentage int `json:"completedPercentage"`
}

// ComputeStats reduces the unfiltered project set to dashboard totals.
// The percentage is 0 when there are no tasks at all.
func ComputeStats(projects []Project) AggregateStats {
	var stats AggregateStats
	for _, p := range projects {
		stats.TotalTasks += p.TotalTasks
		stats.CompletedTasks += p.CompletedTasks
	}
	if stats.TotalTasks > 0 {
		ratio := float64(stats.CompletedTasks) / float64(stats.TotalTasks)
		stats.CompletedPercentage = int(math.Round(ratio * 100))
	}
	return stats
}
