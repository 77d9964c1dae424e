package views

import (
	"math"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

// recentCount is how many trailing goals the dashboard previews.
const recentCount = 3

// CategoryCount is one entry of the resource-type breakdown.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats is the aggregate summary of the full collection.
type DashboardStats struct {
	Total             int
	Completed         int
	InProgress        int
	TotalHours        int // sum of hours_spent, rounded for display
	CompletionRatePct int
	CategoryBreakdown []CategoryCount

	// Recent is the last few goals in collection order. This is a
	// positional slice, not a recency sort.
	Recent []goal.Goal
}

// ComputeDashboardStats aggregates the collection in a single pass.
// The category breakdown is ordered by first appearance.
func ComputeDashboardStats(goals []goal.Goal) DashboardStats {
	stats := DashboardStats{Total: len(goals)}

	var hours float64
	index := make(map[string]int)
	for _, g := range goals {
		switch g.ProgressStatus {
		case goal.StatusCompleted:
			stats.Completed++
		case goal.StatusInProgress:
			stats.InProgress++
		}
		hours += g.HoursSpent

		name := string(g.ResourceType)
		if i, seen := index[name]; seen {
			stats.CategoryBreakdown[i].Count++
		} else {
			index[name] = len(stats.CategoryBreakdown)
			stats.CategoryBreakdown = append(stats.CategoryBreakdown, CategoryCount{Name: name, Count: 1})
		}
	}

	stats.TotalHours = int(math.Round(hours))
	if stats.Total > 0 {
		stats.CompletionRatePct = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	start := len(goals) - recentCount
	if start < 0 {
		start = 0
	}
	stats.Recent = goals[start:]

	return stats
}
