package views

import "github.com/fyrsmithlabs/skillstack/internal/goal"

// FilterAll is the wildcard filter value matching every goal.
const FilterAll = "all"

// FilterOrder is the cycle the skills view steps through.
var FilterOrder = []string{
	FilterAll,
	string(goal.StatusStarted),
	string(goal.StatusInProgress),
	string(goal.StatusCompleted),
}

// FilterByStatus returns the goals whose progress status equals status,
// preserving relative order. The wildcard FilterAll returns the input
// unchanged.
func FilterByStatus(goals []goal.Goal, status string) []goal.Goal {
	if status == FilterAll {
		return goals
	}
	var out []goal.Goal
	for _, g := range goals {
		if string(g.ProgressStatus) == status {
			out = append(out, g)
		}
	}
	return out
}

// CountByStatus returns the number of goals matching status, with FilterAll
// counting everything. Used for the filter tab labels.
func CountByStatus(goals []goal.Goal, status string) int {
	if status == FilterAll {
		return len(goals)
	}
	n := 0
	for _, g := range goals {
		if string(g.ProgressStatus) == status {
			n++
		}
	}
	return n
}
