package tui

import (
	"context"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
	"github.com/fyrsmithlabs/skillstack/internal/goalstore"
	"github.com/fyrsmithlabs/skillstack/internal/views"
)

// fetchGoals loads the full collection from GoalStore. The sequence number
// travels with the result so the controller can discard responses that a
// later refresh has already superseded.
func fetchGoals(store *goalstore.Client, timeout time.Duration, seq uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		goals, err := store.List(ctx)
		if err != nil {
			return refreshErrMsg{seq: seq, err: err}
		}
		return goalsMsg{seq: seq, goals: goals}
	}
}

// fetchStats computes dashboard statistics, preferring the server-side
// aggregate and silently falling back to local computation when the
// endpoint is absent or malformed.
func fetchStats(store *goalstore.Client, timeout time.Duration, seq uint64, goals []goal.Goal) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if summary, err := store.Dashboard(ctx); err == nil {
			return statsMsg{seq: seq, stats: statsFromSummary(summary, goals)}
		}
		return statsMsg{seq: seq, stats: views.ComputeDashboardStats(goals)}
	}
}

// statsFromSummary maps the wire aggregate onto dashboard stats. The recent
// preview always comes from the local snapshot; the server does not carry
// it.
func statsFromSummary(s *goalstore.DashboardSummary, goals []goal.Goal) views.DashboardStats {
	stats := views.DashboardStats{
		Total:             *s.TotalGoals,
		Completed:         s.CompletedGoals,
		InProgress:        s.InProgressGoals,
		TotalHours:        int(math.Round(s.TotalHours)),
		CompletionRatePct: int(math.Round(s.CompletionRate)),
	}
	for _, c := range s.CategoryBreakdown {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, views.CategoryCount{Name: c.Name, Count: c.Count})
	}

	start := len(goals) - 3
	if start < 0 {
		start = 0
	}
	stats.Recent = goals[start:]
	return stats
}

// createGoal sends an add-goal request. The follow-up refresh is issued by
// the controller when the result arrives.
func createGoal(store *goalstore.Client, timeout time.Duration, req goal.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := store.Create(ctx, req)
		return mutationMsg{verb: "add", err: err, added: true}
	}
}

// updateGoal sends a partial update for one goal.
func updateGoal(store *goalstore.Client, timeout time.Duration, id int64, req goal.UpdateRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		_, err := store.Update(ctx, id, req)
		return mutationMsg{verb: "update", err: err}
	}
}

// deleteGoal removes one goal.
func deleteGoal(store *goalstore.Client, timeout time.Duration, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := store.Delete(ctx, id)
		return mutationMsg{verb: "delete", err: err}
	}
}
