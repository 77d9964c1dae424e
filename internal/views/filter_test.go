package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

func filterFixture() []goal.Goal {
	return []goal.Goal{
		{ID: 1, ProgressStatus: goal.StatusStarted},
		{ID: 2, ProgressStatus: goal.StatusCompleted},
		{ID: 3, ProgressStatus: goal.StatusInProgress},
		{ID: 4, ProgressStatus: goal.StatusCompleted},
	}
}

func TestFilterByStatus_AllReturnsInputUnchanged(t *testing.T) {
	goals := filterFixture()
	got := FilterByStatus(goals, FilterAll)

	assert.Equal(t, goals, got)
	assert.Len(t, got, len(goals))
}

func TestFilterByStatus_MatchesOnlyAndPreservesOrder(t *testing.T) {
	goals := filterFixture()

	for _, status := range []goal.Status{goal.StatusStarted, goal.StatusInProgress, goal.StatusCompleted} {
		got := FilterByStatus(goals, string(status))
		assert.LessOrEqual(t, len(got), len(goals))
		for _, g := range got {
			assert.Equal(t, status, g.ProgressStatus)
		}
	}

	completed := FilterByStatus(goals, string(goal.StatusCompleted))
	assert.Equal(t, []int64{2, 4}, []int64{completed[0].ID, completed[1].ID})
}

func TestFilterByStatus_NoMatches(t *testing.T) {
	goals := []goal.Goal{{ID: 1, ProgressStatus: goal.StatusStarted}}
	assert.Empty(t, FilterByStatus(goals, string(goal.StatusCompleted)))
}

func TestCountByStatus(t *testing.T) {
	goals := filterFixture()

	assert.Equal(t, 4, CountByStatus(goals, FilterAll))
	assert.Equal(t, 1, CountByStatus(goals, string(goal.StatusStarted)))
	assert.Equal(t, 1, CountByStatus(goals, string(goal.StatusInProgress)))
	assert.Equal(t, 2, CountByStatus(goals, string(goal.StatusCompleted)))
}
