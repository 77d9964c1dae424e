package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

func TestGoalForm_Defaults(t *testing.T) {
	f := newGoalForm()
	f.name.SetValue("Docker")

	req, err := f.buildRequest()
	require.NoError(t, err)

	assert.Equal(t, goal.ResourceCourse, req.ResourceType)
	assert.Equal(t, goal.StatusStarted, req.ProgressStatus)
	assert.Equal(t, 1, req.DifficultyRating)
	assert.Zero(t, req.HoursSpent)
}

func TestGoalForm_CycleResourceType(t *testing.T) {
	f := newGoalForm()
	f.setFocus(fieldResource)

	f.update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, f.resourceIdx)

	// Wraps backwards past the start.
	f.update(tea.KeyMsg{Type: tea.KeyLeft})
	f.update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, len(goal.ResourceTypes)-1, f.resourceIdx)
}

func TestGoalForm_DifficultyWraps(t *testing.T) {
	f := newGoalForm()
	f.setFocus(fieldDifficulty)

	f.update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 5, f.difficulty)

	f.update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, f.difficulty)
}

func TestGoalForm_TabAdvancesFocus(t *testing.T) {
	f := newGoalForm()
	require.Equal(t, fieldName, f.focus)

	f.update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldResource, f.focus)

	f.update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldName, f.focus)
}

func TestGoalForm_BadHours(t *testing.T) {
	f := newGoalForm()
	f.name.SetValue("Docker")
	f.hours.SetValue("lots")

	_, err := f.buildRequest()
	assert.Error(t, err)
}

func TestUpdateForm_PrefillsFromGoal(t *testing.T) {
	g := mkGoal(7, "Terraform", goal.StatusInProgress, 3.5, time.Now())
	g.Notes = "module basics"
	f := newUpdateForm(g)

	assert.Equal(t, int64(7), f.goalID)
	assert.Equal(t, "3.5", f.hours.Value())
	assert.Equal(t, "module basics", f.notes.Value())
	assert.Equal(t, goal.StatusInProgress, goal.Statuses[f.statusIdx])
}

func TestUpdateForm_BuildRequest(t *testing.T) {
	g := mkGoal(7, "Terraform", goal.StatusStarted, 2, time.Now())
	f := newUpdateForm(g)
	f.statusIdx = 2
	f.hours.SetValue("10")

	req, err := f.buildRequest()
	require.NoError(t, err)

	require.NotNil(t, req.ProgressStatus)
	assert.Equal(t, goal.StatusCompleted, *req.ProgressStatus)
	require.NotNil(t, req.HoursSpent)
	assert.Equal(t, 10.0, *req.HoursSpent)
	require.NotNil(t, req.DifficultyRating)
	assert.Equal(t, 3, *req.DifficultyRating)
}
