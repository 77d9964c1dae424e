package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
)

// Form field indexes. Text fields and cyclers share one focus order so
// tab/shift+tab walk the whole form.
const (
	fieldName = iota
	fieldResource
	fieldPlatform
	fieldStatus
	fieldHours
	fieldDifficulty
	fieldNotes
	fieldCount
)

// goalForm collects input for a new goal. Enum fields cycle with left and
// right; the rest are free text.
type goalForm struct {
	name     textinput.Model
	platform textinput.Model
	hours    textinput.Model
	notes    textinput.Model

	resourceIdx int
	statusIdx   int
	difficulty  int

	focus  int
	errMsg string
}

func newGoalForm() *goalForm {
	f := &goalForm{difficulty: 1}

	f.name = textinput.New()
	f.name.Placeholder = "e.g. Docker Fundamentals"
	f.name.CharLimit = 120
	f.name.Width = 40
	f.name.Focus()

	f.platform = textinput.New()
	f.platform.Placeholder = "YouTube, Udemy, Coursera..."
	f.platform.CharLimit = 60
	f.platform.Width = 40
	f.platform.ShowSuggestions = true
	f.platform.SetSuggestions(goal.Platforms)

	f.hours = textinput.New()
	f.hours.Placeholder = "0"
	f.hours.CharLimit = 8
	f.hours.Width = 10

	f.notes = textinput.New()
	f.notes.Placeholder = "optional notes"
	f.notes.CharLimit = 240
	f.notes.Width = 40

	return f
}

// inputFor maps a focusable field to its text input, or nil for cyclers.
func (f *goalForm) inputFor(field int) *textinput.Model {
	switch field {
	case fieldName:
		return &f.name
	case fieldPlatform:
		return &f.platform
	case fieldHours:
		return &f.hours
	case fieldNotes:
		return &f.notes
	}
	return nil
}

func (f *goalForm) setFocus(field int) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := 0; i < fieldCount; i++ {
		in := f.inputFor(i)
		if in == nil {
			continue
		}
		if i == field {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (f *goalForm) next() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *goalForm) prev() tea.Cmd {
	return f.setFocus((f.focus + fieldCount - 1) % fieldCount)
}

// cycle moves an enum field by delta, wrapping around.
func (f *goalForm) cycle(delta int) {
	switch f.focus {
	case fieldResource:
		n := len(goal.ResourceTypes)
		f.resourceIdx = (f.resourceIdx + delta + n) % n
	case fieldStatus:
		n := len(goal.Statuses)
		f.statusIdx = (f.statusIdx + delta + n) % n
	case fieldDifficulty:
		f.difficulty += delta
		if f.difficulty < 1 {
			f.difficulty = 5
		}
		if f.difficulty > 5 {
			f.difficulty = 1
		}
	}
}

func (f *goalForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.next()
	case "shift+tab", "up":
		return f.prev()
	case "left":
		if f.inputFor(f.focus) == nil {
			f.cycle(-1)
			return nil
		}
	case "right":
		if f.inputFor(f.focus) == nil {
			f.cycle(1)
			return nil
		}
	}
	if in := f.inputFor(f.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

// buildRequest validates the form and produces a create request.
func (f *goalForm) buildRequest() (goal.CreateRequest, error) {
	hours := 0.0
	if raw := strings.TrimSpace(f.hours.Value()); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return goal.CreateRequest{}, fmt.Errorf("hours must be a number")
		}
		hours = parsed
	}

	req := goal.CreateRequest{
		SkillName:        strings.TrimSpace(f.name.Value()),
		ResourceType:     goal.ResourceTypes[f.resourceIdx],
		Platform:         strings.TrimSpace(f.platform.Value()),
		ProgressStatus:   goal.Statuses[f.statusIdx],
		HoursSpent:       hours,
		Notes:            strings.TrimSpace(f.notes.Value()),
		DifficultyRating: f.difficulty,
	}
	if err := req.Validate(); err != nil {
		return goal.CreateRequest{}, err
	}
	return req, nil
}

// Update form field indexes. Only the mutable subset of a goal is editable.
const (
	editStatus = iota
	editHours
	editDifficulty
	editNotes
	editFieldCount
)

// updateForm edits an existing goal's status, hours, difficulty and notes.
type updateForm struct {
	goalID    int64
	skillName string

	hours textinput.Model
	notes textinput.Model

	statusIdx  int
	difficulty int

	focus  int
	errMsg string
}

func newUpdateForm(g goal.Goal) *updateForm {
	f := &updateForm{
		goalID:     g.ID,
		skillName:  g.SkillName,
		difficulty: g.DifficultyRating,
	}
	for i, s := range goal.Statuses {
		if s == g.ProgressStatus {
			f.statusIdx = i
		}
	}
	if f.difficulty < 1 {
		f.difficulty = 1
	}

	f.hours = textinput.New()
	f.hours.CharLimit = 8
	f.hours.Width = 10
	f.hours.SetValue(strconv.FormatFloat(g.HoursSpent, 'f', -1, 64))

	f.notes = textinput.New()
	f.notes.CharLimit = 240
	f.notes.Width = 40
	f.notes.SetValue(g.Notes)

	return f
}

func (f *updateForm) inputFor(field int) *textinput.Model {
	switch field {
	case editHours:
		return &f.hours
	case editNotes:
		return &f.notes
	}
	return nil
}

func (f *updateForm) setFocus(field int) tea.Cmd {
	f.focus = field
	var cmd tea.Cmd
	for i := 0; i < editFieldCount; i++ {
		in := f.inputFor(i)
		if in == nil {
			continue
		}
		if i == field {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
	}
	return cmd
}

func (f *updateForm) cycle(delta int) {
	switch f.focus {
	case editStatus:
		n := len(goal.Statuses)
		f.statusIdx = (f.statusIdx + delta + n) % n
	case editDifficulty:
		f.difficulty += delta
		if f.difficulty < 1 {
			f.difficulty = 5
		}
		if f.difficulty > 5 {
			f.difficulty = 1
		}
	}
}

func (f *updateForm) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus((f.focus + 1) % editFieldCount)
	case "shift+tab", "up":
		return f.setFocus((f.focus + editFieldCount - 1) % editFieldCount)
	case "left":
		if f.inputFor(f.focus) == nil {
			f.cycle(-1)
			return nil
		}
	case "right":
		if f.inputFor(f.focus) == nil {
			f.cycle(1)
			return nil
		}
	}
	if in := f.inputFor(f.focus); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (f *updateForm) buildRequest() (goal.UpdateRequest, error) {
	raw := strings.TrimSpace(f.hours.Value())
	hours, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return goal.UpdateRequest{}, fmt.Errorf("hours must be a number")
	}

	status := goal.Statuses[f.statusIdx]
	notes := f.notes.Value()
	difficulty := f.difficulty
	req := goal.UpdateRequest{
		ProgressStatus:   &status,
		HoursSpent:       &hours,
		DifficultyRating: &difficulty,
		Notes:            &notes,
	}
	if err := req.Validate(); err != nil {
		return goal.UpdateRequest{}, err
	}
	return req, nil
}
