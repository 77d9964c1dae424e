package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/skillstack/internal/collection"
	"github.com/fyrsmithlabs/skillstack/internal/goal"
	"github.com/fyrsmithlabs/skillstack/internal/goalstore"
	"github.com/fyrsmithlabs/skillstack/internal/views"
)

// viewID identifies one of the five top-level views.
type viewID int

const (
	viewHome viewID = iota
	viewDashboard
	viewSkills
	viewTimeline
	viewInsights
)

func (v viewID) title() string {
	switch v {
	case viewHome:
		return "Home"
	case viewDashboard:
		return "Dashboard"
	case viewSkills:
		return "My Skills"
	case viewTimeline:
		return "Timeline"
	case viewInsights:
		return "AI Insights"
	}
	return "Unknown"
}

// goalsMsg carries a fresh collection snapshot from GoalStore. seq ties it
// to the refresh that requested it.
type goalsMsg struct {
	seq   uint64
	goals []goal.Goal
}

// refreshErrMsg reports a failed refresh.
type refreshErrMsg struct {
	seq uint64
	err error
}

// statsMsg carries dashboard statistics for the snapshot tagged seq.
type statsMsg struct {
	seq   uint64
	stats views.DashboardStats
}

// mutationMsg reports the outcome of an add, update or delete.
type mutationMsg struct {
	verb  string
	err   error
	added bool
}

// Options configures the TUI controller.
type Options struct {
	// RequestTimeout bounds every GoalStore call issued by the UI.
	RequestTimeout time.Duration
	// PageSize caps how many rows the skills view renders before eliding.
	PageSize int
}

// Model is the top-level bubbletea model. It owns the goal collection, the
// active view, the filter and cursor state, and the in-flight refresh
// bookkeeping.
type Model struct {
	store  *goalstore.Client
	logger *zap.Logger
	col    *collection.Collection

	timeout  time.Duration
	pageSize int

	view     viewID
	width    int
	height   int
	quitting bool

	// loading is true from the moment a refresh is issued until its
	// response (or a newer one) lands.
	loading bool

	// refreshSeq is the newest refresh issued; appliedSeq the newest
	// applied. Responses at or below appliedSeq are stale and dropped.
	refreshSeq uint64
	appliedSeq uint64

	filter string
	cursor int

	stats    *views.DashboardStats
	statsSeq uint64

	form *goalForm
	edit *updateForm

	spin          spinner.Model
	completionBar progress.Model

	statusLine string
	loadErr    error
}

// New builds the controller. The first refresh is issued by Init.
func New(store *goalstore.Client, logger *zap.Logger, opts Options) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return Model{
		store:         store,
		logger:        logger,
		col:           collection.New(),
		timeout:       opts.RequestTimeout,
		pageSize:      opts.PageSize,
		view:          viewHome,
		loading:       true,
		refreshSeq:    1,
		filter:        views.FilterAll,
		spin:          sp,
		completionBar: progress.New(progress.WithGradient("#7D56F4", "#04B575"), progress.WithWidth(30)),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spin.Tick,
		fetchGoals(m.store, m.timeout, m.refreshSeq),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case goalsMsg:
		if msg.seq <= m.appliedSeq {
			m.logger.Debug("dropping stale refresh",
				zap.Uint64("seq", msg.seq),
				zap.Uint64("applied", m.appliedSeq))
			return m, nil
		}
		m.col.ReplaceAll(msg.goals)
		m.appliedSeq = msg.seq
		m.loadErr = nil
		if msg.seq == m.refreshSeq {
			m.loading = false
		}
		m.clampCursor()
		m.logger.Debug("collection refreshed",
			zap.Uint64("seq", msg.seq),
			zap.Int("goals", len(msg.goals)))
		return m, fetchStats(m.store, m.timeout, msg.seq, msg.goals)

	case refreshErrMsg:
		if msg.seq == m.refreshSeq {
			m.loading = false
		}
		if msg.seq > m.appliedSeq {
			m.loadErr = msg.err
		}
		m.logger.Warn("refresh failed", zap.Uint64("seq", msg.seq), zap.Error(msg.err))
		return m, nil

	case statsMsg:
		// Stats for a superseded snapshot would misrepresent the list
		// below them.
		if msg.seq >= m.statsSeq {
			stats := msg.stats
			m.stats = &stats
			m.statsSeq = msg.seq
		}
		return m, nil

	case mutationMsg:
		if msg.err != nil {
			m.statusLine = "✗ could not " + msg.verb + " skill: " + msg.err.Error()
			m.logger.Warn("mutation failed", zap.String("verb", msg.verb), zap.Error(msg.err))
			return m, nil
		}
		m.statusLine = "✓ skill " + pastTense(msg.verb)
		if msg.added {
			m.form = nil
			m.view = viewSkills
		}
		m.edit = nil
		return m, m.refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// refresh issues a new sequence-numbered load. Older in-flight responses
// become stale the moment this increments refreshSeq.
func (m *Model) refresh() tea.Cmd {
	m.refreshSeq++
	m.loading = true
	return fetchGoals(m.store, m.timeout, m.refreshSeq)
}

func (m *Model) clampCursor() {
	n := len(m.visibleGoals())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// visibleGoals is the collection filtered by the active status filter.
func (m Model) visibleGoals() []goal.Goal {
	return views.FilterByStatus(m.col.Snapshot(), m.filter)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Forms capture all keys except their own exits.
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.edit != nil {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "h", "1":
		m.view = viewHome
	case "d", "2":
		m.view = viewDashboard
	case "s", "3":
		m.view = viewSkills
	case "t", "4":
		m.view = viewTimeline
	case "i", "5":
		m.view = viewInsights
	case "a":
		m.form = newGoalForm()
	case "r":
		m.statusLine = ""
		return m, m.refresh()
	case "f":
		if m.view == viewSkills {
			m.filter = nextFilter(m.filter)
			m.cursor = 0
		}
	case "up", "k":
		if m.view == viewSkills && m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.view == viewSkills && m.cursor < len(m.visibleGoals())-1 {
			m.cursor++
		}
	case "enter", "e":
		if m.view == viewSkills {
			if visible := m.visibleGoals(); m.cursor < len(visible) {
				m.edit = newUpdateForm(visible[m.cursor])
			}
		}
	case "x":
		if m.view == viewSkills {
			if visible := m.visibleGoals(); m.cursor < len(visible) {
				g := visible[m.cursor]
				m.statusLine = ""
				m.logger.Info("deleting goal", zap.Int64("id", g.ID), zap.String("skill", g.SkillName))
				return m, deleteGoal(m.store, m.timeout, g.ID)
			}
		}
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.form = nil
		return m, nil
	case "enter":
		req, err := m.form.buildRequest()
		if err != nil {
			m.form.errMsg = err.Error()
			return m, nil
		}
		m.logger.Info("adding goal", zap.String("skill", req.SkillName))
		return m, createGoal(m.store, m.timeout, req)
	}
	return m, m.form.update(msg)
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		m.edit = nil
		return m, nil
	case "enter":
		req, err := m.edit.buildRequest()
		if err != nil {
			m.edit.errMsg = err.Error()
			return m, nil
		}
		m.logger.Info("updating goal", zap.Int64("id", m.edit.goalID))
		return m, updateGoal(m.store, m.timeout, m.edit.goalID, req)
	}
	return m, m.edit.update(msg)
}

// nextFilter steps to the next entry of the filter cycle.
func nextFilter(current string) string {
	for i, f := range views.FilterOrder {
		if f == current {
			return views.FilterOrder[(i+1)%len(views.FilterOrder)]
		}
	}
	return views.FilterAll
}

func pastTense(verb string) string {
	switch verb {
	case "add":
		return "added"
	case "update":
		return "updated"
	case "delete":
		return "deleted"
	}
	return verb
}

// currentStats returns server-backed stats when available, otherwise a
// local computation over the current snapshot.
func (m Model) currentStats() views.DashboardStats {
	if m.stats != nil {
		return *m.stats
	}
	return views.ComputeDashboardStats(m.col.Snapshot())
}
