package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/sparkline"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/fyrsmithlabs/skillstack/internal/goal"
	"github.com/fyrsmithlabs/skillstack/internal/views"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Underline(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginRight(1)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginTop(1)

	dateHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F25D94"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F87"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	formLabelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(lipgloss.Color("240"))

	formFocusStyle = lipgloss.NewStyle().
			Width(14).
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))
)

var navOrder = []viewID{viewHome, viewDashboard, viewSkills, viewTimeline, viewInsights}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch {
	case m.form != nil:
		b.WriteString(m.renderAddForm())
	case m.edit != nil:
		b.WriteString(m.renderEditForm())
	default:
		switch m.view {
		case viewHome:
			b.WriteString(m.renderHome())
		case viewDashboard:
			b.WriteString(m.renderDashboard())
		case viewSkills:
			b.WriteString(m.renderSkills())
		case viewTimeline:
			b.WriteString(m.renderTimeline())
		case viewInsights:
			b.WriteString(m.renderInsights())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	var tabs []string
	for i, v := range navOrder {
		label := fmt.Sprintf("%d %s", i+1, v.title())
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	header := titleStyle.Render("🎯 SkillStack") + "  " + strings.Join(tabs, "")
	if m.loading {
		header += "  " + m.spin.View() + dimStyle.Render("syncing")
	}
	return header
}

func (m Model) renderHome() string {
	stats := m.currentStats()

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Track your learning journey"))
	b.WriteString("\n\n")
	b.WriteString("  Capture the skills you are building, the hours you put in,\n")
	b.WriteString("  and watch your progress add up.\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Skills", fmt.Sprintf("%d", stats.Total)),
		statCard("Completed", fmt.Sprintf("%d", stats.Completed)),
		statCard("Hours", fmt.Sprintf("%d", stats.TotalHours)),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  press a to add a skill, 3 to browse, q to quit"))
	return b.String()
}

func statCard(label, value string) string {
	return cardStyle.Render(cardValueStyle.Render(value) + "\n" + cardLabelStyle.Render(label))
}

func (m Model) renderDashboard() string {
	stats := m.currentStats()

	var b strings.Builder
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Skills", fmt.Sprintf("%d", stats.Total)),
		statCard("Completed", fmt.Sprintf("%d", stats.Completed)),
		statCard("In Progress", fmt.Sprintf("%d", stats.InProgress)),
		statCard("Hours Learned", fmt.Sprintf("%d", stats.TotalHours)),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  Completion  %s %d%%\n",
		m.completionBar.ViewAs(float64(stats.CompletionRatePct)/100), stats.CompletionRatePct))

	if len(stats.CategoryBreakdown) > 0 {
		b.WriteString(sectionStyle.Render("  By Category"))
		b.WriteString("\n")
		for _, c := range stats.CategoryBreakdown {
			b.WriteString(fmt.Sprintf("    %-14s %s\n", c.Name, strings.Repeat("█", c.Count)))
		}
	}

	b.WriteString(sectionStyle.Render("  Recent Skills"))
	b.WriteString("\n")
	if len(stats.Recent) == 0 {
		b.WriteString(dimStyle.Render("    nothing yet, press a to add your first skill"))
		b.WriteString("\n")
	}
	for _, g := range stats.Recent {
		b.WriteString(fmt.Sprintf("    %s %s %s\n",
			views.StatusIcon(g.ProgressStatus),
			g.SkillName,
			dimStyle.Render(fmt.Sprintf("%s %s · %s", views.PlatformIcon(g.Platform), g.Platform, views.FormatHours(g.HoursSpent)))))
	}
	return b.String()
}

func (m Model) renderSkills() string {
	all := m.col.Snapshot()
	visible := m.visibleGoals()

	var tabs []string
	for _, f := range views.FilterOrder {
		label := fmt.Sprintf("%s (%d)", filterLabel(f), views.CountByStatus(all, f))
		if f == m.filter {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}

	var b strings.Builder
	b.WriteString("  " + strings.Join(tabs, " "))
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("  no skills match this filter"))
		b.WriteString("\n")
		return b.String()
	}

	// Slide the page window so the cursor row is always rendered.
	shown := visible
	offset := 0
	if len(visible) > m.pageSize {
		if m.cursor >= m.pageSize {
			offset = m.cursor - m.pageSize + 1
		}
		shown = visible[offset : offset+m.pageSize]
	}
	if offset > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d earlier", offset)))
		b.WriteString("\n")
	}
	for i, g := range shown {
		marker := "  "
		if i+offset == m.cursor {
			marker = cursorStyle.Render("› ")
		}
		bar := miniProgress(views.ProgressPercent(g.ProgressStatus))
		b.WriteString(fmt.Sprintf("%s%s %-28s %s %-12s %s %s %s\n",
			marker,
			views.StatusIcon(g.ProgressStatus),
			g.SkillName,
			views.PlatformIcon(g.Platform),
			g.Platform,
			bar,
			views.FormatStars(g.DifficultyRating),
			views.FormatHours(g.HoursSpent)))
		if i+offset == m.cursor && g.Notes != "" {
			b.WriteString(dimStyle.Render("      " + g.Notes))
			b.WriteString("\n")
		}
	}
	if rest := len(visible) - offset - len(shown); rest > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … and %d more", rest)))
		b.WriteString("\n")
	}
	return b.String()
}

func filterLabel(f string) string {
	switch goal.Status(f) {
	case goal.StatusStarted:
		return "Started"
	case goal.StatusInProgress:
		return "In Progress"
	case goal.StatusCompleted:
		return "Completed"
	}
	return "All"
}

// miniProgress renders a fixed-width bar for one skill row.
func miniProgress(pct int) string {
	bar := progress.New(progress.WithSolidFill("#04B575"), progress.WithWidth(10), progress.WithoutPercentage())
	return bar.ViewAs(float64(pct) / 100)
}

func (m Model) renderTimeline() string {
	buckets := views.GroupByCreationDate(m.col.Snapshot())
	if len(buckets) == 0 {
		return dimStyle.Render("  no skills yet, press a to add one") + "\n"
	}

	var b strings.Builder
	for _, bucket := range buckets {
		b.WriteString("  " + dateHeaderStyle.Render(views.FormatBucketDate(bucket.Date)))
		b.WriteString(dimStyle.Render("  " + views.FormatSkillCount(len(bucket.Goals))))
		b.WriteString("\n")
		for _, g := range bucket.Goals {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				views.StatusIcon(g.ProgressStatus),
				g.SkillName,
				dimStyle.Render(fmt.Sprintf("%s %s · %s", views.PlatformIcon(g.Platform), g.Platform, g.ProgressStatus.Label()))))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderInsights() string {
	goals := m.col.Snapshot()
	insights := views.ComputeInsights(goals)

	var b strings.Builder
	b.WriteString(sectionStyle.Render("  Recommended Next Steps"))
	b.WriteString("\n")
	for _, rec := range insights.Recommendations {
		b.WriteString("    💡 " + rec + "\n")
	}

	b.WriteString(sectionStyle.Render("  Learning Analytics"))
	b.WriteString("\n")
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Total Hours", views.FormatHours(insights.TotalHours)),
		statCard("Avg Difficulty", fmt.Sprintf("%.1f", insights.AvgDifficulty)),
		statCard("Top Category", insights.MostActiveCategory),
		statCard("Streak Days", fmt.Sprintf("%d", insights.StreakDays)),
	)
	b.WriteString(cards)
	b.WriteString("\n")

	if chart := hoursSparkline(goals); chart != "" {
		b.WriteString(sectionStyle.Render("  Hours per Day"))
		b.WriteString("\n")
		b.WriteString(chart)
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("  Study Pattern"))
	b.WriteString("\n    ")
	if insights.AvgDifficulty > 3 {
		b.WriteString("You gravitate toward challenging material. Ambitious pace.")
	} else {
		b.WriteString("You favor moderate difficulty. Steady progress wins.")
	}
	b.WriteString("\n")
	return b.String()
}

// hoursSparkline charts hours spent per creation day, oldest to newest.
func hoursSparkline(goals []goal.Goal) string {
	buckets := views.GroupByCreationDate(goals)
	if len(buckets) < 2 {
		return ""
	}

	sl := sparkline.New(len(buckets)*2, 4)
	for i := len(buckets) - 1; i >= 0; i-- {
		total := 0.0
		for _, g := range buckets[i].Goals {
			total += g.HoursSpent
		}
		sl.Push(total)
	}

	var out strings.Builder
	for _, line := range strings.Split(sl.View(), "\n") {
		out.WriteString("    " + line + "\n")
	}
	return out.String()
}

func (m Model) renderAddForm() string {
	f := m.form

	var b strings.Builder
	b.WriteString(sectionStyle.Render("  Add Skill"))
	b.WriteString("\n\n")
	b.WriteString(formRow("Skill Name", f.name.View(), f.focus == fieldName))
	b.WriteString(formRow("Type", cyclerView(string(goal.ResourceTypes[f.resourceIdx])), f.focus == fieldResource))
	b.WriteString(formRow("Platform", f.platform.View(), f.focus == fieldPlatform))
	b.WriteString(formRow("Status", cyclerView(goal.Statuses[f.statusIdx].Label()), f.focus == fieldStatus))
	b.WriteString(formRow("Hours Spent", f.hours.View(), f.focus == fieldHours))
	b.WriteString(formRow("Difficulty", cyclerView(views.FormatStars(f.difficulty)), f.focus == fieldDifficulty))
	b.WriteString(formRow("Notes", f.notes.View(), f.focus == fieldNotes))

	if f.errMsg != "" {
		b.WriteString("\n  " + errStyle.Render("✗ "+f.errMsg) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("  tab next · ←/→ cycle · enter save · esc cancel"))
	return b.String()
}

func (m Model) renderEditForm() string {
	f := m.edit

	var b strings.Builder
	b.WriteString(sectionStyle.Render("  Edit " + f.skillName))
	b.WriteString("\n\n")
	b.WriteString(formRow("Status", cyclerView(goal.Statuses[f.statusIdx].Label()), f.focus == editStatus))
	b.WriteString(formRow("Hours Spent", f.hours.View(), f.focus == editHours))
	b.WriteString(formRow("Difficulty", cyclerView(views.FormatStars(f.difficulty)), f.focus == editDifficulty))
	b.WriteString(formRow("Notes", f.notes.View(), f.focus == editNotes))

	if f.errMsg != "" {
		b.WriteString("\n  " + errStyle.Render("✗ "+f.errMsg) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("  tab next · ←/→ cycle · enter save · esc cancel"))
	return b.String()
}

func formRow(label, value string, focused bool) string {
	style := formLabelStyle
	if focused {
		style = formFocusStyle
	}
	return "  " + style.Render(label) + " " + value + "\n"
}

func cyclerView(value string) string {
	return dimStyle.Render("‹ ") + value + dimStyle.Render(" ›")
}

func (m Model) renderFooter() string {
	var parts []string
	if m.loadErr != nil {
		parts = append(parts, errStyle.Render("⚠ cannot reach GoalStore: "+m.loadErr.Error()))
	}
	if m.statusLine != "" {
		if strings.HasPrefix(m.statusLine, "✗") {
			parts = append(parts, errStyle.Render(m.statusLine))
		} else {
			parts = append(parts, okStyle.Render(m.statusLine))
		}
	}

	help := "a add · r refresh · 1-5 views · q quit"
	if m.view == viewSkills {
		help = "↑/↓ move · f filter · enter edit · x delete · " + help
	}
	parts = append(parts, dimStyle.Render(help))
	return "  " + strings.Join(parts, "\n  ")
}
