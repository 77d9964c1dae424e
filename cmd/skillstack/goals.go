package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/skillstack/internal/config"
	"github.com/fyrsmithlabs/skillstack/internal/goal"
	"github.com/fyrsmithlabs/skillstack/internal/goalstore"
	"github.com/fyrsmithlabs/skillstack/internal/logging"
	"github.com/fyrsmithlabs/skillstack/internal/views"
)

var (
	listStatus string

	addType       string
	addPlatform   string
	addStatus     string
	addHours      float64
	addNotes      string
	addDifficulty int

	updStatus     string
	updHours      float64
	updNotes      string
	updDifficulty int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked skills",
	Long: `List tracked skills, optionally filtered by progress status.

Examples:
  # List everything
  skillstack list

  # Only completed skills
  skillstack list --status completed`,
	RunE: runList,
}

var addCmd = &cobra.Command{
	Use:   "add <skill name>",
	Short: "Add a new skill",
	Long: `Add a new skill to track.

Examples:
  # Add with defaults (course, started, difficulty 1)
  skillstack add "Docker Fundamentals"

  # Add with details
  skillstack add "Rust Ownership" --type video --platform YouTube --hours 2.5 --difficulty 4`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill",
	Long: `Update one or more fields of a tracked skill.

Examples:
  # Mark a skill completed
  skillstack update 3 --status completed

  # Log more hours
  skillstack update 3 --hours 12.5`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a skill",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard statistics",
	RunE:  runStats,
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", views.FilterAll, "filter by status: all, started, in-progress, completed")

	addCmd.Flags().StringVar(&addType, "type", string(goal.ResourceCourse), "resource type: course, video, article, book, tutorial, certification")
	addCmd.Flags().StringVar(&addPlatform, "platform", "", "learning platform, e.g. YouTube")
	addCmd.Flags().StringVar(&addStatus, "status", string(goal.StatusStarted), "progress status: started, in-progress, completed")
	addCmd.Flags().Float64Var(&addHours, "hours", 0, "hours already spent")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
	addCmd.Flags().IntVar(&addDifficulty, "difficulty", 1, "difficulty rating 1-5")

	updateCmd.Flags().StringVar(&updStatus, "status", "", "new progress status")
	updateCmd.Flags().Float64Var(&updHours, "hours", 0, "new hours total")
	updateCmd.Flags().StringVar(&updNotes, "notes", "", "new notes")
	updateCmd.Flags().IntVar(&updDifficulty, "difficulty", 0, "new difficulty rating 1-5")
}

// cliSetup builds the config, logger and store shared by the one-shot
// commands. Logs go to stderr unless the config names a file.
func cliSetup() (*config.Config, *goalstore.Client, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closeLogger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, newStore(cfg, logger), closeLogger, nil
}

func runList(cmd *cobra.Command, args []string) error {
	if listStatus != views.FilterAll && !goal.Status(listStatus).Valid() {
		return fmt.Errorf("unknown status %q", listStatus)
	}

	_, store, closeLogger, err := cliSetup()
	if err != nil {
		return err
	}
	defer closeLogger()

	goals, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	goals = views.FilterByStatus(goals, listStatus)
	if len(goals) == 0 {
		fmt.Println("no skills found")
		return nil
	}
	for _, g := range goals {
		fmt.Printf("%4d  %s %-30s %s %-12s %-13s %6s  %s\n",
			g.ID,
			views.StatusIcon(g.ProgressStatus),
			g.SkillName,
			views.PlatformIcon(g.Platform),
			g.Platform,
			g.ProgressStatus.Label(),
			views.FormatHours(g.HoursSpent),
			views.FormatStars(g.DifficultyRating))
	}
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	req := goal.CreateRequest{
		SkillName:        args[0],
		ResourceType:     goal.ResourceType(addType),
		Platform:         addPlatform,
		ProgressStatus:   goal.Status(addStatus),
		HoursSpent:       addHours,
		Notes:            addNotes,
		DifficultyRating: addDifficulty,
	}
	if err := req.Validate(); err != nil {
		return err
	}

	_, store, closeLogger, err := cliSetup()
	if err != nil {
		return err
	}
	defer closeLogger()

	created, err := store.Create(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Printf("added skill %d: %s\n", created.ID, created.SkillName)
	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	var req goal.UpdateRequest
	if cmd.Flags().Changed("status") {
		status := goal.Status(updStatus)
		req.ProgressStatus = &status
	}
	if cmd.Flags().Changed("hours") {
		req.HoursSpent = &updHours
	}
	if cmd.Flags().Changed("notes") {
		req.Notes = &updNotes
	}
	if cmd.Flags().Changed("difficulty") {
		req.DifficultyRating = &updDifficulty
	}
	if req.IsEmpty() {
		return fmt.Errorf("nothing to update, pass at least one of --status, --hours, --notes, --difficulty")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	_, store, closeLogger, err := cliSetup()
	if err != nil {
		return err
	}
	defer closeLogger()

	updated, err := store.Update(cmd.Context(), id, req)
	if err != nil {
		if goalstore.IsNotFound(err) {
			return fmt.Errorf("no skill with id %d", id)
		}
		return err
	}
	fmt.Printf("updated skill %d: %s (%s)\n", updated.ID, updated.SkillName, updated.ProgressStatus.Label())
	return nil
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[0])
	}

	_, store, closeLogger, err := cliSetup()
	if err != nil {
		return err
	}
	defer closeLogger()

	if err := store.Delete(cmd.Context(), id); err != nil {
		if goalstore.IsNotFound(err) {
			return fmt.Errorf("no skill with id %d", id)
		}
		return err
	}
	fmt.Printf("deleted skill %d\n", id)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	_, store, closeLogger, err := cliSetup()
	if err != nil {
		return err
	}
	defer closeLogger()

	// Same fallback the UI uses: prefer the server aggregate, compute
	// locally when it is unavailable.
	goals, err := store.List(cmd.Context())
	if err != nil {
		return err
	}
	stats := views.ComputeDashboardStats(goals)
	if summary, derr := store.Dashboard(cmd.Context()); derr == nil {
		stats.Total = *summary.TotalGoals
		stats.Completed = summary.CompletedGoals
		stats.InProgress = summary.InProgressGoals
		stats.TotalHours = int(math.Round(summary.TotalHours))
		stats.CompletionRatePct = int(math.Round(summary.CompletionRate))
		stats.CategoryBreakdown = stats.CategoryBreakdown[:0]
		for _, c := range summary.CategoryBreakdown {
			stats.CategoryBreakdown = append(stats.CategoryBreakdown, views.CategoryCount{Name: c.Name, Count: c.Count})
		}
	}

	fmt.Printf("Total skills:     %d\n", stats.Total)
	fmt.Printf("Completed:        %d\n", stats.Completed)
	fmt.Printf("In progress:      %d\n", stats.InProgress)
	fmt.Printf("Hours learned:    %d\n", stats.TotalHours)
	fmt.Printf("Completion rate:  %d%%\n", stats.CompletionRatePct)
	if len(stats.CategoryBreakdown) > 0 {
		fmt.Println("By category:")
		for _, c := range stats.CategoryBreakdown {
			fmt.Printf("  %-15s %d\n", c.Name, c.Count)
		}
	}
	return nil
}
