package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/skillstack/internal/config"
	"github.com/fyrsmithlabs/skillstack/internal/logging"
	"github.com/fyrsmithlabs/skillstack/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive terminal UI",
	Long: `Open the interactive terminal UI.

Examples:
  # Open the UI against the configured server
  skillstack ui

  # Point at a different GoalStore
  skillstack ui --server http://localhost:8080`,
	RunE: runUI,
}

func runUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs always go to a file here.
	logFile := cfg.Logging.File
	if logFile == "" {
		if err := config.EnsureConfigDir(); err != nil {
			return err
		}
		logFile, err = config.DefaultLogPath()
		if err != nil {
			return err
		}
	}

	logger, closeLogger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   logFile,
		Fields: map[string]string{"run_id": uuid.NewString()},
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closeLogger()

	store := newStore(cfg, logger)
	model := tui.New(store, logger, tui.Options{
		RequestTimeout: cfg.Server.Timeout,
		PageSize:       cfg.UI.PageSize,
	})

	logger.Info("starting ui", zap.String("server", cfg.Server.BaseURL))
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("ui error: %w", err)
	}
	return nil
}
