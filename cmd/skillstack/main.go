// Package main implements the skillstack CLI, a client for the GoalStore
// HTTP server. The ui command opens the interactive terminal interface;
// the remaining commands are one-shot operations for scripts and quick
// checks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/skillstack/internal/config"
	"github.com/fyrsmithlabs/skillstack/internal/goalstore"
)

var (
	// configPath overrides the default config file location
	configPath string
	// serverURL overrides the configured GoalStore base URL
	serverURL string
	// logLevel overrides the configured log level
	logLevel string
	// version information
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skillstack",
	Short: "Track your learning goals from the terminal",
	Long: `skillstack is a client for a GoalStore server. It tracks the skills you
are learning, the platforms you learn them on, and the hours you put in.

Run it with no arguments to open the interactive UI, or use the
subcommands for one-shot operations.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUI(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/skillstack/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "GoalStore server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadConfig loads the config file, applies environment overrides, then
// flag overrides, and revalidates the result.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if serverURL != "" {
		cfg.Server.BaseURL = serverURL
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newStore(cfg *config.Config, logger *zap.Logger) *goalstore.Client {
	return goalstore.New(cfg.Server.BaseURL,
		goalstore.WithTimeout(cfg.Server.Timeout),
		goalstore.WithLogger(logger),
	)
}
