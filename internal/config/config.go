// Package config provides configuration loading for skillstack.
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Logging LoggingConfig `koanf:"logging"`
	UI      UIConfig      `koanf:"ui"`
}

// ServerConfig locates the GoalStore service.
type ServerConfig struct {
	// BaseURL is the GoalStore base URL, e.g. http://localhost:8000.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is "json" or "console".
	Format string `koanf:"format"`

	// File is the log sink path. Empty means stderr. The TUI always
	// writes to a file because it owns the terminal.
	File string `koanf:"file"`
}

// UIConfig tunes the terminal UI.
type UIConfig struct {
	// PageSize caps how many rows the skills list renders at once.
	PageSize int `koanf:"page_size"`
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid server.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.base_url must be http or https, got %q", c.Server.BaseURL)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be \"json\" or \"console\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	if c.UI.PageSize <= 0 {
		return fmt.Errorf("ui.page_size must be positive")
	}
	return nil
}
