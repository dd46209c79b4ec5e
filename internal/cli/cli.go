// Package cli implements the lumenplan command-line interface.
//
// This package provides commands for running lumen-method lighting
// calculations, inspecting utilization-factor tables, and serving the
// calculation as an HTTP API. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - calc: Run a full calculation and print the results table
//   - table: Inspect a utilization-factor CSV file
//   - serve: Expose the calculation as an HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voltexlighting/lumenplan/pkg/buildinfo"
	"github.com/voltexlighting/lumenplan/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "lumenplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger and the on-disk
// configuration, falling back to built-in defaults when no config file
// exists.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := LoadConfig(ConfigPath())
	if err != nil {
		c.Logger.Warn("ignoring unreadable config file", "path", ConfigPath(), "err", err)
		cfg = DefaultConfig()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Lumenplan sizes and arranges lighting fixtures for rectangular rooms",
		Long:         `Lumenplan is a lumen-method calculator: given room geometry, surface reflectances, a target illuminance, and a manufacturer utilization-factor table, it computes the required fixture count and proposes even- and odd-width ceiling layouts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.calcCommand())
	root.AddCommand(c.tableCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// ConfigPath returns the configuration file path using the XDG standard
// (~/.config/lumenplan/config.toml).
func ConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}
