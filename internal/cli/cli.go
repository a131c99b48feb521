// Package cli implements the graphedit command-line interface.
package cli

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphedit/pkg/buildinfo"
	"github.com/matzehuels/graphedit/pkg/config"
	"github.com/matzehuels/graphedit/pkg/graph"
	gio "github.com/matzehuels/graphedit/pkg/io"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "graphedit"

	// defaultMoveStep is the distance the edit session moves vertices per key press.
	defaultMoveStep = 10
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger and the built-in
// configuration. The config file is read when a command runs.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Graphedit edits and exports vertex/edge drawings",
		Long:         `Graphedit is a CLI tool for editing graph drawings: style and move vertices with undo/redo, derive values and colors, paste copies, and export to XML, JSON, DOT or SVG.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphedit/config.toml)")

	// Register all subcommands
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.valueCommand())
	root.AddCommand(c.colorCommand())
	root.AddCommand(c.pasteCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the config file named by --config, or the default path.
func (c *CLI) loadConfig() error {
	path, err := c.resolveConfigPath()
	if err != nil {
		c.Logger.Debug("no config path", "error", err)
		c.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.Logger.Debug("config loaded", "path", path)
	c.cfg = cfg
	return nil
}

func (c *CLI) resolveConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	return config.Path()
}

// =============================================================================
// Graph Files
// =============================================================================

// loadGraph imports a JSON graph, filling missing attributes from the
// configured defaults.
func (c *CLI) loadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	g, err := gio.ImportJSON(path, graph.WithDefaults(c.cfg.Defaults.Graph()))
	if err != nil {
		return nil, err
	}
	if g.Name() == "" {
		g.SetName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	prog.debug("Loaded " + path)
	return g, nil
}

// saveGraph writes g as JSON to output, or back to input when output is empty.
func saveGraph(g *graph.Graph, input, output string) (string, error) {
	if output == "" {
		output = input
	}
	return output, gio.ExportJSON(g, output)
}

// outputPath derives an output path from input by replacing its extension.
func outputPath(input, format string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}
