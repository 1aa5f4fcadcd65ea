// Package cli implements the advent command-line interface.
//
// The CLI solves puzzle days through a [pipeline.Runner], caching answers
// under the user cache directory, and offers a few helpers around the
// puzzles: listing the registered days, picking one interactively, and
// drawing the page ordering rules of a print queue input.
//
// # Commands
//
//   - run: Solve one or more days (all registered days by default)
//   - list: Show the registered days
//   - pick: Choose a day interactively and solve it
//   - rules: Render a print queue rule graph as DOT or SVG
//   - cache: Inspect or clear the answer cache
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Every
// invocation tags its log lines with a run id, and the logger travels
// through context.Context to the commands.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/advent/pkg/buildinfo"
	"github.com/matzehuels/advent/pkg/cache"
	"github.com/matzehuels/advent/pkg/config"
	"github.com/matzehuels/advent/pkg/days"
	"github.com/matzehuels/advent/pkg/observability"
	"github.com/matzehuels/advent/pkg/pipeline"
	"github.com/matzehuels/advent/pkg/puzzle"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "advent"

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
	Logger   *log.Logger
	Config   config.Config
	Registry *puzzle.Registry

	out, errOut io.Writer

	configPath string
	verbose    bool

	// cacheDir overrides config.CacheDir, mainly for tests.
	cacheDir string
	// interactive enables the spinner on errOut.
	interactive bool
}

// New creates a CLI writing command output to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(errOut, level),
		Config:   config.Default(),
		Registry: days.Registry(),
		out:      out,
		errOut:   errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// SetInteractive enables terminal-only output such as the spinner.
func (c *CLI) SetInteractive(v bool) {
	c.interactive = v
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Advent solves daily programming puzzles",
		Long:          `Advent runs the registered daily puzzle solvers against your puzzle inputs, caching answers so repeated runs are instant.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/advent/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.rulesCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup applies global flags before any command runs.
func (c *CLI) setup(cmd *cobra.Command) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg

	logger := c.Logger.With("run", uuid.NewString()[:8])
	observability.SetSolveHooks(logHooks{logger})
	observability.SetCacheHooks(logHooks{logger})
	cmd.SetContext(withLogger(cmd.Context(), logger))

	logger.Debug("loaded config", "input_dir", cfg.InputDir, "cache", cfg.Cache, "format", cfg.Format)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(logger *log.Logger, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(noCache || !c.Config.Cache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.CacheScope())
	return pipeline.NewRunner(ch, keyer, logger), nil
}

func (c *CLI) newCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := c.resolveCacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return fc, nil
}

func (c *CLI) resolveCacheDir() (string, error) {
	if c.cacheDir != "" {
		return c.cacheDir, nil
	}
	return config.CacheDir()
}
