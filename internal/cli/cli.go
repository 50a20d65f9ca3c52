// Package cli implements the bricklayer command-line interface.
//
// The commands cover the whole generate → plan → render pipeline:
//
//   - layout: lay out a wall in one of the bond patterns
//   - plan: order the bricks of a wall with a build strategy
//   - render: draw a wall, optionally shaded by its plan
//   - graph: draw the support graph of a wall
//   - compare: plan a wall with every strategy side by side
//   - view: step through a plan stride by stride in the terminal
//   - serve: expose the pipeline over HTTP
//
// Commands that take a layout file generate one from the pattern flags
// when the file is omitted. Settings are read from the TOML file given by
// --config (or the per-user config file) and overridden by flags.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/buildinfo"
	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for binaries and display.
const appName = "bricklayer"

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

	// configPath is set by the --config flag. Empty means the per-user
	// config file, if present.
	configPath string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Bricklayer lays out brick walls and plans how to build them",
		Long: `Bricklayer generates brick wall layouts in classic bond patterns and plans
the order in which a builder on a movable platform places the bricks.`,
		Version:      buildinfo.Info().Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			pipeline.InstallLogHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/bricklayer/config.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Options & Runner
// =============================================================================

func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// options loads the config file into fresh options. Flags are applied on
// top by the caller.
func (c *CLI) options() (pipeline.Options, error) {
	var opts pipeline.Options
	if c.configPath != "" {
		if err := pipeline.LoadConfig(c.configPath, &opts); err != nil {
			return opts, err
		}
		c.Logger.Debug("loaded config", "path", c.configPath)
	} else if ok, err := pipeline.LoadDefaultConfig(&opts); err != nil {
		return opts, err
	} else if ok {
		c.Logger.Debug("loaded default config")
	}
	opts.Logger = c.Logger
	return opts, nil
}

// generateFlags are the flags that select a wall to generate.
type generateFlags struct {
	pattern string
	width   float64
	height  float64
	seed    uint64
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.pattern, "pattern", "p", pipeline.DefaultPattern, "bond pattern: stretcher, english-cross, flemish, wild")
	cmd.Flags().Float64Var(&f.width, "width", pipeline.DefaultWidth, "wall width in mm")
	cmd.Flags().Float64Var(&f.height, "height", pipeline.DefaultHeight, "wall height in mm")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for the wild bond (0 picks one)")
	_ = cmd.RegisterFlagCompletionFunc("pattern", cobra.FixedCompletions(bond.PatternNames(), cobra.ShellCompDirectiveNoFileComp))
}

// apply copies the flags the user set onto opts.
func (f *generateFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	if cmd.Flags().Changed("pattern") {
		opts.Pattern = f.pattern
	}
	if cmd.Flags().Changed("width") {
		opts.Width = f.width
	}
	if cmd.Flags().Changed("height") {
		opts.Height = f.height
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = f.seed
	}
}

// strategyFlag registers --strategy and returns its apply function.
func strategyFlag(cmd *cobra.Command) func(*pipeline.Options) {
	var strategy string
	cmd.Flags().StringVarP(&strategy, "strategy", "s", pipeline.DefaultStrategy, "planning strategy: naive, sweep, greedy")
	_ = cmd.RegisterFlagCompletionFunc("strategy", cobra.FixedCompletions(plan.Strategies(), cobra.ShellCompDirectiveNoFileComp))
	return func(opts *pipeline.Options) {
		if cmd.Flags().Changed("strategy") {
			opts.Strategy = strategy
		}
	}
}

// loadOrGenerate reads the layout file in args, or generates a wall from
// opts when no file is given. It returns the layout and a base name for
// derived output files.
func (c *CLI) loadOrGenerate(ctx context.Context, args []string, opts *pipeline.Options) (wall.Layout, string, error) {
	if len(args) > 0 {
		l, err := bio.ImportLayout(args[0])
		if err != nil {
			return wall.Layout{}, "", fmt.Errorf("load layout %s: %w", args[0], err)
		}
		c.Logger.Debug("loaded layout", "path", args[0], "bricks", l.TotalBricks)
		return l, basePath("", args[0]), nil
	}

	prog := newProgress(c.Logger)
	l, err := c.newRunner().Generate(ctx, opts)
	if err != nil {
		return wall.Layout{}, "", fmt.Errorf("generate: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d bricks", l.TotalBricks))
	return l, l.Pattern, nil
}

// =============================================================================
// Output Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// basePath derives the base output path. Without an output path the
// input's extension (and a trailing ".layout") is stripped; known format
// extensions are stripped from an explicit output path.
func basePath(output, input string) string {
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		return strings.TrimSuffix(base, ".layout")
	}
	ext := filepath.Ext(output)
	if pipeline.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputBase returns the base path for artifacts: the explicit output path
// without its format extension, or base.
func outputBase(output, base string) string {
	if output == "" {
		return base
	}
	return basePath(output, "")
}

// writeArtifacts writes each artifact to base.<format>. A single format
// with an explicit output path is written to that path unchanged.
func writeArtifacts(artifacts map[string][]byte, formats []string, base, output string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := base + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
