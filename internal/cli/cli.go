// Package cli implements the citypaths command-line interface.
//
// # Commands
//
//   - run: read the full input protocol and answer every query
//   - catalan: print a single Catalan number
//   - digitsum: print the digit sum of n!
//   - dot: export one test case as a Graphviz diagram
//   - explore: browse cheapest routes interactively
//   - config: show the configuration file and its effective values
//   - completion: generate shell completion scripts
//
// Results go to stdout; logs and status lines go to stderr. All commands
// support --verbose (-v) for debug logging and --config to pick a
// configuration file.
package cli

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/citypaths/internal/config"
	"github.com/matzehuels/citypaths/pkg/buildinfo"
	"github.com/matzehuels/citypaths/pkg/observability"
	"github.com/matzehuels/citypaths/pkg/pipeline"
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
	Out    io.Writer // command results

	configPath string
	verbose    bool
	cfg        config.Config
}

// New creates a CLI that writes results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
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
		Use:   "citypaths",
		Short: "citypaths answers cheapest-route queries between named cities",
		Long: `citypaths reads a Catalan input, a number of test cases, and for each case a
weighted directed graph of named cities followed by route queries. It prints
the Catalan number, the digit sum of 100!, and the cheapest cost of every query.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/citypaths/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.catalanCommand())
	root.AddCommand(c.digitSumCommand())
	root.AddCommand(c.dotCommand())
	root.AddCommand(c.exploreCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// annotationConfigOptional marks commands that run without an existing
// --config file.
const annotationConfigOptional = "config-optional"

// setup loads the configuration and attaches the logger to the command
// context. Verbose runs also log pipeline events.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	switch {
	case err == nil:
		c.cfg = cfg
	case errors.Is(err, fs.ErrNotExist) && cmd.Annotations[annotationConfigOptional] == "true":
		c.cfg = config.Default()
	default:
		return err
	}

	level := LogInfo
	if c.verbose || c.cfg.Verbose {
		level = LogDebug
		observability.SetPipelineHooks(newLogHooks(c.Logger))
	}
	c.SetLogLevel(level)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// runFlags holds pipeline flags shared by commands that run the protocol.
type runFlags struct {
	format        string
	unreachable   string
	route         bool
	memo          bool
	maxCatalan    int
	factorialBase int
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.format, "format", "f", pipeline.FormatText, "output format: text, json")
	cmd.Flags().StringVar(&f.unreachable, "unreachable", pipeline.DefaultUnreachable, "token printed when no route exists")
	cmd.Flags().BoolVar(&f.route, "route", false, "print the cities of each cheapest route")
	cmd.Flags().BoolVar(&f.memo, "memo", false, "compute the Catalan number with the memoized recurrence")
	cmd.Flags().IntVar(&f.maxCatalan, "max-catalan", pipeline.DefaultMaxCatalan, "refuse Catalan inputs above this for the exponential recurrence (0 = unbounded; ignored with --memo)")
	cmd.Flags().IntVar(&f.factorialBase, "factorial-base", pipeline.DefaultFactorialBase, "n for the digit sum of n!")
}

// options merges the configuration with the flags set on cmd.
// Flags override config, config overrides defaults.
func (c *CLI) options(cmd *cobra.Command, f *runFlags) pipeline.Options {
	opts := c.cfg.Options()
	flags := cmd.Flags()
	if flags.Changed("format") {
		opts.Format = f.format
	}
	if flags.Changed("unreachable") {
		opts.Unreachable = f.unreachable
	}
	if flags.Changed("route") {
		opts.Route = f.route
	}
	if flags.Changed("memo") {
		opts.Memo = f.memo
	}
	if flags.Changed("max-catalan") {
		opts.MaxCatalan = f.maxCatalan
	}
	if flags.Changed("factorial-base") {
		opts.FactorialBase = f.factorialBase
	}
	return opts
}

// openInput opens path for reading, or stdin for "" and "-".
func openInput(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}
