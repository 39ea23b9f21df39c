// Package cli wires the puzzle solvers to cobra commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/clock"
	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/logging"
	"github.com/katalvlaran/statespace/internal/telemetry"
	"github.com/katalvlaran/statespace/search"
	"github.com/katalvlaran/statespace/water"
)

// ErrUsage is returned when a command receives the wrong number of arguments.
var ErrUsage = errors.New("usage error")

// app carries the flag values and the resolved configuration of one
// command invocation.
type app struct {
	configPath    string
	logLevel      string
	maxExpansions int
	timeout       time.Duration
	telemetry     string
	color         string
	workers       int

	cfg config.Config
	log *slog.Logger
}

func newApp() *app {
	d := config.Default()
	return &app{
		logLevel:      d.LogLevel,
		maxExpansions: d.MaxExpansions,
		timeout:       d.Timeout,
		telemetry:     d.Telemetry,
		color:         d.Color,
		workers:       d.BatchWorkers,
	}
}

// NewRootCmd returns the puzzles command with every solver attached.
func NewRootCmd() *cobra.Command {
	a := newApp()
	root := &cobra.Command{
		Use:   "puzzles",
		Short: "Shortest-path puzzle solvers",
		Long: `puzzles solves small combinatorial puzzles by breadth-first search
and prints the shortest sequence of configurations from start to goal.

  clock   reach an hour on a clock face one tick at a time
  water   measure an amount with fill, empty and pour moves
  jam     slide cars until the target car reaches the right edge`,
	}
	a.bind(root)
	root.AddCommand(a.clockCmd(), a.waterCmd(), a.jamCmd(), a.batchCmd(), versionCmd())
	return root
}

// NewClockCmd returns the clock solver as a standalone root command.
func NewClockCmd() *cobra.Command {
	a := newApp()
	cmd := a.clockCmd()
	a.bind(cmd)
	return cmd
}

// NewWaterCmd returns the water solver as a standalone root command.
func NewWaterCmd() *cobra.Command {
	a := newApp()
	cmd := a.waterCmd()
	a.bind(cmd)
	return cmd
}

// NewJamCmd returns the jam solver (with its play subcommand) as a
// standalone root command.
func NewJamCmd() *cobra.Command {
	a := newApp()
	cmd := a.jamCmd()
	a.bind(cmd)
	return cmd
}

// Execute runs the puzzles root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// bind attaches the shared persistent flags to a root command.
func (a *app) bind(cmd *cobra.Command) {
	cmd.SilenceErrors = true
	f := cmd.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	f.StringVar(&a.logLevel, "log-level", a.logLevel, "log level: debug, info, warn, error")
	f.IntVar(&a.maxExpansions, "max-expansions", a.maxExpansions, "stop a search after this many states (0 = unlimited)")
	f.DurationVar(&a.timeout, "timeout", a.timeout, "deadline for each search (0 = none)")
	f.StringVar(&a.telemetry, "telemetry", a.telemetry, "telemetry exporter: none or stdout")
	f.StringVar(&a.color, "color", a.color, "highlight the target car: auto, always or never")
}

// prepare resolves configuration (defaults, file, environment, flags) and
// starts logging and telemetry. The returned function flushes telemetry.
func (a *app) prepare(cmd *cobra.Command) (func(), error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("max-expansions") {
		cfg.MaxExpansions = a.maxExpansions
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("telemetry") {
		cfg.Telemetry = a.telemetry
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Lookup("workers") != nil && flags.Changed("workers") {
		cfg.BatchWorkers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a.cfg = cfg

	logging.InitWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	a.log = logging.Logger().With("run_id", uuid.NewString(), "command", cmd.Name())

	shutdown, err := telemetry.Init(cmd.Context(), telemetry.Config{
		ServiceName:    "statespace",
		ServiceVersion: Version,
		Exporter:       cfg.Telemetry,
		Writer:         cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, err
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			a.log.Warn("telemetry shutdown failed", "error", err)
		}
	}, nil
}

// run wraps a command body with configuration, telemetry and error policy:
// usage and value errors keep cobra's usage text, everything else is
// reported once by the caller.
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if cmd.Context() == nil {
			cmd.SetContext(context.Background())
		}
		done, err := a.prepare(cmd)
		if err != nil {
			cmd.SilenceUsage = true
			return err
		}
		defer done()

		err = fn(cmd, args)
		if err != nil && !showsUsage(err) {
			cmd.SilenceUsage = true
		}
		if err != nil {
			a.log.Debug("command failed", "error", err)
		}
		return err
	}
}

// showsUsage reports whether err stems from bad command-line values.
func showsUsage(err error) bool {
	for _, target := range []error{
		ErrUsage,
		clock.ErrUsage, clock.ErrMalformedInput, clock.ErrInvariant,
		water.ErrUsage, water.ErrMalformedInput, water.ErrInvariant,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// exactArgs is cobra.ExactArgs with an error that wraps ErrUsage.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s accepts %d arg(s), received %d", ErrUsage, cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// minArgs is cobra.MinimumNArgs with an error that wraps ErrUsage.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: %s requires at least %d arg(s), received %d", ErrUsage, cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// searchOptions builds the per-solve options. The cancel function must be
// called once the search returns.
func (a *app) searchOptions(ctx context.Context) ([]search.Option, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if a.cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
	}
	return []search.Option{
		search.WithContext(ctx),
		search.WithMaxExpansions(a.cfg.MaxExpansions),
		search.WithLogger(a.log),
	}, cancel
}
