package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/holotype/pkg/binomial"
	"github.com/dmitrymomot/holotype/pkg/display"
	"github.com/dmitrymomot/holotype/pkg/lexicon"
	"github.com/dmitrymomot/holotype/pkg/logger"
)

const dateLayout = "2006-1-2"

type app struct {
	stdout io.Writer
	stderr io.Writer

	// env replaces the process environment when non-nil.
	env map[string]string
	now func() time.Time
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr, now: time.Now}
}

// runIDKey carries the invocation id; the logger copies it into records.
type runIDKey struct{}

type flags struct {
	index      uint32
	date       string
	salt       string
	extract    bool
	configFile string
	strict     bool
	timeout    time.Duration
	workers    int
	verbose    bool
}

// run executes the command line and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	cmd := a.command()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(a.stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "holotype [NUMBER | -x NAME...]",
		Short: "Generate reproducible binomial names for dated, numbered works",
		Long: `holotype derives a pronounceable "Genus species" name from a date, an
index and an optional type salt. The same inputs always give the same name,
and -x recovers the date and index from a name.

Configuration is read from --config (YAML) and HOLOTYPE_* environment
variables, e.g. HOLOTYPE_YEAR_START=2020.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(cmd, f, args)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fs := cmd.Flags()
	fs.Uint32VarP(&f.index, "index", "i", 0, "index of the name (instead of the NUMBER argument)")
	fs.StringVarP(&f.date, "date", "d", "", "date as YYYY-MM-DD (default today)")
	fs.StringVarP(&f.salt, "type", "t", "", "type salt giving a separate name stream")
	fs.BoolVarP(&f.extract, "extract", "x", false, "recover date and index from NAME")
	fs.StringVar(&f.configFile, "config", "", "YAML configuration file")
	fs.BoolVar(&f.strict, "strict", false, "also apply phonotactic ending and cluster rules")
	fs.DurationVar(&f.timeout, "timeout", 0, "give up extracting after this long (0 = no limit)")
	fs.IntVar(&f.workers, "workers", 1, "goroutines used by the exhaustive extraction stage")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log diagnostics to stderr")

	return cmd
}

func (a *app) execute(cmd *cobra.Command, f flags, args []string) error {
	cfg, err := a.loadConfig(f.configFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = f.timeout
	}

	log := logger.New(
		logger.WithCLI("holotype", f.verbose),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithOutput(a.stderr),
		logger.WithContextValue(logger.RunIDKey, runIDKey{}),
	)
	ctx := context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString())

	opts := []binomial.Option{binomial.WithLogger(log), binomial.WithCache(cfg.CacheSize)}
	if f.strict {
		opts = append(opts, binomial.WithStrictPhonotactics())
	}
	gen, err := binomial.New(lexicon.Default(), cfg.Config, opts...)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if f.extract {
		return a.extract(ctx, log, gen, cfg, f.salt, args)
	}

	number, err := a.number(cmd, f, args, cfg.Config)
	if err != nil {
		return err
	}
	date, err := a.date(f.date, cfg.Config)
	if err != nil {
		return err
	}

	name := gen.Generate(date, number, f.salt)
	log.DebugContext(ctx, "generated", logger.Name(name), logger.Date(date), logger.Number(number), logger.Salt(f.salt))
	_, err = fmt.Fprintln(a.stdout, name)
	return err
}

func (a *app) number(cmd *cobra.Command, f flags, args []string, cfg binomial.Config) (uint32, error) {
	var number uint32
	switch {
	case cmd.Flags().Changed("index") && len(args) > 0:
		return 0, fmt.Errorf("Unexpected arguments: %s", strings.Join(args, " "))
	case cmd.Flags().Changed("index"):
		number = f.index
	case len(args) > 1:
		return 0, fmt.Errorf("Unexpected arguments: %s", strings.Join(args[1:], " "))
	case len(args) == 1:
		n, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return 0, fmt.Errorf("Invalid number: %s", args[0])
		}
		number = uint32(n)
	default:
		return 0, errors.New("Number required (provide as argument or use -i)")
	}

	if !cfg.ContainsNumber(number) {
		return 0, fmt.Errorf("Number %d is out of range [%d, %d]", number, cfg.NumberMin, cfg.NumberMax)
	}
	return number, nil
}

func (a *app) date(value string, cfg binomial.Config) (time.Time, error) {
	date := a.now()
	if value != "" {
		parsed, err := time.ParseInLocation(dateLayout, value, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("Invalid date format: %s", value)
		}
		date = parsed
	}

	if !cfg.ContainsYear(date.Year()) {
		return time.Time{}, fmt.Errorf("Date year %d is out of range [%d, %d]", date.Year(), cfg.YearStart, cfg.YearEnd)
	}
	return date, nil
}

func (a *app) extract(ctx context.Context, log *slog.Logger, gen *binomial.Generator, cfg appConfig, salt string, args []string) error {
	name := strings.Join(args, " ")
	if strings.TrimSpace(name) == "" {
		return errors.New("Name required for extraction")
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	dec := binomial.NewDecoder(gen, binomial.WithClock(a.now), binomial.WithWorkers(cfg.Workers))
	res, err := dec.Decode(ctx, name, salt)
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("Could not decode name: %s (gave up after %s)", name, cfg.Timeout)
	case errors.Is(err, binomial.ErrCancelled):
		return fmt.Errorf("Could not decode name: %s (interrupted)", name)
	default:
		log.DebugContext(ctx, "extract failed", logger.Name(name), logger.Error(err))
		return fmt.Errorf("Could not decode name: %s", name)
	}

	return display.NewPrinter(a.stdout, display.WithClock(a.now)).Print(res)
}
