// Command taxicab prints every quadruple (a, b, c, d) below a bound with
// a³ + b³ = c³ + d³, one line "a b sum c d" per match.
//
// Without arguments it runs the reference search below 1000 on a single
// goroutine.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/taxicab/internal/config"
	"github.com/katalvlaran/taxicab/internal/logging"
	"github.com/katalvlaran/taxicab/search"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// rootFlags holds the raw command-line values; they override the config
// only when set explicitly.
type rootFlags struct {
	configPath string
	bound      uint64
	workers    int
	logLevel   string
	verbose    bool
}

// newRootCmd builds the taxicab command.
func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:   "taxicab",
		Short: "Find numbers that are sums of two cubes in two ways",
		Long: `taxicab exhaustively searches quadruples (a, b, c, d) below a bound N with
a³ + b³ = c³ + d³, a < b, c < d and {a, b} ∩ {c, d} = ∅.

Each match is printed as "a b sum c d". With no flags the bound is 1000 and
the search runs sequentially; --workers > 1 scans rows of a in parallel and
prints the same lines in the same order.

Configuration precedence: defaults < --config YAML < TAXICAB_* env < flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	flags.Uint64Var(&f.bound, "bound", search.DefaultBound, "exclusive upper limit for a, b, c and d")
	flags.IntVar(&f.workers, "workers", search.DefaultWorkers, "goroutines scanning rows of a (0 or 1 = sequential)")
	flags.StringVar(&f.logLevel, "log-level", logging.DefaultLevel, "log level on stderr (debug, info, warn, error)")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging (same as --log-level=debug)")

	return cmd
}

// resolveConfig merges defaults, the config file, the environment and the
// flags the user actually set.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("bound") {
		cfg.Bound = f.bound
	}
	if flags.Changed("workers") {
		cfg.Workers = f.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run executes the search and streams every match to the command's stdout.
func run(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting search",
		zap.Uint64("bound", cfg.Bound),
		zap.Int("workers", cfg.Workers),
		zap.String("config", f.configPath),
	)

	out := cmd.OutOrStdout()
	opts := append(cfg.SearchOptions(),
		search.WithContext(cmd.Context()),
		search.WithCollect(false),
		search.WithOnMatch(func(q search.Quadruple) error {
			return search.Write(out, q)
		}),
	)

	res, err := search.Search(opts...)
	if err != nil {
		return fmt.Errorf("run search: %w", err)
	}

	st := res.Stats
	logger.Debug("search finished",
		zap.Uint64("matches", st.Matches),
		zap.Uint64("pairs", st.Pairs),
		zap.Uint64("candidates", st.Candidates),
		zap.Uint64("pruned", st.Pruned),
		zap.Uint64("probes", st.Probes),
	)

	return nil
}
