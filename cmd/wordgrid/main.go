// Command wordgrid finds dictionary words along the rows, columns and
// diagonals of a square letter grid.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/milden6/wordgrid"
	"github.com/milden6/wordgrid/internal/config"
)

// app carries the state shared by every command: the merged configuration
// and the logger.
type app struct {
	cfgFile string
	verbose bool
	flags   config.Config

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordgrid",
		Short: "Find dictionary words hidden in a square letter grid",
		Long: `wordgrid reads a square grid of letters and a dictionary, extracts every
contiguous run of letters along rows, columns and diagonals, and prints
the runs that are dictionary words, in the order they were found.

Run without a subcommand to solve the configured grid.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runSolve,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "wordgrid.yaml", "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&a.flags.Grid, "grid", "", "letter grid file")
	pf.StringVar(&a.flags.Dictionary, "dict", "", "dictionary word list, one word per line")
	pf.StringVar(&a.flags.Index, "index", "", "saved dictionary index file")
	pf.StringVar(&a.flags.Validator, "validator", "", "dictionary backend: trie, index or set")
	pf.IntVar(&a.flags.Workers, "workers", 0, "lines expanded in parallel")
	pf.BoolVar(&a.flags.AntiDiagonals, "anti-diagonals", false, "also read top-right to bottom-left diagonals")

	rootCmd.AddCommand(newSolveCmd(a), newCandidatesCmd(a), newIndexCmd(a))
	return rootCmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("grid") {
		cfg.Grid = a.flags.Grid
	}
	if flags.Changed("dict") {
		cfg.Dictionary = a.flags.Dictionary
	}
	if flags.Changed("index") {
		cfg.Index = a.flags.Index
	}
	if flags.Changed("validator") {
		cfg.Validator = a.flags.Validator
	}
	if flags.Changed("workers") {
		cfg.Workers = a.flags.Workers
	}
	if flags.Changed("anti-diagonals") {
		cfg.AntiDiagonals = a.flags.AntiDiagonals
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger == nil {
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		a.logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}
	return nil
}

func (a *app) options() wordgrid.Options {
	return wordgrid.Options{
		Workers:       a.cfg.Workers,
		AntiDiagonals: a.cfg.AntiDiagonals,
		Logger:        a.logger,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&app{}).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
