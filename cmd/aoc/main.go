// Command aoc prints the answers of every solved day of the 2022 puzzles.
//
//	aoc run            # all days
//	aoc run 6 12       # selected days
//	aoc list           # registered days
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2022/day01"
	"github.com/katalvlaran/aoc2022/day02"
	"github.com/katalvlaran/aoc2022/day03"
	"github.com/katalvlaran/aoc2022/day04"
	"github.com/katalvlaran/aoc2022/day05"
	"github.com/katalvlaran/aoc2022/day06"
	"github.com/katalvlaran/aoc2022/day12"
	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	inputDir   string
	workers    int

	cfg    *config.Config
	logger *zap.Logger
	reg    *puzzle.Registry
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// solutions lists every day the binary knows how to solve.
func solutions() []puzzle.Solution {
	return []puzzle.Solution{
		day01.Solution(),
		day02.Solution(),
		day03.Solution(),
		day04.Solution(),
		day05.Solution(),
		day06.Solution(),
		day12.Solution(),
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2022 solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, stderr)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.inputDir, "inputs", "", "directory holding inputNN.txt files (overrides config)")
	root.PersistentFlags().IntVarP(&a.workers, "workers", "w", 0, "days solved concurrently (overrides config)")

	root.AddCommand(a.runCmd())
	root.AddCommand(a.listCmd())

	return root
}

// setup loads configuration, applies flag overrides and builds the logger
// and registry.
func (a *app) setup(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("inputs") {
		cfg.InputDir = a.inputDir
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = a.workers
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	a.logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zc.EncoderConfig),
		zapcore.AddSync(stderr),
		zc.Level,
	))

	a.reg, err = puzzle.NewRegistry(solutions()...)

	return err
}
