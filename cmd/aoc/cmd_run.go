package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2022/internal/runner"
)

func (a *app) runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days, or every registered day",
		Long: `Reads each day's input from the configured directory and prints
one line per day in the form "dayNN: <part A>, <part B>".`,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := parseDays(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := parseDays(args)
			src := runner.DirSource{Dir: a.cfg.InputDir, Name: a.cfg.InputFile}
			a.logger.Debug("running",
				zap.Ints("days", days),
				zap.String("inputs", a.cfg.InputDir),
				zap.Int("workers", a.cfg.Workers))

			results, err := runner.New(a.reg, src, a.cfg.Workers, a.logger).Run(cmd.Context(), days)
			if err != nil {
				return err
			}
			for _, res := range results {
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}

			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, d := range a.reg.Days() {
				s, err := a.reg.Get(d)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", s.Name(), s.Title)
			}

			return nil
		},
	}
}

// parseDays converts positional arguments such as "6" or "day12" to day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "day"))
		if err != nil || n < 1 || n > 25 {
			return nil, fmt.Errorf("invalid day %q: want 1..25", arg)
		}
		days = append(days, n)
	}

	return days, nil
}
