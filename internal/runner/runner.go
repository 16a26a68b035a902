// Package runner resolves puzzle inputs and solves the requested days,
// several at a time, returning their answers in day order.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// ErrInputUnavailable wraps failures to obtain a day's input text.
var ErrInputUnavailable = errors.New("runner: input unavailable")

// Source supplies the raw input text for a day.
type Source interface {
	Input(day int) (string, error)
}

// DirSource reads inputs from Dir; Name maps a day to its file name
// there, e.g. config.Config.InputFile.
type DirSource struct {
	Dir  string
	Name func(day int) string
}

// Input reads the file for day.
func (s DirSource) Input(day int) (string, error) {
	path := filepath.Join(s.Dir, s.Name(day))
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: day %d: %w", ErrInputUnavailable, day, err)
	}

	return string(b), nil
}

// MapSource serves inputs held in memory, keyed by day.
type MapSource map[int]string

// Input returns the stored text for day.
func (m MapSource) Input(day int) (string, error) {
	in, ok := m[day]
	if !ok {
		return "", fmt.Errorf("%w: day %d not loaded", ErrInputUnavailable, day)
	}

	return in, nil
}

// Result holds both answers of one day.
type Result struct {
	Day     int
	Name    string
	Title   string
	PartA   string
	PartB   string
	Elapsed time.Duration
}

// String formats the result as "dayNN: a, b".
func (r Result) String() string {
	return fmt.Sprintf("%s: %s, %s", r.Name, r.PartA, r.PartB)
}

// Runner solves registered days against a Source.
type Runner struct {
	reg     *puzzle.Registry
	src     Source
	workers int
	log     *zap.Logger
}

// New returns a Runner. workers below 1 is treated as 1; a nil logger is replaced by a no-op one.
func New(reg *puzzle.Registry, src Source, workers int, log *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Runner{reg: reg, src: src, workers: workers, log: log}
}

// Run solves days (every registered day when empty) and returns results
// sorted by day. Unknown days fail before anything runs. The first failing
// day cancels the rest and its error is returned.
func (r *Runner) Run(ctx context.Context, days []int) ([]Result, error) {
	days = normalize(days, r.reg.Days())
	sols := make([]puzzle.Solution, len(days))
	for i, d := range days {
		s, err := r.reg.Get(d)
		if err != nil {
			return nil, err
		}
		sols[i] = s
	}

	results := make([]Result, len(sols))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, s := range sols {
		g.Go(func() error {
			res, err := r.solve(gctx, s)
			if err != nil {
				r.log.Error("day failed", zap.String("day", s.Name()), zap.Error(err))
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// solve runs both parts of s on its input. A cancelled ctx stops it
// before the input is read and between the two parts.
func (r *Runner) solve(ctx context.Context, s puzzle.Solution) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	input, err := r.src.Input(s.Day)
	if err != nil {
		return Result{}, err
	}
	r.log.Debug("solving", zap.String("day", s.Name()), zap.Int("bytes", len(input)))

	began := time.Now()
	a, err := s.PartA(input)
	if err != nil {
		return Result{}, fmt.Errorf("%s part A: %w", s.Name(), err)
	}
	if err = ctx.Err(); err != nil {
		return Result{}, err
	}
	b, err := s.PartB(input)
	if err != nil {
		return Result{}, fmt.Errorf("%s part B: %w", s.Name(), err)
	}
	res := Result{
		Day:     s.Day,
		Name:    s.Name(),
		Title:   s.Title,
		PartA:   a,
		PartB:   b,
		Elapsed: time.Since(began),
	}
	r.log.Info("solved", zap.String("day", res.Name), zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

// normalize returns the sorted, de-duplicated request, or all when empty.
func normalize(days, all []int) []int {
	if len(days) == 0 {
		return all
	}
	out := append([]int(nil), days...)
	sort.Ints(out)
	n := 0
	for i, d := range out {
		if i == 0 || d != out[n-1] {
			out[n] = d
			n++
		}
	}

	return out[:n]
}
