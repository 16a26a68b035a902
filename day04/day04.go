// Package day04 solves "Camp Cleanup": each line assigns two elves an
// inclusive range of section IDs, written "2-4,6-8".
package day04

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   4,
		Title: "Camp Cleanup",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// Range is an inclusive span of section IDs with Lo <= Hi.
type Range struct {
	Lo, Hi int
}

// Contains reports whether o lies entirely within r.
func (r Range) Contains(o Range) bool {
	return r.Lo <= o.Lo && o.Hi <= r.Hi
}

// Overlaps reports whether r and o share at least one section.
func (r Range) Overlaps(o Range) bool {
	return r.Lo <= o.Hi && o.Lo <= r.Hi
}

// Pair is one line of the input.
type Pair [2]Range

// PartA counts pairs where one range fully contains the other.
func PartA(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p[0].Contains(p[1]) || p[1].Contains(p[0])
	})
}

// PartB counts pairs whose ranges overlap at all.
func PartB(input string) (int, error) {
	return count(input, func(p Pair) bool {
		return p[0].Overlaps(p[1])
	})
}

func count(input string, match func(Pair) bool) (int, error) {
	pairs, err := Parse(input)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range pairs {
		if match(p) {
			n++
		}
	}

	return n, nil
}

// Parse reads one "lo-hi,lo-hi" pair per line.
func Parse(input string) ([]Pair, error) {
	lines := puzzle.Lines(input)
	pairs := make([]Pair, 0, len(lines))
	for i, line := range lines {
		left, right, ok := strings.Cut(strings.TrimSpace(line), ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q has no comma", puzzle.ErrMalformedInput, i+1, line)
		}
		a, err := parseRange(left)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		b, err := parseRange(right)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		pairs = append(pairs, Pair{a, b})
	}

	return pairs, nil
}

func parseRange(s string) (Range, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return Range{}, fmt.Errorf("%w: range %q", puzzle.ErrMalformedInput, s)
	}
	l, err := strconv.Atoi(lo)
	if err != nil || l < 0 {
		return Range{}, fmt.Errorf("%w: range %q", puzzle.ErrMalformedInput, s)
	}
	h, err := strconv.Atoi(hi)
	if err != nil || h < l {
		return Range{}, fmt.Errorf("%w: range %q", puzzle.ErrMalformedInput, s)
	}

	return Range{Lo: l, Hi: h}, nil
}
