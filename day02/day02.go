// Package day02 solves "Rock Paper Scissors": each line holds the
// opponent's shape (A, B, C) and a recommendation (X, Y, Z).
package day02

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Shape is a hand shape; its value is the score for playing it.
type Shape int

const (
	Rock     Shape = 1
	Paper    Shape = 2
	Scissors Shape = 3
)

// beats returns the shape s defeats.
func (s Shape) beats() Shape {
	switch s {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// losesTo returns the shape that defeats s.
func (s Shape) losesTo() Shape {
	switch s {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// Outcome is a round result; its value is the score for achieving it.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// against reports the outcome of playing s into op.
func (s Shape) against(op Shape) Outcome {
	switch {
	case s == op:
		return Draw
	case s.beats() == op:
		return Win
	default:
		return Loss
	}
}

// Round is one parsed line: the opponent's shape and the raw recommendation.
type Round struct {
	Opponent Shape
	Column   byte // 'X', 'Y' or 'Z'
}

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   2,
		Title: "Rock Paper Scissors",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// PartA reads the second column as the shape to play.
func PartA(input string) (int, error) {
	return total(input, func(r Round) int {
		me := Shape(r.Column-'X') + Rock

		return int(me) + int(me.against(r.Opponent))
	})
}

// PartB reads the second column as the outcome to aim for.
func PartB(input string) (int, error) {
	return total(input, func(r Round) int {
		var me Shape
		switch r.Column {
		case 'X':
			me = r.Opponent.beats()
		case 'Y':
			me = r.Opponent
		default:
			me = r.Opponent.losesTo()
		}

		return int(me) + int(me.against(r.Opponent))
	})
}

func total(input string, score func(Round) int) (int, error) {
	rounds, err := Parse(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, r := range rounds {
		sum += score(r)
	}

	return sum, nil
}

// Parse reads one "<A|B|C> <X|Y|Z>" round per line.
func Parse(input string) ([]Round, error) {
	lines := puzzle.Lines(input)
	rounds := make([]Round, 0, len(lines))
	for i, line := range lines {
		f := strings.Fields(line)
		if len(f) != 2 || len(f[0]) != 1 || len(f[1]) != 1 ||
			f[0][0] < 'A' || f[0][0] > 'C' || f[1][0] < 'X' || f[1][0] > 'Z' {
			return nil, fmt.Errorf("%w: line %d: %q", puzzle.ErrMalformedInput, i+1, line)
		}
		rounds = append(rounds, Round{
			Opponent: Shape(f[0][0]-'A') + Rock,
			Column:   f[1][0],
		})
	}

	return rounds, nil
}
