// Package day05 solves "Supply Stacks": a drawing of crate stacks is
// followed, after a blank line, by crane moves of the form
// "move 3 from 1 to 2".
package day05

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   5,
		Title: "Supply Stacks",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// Crane selects how a multi-crate move is carried out.
type Crane int

const (
	// CrateMover9000 lifts one crate at a time, reversing the moved run.
	CrateMover9000 Crane = iota
	// CrateMover9001 lifts the whole run at once, keeping its order.
	CrateMover9001
)

// Move transfers Count crates from stack From to stack To (1-based).
type Move struct {
	Count, From, To int
}

// Plan is a parsed input: stacks bottom to top, then the moves in order.
type Plan struct {
	Stacks [][]byte
	Moves  []Move
}

// PartA returns the top crates after running the plan with a CrateMover 9000.
func PartA(input string) (string, error) {
	return run(input, CrateMover9000)
}

// PartB returns the top crates after running the plan with a CrateMover 9001.
func PartB(input string) (string, error) {
	return run(input, CrateMover9001)
}

func run(input string, c Crane) (string, error) {
	p, err := Parse(input)
	if err != nil {
		return "", err
	}

	return p.Run(c)
}

// Run applies every move to a copy of the stacks and returns the letters of
// the top crates, left to right. Empty stacks contribute nothing.
// A move lifting more crates than its source holds is malformed input.
func (p *Plan) Run(c Crane) (string, error) {
	stacks := make([][]byte, len(p.Stacks))
	for i, s := range p.Stacks {
		stacks[i] = slices.Clone(s)
	}
	for i, m := range p.Moves {
		src := stacks[m.From-1]
		if m.Count > len(src) {
			return "", fmt.Errorf("%w: move %d lifts %d crates from stack %d holding %d",
				puzzle.ErrMalformedInput, i+1, m.Count, m.From, len(src))
		}
		lifted := slices.Clone(src[len(src)-m.Count:])
		stacks[m.From-1] = src[:len(src)-m.Count]
		if c == CrateMover9000 {
			slices.Reverse(lifted)
		}
		stacks[m.To-1] = append(stacks[m.To-1], lifted...)
	}

	var sb strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			sb.WriteByte(s[len(s)-1])
		}
	}

	return sb.String(), nil
}

// Parse reads the drawing and the move list.
func Parse(input string) (*Plan, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) != 2 {
		return nil, fmt.Errorf("%w: want a drawing and a move list, got %d sections", puzzle.ErrMalformedInput, len(blocks))
	}
	stacks, err := parseDrawing(blocks[0])
	if err != nil {
		return nil, err
	}
	moves := make([]Move, 0, len(blocks[1]))
	for i, line := range blocks[1] {
		m, err := parseMove(line, len(stacks))
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}

	return &Plan{Stacks: stacks, Moves: moves}, nil
}

// parseDrawing reads the crate rows bottom-up; the last line labels the
// stacks 1..n and each stack occupies four columns ("[X] ").
func parseDrawing(lines []string) ([][]byte, error) {
	labels := strings.Fields(lines[len(lines)-1])
	for i, l := range labels {
		if l != strconv.Itoa(i+1) {
			return nil, fmt.Errorf("%w: stack label %q at position %d", puzzle.ErrMalformedInput, l, i+1)
		}
	}
	n := len(labels)
	stacks := make([][]byte, n)

	for depth, r := 0, len(lines)-2; r >= 0; depth, r = depth+1, r-1 {
		row := strings.TrimRight(lines[r], " ")
		if len(row) > 4*n-1 {
			return nil, fmt.Errorf("%w: row %q is wider than %d stacks", puzzle.ErrMalformedInput, row, n)
		}
		for i := 0; 4*i < len(row); i++ {
			cell := row[4*i : min(4*i+3, len(row))]
			if 4*i+3 < len(row) && row[4*i+3] != ' ' {
				return nil, fmt.Errorf("%w: row %q: no gap after stack %d", puzzle.ErrMalformedInput, row, i+1)
			}
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if len(cell) != 3 || cell[0] != '[' || cell[2] != ']' || cell[1] < 'A' || cell[1] > 'Z' {
				return nil, fmt.Errorf("%w: row %q: crate %q", puzzle.ErrMalformedInput, row, cell)
			}
			if len(stacks[i]) != depth {
				return nil, fmt.Errorf("%w: crate %s floats above stack %d", puzzle.ErrMalformedInput, cell, i+1)
			}
			stacks[i] = append(stacks[i], cell[1])
		}
	}

	return stacks, nil
}

func parseMove(line string, stacks int) (Move, error) {
	f := strings.Fields(line)
	if len(f) != 6 || f[0] != "move" || f[2] != "from" || f[4] != "to" {
		return Move{}, fmt.Errorf("%w: %q", puzzle.ErrMalformedInput, line)
	}
	var nums [3]int
	for i, s := range []string{f[1], f[3], f[5]} {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return Move{}, fmt.Errorf("%w: %q", puzzle.ErrMalformedInput, line)
		}
		nums[i] = v
	}
	m := Move{Count: nums[0], From: nums[1], To: nums[2]}
	if m.From < 1 || m.From > stacks || m.To < 1 || m.To > stacks {
		return Move{}, fmt.Errorf("%w: %q names a stack outside 1..%d", puzzle.ErrMalformedInput, line, stacks)
	}

	return m, nil
}
