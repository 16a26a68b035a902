package day12

import (
	"fmt"

	"github.com/katalvlaran/aoc2022/heightmap"
	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	startMarker = 'S'
	goalMarker  = 'E'
)

// Parse reads a rectangular grid of 'a'..'z' with exactly one S (elevation
// a) and one E (elevation z). Elevation is the letter's offset from 'a'.
// Every failure wraps puzzle.ErrMalformedInput.
func Parse(input string) (*Puzzle, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty heightmap", puzzle.ErrMalformedInput)
	}

	var (
		start, goal         heightmap.Coordinate
		haveStart, haveGoal bool
	)
	grid := make([][]int, len(lines))
	for y, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, fmt.Errorf("%w: line %d has %d squares, want %d", puzzle.ErrMalformedInput, y+1, len(line), len(lines[0]))
		}
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			at := heightmap.Coordinate{X: x, Y: y}
			switch {
			case c == startMarker:
				if haveStart {
					return nil, fmt.Errorf("%w: second start marker at %v", puzzle.ErrMalformedInput, at)
				}
				start, haveStart = at, true
				c = 'a'
			case c == goalMarker:
				if haveGoal {
					return nil, fmt.Errorf("%w: second goal marker at %v", puzzle.ErrMalformedInput, at)
				}
				goal, haveGoal = at, true
				c = 'z'
			case c < 'a' || c > 'z':
				return nil, fmt.Errorf("%w: square %q at %v", puzzle.ErrMalformedInput, c, at)
			}
			row[x] = int(c - 'a')
		}
		grid[y] = row
	}
	switch {
	case !haveStart:
		return nil, fmt.Errorf("%w: no start marker found", puzzle.ErrMalformedInput)
	case !haveGoal:
		return nil, fmt.Errorf("%w: no goal marker found", puzzle.ErrMalformedInput)
	}

	hm, err := heightmap.NewHeightMap(grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", puzzle.ErrMalformedInput, err)
	}

	return &Puzzle{Map: hm, Start: start, Goal: goal}, nil
}
