package heightmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for heightmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrNegativeElevation indicates a cell with an elevation below zero.
	ErrNegativeElevation = errors.New("heightmap: elevations must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("heightmap: coordinate out of bounds")
	// ErrNoSources indicates a sweep was requested without any source cell.
	ErrNoSources = errors.New("heightmap: at least one source is required")
	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("heightmap: invalid option supplied")
	// ErrNoPath indicates the goal cannot be reached from the source(s).
	ErrNoPath = errors.New("heightmap: no path to goal")
)

// Coordinate addresses one grid cell: X is the column, Y the row.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Manhattan returns the taxicab distance between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// add offsets c by d.
func (c Coordinate) add(d [2]int) Coordinate {
	return Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction selects which way the step legality rule is applied.
type Direction int

const (
	// Ascend permits a step A→B when elev(B) ≤ elev(A) + MaxClimb.
	Ascend Direction = iota
	// Descend permits a step A→B when elev(A) ≤ elev(B) + MaxClimb.
	Descend
)

// String returns "ascend" or "descend".
func (d Direction) String() string {
	switch d {
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Options holds tunable parameters for a search.
type Options struct {
	// MaxClimb is the largest elevation gain allowed in a single step.
	MaxClimb int
	// Direction chooses Ascend (forward) or Descend (reverse) legality.
	Direction Direction

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with MaxClimb=1 and Direction=Ascend.
func DefaultOptions() Options {
	return Options{
		MaxClimb:  1,
		Direction: Ascend,
	}
}

// WithMaxClimb sets the largest permitted elevation gain per step.
//
//	n ≥ 0: use n
//	n < 0: invalid option → ErrOptionViolation
func WithMaxClimb(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxClimb cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxClimb = n
	}
}

// WithDirection selects Ascend or Descend step legality.
func WithDirection(d Direction) Option {
	return func(o *Options) {
		if d != Ascend && d != Descend {
			o.err = fmt.Errorf("%w: unknown direction %v", ErrOptionViolation, d)
			return
		}
		o.Direction = d
	}
}

// buildOptions applies opts over the defaults and returns any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// Route is the outcome of a successful ShortestPath search.
type Route struct {
	// Steps is the minimum number of unit steps from start to goal.
	Steps int
	// Expanded counts candidates popped from the frontier, goal included.
	Expanded int
}

// HeightMap is a rectangular grid of non-negative elevations.
// It is immutable once built; elevations[y][x] holds the value at (x, y).
type HeightMap struct {
	Width, Height int
	elevations    [][]int
}

// offsets lists the 4 axis-aligned neighbor deltas: N, E, S, W.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
