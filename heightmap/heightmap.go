package heightmap

import "fmt"

// NewHeightMap constructs a HeightMap from a non-empty, rectangular 2D slice
// of non-negative elevations, indexed as values[y][x].
// It deep-copies the input so later changes by the caller cannot leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, and
// ErrNegativeElevation if any cell is below zero.
// Complexity: O(W×H) time and memory.
func NewHeightMap(values [][]int) (*HeightMap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: %v has elevation %d", ErrNegativeElevation, Coordinate{x, y}, v)
			}
		}
		cells[y] = make([]int, w)
		copy(cells[y], row)
	}

	return &HeightMap{
		Width:      w,
		Height:     h,
		elevations: cells,
	}, nil
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (hm *HeightMap) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < hm.Width && c.Y >= 0 && c.Y < hm.Height
}

// Elevation returns the elevation at c, or ErrOutOfBounds.
func (hm *HeightMap) Elevation(c Coordinate) (int, error) {
	if !hm.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, hm.Width, hm.Height)
	}

	return hm.elevations[c.Y][c.X], nil
}

// Cells returns, in row-major order, every coordinate whose elevation
// satisfies pred.
// Complexity: O(W×H).
func (hm *HeightMap) Cells(pred func(c Coordinate, elevation int) bool) []Coordinate {
	var out []Coordinate
	for y := 0; y < hm.Height; y++ {
		for x := 0; x < hm.Width; x++ {
			c := Coordinate{X: x, Y: y}
			if pred(c, hm.elevations[y][x]) {
				out = append(out, c)
			}
		}
	}

	return out
}

// Lowest returns all cells sharing the minimum elevation, row-major.
func (hm *HeightMap) Lowest() []Coordinate {
	low := hm.elevations[0][0]
	for _, row := range hm.elevations {
		for _, v := range row {
			if v < low {
				low = v
			}
		}
	}

	return hm.Cells(func(_ Coordinate, e int) bool { return e == low })
}

// checkBounds wraps ErrOutOfBounds with the offending role and coordinate.
func (hm *HeightMap) checkBounds(role string, c Coordinate) error {
	if !hm.InBounds(c) {
		return fmt.Errorf("%w: %s %v in %dx%d grid", ErrOutOfBounds, role, c, hm.Width, hm.Height)
	}

	return nil
}

// index maps c to a row-major index: y*Width + x.
func (hm *HeightMap) index(c Coordinate) int {
	return c.Y*hm.Width + c.X
}

// legal reports whether a single step from elevation `from` onto
// elevation `to` is permitted under o.
func (o Options) legal(from, to int) bool {
	if o.Direction == Descend {
		return from <= to+o.MaxClimb
	}

	return to <= from+o.MaxClimb
}
