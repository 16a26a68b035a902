package heightmap

import "fmt"

// CostMap is the best-known-cost map produced by Sweep: for every cell,
// the fewest steps from the nearest source, or nothing if unreachable.
// It is read-only.
type CostMap struct {
	Width, Height int
	cost          []int
}

// At returns the step count recorded for c and whether c was reached.
// Out-of-bounds coordinates are reported as not reached.
func (cm *CostMap) At(c Coordinate) (int, bool) {
	if c.X < 0 || c.X >= cm.Width || c.Y < 0 || c.Y >= cm.Height {
		return 0, false
	}
	v := cm.cost[c.Y*cm.Width+c.X]

	return v, v != unreached
}

// Min returns the smallest recorded cost among cells, ignoring cells that
// were not reached. ok is false if none of them was reached.
func (cm *CostMap) Min(cells []Coordinate) (best int, ok bool) {
	for _, c := range cells {
		v, reached := cm.At(c)
		if !reached {
			continue
		}
		if !ok || v < best {
			best, ok = v, true
		}
	}

	return best, ok
}

// Reached counts cells with a recorded cost.
func (cm *CostMap) Reached() int {
	n := 0
	for _, v := range cm.cost {
		if v != unreached {
			n++
		}
	}

	return n
}

// Rows returns a fresh [y][x] copy of the costs with -1 for unreached cells.
func (cm *CostMap) Rows() [][]int {
	rows := make([][]int, cm.Height)
	for y := range rows {
		rows[y] = make([]int, cm.Width)
		copy(rows[y], cm.cost[y*cm.Width:(y+1)*cm.Width])
	}

	return rows
}

// Sweep expands from every source at once, with no goal and a zero
// heuristic, until the frontier is exhausted. The returned CostMap holds
// the fewest steps from any source to each reachable cell.
//
// Seeded with a goal and WithDirection(Descend), the map instead gives
// the fewest Ascend steps from each cell to that goal.
//
// Returns ErrNoSources for an empty sources slice and ErrOutOfBounds if
// any source lies outside the grid. Duplicate sources are harmless.
// Complexity: O(W·H·log(W·H)), Memory: O(W·H).
func (hm *HeightMap) Sweep(sources []Coordinate, opts ...Option) (*CostMap, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, src := range sources {
		if err = hm.checkBounds("source", src); err != nil {
			return nil, err
		}
	}

	s := newSearcher(hm, o)
	for _, src := range sources {
		s.seed(src)
	}
	s.run()

	return &CostMap{Width: hm.Width, Height: hm.Height, cost: s.best}, nil
}

// FewestSteps returns the minimum steps from any of sources to goal,
// or ErrNoPath if none of them can reach it.
func (hm *HeightMap) FewestSteps(sources []Coordinate, goal Coordinate, opts ...Option) (int, error) {
	if err := hm.checkBounds("goal", goal); err != nil {
		return 0, err
	}
	cm, err := hm.Sweep(sources, opts...)
	if err != nil {
		return 0, err
	}
	steps, ok := cm.At(goal)
	if !ok {
		return 0, fmt.Errorf("%w: %d sources to %v", ErrNoPath, len(sources), goal)
	}

	return steps, nil
}
