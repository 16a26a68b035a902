package heightmap_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/heightmap"
)

// TestShortestPath_Example reproduces the 31-step climb from S to E.
func TestShortestPath_Example(t *testing.T) {
	hm, start, goal := letters(t, exampleRows)

	route, err := hm.ShortestPath(start, goal)
	require.NoError(t, err)
	assert.Equal(t, 31, route.Steps)
	assert.Positive(t, route.Expanded)
	assert.LessOrEqual(t, route.Expanded, hm.Width*hm.Height)
}

// TestShortestPath_StartIsGoal checks the zero-length route on several grids.
func TestShortestPath_StartIsGoal(t *testing.T) {
	single, err := heightmap.NewHeightMap([][]int{{7}})
	require.NoError(t, err)
	only := heightmap.Coordinate{}

	route, err := single.ShortestPath(only, only)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Route{Steps: 0, Expanded: 1}, route)

	hm, _, goal := letters(t, exampleRows)
	for _, c := range hm.Cells(func(heightmap.Coordinate, int) bool { return true }) {
		route, err := hm.ShortestPath(c, c)
		require.NoError(t, err)
		assert.Zero(t, route.Steps, "from %v to itself", c)
	}
	route, err = hm.ShortestPath(goal, goal, heightmap.WithDirection(heightmap.Descend))
	require.NoError(t, err)
	assert.Zero(t, route.Steps)
}

// TestShortestPath_Unreachable walls the goal in with cells two or more levels too high.
func TestShortestPath_Unreachable(t *testing.T) {
	hm := walled(t)
	_, err := hm.ShortestPath(heightmap.Coordinate{X: 0, Y: 0}, heightmap.Coordinate{X: 2, Y: 2})
	assert.ErrorIs(t, err, heightmap.ErrNoPath)

	// The ring can be left downhill but never re-entered from the low side.
	_, err = hm.ShortestPath(heightmap.Coordinate{X: 2, Y: 2}, heightmap.Coordinate{X: 0, Y: 0})
	assert.ErrorIs(t, err, heightmap.ErrNoPath)
	route, err := hm.ShortestPath(heightmap.Coordinate{X: 1, Y: 1}, heightmap.Coordinate{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, route.Steps)
}

func TestShortestPath_Preconditions(t *testing.T) {
	hm, start, goal := letters(t, exampleRows)

	cases := []struct {
		name        string
		start, goal heightmap.Coordinate
		opts        []heightmap.Option
		err         error
	}{
		{"StartLeft", heightmap.Coordinate{X: -1, Y: 0}, goal, nil, heightmap.ErrOutOfBounds},
		{"StartBelow", heightmap.Coordinate{X: 0, Y: 5}, goal, nil, heightmap.ErrOutOfBounds},
		{"GoalRight", start, heightmap.Coordinate{X: 8, Y: 0}, nil, heightmap.ErrOutOfBounds},
		{"NegativeClimb", start, goal, []heightmap.Option{heightmap.WithMaxClimb(-1)}, heightmap.ErrOptionViolation},
		{"BadDirection", start, goal, []heightmap.Option{heightmap.WithDirection(heightmap.Direction(9))}, heightmap.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			route, err := hm.ShortestPath(tc.start, tc.goal, tc.opts...)
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, heightmap.Route{}, route)
		})
	}
}

// TestShortestPath_MaxClimbMonotonic relaxes the climb limit step by step:
// reachable goals stay reachable and never get further away.
func TestShortestPath_MaxClimbMonotonic(t *testing.T) {
	hm, start, goal := letters(t, exampleRows)

	prev := -1
	for climb := 0; climb <= 26; climb++ {
		route, err := hm.ShortestPath(start, goal, heightmap.WithMaxClimb(climb))
		if err != nil {
			require.ErrorIs(t, err, heightmap.ErrNoPath)
			assert.Equal(t, -1, prev, "goal became unreachable at climb %d", climb)
			continue
		}
		if prev >= 0 {
			assert.LessOrEqual(t, route.Steps, prev, "climb %d", climb)
		}
		prev = route.Steps
	}
	// With no limit at all the Manhattan distance is achievable.
	assert.Equal(t, start.Manhattan(goal), prev)

	w := walled(t)
	from, to := heightmap.Coordinate{X: 0, Y: 0}, heightmap.Coordinate{X: 2, Y: 2}
	_, err := w.ShortestPath(from, to, heightmap.WithMaxClimb(4))
	assert.ErrorIs(t, err, heightmap.ErrNoPath)
	route, err := w.ShortestPath(from, to, heightmap.WithMaxClimb(5))
	require.NoError(t, err)
	assert.Equal(t, 4, route.Steps)
}

// TestShortestPath_DescendMirrorsAscend checks that a Descend search from
// b to a costs the same as an Ascend search from a to b, for every cell.
func TestShortestPath_DescendMirrorsAscend(t *testing.T) {
	hm, start, _ := letters(t, exampleRows)
	for _, c := range hm.Cells(func(heightmap.Coordinate, int) bool { return true }) {
		up, upErr := hm.ShortestPath(start, c)
		down, downErr := hm.ShortestPath(c, start, heightmap.WithDirection(heightmap.Descend))
		if upErr != nil {
			assert.ErrorIs(t, upErr, heightmap.ErrNoPath)
			assert.ErrorIs(t, downErr, heightmap.ErrNoPath, "cell %v", c)
			continue
		}
		require.NoError(t, downErr, "cell %v", c)
		assert.Equal(t, up.Steps, down.Steps, "cell %v", c)
	}
}

// TestShortestPath_Idempotent runs the same search repeatedly, including
// from many goroutines sharing the map, and expects identical routes.
func TestShortestPath_Idempotent(t *testing.T) {
	hm, start, goal := letters(t, exampleRows)
	first, err := hm.ShortestPath(start, goal)
	require.NoError(t, err)

	const workers = 32
	routes := make([]heightmap.Route, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			routes[i], errs[i] = hm.ShortestPath(start, goal)
		}(i)
	}
	wg.Wait()

	for i := range routes {
		require.NoError(t, errs[i])
		assert.Equal(t, first, routes[i])
	}
}
