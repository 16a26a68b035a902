package heightmap

import (
	"container/heap"
	"fmt"
)

// unreached marks a cell with no recorded cost in the best-known-cost map.
const unreached = -1

// outcome is the terminal state of a search loop.
type outcome int

const (
	// goalReached: the popped candidate sits on the goal.
	goalReached outcome = iota
	// frontierExhausted: nothing left to expand.
	frontierExhausted
)

// searcher holds the mutable state of one search invocation. It is built
// after all preconditions have been checked and discarded on return.
type searcher struct {
	hm       *HeightMap // read-only
	opts     Options
	goal     Coordinate
	targeted bool     // false for sweeps: no goal test, zero heuristic
	best     []int    // row-major best-known cost, unreached if none
	pq       frontier // min-heap on steps+estimate
	expanded int
}

func newSearcher(hm *HeightMap, opts Options) *searcher {
	best := make([]int, hm.Width*hm.Height)
	for i := range best {
		best[i] = unreached
	}

	return &searcher{
		hm:   hm,
		opts: opts,
		best: best,
		pq:   make(frontier, 0, hm.Width+hm.Height),
	}
}

// target switches the searcher into goal-directed mode.
func (s *searcher) target(goal Coordinate) {
	s.goal = goal
	s.targeted = true
}

// estimate is the Manhattan distance to the goal, or 0 when untargeted.
// Every step moves one cell, so this never overestimates.
func (s *searcher) estimate(c Coordinate) int {
	if !s.targeted {
		return 0
	}

	return c.Manhattan(s.goal)
}

// seed records cost 0 for c and pushes it. Repeated seeds are ignored.
func (s *searcher) seed(c Coordinate) {
	i := s.hm.index(c)
	if s.best[i] == 0 {
		return
	}
	s.best[i] = 0
	heap.Push(&s.pq, candidate{
		at:        c,
		from:      c,
		steps:     0,
		estimate:  s.estimate(c),
		elevation: s.hm.elevations[c.Y][c.X],
	})
}

// run pops candidates until the goal is popped or the frontier empties.
func (s *searcher) run() (candidate, outcome) {
	for s.pq.Len() > 0 {
		cur := heap.Pop(&s.pq).(candidate)
		// A cheaper candidate for this cell was pushed after this one.
		if cur.steps > s.best[s.hm.index(cur.at)] {
			continue
		}
		s.expanded++
		if s.targeted && cur.at == s.goal {
			return cur, goalReached
		}
		s.expand(cur)
	}

	return candidate{}, frontierExhausted
}

// expand pushes a candidate for each in-bounds, legal neighbor of cur
// (other than the one it came from) whose step count strictly improves
// on the recorded best.
func (s *searcher) expand(cur candidate) {
	steps := cur.steps + 1
	for _, d := range offsets {
		next := cur.at.add(d)
		if !s.hm.InBounds(next) || next == cur.from {
			continue
		}
		elev := s.hm.elevations[next.Y][next.X]
		if !s.opts.legal(cur.elevation, elev) {
			continue
		}
		i := s.hm.index(next)
		if b := s.best[i]; b != unreached && steps >= b {
			continue
		}
		s.best[i] = steps
		heap.Push(&s.pq, candidate{
			at:        next,
			from:      cur.at,
			steps:     steps,
			estimate:  s.estimate(next),
			elevation: elev,
		})
	}
}

// ShortestPath returns the minimum number of 4-directional unit steps from
// start to goal, where each step must satisfy the configured legality rule.
//
// Behavior:
//  1. Validate options and that start and goal are in bounds.
//  2. Seed the frontier with start (cost 0, Manhattan estimate to goal).
//  3. Pop the lowest steps+estimate candidate; stop if it is the goal.
//  4. Push every legal neighbor whose cost strictly improves on its best.
//  5. If the frontier empties first, report ErrNoPath.
//
// start == goal yields Route{Steps: 0}.
// Complexity: O(W·H·log(W·H)), Memory: O(W·H).
func (hm *HeightMap) ShortestPath(start, goal Coordinate, opts ...Option) (Route, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Route{}, err
	}
	if err = hm.checkBounds("start", start); err != nil {
		return Route{}, err
	}
	if err = hm.checkBounds("goal", goal); err != nil {
		return Route{}, err
	}

	s := newSearcher(hm, o)
	s.target(goal)
	s.seed(start)

	cur, out := s.run()
	switch out {
	case goalReached:
		return Route{Steps: cur.steps, Expanded: s.expanded}, nil
	default:
		return Route{}, fmt.Errorf("%w: %v to %v (%s, max climb %d)", ErrNoPath, start, goal, o.Direction, o.MaxClimb)
	}
}
