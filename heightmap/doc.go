// Package heightmap treats a 2D grid of elevations as a directed graph
// and answers "how many steps from here to there" questions over it.
//
// What:
//
//   - HeightMap wraps a rectangular [][]int of elevations; it is immutable once built.
//   - ShortestPath runs an A* search (Manhattan heuristic) between two cells.
//   - Sweep runs the same expansion with no goal and no heuristic from one or
//     more sources and returns the full best-known-cost map.
//   - FewestSteps is a convenience over Sweep for multi-source queries.
//
// Step legality:
//
//   - Moves are 4-directional unit steps.
//   - Ascend (default): a step A→B is legal when elev(B) ≤ elev(A) + MaxClimb.
//   - Descend: a step A→B is legal when elev(A) ≤ elev(B) + MaxClimb, i.e. the
//     Ascend relation walked backwards. A Descend sweep seeded at a goal
//     therefore yields, for every cell, the fewest Ascend steps to that goal.
//
// Complexity:
//
//   - ShortestPath: O(W·H·log(W·H)) worst case, Memory: O(W·H).
//   - Sweep:        O(W·H·log(W·H)),            Memory: O(W·H).
//
// Options:
//
//   - WithMaxClimb(n): highest permitted elevation gain per step (default 1, n ≥ 0).
//   - WithDirection(d): Ascend or Descend.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrNegativeElevation: rejected input grid.
//   - ErrOutOfBounds: a start, goal or source lies outside the grid.
//   - ErrNoSources: Sweep called without sources.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNoPath: the frontier was exhausted before the goal was reached.
//
// Thread safety:
//
//   - A HeightMap is never written after NewHeightMap returns, so any number of
//     searches may run on it concurrently. Search state is private to each call.
package heightmap
