// Package day12 solves "Hill Climbing Algorithm": find the fewest steps up
// a letter-coded heightmap from S to E, and from any lowest square to E.
package day12

import (
	"fmt"

	"github.com/katalvlaran/aoc2022/heightmap"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Puzzle is a parsed heightmap with its start (S) and goal (E) markers.
type Puzzle struct {
	Map   *heightmap.HeightMap
	Start heightmap.Coordinate
	Goal  heightmap.Coordinate
}

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   12,
		Title: "Hill Climbing Algorithm",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// PartA returns the fewest steps from S to E.
func PartA(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return p.FromStart()
}

// PartB returns the fewest steps to E from any square at elevation a.
func PartB(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}

	return p.FromLowest()
}

// FromStart runs a forward search from Start to Goal.
func (p *Puzzle) FromStart() (int, error) {
	route, err := p.Map.ShortestPath(p.Start, p.Goal)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", puzzle.ErrNoAnswer, err)
	}

	return route.Steps, nil
}

// FromLowest sweeps backwards from Goal once and takes the cheapest of the
// lowest squares, instead of searching from each of them.
func (p *Puzzle) FromLowest() (int, error) {
	cm, err := p.Map.Sweep([]heightmap.Coordinate{p.Goal}, heightmap.WithDirection(heightmap.Descend))
	if err != nil {
		return 0, err
	}
	steps, ok := cm.Min(p.Map.Lowest())
	if !ok {
		return 0, fmt.Errorf("%w: %w: no lowest square reaches %v", puzzle.ErrNoAnswer, heightmap.ErrNoPath, p.Goal)
	}

	return steps, nil
}
