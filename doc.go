// Package aoc2022 collects solutions to the Advent of Code 2022 puzzles.
//
// Each solved day lives in its own package and exposes a puzzle.Solution:
// a day number, a title and two parts that map raw input text to an answer.
//
// Layout:
//
//	puzzle/            Solution, Part, Registry and shared input helpers
//	heightmap/         elevation grid: A* shortest path and multi-source sweeps
//	day01/ .. day12/   one package per solved day
//	internal/config/   defaults, YAML file and AOC_* environment
//	internal/runner/   solves several days concurrently, in day order
//	cmd/aoc/           command line: `aoc run [day...]`, `aoc list`
//
// Day 12 in a nutshell:
//
//	Sabqponm      S = start (elevation a), E = goal (elevation z)
//	abcryxxl      one step moves up, down, left or right and may climb
//	accszExk      at most one letter; descending is always allowed.
//	acctuvwj
//	abdefghi      fewest steps S→E: 31, from any 'a': 29
//
//	go run ./cmd/aoc run 12
package aoc2022
