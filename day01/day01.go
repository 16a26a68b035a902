// Package day01 solves "Calorie Counting": the input lists the calories of
// each item an elf carries, one per line, with a blank line between elves.
package day01

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   1,
		Title: "Calorie Counting",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// PartA returns the largest calorie total carried by a single elf.
func PartA(input string) (int, error) {
	totals, err := Totals(input)
	if err != nil {
		return 0, err
	}

	return totals[0], nil
}

// PartB returns the combined calories of the three best-stocked elves.
// Fewer than three elves are summed as they are.
func PartB(input string) (int, error) {
	totals, err := Totals(input)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, v := range totals[:min(3, len(totals))] {
		sum += v
	}

	return sum, nil
}

// Totals returns each elf's calorie total, largest first.
// An input without any elf yields puzzle.ErrNoAnswer.
func Totals(input string) ([]int, error) {
	blocks := puzzle.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: no elves found", puzzle.ErrNoAnswer)
	}
	totals := make([]int, len(blocks))
	for i, block := range blocks {
		for _, line := range block {
			v, err := strconv.Atoi(strings.TrimSpace(line))
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: elf %d: calories %q", puzzle.ErrMalformedInput, i+1, line)
			}
			totals[i] += v
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(totals)))

	return totals, nil
}
