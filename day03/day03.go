// Package day03 solves "Rucksack Reorganization": every line is a rucksack
// whose two halves are its compartments, and every item is a letter.
package day03

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// groupSize is the number of elves sharing a badge.
const groupSize = 3

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   3,
		Title: "Rucksack Reorganization",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// PartA sums the priority of the item found in both compartments of each rucksack.
func PartA(input string) (int, error) {
	sum := 0
	for i, line := range puzzle.Lines(input) {
		if len(line)%2 != 0 {
			return 0, fmt.Errorf("%w: rucksack %d has odd size %d", puzzle.ErrMalformedInput, i+1, len(line))
		}
		left, err := Items(line[:len(line)/2])
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		right, err := Items(line[len(line)/2:])
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		p, err := (left & right).Priority()
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		sum += p
	}

	return sum, nil
}

// PartB sums the priority of the badge carried by every group of three elves.
func PartB(input string) (int, error) {
	lines := puzzle.Lines(input)
	if len(lines)%groupSize != 0 {
		return 0, fmt.Errorf("%w: %d rucksacks do not form groups of %d", puzzle.ErrMalformedInput, len(lines), groupSize)
	}
	sum := 0
	for g := 0; g < len(lines); g += groupSize {
		common := ^Set(0)
		for _, line := range lines[g : g+groupSize] {
			s, err := Items(line)
			if err != nil {
				return 0, fmt.Errorf("group %d: %w", g/groupSize+1, err)
			}
			common &= s
		}
		p, err := common.Priority()
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", g/groupSize+1, err)
		}
		sum += p
	}

	return sum, nil
}

// Set is a bitset of item types indexed by priority (a-z → 1..26, A-Z → 27..52).
type Set uint64

// Items returns the set of item types in s.
func Items(s string) (Set, error) {
	var set Set
	for i := 0; i < len(s); i++ {
		p, err := priority(s[i])
		if err != nil {
			return 0, err
		}
		set |= 1 << p
	}

	return set, nil
}

// Priority returns the priority of the single item type in the set.
// An empty set yields puzzle.ErrNoAnswer, more than one item type
// puzzle.ErrMalformedInput.
func (s Set) Priority() (int, error) {
	switch bits.OnesCount64(uint64(s)) {
	case 0:
		return 0, fmt.Errorf("%w: no shared item", puzzle.ErrNoAnswer)
	case 1:
		return bits.TrailingZeros64(uint64(s)), nil
	default:
		return 0, fmt.Errorf("%w: %d shared item types", puzzle.ErrMalformedInput, bits.OnesCount64(uint64(s)))
	}
}

func priority(c byte) (int, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%w: item %q", puzzle.ErrMalformedInput, c)
	}
}
