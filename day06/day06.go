// Package day06 solves "Tuning Trouble": find where the first run of
// distinct characters of a given length ends in a datastream.
package day06

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2022/puzzle"
)

const (
	packetMarker  = 4
	messageMarker = 14
)

// Solution registers both parts with the runner.
func Solution() puzzle.Solution {
	return puzzle.Solution{
		Day:   6,
		Title: "Tuning Trouble",
		PartA: puzzle.Solve(PartA),
		PartB: puzzle.Solve(PartB),
	}
}

// PartA locates the start-of-packet marker.
func PartA(input string) (int, error) { return Marker(input, packetMarker) }

// PartB locates the start-of-message marker.
func PartB(input string) (int, error) { return Marker(input, messageMarker) }

// Marker returns the number of characters consumed when the last `size`
// characters are first pairwise distinct. The scan keeps per-byte counts
// over a sliding window, so it runs in O(len(input)).
func Marker(input string, size int) (int, error) {
	stream := strings.TrimSpace(input)
	if size < 1 {
		return 0, fmt.Errorf("%w: marker size %d", puzzle.ErrNoAnswer, size)
	}
	var (
		counts [256]int
		dupes  int // window bytes whose count is above one
	)
	for i := 0; i < len(stream); i++ {
		c := stream[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: byte %q at offset %d", puzzle.ErrMalformedInput, c, i)
		}
		counts[c]++
		if counts[c] == 2 {
			dupes++
		}
		if i >= size {
			old := stream[i-size]
			if counts[old] == 2 {
				dupes--
			}
			counts[old]--
		}
		if i+1 >= size && dupes == 0 {
			return i + 1, nil
		}
	}

	return 0, fmt.Errorf("%w: no %d-character marker", puzzle.ErrNoAnswer, size)
}
