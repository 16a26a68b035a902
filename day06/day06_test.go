package day06_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/day06"
	"github.com/katalvlaran/aoc2022/puzzle"
)

func TestExamples(t *testing.T) {
	cases := []struct {
		stream       string
		packet, mesg int
	}{
		{"mjqjpqmgbljsphdztnvjfqwrcgsmlb", 7, 19},
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		t.Run(tc.stream, func(t *testing.T) {
			a, err := day06.PartA(tc.stream + "\n")
			require.NoError(t, err)
			assert.Equal(t, tc.packet, a)

			b, err := day06.PartB(tc.stream)
			require.NoError(t, err)
			assert.Equal(t, tc.mesg, b)
		})
	}
}

func TestMarker_Edges(t *testing.T) {
	n, err := day06.Marker("abcd", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	n, err = day06.Marker("z", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = day06.Marker("abc", 4)
	assert.ErrorIs(t, err, puzzle.ErrNoAnswer)

	_, err = day06.Marker("aaaaaaaa", 2)
	assert.ErrorIs(t, err, puzzle.ErrNoAnswer)

	_, err = day06.Marker("abcd", 0)
	assert.ErrorIs(t, err, puzzle.ErrNoAnswer)

	_, err = day06.Marker("ab1cd", 4)
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
