package puzzle_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/puzzle"
)

func echo(input string) (string, error) { return input, nil }

func stub(day int) puzzle.Solution {
	return puzzle.Solution{Day: day, Title: "Stub " + strconv.Itoa(day), PartA: echo, PartB: echo}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r, err := puzzle.NewRegistry(stub(12), stub(1), stub(6))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 6, 12}, r.Days())

	s, err := r.Get(6)
	require.NoError(t, err)
	assert.Equal(t, "day06", s.Name())
	assert.Equal(t, "Stub 6", s.Title)

	_, err = r.Get(7)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRegistry_Errors(t *testing.T) {
	cases := []struct {
		name string
		sols []puzzle.Solution
		err  error
	}{
		{"Duplicate", []puzzle.Solution{stub(3), stub(3)}, puzzle.ErrDuplicateDay},
		{"DayZero", []puzzle.Solution{stub(0)}, puzzle.ErrInvalidSolution},
		{"DayTooLate", []puzzle.Solution{stub(26)}, puzzle.ErrInvalidSolution},
		{"MissingPart", []puzzle.Solution{{Day: 4, PartA: echo}}, puzzle.ErrInvalidSolution},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := puzzle.NewRegistry(tc.sols...)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestRegistry_Concurrent registers and reads from many goroutines.
func TestRegistry_Concurrent(t *testing.T) {
	r, err := puzzle.NewRegistry()
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(25)
	for d := 1; d <= 25; d++ {
		go func(d int) {
			defer wg.Done()
			_ = r.Register(stub(d))
			_ = r.Days()
		}(d)
	}
	wg.Wait()
	require.Len(t, r.Days(), 25)
}

func TestSolve(t *testing.T) {
	part := puzzle.Solve(func(s string) (int, error) { return strconv.Atoi(s) })

	got, err := part("42")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	_, err = part("x")
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestLines(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"Empty", "", []string{}},
		{"TrailingNewlines", "a\nb\n\n\n", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"InteriorBlank", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, puzzle.Lines(tc.input)); diff != "" {
				t.Errorf("Lines(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	want := [][]string{{"1", "2"}, {"3"}, {"4", "5"}}
	for _, input := range []string{
		"1\n2\n\n3\n\n4\n5\n",
		"1\r\n2\r\n\r\n3\r\n\r\n4\r\n5",
		"\n\n1\n2\n\n\n\n3\n\n4\n5\n\n",
	} {
		if diff := cmp.Diff(want, puzzle.Blocks(input)); diff != "" {
			t.Errorf("Blocks(%q) mismatch (-want +got):\n%s", input, diff)
		}
	}
	assert.Empty(t, puzzle.Blocks("\n\n"))
}
