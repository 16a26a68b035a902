package day01_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2022/day01"
)

func BenchmarkPartA(b *testing.B) {
	input := strings.Repeat(example, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = day01.PartA(input)
	}
}

func BenchmarkPartB(b *testing.B) {
	input := strings.Repeat(example, 300)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = day01.PartB(input)
	}
}
