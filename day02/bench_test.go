package day02_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2022/day02"
)

func BenchmarkPartA(b *testing.B) {
	input := strings.Repeat(example, 800)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = day02.PartA(input)
	}
}

func BenchmarkPartB(b *testing.B) {
	input := strings.Repeat(example, 800)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = day02.PartB(input)
	}
}
