package gates_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/interview/gates"
)

// buildDay generates n sorted intervals with overlapping durations.
func buildDay(n int) []gates.Interval[int64] {
	rnd := rand.New(rand.NewSource(1))
	ivs := make([]gates.Interval[int64], n)
	var t int64
	for i := range ivs {
		t += rnd.Int63n(5)
		ivs[i] = gates.Interval[int64]{Start: t, End: t + rnd.Int63n(200)}
	}

	return ivs
}

func benchmarkCounter(b *testing.B, c gates.Counter[int64], n int) {
	ivs := buildDay(n)
	b.ResetTimer() // exclude generation
	for i := 0; i < b.N; i++ {
		_ = c.Count(ivs)
	}
}

// BenchmarkSweepLine_10k measures event sorting plus the linear sweep.
func BenchmarkSweepLine_10k(b *testing.B) { benchmarkCounter(b, gates.SweepLine[int64]{}, 10_000) }

// BenchmarkMinHeap_10k measures heap-based gate reuse.
func BenchmarkMinHeap_10k(b *testing.B) { benchmarkCounter(b, gates.MinHeap[int64]{}, 10_000) }

// BenchmarkNaive_1k is kept small: the scan is quadratic in the gate count.
func BenchmarkNaive_1k(b *testing.B) { benchmarkCounter(b, gates.Naive[int64]{}, 1_000) }
