package gates_test

import (
	"math/rand"
	"slices"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/interview/gates"
)

// flight is the raw shape gofuzz fills; small widths force plenty of ties.
type flight struct {
	Start    uint8
	Duration uint8
}

// randomDay turns fuzzed flights into a valid, start-sorted schedule.
func randomDay(f *fuzz.Fuzzer) []gates.Interval[int] {
	var raw []flight
	f.Fuzz(&raw)

	ivs := make([]gates.Interval[int], len(raw))
	for i, r := range raw {
		start := int(r.Start)
		ivs[i] = gates.Interval[int]{Start: start, End: start + int(r.Duration%40)}
	}
	slices.SortStableFunc(ivs, func(a, b gates.Interval[int]) int { return a.Start - b.Start })

	return ivs
}

// bruteForcePeak counts, minute by minute, how many intervals cover each minute.
func bruteForcePeak(ivs []gates.Interval[int]) int {
	var cover [256 + 40]int
	peak := 0
	for _, iv := range ivs {
		for m := iv.Start; m <= iv.End; m++ {
			cover[m]++
			peak = max(peak, cover[m])
		}
	}

	return peak
}

// TestCounters_AgreeOnRandomDays cross-validates all strategies against each
// other and against a per-minute occupancy count.
func TestCounters_AgreeOnRandomDays(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(0, 60).RandSource(rand.NewSource(42))

	sweep := gates.SweepLine[int]{}
	pq := gates.MinHeap[int]{}
	naive := gates.Naive[int]{}

	for i := 0; i < 2000; i++ {
		ivs := randomDay(f)
		require.NoError(t, gates.Validate(ivs))

		want := bruteForcePeak(ivs)
		require.Equal(t, want, sweep.Count(ivs), "sweep on %v", ivs)
		require.Equal(t, want, pq.Count(ivs), "heap on %v", ivs)
		require.Equal(t, want, naive.Count(ivs), "naive on %v", ivs)
	}
}

// TestSweepLine_OrderIndependent shuffles input; the sweep line sorts events itself.
func TestSweepLine_OrderIndependent(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 30).RandSource(rand.NewSource(7))
	rnd := rand.New(rand.NewSource(7))
	sweep := gates.SweepLine[int]{}

	for i := 0; i < 500; i++ {
		ivs := randomDay(f)
		want := sweep.Count(ivs)

		shuffled := slices.Clone(ivs)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		require.Equal(t, want, sweep.Count(shuffled))
	}
}
