package classbreaks

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TrevorS/classbreaks/stats"
)

// withinClassCost is the total sum of squared deviations from each class
// mean when sorted values are assigned to classes by bounds.
func withinClassCost(sorted, bounds []float64) float64 {
	res := &Result[float64]{ClassCount: len(bounds) - 1, Bounds: bounds}
	groups := make([][]float64, res.ClassCount)
	for _, v := range sorted {
		c, _ := res.ClassIndex(v)
		groups[c] = append(groups[c], v)
	}
	var total float64
	for _, g := range groups {
		total += stats.SumPowDeviations(g, 2)
	}
	return total
}

// bruteForceCost enumerates every way to cut sorted into k contiguous
// classes and returns the smallest within-class cost.
func bruteForceCost(sorted []float64, k int) float64 {
	n := len(sorted)
	best := math.Inf(1)
	cuts := make([]int, k+1)
	cuts[k] = n
	var walk func(class, from int)
	walk = func(class, from int) {
		if class == k {
			var total float64
			for i := 0; i < k; i++ {
				total += stats.SumPowDeviations(sorted[cuts[i]:cuts[i+1]], 2)
			}
			best = min(best, total)
			return
		}
		for c := from; c <= n-(k-class); c++ {
			cuts[class] = c
			walk(class+1, c+1)
		}
	}
	cuts[0] = 0
	walk(1, 1)
	return best
}

func TestNaturalBreaksOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(9)
		k := 2 + rng.Intn(min(3, n-1))
		sorted := make([]float64, n)
		for i := range sorted {
			sorted[i] = rng.Float64() * 100
		}
		slices.Sort(sorted)

		bounds := NaturalBreaks(sorted, k)
		require.Len(t, bounds, k+1)
		got := withinClassCost(sorted, bounds)
		want := bruteForceCost(sorted, k)
		assert.InDelta(t, want, got, 1e-9, "n=%d k=%d sample=%v bounds=%v", n, k, sorted, bounds)
	}
}

func TestNaturalBreaksSingleValueFirstClass(t *testing.T) {
	// The lone low outlier must be able to form a class on its own.
	bounds := NaturalBreaks([]float64{1, 20, 21, 22}, 2)
	assert.Equal(t, []float64{1, 1, 22}, bounds)
}

func TestNaturalBreaksWellSeparated(t *testing.T) {
	sorted := []float64{1, 2, 3, 10, 11, 12, 30}
	assert.Equal(t, []float64{1, 3, 12, 30}, NaturalBreaks(sorted, 3))
}

func TestNaturalBreaksBoundsAreSampleValues(t *testing.T) {
	sorted := skewedSample(150, 17)
	slices.Sort(sorted)
	for _, b := range NaturalBreaks(sorted, 6) {
		_, found := slices.BinarySearch(sorted, b)
		assert.True(t, found, "bound %v is not a sample value", b)
	}
}

func TestNaturalBreaksStandaloneEdges(t *testing.T) {
	assert.Nil(t, NaturalBreaks([]float64{}, 3))
	assert.Equal(t, []float64{5, 5}, NaturalBreaks([]float64{5}, 3), "k is clamped to n")
	assert.Equal(t, []float64{1, 9}, NaturalBreaks([]float64{1, 4, 9}, 0), "k < 1 acts as one class")
	assert.Equal(t, []float64{1, 1, 4, 9}, NaturalBreaks([]float64{1, 4, 9}, 10))
}

func TestNaturalBreaksDuplicates(t *testing.T) {
	sorted := []float64{2, 2, 2, 2, 7, 7, 7, 15, 15}
	assert.Equal(t, []float64{2, 2, 7, 15}, NaturalBreaks(sorted, 3))
}

func TestTableIndexing(t *testing.T) {
	tbl := newTable(3, 2, -1)
	tbl.set(2, 1, 7)
	tbl.set(0, 0, 4)
	assert.Equal(t, 7, tbl.at(2, 1))
	assert.Equal(t, 4, tbl.at(0, 0))
	assert.Equal(t, -1, tbl.at(1, 1))
	assert.Equal(t, []int{4, -1, -1, -1, -1, 7}, tbl.cells, "row-major layout")

	assert.Panics(t, func() { tbl.at(0, 2) }, "column overflow must not reach the next row")
	assert.Panics(t, func() { tbl.at(3, 0) })
	assert.Panics(t, func() { tbl.set(-1, 0, 1) })
}

func TestNaturalBreaksFloat32MatchesFloat64(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		n := 5 + rng.Intn(40)
		sorted64 := make([]float64, n)
		for i := range sorted64 {
			// Quarter steps are exact in both widths.
			sorted64[i] = math.Round(rng.NormFloat64()*40) / 4
		}
		slices.Sort(sorted64)
		sorted32 := make([]float32, n)
		for i, v := range sorted64 {
			sorted32[i] = float32(v)
		}
		k := 2 + rng.Intn(min(n-1, 6))

		want := NaturalBreaks(sorted64, k)
		got := NaturalBreaks(sorted32, k)
		require.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i], float64(got[i]), "trial %d k=%d bound %d", trial, k, i)
		}
	}
}

func TestNaturalBreaksScaleInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 30; trial++ {
		n := 4 + rng.Intn(30)
		sorted := make([]float64, n)
		for i := range sorted {
			sorted[i] = rng.ExpFloat64() * 100
		}
		slices.Sort(sorted)
		k := 2 + rng.Intn(min(n-1, 5))

		base := NaturalBreaks(sorted, k)
		for _, exp := range []int{-900, -300, 300, 900} {
			scaled := make([]float64, n)
			for i, v := range sorted {
				scaled[i] = math.Ldexp(v, exp)
			}
			got := NaturalBreaks(scaled, k)
			require.Len(t, got, len(base))
			for i := range base {
				assert.Equal(t, math.Ldexp(base[i], exp), got[i], "trial %d exp %d bound %d", trial, exp, i)
			}
		}
	}
}

func TestJenksBoundsNeverCutBelowFirstRank(t *testing.T) {
	// A start table that was never updated points every class at rank 1.
	sorted := []float64{1, 2, 3, 4}
	start := newTable(4, 3, 1)
	assert.NotPanics(t, func() {
		assert.Equal(t, []float64{1, 1, 2, 4}, jenksBounds(sorted, start, 3))
	})
}

func TestUnitScale(t *testing.T) {
	assert.Equal(t, 1.0, unitScale([]float64{0, 0}))
	assert.Equal(t, 1.0/16, unitScale([]float64{1, 12}))
	assert.Equal(t, 1.0/16, unitScale([]float64{-12, 3}))
	assert.Equal(t, 2.0, unitScale([]float64{0.25, 0.3}))
	assert.False(t, math.IsInf(unitScale([]float64{5e-324, 1e-320}), 0))
}
