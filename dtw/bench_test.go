package dtw_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/warp/dtw"
)

// benchmarkDTW runs DTW on sine sequences of lengths n and m using opts.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkDTW(b *testing.B, n, m int, opts ...dtw.Option) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := range a {
		a[i] = math.Sin(float64(i) * 0.05)
	}
	for j := range bSeq {
		bSeq[j] = math.Sin(float64(j) * 0.05 * float64(n) / float64(m))
	}
	opts = append(opts, dtw.WithPenaltyS1(0.5), dtw.WithPenaltyS2(2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.DTW(a, bSeq, opts...); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

// BenchmarkDTW_TwoRows benchmarks the rolling-row distance, optimized tier.
func BenchmarkDTW_TwoRows(b *testing.B) {
	benchmarkDTW(b, 500, 400, dtw.WithMemoryMode(dtw.TwoRows))
}

// BenchmarkDTW_TwoRowsReference: the reference tier still builds the grid.
func BenchmarkDTW_TwoRowsReference(b *testing.B) {
	benchmarkDTW(b, 500, 400, dtw.WithMemoryMode(dtw.TwoRows), dtw.WithStrategy(dtw.Reference))
}

// BenchmarkDTW_FullMatrix benchmarks the full-matrix distance.
func BenchmarkDTW_FullMatrix(b *testing.B) {
	benchmarkDTW(b, 500, 400, dtw.WithMemoryMode(dtw.FullMatrix))
}

// BenchmarkDTW_PathOptimized benchmarks path recovery from the direction trace.
func BenchmarkDTW_PathOptimized(b *testing.B) {
	benchmarkDTW(b, 500, 400, dtw.WithPath())
}

// BenchmarkDTW_PathReference benchmarks path recovery by grid backtracking.
func BenchmarkDTW_PathReference(b *testing.B) {
	benchmarkDTW(b, 500, 400, dtw.WithPath(), dtw.WithStrategy(dtw.Reference))
}

// BenchmarkDTW_Large benchmarks a 2000×2000 distance-only query.
func BenchmarkDTW_Large(b *testing.B) {
	benchmarkDTW(b, 2000, 2000)
}

// BenchmarkCheckEquivalence benchmarks the full side-by-side check.
func BenchmarkCheckEquivalence(b *testing.B) {
	a := make([]float64, 200)
	c := make([]float64, 150)
	for i := range a {
		a[i] = math.Sin(float64(i) * 0.1)
	}
	for j := range c {
		c[j] = math.Cos(float64(j) * 0.13)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dtw.CheckEquivalence(a, c, dtw.WithPenalty(1)); err != nil {
			b.Fatal(err)
		}
	}
}
