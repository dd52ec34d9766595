package dtw_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/warp/dtw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProperty_BackwardCompatible: the legacy symmetric penalty equals the
// same value given in both directions.
func TestProperty_BackwardCompatible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 50; iter++ {
		a := randomSeries(rng, 1+rng.Intn(15))
		b := randomSeries(rng, 1+rng.Intn(15))
		p := rng.Float64() * 4

		legacy, err := dtw.Distance(a, b, dtw.WithPenalty(p))
		require.NoError(t, err)
		split, err := dtw.Distance(a, b, dtw.WithPenaltyS1(p), dtw.WithPenaltyS2(p))
		require.NoError(t, err)
		assert.InDelta(t, legacy, split, 1e-9)
	}
}

// TestProperty_ZeroPenaltyIsClassic: explicit zero penalties equal no options.
func TestProperty_ZeroPenaltyIsClassic(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for iter := 0; iter < 50; iter++ {
		a := randomSeries(rng, 1+rng.Intn(15))
		b := randomSeries(rng, 1+rng.Intn(15))

		classic, err := dtw.Distance(a, b)
		require.NoError(t, err)
		zero, err := dtw.Distance(a, b, dtw.WithPenaltyS1(0), dtw.WithPenaltyS2(0))
		require.NoError(t, err)
		assert.InDelta(t, classic, zero, 1e-9)
	}
}

// TestProperty_DirectionalMonotonicity: lowering one direction's penalty
// (the other held fixed) never increases the distance.
func TestProperty_DirectionalMonotonicity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for iter := 0; iter < 40; iter++ {
		a := randomSeries(rng, 1+rng.Intn(10))
		b := randomSeries(rng, len(a)+rng.Intn(10))
		fixed := rng.Float64() * 2

		prev := -1.0
		for _, s2 := range []float64{0, 0.25, 0.5, 1, 2, 4} {
			d, err := dtw.Distance(a, b, dtw.WithPenaltyS1(fixed), dtw.WithPenaltyS2(s2))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, prev, "penalty_s2=%v", s2)
			prev = d
		}

		prev = -1.0
		for _, s1 := range []float64{0, 0.25, 0.5, 1, 2, 4} {
			d, err := dtw.Distance(b, a, dtw.WithPenaltyS1(s1), dtw.WithPenaltyS2(fixed))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, d, prev, "penalty_s1=%v", s1)
			prev = d
		}
	}
}

// TestProperty_TransposeSwapsPenalties: swapping the sequences and the two
// penalties gives the same distance.
func TestProperty_TransposeSwapsPenalties(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for iter := 0; iter < 40; iter++ {
		a := randomSeries(rng, 1+rng.Intn(12))
		b := randomSeries(rng, 1+rng.Intn(12))
		p := dtw.Penalties{S1: rng.Float64(), S2: 3 * rng.Float64()}

		strategies(t, func(t *testing.T, s dtw.Strategy) {
			ab, err := dtw.Distance(a, b, dtw.WithStrategy(s), dtw.WithPenalties(p))
			require.NoError(t, err)
			ba, err := dtw.Distance(b, a, dtw.WithStrategy(s), dtw.WithPenalties(dtw.Penalties{S1: p.S2, S2: p.S1}))
			require.NoError(t, err)
			assert.InDelta(t, ab, ba, 1e-9)
		})
	}
}

// TestProperty_MemoryModesAgree: rolling rows and the full matrix report the
// same distance.
func TestProperty_MemoryModesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 40; iter++ {
		a := randomSeries(rng, 1+rng.Intn(20))
		b := randomSeries(rng, 1+rng.Intn(20))
		opts := []dtw.Option{dtw.WithPenaltyS1(0.3), dtw.WithPenaltyS2(1.7)}

		full, err := dtw.Distance(a, b, append(opts, dtw.WithMemoryMode(dtw.FullMatrix))...)
		require.NoError(t, err)
		rows, err := dtw.Distance(a, b, append(opts, dtw.WithMemoryMode(dtw.TwoRows))...)
		require.NoError(t, err)
		assert.Equal(t, full, rows)
	}
}

// TestConcurrentCalls: calls share no state and may run in parallel.
func TestConcurrentCalls(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	a := randomSeries(rng, 40)
	b := randomSeries(rng, 55)
	opts := []dtw.Option{dtw.WithPenaltyS1(0.5), dtw.WithPenaltyS2(2)}

	want, err := dtw.Distance(a, b, opts...)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 128)
	for g := 0; g < 64; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			strategy := dtw.Reference
			if g%2 == 0 {
				strategy = dtw.Optimized
			}
			res, err := dtw.DTW(a, b, append([]dtw.Option{dtw.WithStrategy(strategy), dtw.WithPath()}, opts...)...)
			if err != nil {
				errs <- err
				return
			}
			if res.Distance != want {
				errs <- assert.AnError
				return
			}
			errs <- dtw.ValidatePath(res.Path, len(a), len(b))
		}(g)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}
