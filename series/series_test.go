package series_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/vcambray/scigo/series"
)

//----------------------------------------------------------------------------//
// Empty-input contract
//----------------------------------------------------------------------------//

// TestEmptyInput verifies that every aggregate rejects a zero-length series
// with ErrEmptyInput instead of indexing out of bounds or dividing by zero.
func TestEmptyInput(t *testing.T) {
	cases := []struct {
		name string
		call func([]float64) (float64, error)
	}{
		{"Sum", series.Sum},
		{"Max", series.Max},
		{"Min", series.Min},
		{"Range", series.Range},
		{"Mean", series.Mean},
		{"Median", series.Median},
		{"Variance", series.Variance},
		{"StdDev", series.StdDev},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call(nil)
			if !errors.Is(err, series.ErrEmptyInput) {
				t.Errorf("%s(nil) error = %v; want ErrEmptyInput", tc.name, err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Known values
//----------------------------------------------------------------------------//

// TestMean_KnownValue checks the textbook mean of 0..5.
func TestMean_KnownValue(t *testing.T) {
	m, err := series.Mean([]float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m, "mean of 0..5 must be exactly 2.5")
}

// TestStdDev_KnownValue checks the population standard deviation of 0..5
// against its closed-form value.
func TestStdDev_KnownValue(t *testing.T) {
	s, err := series.StdDev([]float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.InDelta(t, 1.707825127659933, s, 1e-10, "population std dev of 0..5")
}

// TestMaxMin_FirstSeenStrictScan exercises the strict-comparison scan on a
// series with interior extremes and negatives.
func TestMaxMin_FirstSeenStrictScan(t *testing.T) {
	v := []float64{0.0, 1.2, -0.1, 5.2, 0.254, 2.8}

	hi, err := series.Max(v)
	require.NoError(t, err)
	assert.Equal(t, 5.2, hi)

	lo, err := series.Min(v)
	require.NoError(t, err)
	assert.Equal(t, -0.1, lo)

	spread, err := series.Range(v)
	require.NoError(t, err)
	assert.InDelta(t, 5.3, spread, 1e-12)
}

// TestMedian covers odd and even lengths and confirms the input survives
// unsorted.
func TestMedian(t *testing.T) {
	odd := []float64{3, 1, 2}
	m, err := series.Median(odd)
	require.NoError(t, err)
	assert.Equal(t, 2.0, m)
	assert.Equal(t, []float64{3, 1, 2}, odd, "input must not be reordered")

	even := []float64{4, 1, 3, 2}
	m, err = series.Median(even)
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestOrderingProperty asserts min(S) <= mean(S) <= max(S) on random data.
func TestOrderingProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		n := 1 + rng.Intn(64)
		s := make([]float64, n)
		for i := range s {
			s[i] = rng.NormFloat64() * 10
		}

		lo, err := series.Min(s)
		require.NoError(t, err)
		m, err := series.Mean(s)
		require.NoError(t, err)
		hi, err := series.Max(s)
		require.NoError(t, err)

		assert.LessOrEqual(t, lo, m)
		assert.LessOrEqual(t, m, hi)
	}
}

// TestStdDev_ZeroIffConstant asserts std dev is non-negative, zero exactly on
// constant series and strictly positive otherwise.
func TestStdDev_ZeroIffConstant(t *testing.T) {
	s, err := series.StdDev([]float64{7, 7, 7, 7})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s, "constant series has zero std dev")

	s, err = series.StdDev([]float64{7, 7, 7, 7.0001})
	require.NoError(t, err)
	assert.Greater(t, s, 0.0, "non-constant series has positive std dev")
}

//----------------------------------------------------------------------------//
// Cross-check against gonum
//----------------------------------------------------------------------------//

// TestAggregates_AgainstGonum compares every aggregate with the gonum
// reference implementation on deterministic random data.
func TestAggregates_AgainstGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := make([]float64, 500)
	for i := range s {
		s[i] = rng.NormFloat64()*3 + 1
	}

	hi, err := series.Max(s)
	require.NoError(t, err)
	assert.Equal(t, floats.Max(s), hi)

	lo, err := series.Min(s)
	require.NoError(t, err)
	assert.Equal(t, floats.Min(s), lo)

	sum, err := series.Sum(s)
	require.NoError(t, err)
	assert.InDelta(t, floats.Sum(s), sum, 1e-9)

	m, err := series.Mean(s)
	require.NoError(t, err)
	assert.InDelta(t, stat.Mean(s, nil), m, 1e-12)

	sd, err := series.StdDev(s)
	require.NoError(t, err)
	assert.InDelta(t, stat.PopStdDev(s, nil), sd, 1e-12)

	v, err := series.Variance(s)
	require.NoError(t, err)
	assert.InDelta(t, stat.PopVariance(s, nil), v, 1e-12)
}
