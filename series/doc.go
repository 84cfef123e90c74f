// Package series computes aggregate statistics over ordered samples of
// float64 values, with explicit sentinel errors for degenerate inputs.
//
// 🚀 What is series?
//
//	Pure functions over []float64 — no shared state, no I/O:
//	  • Extremes & sums:   Max, Min, Sum, Range
//	  • Central tendency:  Mean, Median
//	  • Dispersion:        Variance, StdDev (population, denominator n)
//	  • Association:       Covariance, PearsonR, AutoCorr
//	  • Transforms:        ScaleMinMax, ZScore
//	  • Streaming:         Accumulator (Welford online mean/variance)
//
// ✨ Key guarantees:
//   - Every degenerate case is a sentinel error, never a silent NaN/Inf:
//     empty input → ErrEmptyInput, mismatched pair lengths →
//     ErrLengthMismatch, zero spread → ErrDegenerateRange.
//   - Inputs are read-only; transforms return fresh slices.
//   - Functions compose (StdDev calls Mean) instead of sharing accumulator
//     state, so each is testable in isolation and callers may parallelize
//     freely.
//
// ⚙️ Usage:
//
//	import "github.com/vcambray/scigo/series"
//
//	x := []float64{0, 1, 2, 3, 4, 5}
//	m, err := series.Mean(x)           // 2.5
//	s, err := series.StdDev(x)         // ≈1.707825127659933
//	y, err := series.ScaleMinMax(x, 2, -1)
//	r, err := series.PearsonR(x, y)    // -1 (affine with negative slope)
//
// Check errors with errors.Is against the package sentinels.
//
// Complexity: every function is a constant number of passes over its input —
// O(n) time, O(1) extra memory (O(n) for the slice-returning transforms,
// O(n log n) for Median's sorted copy).
package series
