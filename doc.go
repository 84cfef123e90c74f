// Package scigo is a small scientific-computing toolbox: series statistics
// and spherical-coordinate values, with explicit errors where the math
// degenerates.
//
// 🚀 What is scigo?
//
//	A compact, dependency-light library bringing together:
//		• series/    — aggregate statistics over []float64 samples:
//		  max, min, mean, population standard deviation, Pearson
//		  correlation, min-max scaling, z-scoring, autocorrelation,
//		  plus a streaming Welford accumulator
//		• spherical/ — a spherical-coordinate value type (r, θ, φ)
//		  with scalar multiply/divide, negation and display
//
// ✨ Why choose scigo?
//
//   - Explicit failure modes – degenerate inputs return sentinel errors,
//     never silent NaN or ±Inf
//   - Pure functions – no shared state, safe for concurrent callers
//   - Pure Go – no cgo, minimal deps
//   - Predictable numerics – population (denominator n) conventions,
//     documented per function
//
// Quick sketch:
//
//	x := []float64{0, 1, 2, 3, 4, 5}
//	m, _ := series.Mean(x)    // 2.5
//	s, _ := series.StdDev(x)  // ≈1.7078
//
//	p := spherical.From(1, 0.2, 2.1)
//	p = p.Mul(2)              // r=2 :: theta=0.2 :: phi=2.1
//
// Dive into each package's doc.go for the full surface and error contracts.
//
//	go get github.com/vcambray/scigo
package scigo
