// Package series: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the series
// package. All functions return these sentinels and tests check them via
// errors.Is. No function panics on user-triggered error conditions.
package series

import "errors"

var (
	// ErrEmptyInput indicates a zero-length series where at least one
	// element is required (Max, Min, Mean, StdDev, ScaleMinMax, ...).
	ErrEmptyInput = errors.New("series: input must be non-empty")

	// ErrLengthMismatch indicates that a paired operation (PearsonR,
	// Covariance) received two series of different lengths. The contract is
	// an explicit error, never a silently truncated zip.
	ErrLengthMismatch = errors.New("series: input lengths must match")

	// ErrDegenerateRange indicates zero spread where a spread-normalized
	// result is requested: ScaleMinMax with max == min, ZScore or PearsonR
	// on a constant series. Reported instead of producing NaN or ±Inf.
	ErrDegenerateRange = errors.New("series: degenerate range (all elements equal)")

	// ErrBadLag indicates a negative maximum lag passed to AutoCorr.
	ErrBadLag = errors.New("series: maximum lag must be non-negative")
)
