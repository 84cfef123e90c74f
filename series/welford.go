package series

import "math"

// Accumulator computes running mean and variance over a stream of values
// using Welford's online algorithm, so a full series never needs to be held
// in memory. The zero value is ready to use.
//
// An Accumulator is NOT safe for concurrent Add calls; each goroutine should
// own its accumulator.
//
// Example:
//
//	var acc series.Accumulator
//	for _, v := range stream {
//	    acc.Add(v)
//	}
//	m, err := acc.Mean()
//	sd, err := acc.StdDev()
type Accumulator struct {
	count int
	mean  float64
	m2    float64
}

// Add folds one value into the running statistics.
func (a *Accumulator) Add(v float64) {
	a.count++
	delta := v - a.mean
	a.mean += delta / float64(a.count)
	a.m2 += delta * (v - a.mean)
}

// Count returns the number of values accumulated so far.
func (a *Accumulator) Count() int {
	return a.count
}

// Mean returns the running arithmetic mean.
//
// Errors:
//   - ErrEmptyInput — if no values have been added yet.
func (a *Accumulator) Mean() (float64, error) {
	if a.count == 0 {
		return 0, ErrEmptyInput
	}

	return a.mean, nil
}

// Variance returns the running POPULATION variance (denominator n),
// matching Variance on the equivalent full slice.
//
// Errors:
//   - ErrEmptyInput — if no values have been added yet.
func (a *Accumulator) Variance() (float64, error) {
	if a.count == 0 {
		return 0, ErrEmptyInput
	}

	return a.m2 / float64(a.count), nil
}

// SampleVariance returns the running SAMPLE variance (denominator n−1).
//
// Errors:
//   - ErrEmptyInput — if fewer than two values have been added.
func (a *Accumulator) SampleVariance() (float64, error) {
	if a.count < 2 {
		return 0, ErrEmptyInput
	}

	return a.m2 / float64(a.count-1), nil
}

// StdDev returns the running POPULATION standard deviation, matching StdDev
// on the equivalent full slice.
//
// Errors:
//   - ErrEmptyInput — if no values have been added yet.
func (a *Accumulator) StdDev() (float64, error) {
	v, err := a.Variance()
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}
