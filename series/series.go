package series

import (
	"math"
	"sort"
)

// Sum returns the sum of all elements of s.
//
// Errors:
//   - ErrEmptyInput — if s is empty.
//
// Complexity: O(n) time, O(1) memory.
func Sum(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}

	return sum, nil
}

// Max returns the greatest element of s.
//
// The scan starts from the first element and uses a strict greater-than
// comparison, so ties keep the first-seen maximum.
//
// Errors:
//   - ErrEmptyInput — if s is empty.
//
// Complexity: O(n) time, O(1) memory.
func Max(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	cur := s[0]
	for _, v := range s[1:] {
		if v > cur {
			cur = v
		}
	}

	return cur, nil
}

// Min returns the smallest element of s.
//
// Symmetric to Max: strict less-than scan from the first element, ties keep
// the first-seen minimum.
//
// Errors:
//   - ErrEmptyInput — if s is empty.
//
// Complexity: O(n) time, O(1) memory.
func Min(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	cur := s[0]
	for _, v := range s[1:] {
		if v < cur {
			cur = v
		}
	}

	return cur, nil
}

// Range returns the spread of s: Max(s) − Min(s).
//
// Errors:
//   - ErrEmptyInput — if s is empty.
func Range(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := s[0], s[0]
	for _, v := range s[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return hi - lo, nil
}

// Mean returns the arithmetic mean of s:
//
//	m = (1/n) Σ xᵢ
//
// Errors:
//   - ErrEmptyInput — if s is empty (guarded explicitly; a zero-length
//     division is never allowed to produce NaN).
//
// Complexity: O(n) time, O(1) memory.
func Mean(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}

	return sum / float64(len(s)), nil
}

// Median returns the middle value of s: the midpoint element of the sorted
// sample for odd n, the average of the two midpoint elements for even n.
// The input is not modified; sorting happens on a copy.
//
// Errors:
//   - ErrEmptyInput — if s is empty.
//
// Complexity: O(n log n) time, O(n) memory.
func Median(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	sorted := make([]float64, len(s))
	copy(sorted, s)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}

	return (sorted[mid-1] + sorted[mid]) / 2, nil
}

// Variance returns the POPULATION variance of s — squared deviations from
// the mean averaged with denominator n, not the n−1 sample estimator:
//
//	σ² = (1/n) Σ (xᵢ − m)²
//
// Errors:
//   - ErrEmptyInput — if s is empty.
//
// Complexity: O(n) time, O(1) memory.
func Variance(s []float64) (float64, error) {
	m, err := Mean(s)
	if err != nil {
		return 0, err
	}
	sumSq := 0.0
	for _, v := range s {
		d := v - m
		sumSq += d * d
	}

	return sumSq / float64(len(s)), nil
}

// StdDev returns the POPULATION standard deviation of s:
//
//	σ = √( (1/n) Σ (xᵢ − m)² )
//
// where m is Mean(s). Composed from Variance rather than sharing accumulator
// state, so both remain independently testable.
//
// Errors:
//   - ErrEmptyInput — if s is empty.
//
// Complexity: O(n) time, O(1) memory.
func StdDev(s []float64) (float64, error) {
	v, err := Variance(s)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}
