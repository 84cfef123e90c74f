package series

// ScaleMinMax affinely rescales every element of s so that the existing
// minimum maps to a and the existing maximum maps to b:
//
//	scaled = a + (x − min) · (b − a) / (max − min)
//
// The mapping is monotonic for a < b and reversed for a > b. The input slice
// is left untouched; a fresh slice is returned.
//
// Errors:
//   - ErrEmptyInput      — if s is empty.
//   - ErrDegenerateRange — if all elements are equal (max == min would make
//     the divisor zero; reported instead of NaN/Inf).
//
// Complexity: O(n) time, O(n) memory for the result.
func ScaleMinMax(s []float64, a, b float64) ([]float64, error) {
	lo, err := Min(s)
	if err != nil {
		return nil, err
	}
	hi, err := Max(s)
	if err != nil {
		return nil, err
	}
	if hi == lo {
		return nil, ErrDegenerateRange
	}

	ba := b - a
	div := hi - lo
	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = a + (v-lo)*ba/div
	}

	return out, nil
}

// ZScore standardizes s: each element becomes its deviation from the mean in
// units of the population standard deviation, (x − m)/σ. The result has mean
// 0 and population standard deviation 1.
//
// Errors:
//   - ErrEmptyInput      — if s is empty.
//   - ErrDegenerateRange — if s is constant (σ == 0).
//
// Complexity: O(n) time, O(n) memory for the result.
func ZScore(s []float64) ([]float64, error) {
	m, err := Mean(s)
	if err != nil {
		return nil, err
	}
	sd, err := StdDev(s)
	if err != nil {
		return nil, err
	}
	if sd == 0 {
		return nil, ErrDegenerateRange
	}

	out := make([]float64, len(s))
	for i, v := range s {
		out[i] = (v - m) / sd
	}

	return out, nil
}
