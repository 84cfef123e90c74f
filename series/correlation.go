package series

import "math"

// Covariance returns the POPULATION covariance of the paired samples x and y:
//
//	cov = (1/n) Σ (xᵢ − mₓ)(yᵢ − mᵧ)
//
// Errors:
//   - ErrEmptyInput     — if either series is empty.
//   - ErrLengthMismatch — if len(x) != len(y); the pairing is never silently
//     truncated to the shorter series.
//
// Complexity: O(n) time, O(1) memory.
func Covariance(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	mx, err := Mean(x)
	if err != nil {
		return 0, err
	}
	my, err := Mean(y)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i := range x {
		sum += (x[i] - mx) * (y[i] - my)
	}

	return sum / float64(len(x)), nil
}

// PearsonR returns the Pearson linear correlation coefficient between the
// equal-length samples x and y, in [−1, 1]:
//
//	r = Σ (xᵢ−mₓ)(yᵢ−mᵧ) / √( Σ(xᵢ−mₓ)² · Σ(yᵢ−mᵧ)² )
//
// Computed as two mean passes followed by a single pass accumulating the
// centered cross-product and both centered squared sums.
//
// Errors:
//   - ErrEmptyInput      — if either series is empty.
//   - ErrLengthMismatch  — if len(x) != len(y).
//   - ErrDegenerateRange — if either series is constant (zero centered
//     spread makes the denominator zero; reported instead of NaN).
//
// Complexity: O(n) time, O(1) memory.
func PearsonR(x, y []float64) (float64, error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, ErrEmptyInput
	}
	if len(x) != len(y) {
		return 0, ErrLengthMismatch
	}

	mx, err := Mean(x)
	if err != nil {
		return 0, err
	}
	my, err := Mean(y)
	if err != nil {
		return 0, err
	}

	var cross, sqx, sqy float64
	for i := range x {
		dx := x[i] - mx
		dy := y[i] - my
		cross += dx * dy
		sqx += dx * dx
		sqy += dy * dy
	}
	if sqx == 0 || sqy == 0 {
		return 0, ErrDegenerateRange
	}

	return cross / math.Sqrt(sqx*sqy), nil
}

// AutoCorr returns the normalized autocorrelation of s for lags 0..maxLag:
//
//	acf[k] = Σ_{i=k..n-1} (xᵢ−m)(xᵢ₋ₖ−m) / Σ (xᵢ−m)²
//
// acf[0] is always 1. A maxLag of n−1 or larger is clamped down to n−1.
//
// Errors:
//   - ErrBadLag          — if maxLag is negative.
//   - ErrEmptyInput      — if s is empty.
//   - ErrDegenerateRange — if s is constant (zero variance).
//
// Complexity: O(n·maxLag) time, O(maxLag) memory.
func AutoCorr(s []float64, maxLag int) ([]float64, error) {
	if maxLag < 0 {
		return nil, ErrBadLag
	}
	n := len(s)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if maxLag >= n {
		maxLag = n - 1
	}

	m, err := Mean(s)
	if err != nil {
		return nil, err
	}
	variance := 0.0
	for _, v := range s {
		d := v - m
		variance += d * d
	}
	if variance == 0 {
		return nil, ErrDegenerateRange
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (s[i] - m) * (s[i-k] - m)
		}
		acf[k] = sum / variance
	}

	return acf, nil
}
