package spherical

import "errors"

// Sentinel errors for spherical operations.
var (
	// ErrDivideByZero indicates scalar division by zero; reported instead of
	// silently yielding an infinite radius.
	ErrDivideByZero = errors.New("spherical: division by zero scalar")
)
