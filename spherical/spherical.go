package spherical

import "fmt"

// Real constrains the numeric kinds accepted by From: anything losslessly
// convertible to float64 for coordinate purposes.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Spherical is a point in spherical coordinates. Fields are exported and
// unconstrained: r carries no sign guarantee and the angles are raw radians,
// never normalized.
type Spherical struct {
	// R is the radial distance from the origin.
	R float64
	// Theta is the longitude angle, in radians.
	Theta float64
	// Phi is the latitude angle, in radians.
	Phi float64
}

// New returns the origin point, identical to the zero value.
func New() Spherical {
	return Spherical{}
}

// From builds a Spherical from any mix of numeric kinds, converting each to
// float64. No validation is performed.
//
//	p := spherical.From(1, 0.12, 2.8) // int radius, float angles
func From[R, T, P Real](r R, theta T, phi P) Spherical {
	return Spherical{
		R:     float64(r),
		Theta: float64(theta),
		Phi:   float64(phi),
	}
}

// Mul returns the point stretched along its ray: the radius is scaled by k,
// the angles pass through unchanged.
func (s Spherical) Mul(k float64) Spherical {
	return Spherical{
		R:     s.R * k,
		Theta: s.Theta,
		Phi:   s.Phi,
	}
}

// MulAssign scales the radius by k in place.
func (s *Spherical) MulAssign(k float64) {
	s.R *= k
}

// Div returns the point with its radius divided by k, angles unchanged.
//
// Errors:
//   - ErrDivideByZero — if k == 0.
func (s Spherical) Div(k float64) (Spherical, error) {
	if k == 0 {
		return Spherical{}, ErrDivideByZero
	}

	return Spherical{
		R:     s.R / k,
		Theta: s.Theta,
		Phi:   s.Phi,
	}, nil
}

// DivAssign divides the radius by k in place.
//
// Errors:
//   - ErrDivideByZero — if k == 0 (the receiver is left unchanged).
func (s *Spherical) DivAssign(k float64) error {
	if k == 0 {
		return ErrDivideByZero
	}
	s.R /= k

	return nil
}

// Neg is Mul(−1): it flips the sign of the radius and leaves both angles
// unchanged. Note this is a radius flip, not the antipodal point — a true
// spherical negation would rotate theta by π and flip phi.
func (s Spherical) Neg() Spherical {
	return s.Mul(-1)
}

// String renders each field on a fixed three-part line:
//
//	r=<r> :: theta=<theta> :: phi=<phi>
func (s Spherical) String() string {
	return fmt.Sprintf("r=%v :: theta=%v :: phi=%v", s.R, s.Theta, s.Phi)
}
