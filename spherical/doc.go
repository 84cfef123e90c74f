// Package spherical provides a spherical-coordinate value type for 3D space:
// radial distance r, longitude angle theta and latitude angle phi (radians).
//
// The type is a plain immutable value: every operation returns a new
// Spherical, and the Assign variants rewrite the receiver in place the way
// compound assignment would.
//
// Two deliberate non-features, preserved from the library's lineage:
//
//   - No range policing. r is expected non-negative by convention but never
//     enforced, and theta/phi are never normalized into a canonical range.
//   - Scalar operations touch ONLY the radius. Mul/Div stretch a point along
//     its existing ray from the origin, and Neg is Mul(−1): it flips the
//     sign of r and leaves both angles unchanged. This is NOT the geometric
//     negation of the point (which would rotate theta by π and flip phi) —
//     callers relying on true antipodal reflection must rotate the angles
//     themselves.
//
// ⚙️ Usage:
//
//	import "github.com/vcambray/scigo/spherical"
//
//	p := spherical.From(1, 0.2, 2.1)  // any numeric kinds accepted
//	q := p.Mul(2)                      // r=2 :: theta=0.2 :: phi=2.1
//	h, err := q.Div(4)                 // err == ErrDivideByZero for Div(0)
//
// Division by a zero scalar is reported as ErrDivideByZero instead of
// silently producing an infinite radius.
package spherical
