package curve3d

import "math"

// Kind enumerates the curve variants.
type Kind int

const (
	KindCircle Kind = iota
	KindEllipse
	KindHelix

	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindHelix:
		return "helix"
	default:
		return "unknown"
	}
}

// Curve is a parametric curve in three-dimensional space.
//
// The set of implementations is closed: every Curve is a [*Circle], an
// [*Ellipse] or a [*Helix]. Use a type switch or one of [AsCircle],
// [AsEllipse] and [AsHelix] to recover the concrete kind.
//
// Curves are immutable and may be shared between goroutines.
type Curve interface {
	// Eval returns the point on the curve at parameter t. Evaluation is
	// defined for every finite t.
	Eval(t float64) Point3
	// Deriv returns the first derivative of the curve with respect to t.
	Deriv(t float64) Vector3
	Kind() Kind

	curve()
}

var (
	_ Curve = (*Circle)(nil)
	_ Curve = (*Ellipse)(nil)
	_ Curve = (*Helix)(nil)
)

// EvalDeriv returns both the point and the derivative of c at t.
func EvalDeriv(c Curve, t float64) (Point3, Vector3) {
	return c.Eval(t), c.Deriv(t)
}

// AsCircle returns c as a circle, or nil and false if c is of another kind.
func AsCircle(c Curve) (*Circle, bool) {
	ci, ok := c.(*Circle)
	return ci, ok && ci != nil
}

// AsEllipse returns c as an ellipse, or nil and false if c is of another
// kind.
func AsEllipse(c Curve) (*Ellipse, bool) {
	e, ok := c.(*Ellipse)
	return e, ok && e != nil
}

// AsHelix returns c as a helix, or nil and false if c is of another kind.
func AsHelix(c Curve) (*Helix, bool) {
	h, ok := c.(*Helix)
	return h, ok && h != nil
}

// circularOffset returns cos(t)·u + sin(t)·v.
func circularOffset(u, v Vector3, t float64) Vector3 {
	sin, cos := math.Sincos(t)
	return u.Mul(cos).Add(v.Mul(sin))
}
