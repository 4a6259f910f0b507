package curve3d

import (
	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// Tolerance is the smallest radius or step a curve may have, and the
	// tolerance for perpendicularity checks during construction.
	Tolerance    = 1e-5
	SqrTolerance = Tolerance * Tolerance

	// Precision bounds the magnitude of vectors that are treated as zero.
	Precision    = 1e-5
	SqrPrecision = Precision * Precision

	// DefaultPrecision is the precision callers should pass to
	// [Circle.Belongs] and the intersection functions when they have no
	// better value.
	DefaultPrecision = 1e-5
)

// Cross returns the cross product a × b.
func Cross[T Float](a, b Vector[T, [3]T]) Vector[T, [3]T] {
	return cross3(a, b)
}

// ArePerpendicular reports whether |u·v| <= tol. It does not normalize its
// arguments.
func ArePerpendicular[T Float, A Array[T]](u, v Vector[T, A], tol float64) bool {
	return scalar.EqualWithinAbs(float64(u.Dot(v)), 0, tol)
}

// IsPointOnPlane reports whether p lies within tol of the plane through
// planePoint with the given normal. The distance is only Euclidean when
// normal has unit length.
func IsPointOnPlane[T Float, A Array[T]](p, planePoint Point[T, A], normal Vector[T, A], tol float64) bool {
	return scalar.EqualWithinAbs(float64(p.Sub(planePoint).Dot(normal)), 0, tol)
}
