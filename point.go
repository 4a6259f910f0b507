package curve3d

import (
	"math"
)

// Point is a location in the space whose dimension is the length of A.
type Point[T Float, A Array[T]] struct {
	Coords A
}

type Point2 = Point[float64, [2]float64]
type Point3 = Point[float64, [3]float64]

func Pt2(x, y float64) Point2 {
	return Point2{Coords: [2]float64{x, y}}
}

func Pt3(x, y, z float64) Point3 {
	return Point3{Coords: [3]float64{x, y, z}}
}

func (p Point[T, A]) Dim() int { return len(p.Coords) }

// At returns the i-th coordinate. It panics if i is out of range.
func (p Point[T, A]) At(i int) T { return p.Coords[i] }

func (p Point[T, A]) X() T { return p.At(0) }
func (p Point[T, A]) Y() T { return p.At(1) }
func (p Point[T, A]) Z() T { return p.At(2) }

func (p Point[T, A]) String() string {
	return formatCoords[T]("(", p.Coords, ")")
}

// Translate returns p moved by v.
func (p Point[T, A]) Translate(v Vector[T, A]) Point[T, A] {
	for i := range p.Dim() {
		p.Coords[i] += v.Coords[i]
	}
	return p
}

// Sub returns the vector pointing from o to p.
func (p Point[T, A]) Sub(o Point[T, A]) Vector[T, A] {
	return Vector[T, A](p).Sub(Vector[T, A](o))
}

// Distance returns the Euclidean distance between two points.
func (p Point[T, A]) Distance(o Point[T, A]) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

// DistanceSquared returns the squared Euclidean distance between two points.
func (p Point[T, A]) DistanceSquared(o Point[T, A]) float64 {
	return p.Sub(o).Hypot2()
}

// Equal reports whether every coordinate of p is within tol of the
// corresponding coordinate of o.
func (p Point[T, A]) Equal(o Point[T, A], tol float64) bool {
	return equalCoords[T](p.Coords, o.Coords, tol)
}

// IsInf reports whether at least one coordinate is infinite.
func (p Point[T, A]) IsInf() bool {
	return Vector[T, A](p).IsInf()
}

// IsNaN reports whether at least one coordinate is NaN.
func (p Point[T, A]) IsNaN() bool {
	return Vector[T, A](p).IsNaN()
}
