package curve3d

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Float is the set of scalar types coordinates can be stored in.
type Float interface {
	~float32 | ~float64
}

// Array is the set of coordinate tuples. The length of the array is the
// dimension of the space.
type Array[T Float] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T
}

// Vector is a displacement in the space whose dimension is the length of A.
//
// Vector and [Point] share their layout, so either can be converted to the
// other, e.g. Point[T, A](v).
type Vector[T Float, A Array[T]] struct {
	Coords A
}

type Vector2 = Vector[float64, [2]float64]
type Vector3 = Vector[float64, [3]float64]

// Vec2 returns the vector ⟨x, y⟩.
func Vec2(x, y float64) Vector2 {
	return Vector2{Coords: [2]float64{x, y}}
}

// Vec3 returns the vector ⟨x, y, z⟩.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{Coords: [3]float64{x, y, z}}
}

// Dim returns the dimension of the vector.
func (v Vector[T, A]) Dim() int {
	return len(v.Coords)
}

// At returns the i-th coordinate. It panics if i is out of range.
func (v Vector[T, A]) At(i int) T {
	return v.Coords[i]
}

func (v Vector[T, A]) X() T { return v.At(0) }

// Y returns the second coordinate. It panics for one-dimensional vectors.
func (v Vector[T, A]) Y() T { return v.At(1) }

// Z returns the third coordinate. It panics for vectors of dimension less
// than three.
func (v Vector[T, A]) Z() T { return v.At(2) }

func (v Vector[T, A]) String() string {
	return formatCoords[T]("⟨", v.Coords, "⟩")
}

// Dot returns the dot product of v and o.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	var s T
	for i := range v.Dim() {
		s += v.Coords[i] * o.Coords[i]
	}
	return s
}

// Hypot returns the magnitude of the vector. It scales the coordinates
// before squaring, so it does not overflow for large finite coordinates.
func (v Vector[T, A]) Hypot() float64 {
	var buf [4]float64
	for i := range v.Dim() {
		buf[i] = float64(v.Coords[i])
	}
	return floats.Norm(buf[:v.Dim()], 2)
}

// Hypot2 returns the squared magnitude of the vector.
//
// The sum is accumulated in float64 regardless of T. This function is more
// efficient than squaring the result of [Vector.Hypot].
func (v Vector[T, A]) Hypot2() float64 {
	var s float64
	for i := range v.Dim() {
		c := float64(v.Coords[i])
		s += c * c
	}
	return s
}

// Normalize returns a vector of magnitude 1 with the same direction as v.
//
// Vectors whose magnitude is at most [Precision] can't be normalized, and
// neither can vectors with infinite or NaN coordinates. For those, Normalize
// returns v unchanged and false.
func (v Vector[T, A]) Normalize() (Vector[T, A], bool) {
	h := v.Hypot()
	// Negated so that NaN fails as well.
	if !(h > Precision) || math.IsInf(h, 0) {
		return v, false
	}
	for i := range v.Dim() {
		v.Coords[i] = T(float64(v.Coords[i]) / h)
	}
	return v, true
}

// AnyPerpendicular returns some unit vector that is orthogonal to v. Which
// one is unspecified and callers must not depend on its orientation.
//
// It fails for vectors that can't be normalized and for one-dimensional
// vectors, which have no perpendicular.
func (v Vector[T, A]) AnyPerpendicular() (Vector[T, A], bool) {
	n := v.Dim()
	if n < 2 {
		return Vector[T, A]{}, false
	}
	if _, ok := v.Normalize(); !ok {
		return Vector[T, A]{}, false
	}

	// The axis along which v has its smallest component can't be parallel
	// to v, so it always yields a non-zero perpendicular.
	k := 0
	for i := 1; i < n; i++ {
		if math.Abs(float64(v.Coords[i])) < math.Abs(float64(v.Coords[k])) {
			k = i
		}
	}
	var axis Vector[T, A]
	axis.Coords[k] = 1

	var p Vector[T, A]
	switch n {
	case 2:
		x, y := 0, 1
		p.Coords[x] = -v.Coords[y]
		p.Coords[y] = v.Coords[x]
	case 3:
		p = cross3(v, axis)
	default:
		// Gram-Schmidt: remove the component of the axis along v.
		u, _ := v.Normalize()
		p = axis.Sub(u.Mul(u.Dot(axis)))
	}
	return p.Normalize()
}

// Equal reports whether every coordinate of v is within tol of the
// corresponding coordinate of o.
func (v Vector[T, A]) Equal(o Vector[T, A], tol float64) bool {
	return equalCoords[T](v.Coords, o.Coords, tol)
}

// IsInf reports whether at least one coordinate is infinite.
func (v Vector[T, A]) IsInf() bool {
	for i := range v.Dim() {
		if math.IsInf(float64(v.Coords[i]), 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vector[T, A]) IsNaN() bool {
	for i := range v.Dim() {
		if math.IsNaN(float64(v.Coords[i])) {
			return true
		}
	}
	return false
}

// Add adds two vectors and returns the resulting vector.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	for i := range v.Dim() {
		v.Coords[i] += o.Coords[i]
	}
	return v
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	for i := range v.Dim() {
		v.Coords[i] -= o.Coords[i]
	}
	return v
}

func (v Vector[T, A]) Mul(f T) Vector[T, A] {
	for i := range v.Dim() {
		v.Coords[i] *= f
	}
	return v
}

func (v Vector[T, A]) Div(f T) Vector[T, A] {
	for i := range v.Dim() {
		v.Coords[i] /= f
	}
	return v
}

// Negate returns a new vector with the signs of all coordinates flipped.
func (v Vector[T, A]) Negate() Vector[T, A] {
	return v.Mul(-1)
}

// cross3 computes the cross product of two three-dimensional vectors. The
// indices are variables because A may also be shorter than three.
func cross3[T Float, A Array[T]](a, b Vector[T, A]) Vector[T, A] {
	x, y, z := 0, 1, 2
	var r Vector[T, A]
	r.Coords[x] = a.Coords[y]*b.Coords[z] - a.Coords[z]*b.Coords[y]
	r.Coords[y] = a.Coords[z]*b.Coords[x] - a.Coords[x]*b.Coords[z]
	r.Coords[z] = a.Coords[x]*b.Coords[y] - a.Coords[y]*b.Coords[x]
	return r
}

func equalCoords[T Float, A Array[T]](a, b A, tol float64) bool {
	for i := range len(a) {
		if !scalar.EqualWithinAbs(float64(a[i]), float64(b[i]), tol) {
			return false
		}
	}
	return true
}

func formatCoords[T Float, A Array[T]](open string, coords A, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i := range len(coords) {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", coords[i])
	}
	sb.WriteString(close)
	return sb.String()
}
