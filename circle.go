package curve3d

import (
	"fmt"
	"math"
)

// Circle is a circle in three-dimensional space.
//
// It is parametrized as
//
//	P(t) = C + R(cos(t)·U + sin(t)·V)
//
// where C is the center, R the radius, U the start direction and V = N × U
// for the plane normal N. The parameter is the angle in radians, increasing
// counterclockwise when seen from the tip of N.
//
// Circles are created with [NewCircle] or [NewCircleWithStart].
type Circle struct {
	center Point3
	radius float64
	axis   Vector3
	axisX  Vector3
	axisY  Vector3
}

func (*Circle) curve()     {}
func (*Circle) Kind() Kind { return KindCircle }

func (c *Circle) Center() Point3  { return c.center }
func (c *Circle) Radius() float64 { return c.radius }

// Axis returns the unit normal of the circle's plane.
func (c *Circle) Axis() Vector3 { return c.axis }

// AxisX returns the unit direction of the point at t = 0.
func (c *Circle) AxisX() Vector3 { return c.axisX }

// AxisY returns the direction of the point at t = π/2.
func (c *Circle) AxisY() Vector3 { return c.axisY }

// Eval implements Curve.
func (c *Circle) Eval(t float64) Point3 {
	return c.center.Translate(circularOffset(c.axisX, c.axisY, t).Mul(c.radius))
}

// Deriv implements Curve.
func (c *Circle) Deriv(t float64) Vector3 {
	// d/dt of cos(t)·U + sin(t)·V is cos(t)·V - sin(t)·U.
	return circularOffset(c.axisY, c.axisX.Negate(), t).Mul(c.radius)
}

// Belongs reports whether pt lies on the circle. The point has to be within
// precision of the circle's plane, and its squared distance to the center
// has to be within precision² of the squared radius.
func (c *Circle) Belongs(pt Point3, precision float64) bool {
	if !IsPointOnPlane(pt, c.center, c.axis, precision) {
		return false
	}
	return math.Abs(pt.DistanceSquared(c.center)-c.radius*c.radius) <= precision*precision
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle{center: %v, radius: %g, axis: %v, start: %v}", c.center, c.radius, c.axis, c.axisX)
}
