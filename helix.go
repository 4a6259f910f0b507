package curve3d

import (
	"fmt"
	"math"
)

// Helix is a circular helix. It is a [Circle] whose center moves along the
// axis N by one step per full turn:
//
//	P(t) = C + R(cos(t)·U + sin(t)·V) + (step·t / 2π)·N
//
// with V = N × U. The construction does not require U to be perpendicular
// to N; see [NewHelixWithStart].
type Helix struct {
	center Point3
	radius float64
	step   float64
	axis   Vector3
	axisX  Vector3
	axisY  Vector3
}

func (*Helix) curve()     {}
func (*Helix) Kind() Kind { return KindHelix }

func (h *Helix) Center() Point3  { return h.center }
func (h *Helix) Radius() float64 { return h.radius }

// Step returns the distance the helix advances along its axis per full turn.
func (h *Helix) Step() float64  { return h.step }
func (h *Helix) Axis() Vector3  { return h.axis }
func (h *Helix) AxisX() Vector3 { return h.axisX }
func (h *Helix) AxisY() Vector3 { return h.axisY }

// Eval implements Curve.
func (h *Helix) Eval(t float64) Point3 {
	off := circularOffset(h.axisX, h.axisY, t).Mul(h.radius)
	off = off.Add(h.axis.Mul(h.step * t / (2 * math.Pi)))
	return h.center.Translate(off)
}

// Deriv implements Curve.
func (h *Helix) Deriv(t float64) Vector3 {
	d := circularOffset(h.axisY, h.axisX.Negate(), t).Mul(h.radius)
	return d.Add(h.axis.Mul(h.step / (2 * math.Pi)))
}

// ParamAtHeight returns the parameter at which the helix reaches the given
// signed height along its axis, measured from the center.
func (h *Helix) ParamAtHeight(height float64) float64 {
	return height * 2 * math.Pi / h.step
}

func (h *Helix) String() string {
	return fmt.Sprintf("Helix{center: %v, radius: %g, step: %g, axis: %v, start: %v}",
		h.center, h.radius, h.step, h.axis, h.axisX)
}
