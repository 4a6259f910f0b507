package curve3d

import (
	"fmt"
)

// Ellipse is an ellipse in three-dimensional space, parametrized as
//
//	P(t) = C + a·cos(t)·U + b·sin(t)·V
//
// where a is the major radius along the unit direction U and b is the minor
// radius along V = N × U. Nothing requires a to be at least b; the names
// only identify which radius belongs to which axis.
type Ellipse struct {
	center      Point3
	radiusMajor float64
	radiusMinor float64
	axisX       Vector3
	axisY       Vector3
}

func (*Ellipse) curve()     {}
func (*Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Center() Point3       { return e.center }
func (e *Ellipse) RadiusMajor() float64 { return e.radiusMajor }
func (e *Ellipse) RadiusMinor() float64 { return e.radiusMinor }
func (e *Ellipse) AxisX() Vector3       { return e.axisX }
func (e *Ellipse) AxisY() Vector3       { return e.axisY }

// Normal returns the normal of the ellipse's plane, computed as AxisX ×
// AxisY.
func (e *Ellipse) Normal() Vector3 {
	return Cross(e.axisX, e.axisY)
}

// Eval implements Curve.
func (e *Ellipse) Eval(t float64) Point3 {
	return e.center.Translate(circularOffset(e.axisX.Mul(e.radiusMajor), e.axisY.Mul(e.radiusMinor), t))
}

// Deriv implements Curve.
func (e *Ellipse) Deriv(t float64) Vector3 {
	return circularOffset(e.axisY.Mul(e.radiusMinor), e.axisX.Mul(-e.radiusMajor), t)
}

func (e *Ellipse) String() string {
	return fmt.Sprintf("Ellipse{center: %v, radii: (%g, %g), major: %v, minor: %v}",
		e.center, e.radiusMajor, e.radiusMinor, e.axisX, e.axisY)
}
