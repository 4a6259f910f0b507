package curve3d

import (
	"fmt"
)

// The constructors in this file are the only way to obtain curves. Each one
// validates all of its arguments before building the curve and returns an
// error wrapping one of the package's sentinel errors on failure.

// NewCircle returns the circle with the given center and radius lying in
// the plane with the given normal. The direction of the point at t = 0 is
// chosen by [Vector.AnyPerpendicular].
func NewCircle(center Point3, radius float64, normal Vector3) (*Circle, error) {
	if err := checkRadius(KindCircle, "radius", radius); err != nil {
		return nil, reject(KindCircle, err)
	}
	start, ok := normal.AnyPerpendicular()
	if !ok {
		return nil, reject(KindCircle, degenerate(KindCircle, "normal", normal))
	}
	return NewCircleWithStart(center, radius, normal, start)
}

// NewCircleWithStart is like [NewCircle] but also fixes the direction of the
// point at t = 0. After normalization, start must be perpendicular to normal
// within [Tolerance].
func NewCircleWithStart(center Point3, radius float64, normal, start Vector3) (*Circle, error) {
	if err := checkCenter(KindCircle, center); err != nil {
		return nil, reject(KindCircle, err)
	}
	if err := checkRadius(KindCircle, "radius", radius); err != nil {
		return nil, reject(KindCircle, err)
	}
	n, u, err := planeFrame(KindCircle, normal, start, "start")
	if err != nil {
		return nil, reject(KindCircle, err)
	}
	return &Circle{
		center: center,
		radius: radius,
		axis:   n,
		axisX:  u,
		axisY:  Cross(n, u),
	}, nil
}

// NewEllipse returns the ellipse with the given center and radii lying in
// the plane with the given normal. The major direction is chosen by
// [Vector.AnyPerpendicular].
func NewEllipse(center Point3, radiusMajor, radiusMinor float64, normal Vector3) (*Ellipse, error) {
	if err := checkEllipseRadii(radiusMajor, radiusMinor); err != nil {
		return nil, reject(KindEllipse, err)
	}
	major, ok := normal.AnyPerpendicular()
	if !ok {
		return nil, reject(KindEllipse, degenerate(KindEllipse, "normal", normal))
	}
	return NewEllipseWithMajor(center, radiusMajor, radiusMinor, normal, major)
}

// NewEllipseWithMajor is like [NewEllipse] but also fixes the direction of
// the major axis, which must be perpendicular to normal within [Tolerance].
func NewEllipseWithMajor(center Point3, radiusMajor, radiusMinor float64, normal, majorDir Vector3) (*Ellipse, error) {
	if err := checkCenter(KindEllipse, center); err != nil {
		return nil, reject(KindEllipse, err)
	}
	if err := checkEllipseRadii(radiusMajor, radiusMinor); err != nil {
		return nil, reject(KindEllipse, err)
	}
	n, u, err := planeFrame(KindEllipse, normal, majorDir, "major direction")
	if err != nil {
		return nil, reject(KindEllipse, err)
	}
	return &Ellipse{
		center:      center,
		radiusMajor: radiusMajor,
		radiusMinor: radiusMinor,
		axisX:       u,
		axisY:       Cross(n, u),
	}, nil
}

// NewHelix returns a helix around the Z axis through center, starting in
// the X direction.
func NewHelix(center Point3, radius, step float64) (*Helix, error) {
	return NewHelixWithStart(center, radius, step, Vec3(0, 0, 1), Vec3(1, 0, 0))
}

// NewHelixAlong returns a helix around the given axis. The start direction
// is chosen by [Vector.AnyPerpendicular].
func NewHelixAlong(center Point3, radius, step float64, axis Vector3) (*Helix, error) {
	if err := checkHelixSizes(radius, step); err != nil {
		return nil, reject(KindHelix, err)
	}
	start, ok := axis.AnyPerpendicular()
	if !ok {
		return nil, reject(KindHelix, degenerate(KindHelix, "axis", axis))
	}
	return NewHelixWithStart(center, radius, step, axis, start)
}

// NewHelixWithStart returns a helix around axis whose point at t = 0 lies in
// the direction start from center.
//
// Unlike circles and ellipses, start is not required to be perpendicular to
// axis. A skewed start direction produces a helix whose cross-section is no
// longer a circle of the given radius; Eval and Deriv still follow the
// formula documented on [Helix] with the normalized directions.
func NewHelixWithStart(center Point3, radius, step float64, axis, start Vector3) (*Helix, error) {
	if err := checkCenter(KindHelix, center); err != nil {
		return nil, reject(KindHelix, err)
	}
	if err := checkHelixSizes(radius, step); err != nil {
		return nil, reject(KindHelix, err)
	}
	n, ok := axis.Normalize()
	if !ok {
		return nil, reject(KindHelix, degenerate(KindHelix, "axis", axis))
	}
	u, ok := start.Normalize()
	if !ok {
		return nil, reject(KindHelix, degenerate(KindHelix, "start", start))
	}
	return &Helix{
		center: center,
		radius: radius,
		step:   step,
		axis:   n,
		axisX:  u,
		axisY:  Cross(n, u),
	}, nil
}

func reject(kind Kind, err error) error {
	Logger().Debug("curve construction rejected", "kind", kind.String(), "err", err)
	return err
}

func checkCenter(kind Kind, center Point3) error {
	if center.IsInf() || center.IsNaN() {
		return fmt.Errorf("curve3d: %s center %v: %w", kind, center, ErrInvalidCenter)
	}
	return nil
}

func checkRadius(kind Kind, name string, r float64) error {
	// Negated so that NaN is rejected as well.
	if !(r > Tolerance) {
		return fmt.Errorf("curve3d: %s %s %g: %w", kind, name, r, ErrInvalidRadius)
	}
	return nil
}

func checkEllipseRadii(major, minor float64) error {
	if err := checkRadius(KindEllipse, "major radius", major); err != nil {
		return err
	}
	return checkRadius(KindEllipse, "minor radius", minor)
}

func checkHelixSizes(radius, step float64) error {
	if err := checkRadius(KindHelix, "radius", radius); err != nil {
		return err
	}
	if !(step > Tolerance) {
		return fmt.Errorf("curve3d: helix step %g: %w", step, ErrInvalidStep)
	}
	return nil
}

func degenerate(kind Kind, name string, v Vector3) error {
	return fmt.Errorf("curve3d: %s %s %v: %w", kind, name, v, ErrDegenerateDirection)
}

// planeFrame normalizes a plane normal and an in-plane direction and checks
// that they are perpendicular.
func planeFrame(kind Kind, normal, dir Vector3, dirName string) (n, u Vector3, err error) {
	n, ok := normal.Normalize()
	if !ok {
		return n, u, degenerate(kind, "normal", normal)
	}
	u, ok = dir.Normalize()
	if !ok {
		return n, u, degenerate(kind, dirName, dir)
	}
	if !ArePerpendicular(n, u, Tolerance) {
		return n, u, fmt.Errorf("curve3d: %s normal %v and %s %v: %w", kind, normal, dirName, dir, ErrNotPerpendicular)
	}
	return n, u, nil
}
