package curve3d

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Transforms map curves through an affine sdf.M44, as built with
// sdf.Translate3d, sdf.RotateX/Y/Z, sdf.Scale3d and M44.Mul. A transform
// succeeds when the image of the curve is again a curve of the same kind;
// the result is rebuilt through the factory so that it carries a valid
// frame. For every t, the transformed curve's Eval(t) equals the image of
// the input curve's Eval(t).

func toV3(p Point3) v3.Vec {
	return v3.Vec{X: p.X(), Y: p.Y(), Z: p.Z()}
}

func mapPoint(m sdf.M44, p Point3) Point3 {
	q := m.MulPosition(toV3(p))
	return Pt3(q.X, q.Y, q.Z)
}

// mapDirection maps a direction anchored at p. For affine matrices the
// result does not depend on p.
func mapDirection(m sdf.M44, p Point3, d Vector3) Vector3 {
	return mapPoint(m, p.Translate(d)).Sub(mapPoint(m, p))
}

// conformal reports whether u and v have the same length and are
// perpendicular, both relative to their lengths.
func conformal(u, v Vector3) bool {
	lu, lv := u.Hypot(), v.Hypot()
	if lu <= Precision || lv <= Precision {
		return false
	}
	if math.Abs(lu-lv) > Tolerance*math.Max(lu, lv) {
		return false
	}
	return math.Abs(u.Dot(v)) <= Tolerance*lu*lv
}

func notConformal(kind Kind) error {
	return fmt.Errorf("curve3d: transforming %s: %w", kind, ErrNotConformal)
}

// TransformCircle maps c through m. The in-plane part of m must be a
// similarity; the circle may be moved, rotated, reflected and uniformly
// scaled, and scaling along its normal is allowed.
func TransformCircle(c *Circle, m sdf.M44) (*Circle, error) {
	u := mapDirection(m, c.center, c.axisX)
	v := mapDirection(m, c.center, c.axisY)
	if !conformal(u, v) {
		return nil, notConformal(KindCircle)
	}
	return NewCircleWithStart(mapPoint(m, c.center), c.radius*u.Hypot(), Cross(u, v), u)
}

// TransformEllipse maps e through m. The images of the two ellipse axes
// must remain perpendicular; their lengths may change independently.
func TransformEllipse(e *Ellipse, m sdf.M44) (*Ellipse, error) {
	u := mapDirection(m, e.center, e.axisX)
	v := mapDirection(m, e.center, e.axisY)
	lu, lv := u.Hypot(), v.Hypot()
	if lu <= Precision || lv <= Precision || math.Abs(u.Dot(v)) > Tolerance*lu*lv {
		return nil, notConformal(KindEllipse)
	}
	return NewEllipseWithMajor(mapPoint(m, e.center), e.radiusMajor*lu, e.radiusMinor*lv, Cross(u, v), u)
}

// TransformHelix maps h through m, which must be an orientation-preserving
// similarity: a composition of translations, rotations and uniform scaling.
// Reflections would turn the helix into one of opposite handedness, which
// can't be represented.
func TransformHelix(h *Helix, m sdf.M44) (*Helix, error) {
	s, ok := similarityScale(m)
	if !ok {
		return nil, notConformal(KindHelix)
	}
	axis := mapDirection(m, h.center, h.axis)
	start := mapDirection(m, h.center, h.axisX)
	return NewHelixWithStart(mapPoint(m, h.center), h.radius*s, h.step*s, axis, start)
}

// Transform maps any curve through m, dispatching on its kind.
func Transform(c Curve, m sdf.M44) (Curve, error) {
	switch c := c.(type) {
	case *Circle:
		out, err := TransformCircle(c, m)
		if err != nil {
			return nil, err
		}
		return out, nil
	case *Ellipse:
		out, err := TransformEllipse(c, m)
		if err != nil {
			return nil, err
		}
		return out, nil
	case *Helix:
		out, err := TransformHelix(c, m)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("curve3d: transform %T: %w", c, ErrUnknownKind)
	}
}

// similarityScale returns the scale factor of m if its linear part is a
// rotation times a positive uniform scale.
func similarityScale(m sdf.M44) (float64, bool) {
	var origin Point3
	ex := mapDirection(m, origin, Vec3(1, 0, 0))
	ey := mapDirection(m, origin, Vec3(0, 1, 0))
	ez := mapDirection(m, origin, Vec3(0, 0, 1))
	if !conformal(ex, ey) || !conformal(ey, ez) || !conformal(ex, ez) {
		return 0, false
	}
	s := ex.Hypot()
	// A proper rotation maps x × y onto z.
	if Cross(ex, ey).Dot(ez) <= 0 {
		return 0, false
	}
	return s, true
}
