package curve3d

// IntersectHelixCircle returns the intersection points of a helix and a
// circle, in increasing helix parameter order.
//
// Only the case where the helix axis and the circle's normal are collinear
// (parallel or antiparallel, within precision) is solved. For any other
// relative orientation the result is empty. An empty result therefore does
// not prove that the curves are disjoint.
//
// In the collinear case the circle's plane meets the helix at exactly one
// parameter, and the result holds that point if it lies on the circle.
func IntersectHelixCircle(h *Helix, c *Circle, precision float64) []Point3 {
	if Cross(h.axis, c.axis).Hypot2() > precision*precision {
		return nil
	}
	height := c.center.Sub(h.center).Dot(h.axis)
	p := h.Eval(h.ParamAtHeight(height))
	if !c.Belongs(p, precision) {
		return nil
	}
	return []Point3{p}
}

// IntersectCircleHelix is [IntersectHelixCircle] with its arguments swapped.
func IntersectCircleHelix(c *Circle, h *Helix, precision float64) []Point3 {
	return IntersectHelixCircle(h, c, precision)
}

// Intersect returns the intersection points of two curves. Only a helix and
// a circle, in either order, are supported; all other pairs yield an empty
// result.
func Intersect(a, b Curve, precision float64) []Point3 {
	switch a := a.(type) {
	case *Helix:
		if c, ok := AsCircle(b); ok {
			return IntersectHelixCircle(a, c, precision)
		}
	case *Circle:
		if h, ok := AsHelix(b); ok {
			return IntersectHelixCircle(h, a, precision)
		}
	}
	return nil
}
