// Package curve3d provides analytic curves in three-dimensional space:
// circles, ellipses, and circular helices. Curves are parametrized by an angle
// t in radians and can be evaluated for their point and first derivative at
// any t.
//
// # Coordinates
//
// [Vector] and [Point] are generic over their element type and dimension. The
// curves themselves work in float64 and three dimensions, using the
// [Vector3] and [Point3] aliases. Vectors support the usual algebra ([Vector.Add],
// [Vector.Dot], [Cross], [Vector.Normalize]) and can produce an arbitrary
// perpendicular direction with [Vector.AnyPerpendicular].
//
// # Curves
//
// [Curve] is a closed set of implementations: [Circle], [Ellipse], and
// [Helix]. Use [AsCircle], [AsEllipse], and [AsHelix], or a type switch, to
// get at the concrete curve. Each curve is described by a center, its sizes,
// and an orthonormal frame (axisX, axisY, and the normal). For t = 0, a curve
// sits at its center plus axisX scaled by the (major) radius. Positive t turns
// from axisX toward axisY.
//
// A helix additionally advances along its axis by its step for every full
// turn, starting at its center for t = 0.
//
// # Construction
//
// Curves can only be obtained from the constructors ([NewCircle],
// [NewEllipse], [NewHelix] and their variants), which reject radii and steps
// not greater than [Tolerance], zero-length directions, and start directions
// that are not perpendicular to the normal. Rejections are returned as errors
// wrapping one of the package's sentinel errors, such as [ErrInvalidRadius],
// and are logged at debug level to the logger set with [SetLogger].
//
// [RandomCurve] and friends build random valid curves from a caller-provided
// source of randomness.
//
// # Intersections and transformations
//
// [IntersectHelixCircle] finds the points where a helix crosses a circle that
// shares its axis. [Transform] maps curves through affine matrices of the
// [sdfx] library, as long as the matrix preserves the curve's kind.
//
// [sdfx]: https://github.com/deadsy/sdfx
package curve3d
