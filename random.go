package curve3d

import (
	"fmt"
	"math/rand/v2"
)

// Ranges used by the random generators.
const (
	randomCoordMax  = 999999.0
	randomRadiusMax = 999999.9
	randomStepMax   = 4999.9
)

func randomIn(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func randomPoint(r *rand.Rand) Point3 {
	return Pt3(
		randomIn(r, -randomCoordMax, randomCoordMax),
		randomIn(r, -randomCoordMax, randomCoordMax),
		randomIn(r, -randomCoordMax, randomCoordMax),
	)
}

func randomVector(r *rand.Rand) Vector3 {
	return Vector3(randomPoint(r))
}

func randomRadius(r *rand.Rand) float64 {
	return randomIn(r, Tolerance, randomRadiusMax)
}

// RandomCircle returns a circle with a random center, radius and normal.
// The start direction is derived from the normal.
//
// Construction can fail when the random normal is too short to normalize.
// This is astronomically unlikely but is reported as an error rather than a
// panic.
func RandomCircle(r *rand.Rand) (*Circle, error) {
	return NewCircle(randomPoint(r), randomRadius(r), randomVector(r))
}

// RandomEllipse returns an ellipse with random center, radii and normal.
func RandomEllipse(r *rand.Rand) (*Ellipse, error) {
	center := randomPoint(r)
	major := randomRadius(r)
	minor := randomRadius(r)
	return NewEllipse(center, major, minor, randomVector(r))
}

// RandomHelix returns a helix with random center, radius, step and axis.
func RandomHelix(r *rand.Rand) (*Helix, error) {
	center := randomPoint(r)
	radius := randomRadius(r)
	step := randomIn(r, Tolerance, randomStepMax)
	return NewHelixAlong(center, radius, step, randomVector(r))
}

// RandomCurveOfKind returns a random curve of the given kind.
func RandomCurveOfKind(r *rand.Rand, kind Kind) (Curve, error) {
	// The explicit nil returns keep a nil *Circle out of the interface.
	switch kind {
	case KindCircle:
		c, err := RandomCircle(r)
		if err != nil {
			return nil, err
		}
		return c, nil
	case KindEllipse:
		e, err := RandomEllipse(r)
		if err != nil {
			return nil, err
		}
		return e, nil
	case KindHelix:
		h, err := RandomHelix(r)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("curve3d: kind %d: %w", int(kind), ErrUnknownKind)
	}
}

// RandomCurve returns a random curve whose kind is chosen uniformly.
func RandomCurve(r *rand.Rand) (Curve, error) {
	return RandomCurveOfKind(r, Kind(r.IntN(int(numKinds))))
}
