package curve3d

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including the coordinates of points and
// vectors, with an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func mustCircle(t *testing.T, center Point3, radius float64, normal, start Vector3) *Circle {
	t.Helper()
	c, err := NewCircleWithStart(center, radius, normal, start)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustEllipse(t *testing.T, center Point3, major, minor float64, normal, majorDir Vector3) *Ellipse {
	t.Helper()
	e, err := NewEllipseWithMajor(center, major, minor, normal, majorDir)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustHelix(t *testing.T, center Point3, radius, step float64, axis, start Vector3) *Helix {
	t.Helper()
	h, err := NewHelixWithStart(center, radius, step, axis, start)
	if err != nil {
		t.Fatal(err)
	}
	return h
}
