package curve3d

import (
	"errors"
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// checkImage verifies that out traces the image of in under m.
func checkImage(t *testing.T, in, out Curve, m sdf.M44) {
	t.Helper()
	for i := range 32 {
		x := -10 + float64(i)*0.65
		diff(t, mapPoint(m, in.Eval(x)), out.Eval(x), approx(1e-8))
	}
}

func TestTransformSimilarities(t *testing.T) {
	c := mustCircle(t, Pt3(5, 5, 5), 10, Vec3(1, 0, 0), Vec3(0, 1, 0))
	e := mustEllipse(t, Pt3(-1, 2, 0), 4, 1.5, Vec3(1, 1, 0), Vec3(0, 0, 1))
	h := mustHelix(t, Pt3(0, 0, 3), 2, 0.5, Vec3(0, 1, 1), Vec3(1, 0, 0))

	matrices := map[string]sdf.M44{
		"identity":  sdf.Identity3d(),
		"translate": sdf.Translate3d(v3.Vec{X: 1, Y: -2, Z: 3}),
		"rotate":    sdf.RotateZ(0.7).Mul(sdf.RotateY(-1.1)).Mul(sdf.RotateX(0.3)),
		"scale":     sdf.Scale3d(v3.Vec{X: 2.5, Y: 2.5, Z: 2.5}),
		"combined": sdf.Translate3d(v3.Vec{X: 4, Y: 0, Z: -1}).
			Mul(sdf.RotateX(math.Pi / 3)).
			Mul(sdf.Scale3d(v3.Vec{X: 0.5, Y: 0.5, Z: 0.5})),
	}
	for name, m := range matrices {
		t.Run(name, func(t *testing.T) {
			for _, in := range []Curve{c, e, h} {
				out, err := Transform(in, m)
				if err != nil {
					t.Fatalf("transforming %s: %v", in.Kind(), err)
				}
				diff(t, in.Kind(), out.Kind())
				checkImage(t, in, out, m)
			}
		})
	}
}

func TestTransformCircleScale(t *testing.T) {
	c := mustCircle(t, Pt3(1, 0, 0), 2, Vec3(0, 0, 1), Vec3(1, 0, 0))

	// Scaling along the normal leaves the circle's shape intact.
	m := sdf.Scale3d(v3.Vec{X: 3, Y: 3, Z: 0.1})
	out, err := TransformCircle(c, m)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 6.0, out.Radius(), approx(1e-12))
	diff(t, Pt3(3, 0, 0), out.Center(), approx(1e-12))
	checkImage(t, c, out, m)

	_, err = TransformCircle(c, sdf.Scale3d(v3.Vec{X: 1, Y: 2, Z: 1}))
	if !errors.Is(err, ErrNotConformal) {
		t.Errorf("got error %v, want %v", err, ErrNotConformal)
	}
}

func TestTransformCircleReflection(t *testing.T) {
	c := mustCircle(t, Pt3(0, 0, 0), 1, Vec3(0, 0, 1), Vec3(1, 0, 0))
	m := sdf.Scale3d(v3.Vec{X: -1, Y: 1, Z: 1})
	out, err := TransformCircle(c, m)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec3(0, 0, -1), out.Axis(), approx(1e-12))
	checkImage(t, c, out, m)
}

func TestTransformEllipseStretch(t *testing.T) {
	e := mustEllipse(t, Pt3(0, 0, 0), 3, 1, Vec3(0, 0, 1), Vec3(1, 0, 0))
	m := sdf.Scale3d(v3.Vec{X: 1, Y: 4, Z: 1})
	out, err := TransformEllipse(e, m)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3.0, out.RadiusMajor(), approx(1e-12))
	diff(t, 4.0, out.RadiusMinor(), approx(1e-12))
	checkImage(t, e, out, m)

	// A shear leaves the images of the axes non-perpendicular.
	tilted := mustEllipse(t, Pt3(0, 0, 0), 3, 1, Vec3(0, 0, 1), Vec3(1, 1, 0))
	_, err = TransformEllipse(tilted, m)
	if !errors.Is(err, ErrNotConformal) {
		t.Errorf("got error %v, want %v", err, ErrNotConformal)
	}
}

func TestTransformHelixRejections(t *testing.T) {
	h := mustHelix(t, Pt3(0, 0, 0), 1, 1, Vec3(0, 0, 1), Vec3(1, 0, 0))
	for name, m := range map[string]sdf.M44{
		"non-uniform": sdf.Scale3d(v3.Vec{X: 2, Y: 2, Z: 1}),
		"reflection":  sdf.Scale3d(v3.Vec{X: -1, Y: 1, Z: 1}),
	} {
		if _, err := TransformHelix(h, m); !errors.Is(err, ErrNotConformal) {
			t.Errorf("%s: got error %v, want %v", name, err, ErrNotConformal)
		}
	}
}

func TestTransformHelixScale(t *testing.T) {
	h := mustHelix(t, Pt3(0, 0, 0), 1, 1, Vec3(0, 0, 1), Vec3(1, 0, 0))
	out, err := TransformHelix(h, sdf.Scale3d(v3.Vec{X: 3, Y: 3, Z: 3}))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3.0, out.Radius(), approx(1e-12))
	diff(t, 3.0, out.Step(), approx(1e-12))
}
