package curve3d

import (
	"errors"
	"math"
	"testing"
)

func TestFactoryRejections(t *testing.T) {
	origin := Pt3(0, 0, 0)
	x, y, z := Vec3(1, 0, 0), Vec3(0, 1, 0), Vec3(0, 0, 1)
	var zero Vector3

	tests := []struct {
		name string
		fn   func() error
		want error
	}{
		{"circle zero radius", func() error { _, err := NewCircle(origin, 0, z); return err }, ErrInvalidRadius},
		{"circle radius at tolerance", func() error { _, err := NewCircle(origin, Tolerance, z); return err }, ErrInvalidRadius},
		{"circle negative radius", func() error { _, err := NewCircleWithStart(origin, -1, z, x); return err }, ErrInvalidRadius},
		{"circle NaN radius", func() error { _, err := NewCircle(origin, math.NaN(), z); return err }, ErrInvalidRadius},
		{"circle zero normal", func() error { _, err := NewCircle(origin, 1, zero); return err }, ErrDegenerateDirection},
		{"circle zero start", func() error { _, err := NewCircleWithStart(origin, 1, z, zero); return err }, ErrDegenerateDirection},
		{"circle tiny normal", func() error { _, err := NewCircleWithStart(origin, 1, Vec3(0, 0, 1e-6), x); return err }, ErrDegenerateDirection},
		{"circle skewed start", func() error { _, err := NewCircleWithStart(origin, 1, z, Vec3(1, 0, 0.1)); return err }, ErrNotPerpendicular},
		{"circle parallel start", func() error { _, err := NewCircleWithStart(origin, 1, z, z); return err }, ErrNotPerpendicular},
		{"circle infinite normal", func() error { _, err := NewCircleWithStart(origin, 1, Vec3(0, 0, math.Inf(1)), x); return err }, ErrDegenerateDirection},
		{"circle NaN start", func() error { _, err := NewCircleWithStart(origin, 1, z, Vec3(math.NaN(), 1, 0)); return err }, ErrDegenerateDirection},
		{"circle infinite center", func() error { _, err := NewCircle(Pt3(math.Inf(1), 0, 0), 1, z); return err }, ErrInvalidCenter},
		{"circle NaN center", func() error { _, err := NewCircleWithStart(Pt3(0, math.NaN(), 0), 1, z, x); return err }, ErrInvalidCenter},

		{"ellipse zero major", func() error { _, err := NewEllipse(origin, 0, 1, z); return err }, ErrInvalidRadius},
		{"ellipse zero minor", func() error { _, err := NewEllipse(origin, 1, 0, z); return err }, ErrInvalidRadius},
		{"ellipse zero normal", func() error { _, err := NewEllipse(origin, 2, 1, zero); return err }, ErrDegenerateDirection},
		{"ellipse zero major direction", func() error { _, err := NewEllipseWithMajor(origin, 2, 1, z, zero); return err }, ErrDegenerateDirection},
		{"ellipse skewed major direction", func() error { _, err := NewEllipseWithMajor(origin, 2, 1, z, Vec3(1, 1, 1)); return err }, ErrNotPerpendicular},
		{"ellipse NaN normal", func() error { _, err := NewEllipse(origin, 2, 1, Vec3(0, 0, math.NaN())); return err }, ErrDegenerateDirection},
		{"ellipse infinite center", func() error { _, err := NewEllipse(Pt3(0, 0, math.Inf(-1)), 2, 1, z); return err }, ErrInvalidCenter},

		{"helix zero radius", func() error { _, err := NewHelix(origin, 0, 1); return err }, ErrInvalidRadius},
		{"helix zero step", func() error { _, err := NewHelix(origin, 1, 0); return err }, ErrInvalidStep},
		{"helix negative step", func() error { _, err := NewHelixAlong(origin, 1, -2, y); return err }, ErrInvalidStep},
		{"helix zero axis", func() error { _, err := NewHelixAlong(origin, 1, 1, zero); return err }, ErrDegenerateDirection},
		{"helix zero start", func() error { _, err := NewHelixWithStart(origin, 1, 1, z, zero); return err }, ErrDegenerateDirection},
		{"helix NaN axis", func() error { _, err := NewHelixWithStart(origin, 1, 1, Vec3(math.NaN(), 0, 1), x); return err }, ErrDegenerateDirection},
		{"helix infinite axis", func() error { _, err := NewHelixAlong(origin, 1, 1, Vec3(math.Inf(1), 0, 0)); return err }, ErrDegenerateDirection},
		{"helix NaN center", func() error { _, err := NewHelix(Pt3(math.NaN(), 0, 0), 1, 1); return err }, ErrInvalidCenter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFactoryLargeDirections(t *testing.T) {
	origin := Pt3(0, 0, 0)
	c, err := NewCircleWithStart(origin, 1, Vec3(0, 0, 1e200), Vec3(3e200, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec3(0, 0, 1), c.Axis())
	diff(t, Vec3(0, 1, 0), c.AxisY())
	diff(t, Pt3(0, 1, 0), c.Eval(math.Pi/2), approx(1e-15))

	h, err := NewHelixAlong(origin, 2, 1, Vec3(-1e250, 0, 0))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec3(-1, 0, 0), h.Axis())
	diff(t, 1.0, h.AxisX().Hypot(), approx(1e-12))
}

func TestFactoryDeterministicErrors(t *testing.T) {
	_, err1 := NewCircleWithStart(Pt3(1, 2, 3), 1, Vec3(0, 0, 1), Vec3(1, 0, 1))
	_, err2 := NewCircleWithStart(Pt3(1, 2, 3), 1, Vec3(0, 0, 1), Vec3(1, 0, 1))
	if err1 == nil || err2 == nil {
		t.Fatal("expected errors")
	}
	diff(t, err1.Error(), err2.Error())
}

func TestFactoryDerivedStart(t *testing.T) {
	for _, normal := range []Vector3{Vec3(1, 0, 0), Vec3(0, 0, -7), Vec3(3, -2, 8)} {
		c, err := NewCircle(Pt3(0, 0, 0), 1, normal)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, 1.0, c.AxisX().Hypot(), approx(1e-12))
		diff(t, 0.0, c.AxisX().Dot(c.Axis()), approx(1e-12))

		e, err := NewEllipse(Pt3(0, 0, 0), 2, 1, normal)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, 0.0, e.AxisX().Dot(e.Normal()), approx(1e-12))

		h, err := NewHelixAlong(Pt3(0, 0, 0), 1, 1, normal)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, 0.0, h.AxisX().Dot(h.Axis()), approx(1e-12))
	}
}

func TestNewHelixDefaults(t *testing.T) {
	h, err := NewHelix(Pt3(1, 1, 1), 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Vec3(0, 0, 1), h.Axis())
	diff(t, Vec3(1, 0, 0), h.AxisX())
	diff(t, Vec3(0, 1, 0), h.AxisY())
}

func TestHelixSkewedStartAccepted(t *testing.T) {
	// The start direction of a helix is not required to be perpendicular to
	// its axis. The normalized directions are used as given.
	h, err := NewHelixWithStart(Pt3(0, 0, 0), 1, 2*math.Pi, Vec3(0, 0, 1), Vec3(1, 0, 1))
	if err != nil {
		t.Fatalf("skewed helix rejected: %v", err)
	}
	s := math.Sqrt2 / 2
	diff(t, Vec3(s, 0, s), h.AxisX(), approx(1e-15))
	diff(t, Vec3(0, s, 0), h.AxisY(), approx(1e-15))
	diff(t, Pt3(s, 0, s), h.Eval(0), approx(1e-15))
	diff(t, Pt3(-s, 0, math.Pi-s), h.Eval(math.Pi), approx(1e-12))
}
