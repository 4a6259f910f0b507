package curve3d

import (
	"math"
	"testing"
)

func TestIntersectHelixCircle(t *testing.T) {
	origin := Pt3(0, 0, 0)
	x, z := Vec3(1, 0, 0), Vec3(0, 0, 1)
	h := mustHelix(t, origin, 5, 2*math.Pi, z, x)

	t.Run("hit", func(t *testing.T) {
		c := mustCircle(t, Pt3(0, 0, 1), 5, z, x)
		got := IntersectHelixCircle(h, c, DefaultPrecision)
		diff(t, []Point3{Pt3(5*math.Cos(1), 5*math.Sin(1), 1)}, got, approx(1e-9))
		for _, p := range got {
			if !c.Belongs(p, DefaultPrecision) {
				t.Errorf("%v is not on the circle", p)
			}
		}
		diff(t, got, IntersectCircleHelix(c, h, DefaultPrecision))
		diff(t, got, Intersect(h, c, DefaultPrecision))
		diff(t, got, Intersect(c, h, DefaultPrecision))
	})

	t.Run("antiparallel axis", func(t *testing.T) {
		c := mustCircle(t, Pt3(0, 0, 1), 5, z.Negate(), x)
		got := IntersectHelixCircle(h, c, DefaultPrecision)
		diff(t, []Point3{Pt3(5*math.Cos(1), 5*math.Sin(1), 1)}, got, approx(1e-9))
		if len(got) == 1 && !c.Belongs(got[0], DefaultPrecision) {
			t.Errorf("%v is not on the circle", got[0])
		}
	})

	t.Run("radius mismatch", func(t *testing.T) {
		c := mustCircle(t, Pt3(0, 0, 1), 1, z, x)
		if got := IntersectHelixCircle(h, c, DefaultPrecision); len(got) != 0 {
			t.Errorf("got %v, want no intersections", got)
		}
		if got := IntersectCircleHelix(c, h, DefaultPrecision); len(got) != 0 {
			t.Errorf("got %v, want no intersections", got)
		}
	})

	t.Run("non-collinear axes", func(t *testing.T) {
		c := mustCircle(t, Pt3(0, 0, 1), 5, x, Vec3(0, 1, 0))
		if got := IntersectHelixCircle(h, c, DefaultPrecision); len(got) != 0 {
			t.Errorf("got %v, want no intersections", got)
		}
	})

	t.Run("offset center", func(t *testing.T) {
		c := mustCircle(t, Pt3(0.5, 0, 1), 5, z, x)
		if got := IntersectHelixCircle(h, c, DefaultPrecision); len(got) != 0 {
			t.Errorf("got %v, want no intersections", got)
		}
	})
}

func TestIntersectUnsupportedPairs(t *testing.T) {
	origin := Pt3(0, 0, 0)
	z := Vec3(0, 0, 1)
	c, err := NewCircle(origin, 5, z)
	if err != nil {
		t.Fatal(err)
	}
	e, err := NewEllipse(origin, 5, 5, z)
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHelix(origin, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	pairs := [][2]Curve{{c, c}, {c, e}, {e, h}, {h, h}, {e, e}}
	for _, p := range pairs {
		if got := Intersect(p[0], p[1], DefaultPrecision); len(got) != 0 {
			t.Errorf("Intersect(%s, %s) = %v, want no intersections", p[0].Kind(), p[1].Kind(), got)
		}
	}
}
