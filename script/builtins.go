package script

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"

	"honnef.co/go/curve3d"
)

// Values passed between builtins.

type sexpVec3 struct {
	v curve3d.Vector3
}

func (s *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %g %g %g)", s.v.X(), s.v.Y(), s.v.Z())
}
func (s *sexpVec3) Type() *zygo.RegisteredType { return nil }

type sexpPoint3 struct {
	p curve3d.Point3
}

func (s *sexpPoint3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(point3 %g %g %g)", s.p.X(), s.p.Y(), s.p.Z())
}
func (s *sexpPoint3) Type() *zygo.RegisteredType { return nil }

type sexpCurve struct {
	c curve3d.Curve
}

func (s *sexpCurve) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprint(s.c)
}
func (s *sexpCurve) Type() *zygo.RegisteredType { return nil }

// kwPrefix marks keyword strings produced by preprocessSource.
const kwPrefix = "__kw_"

func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs splits args into keyword and positional arguments. A keyword
// without a following value maps to SexpNull.
func parseArgs(args []zygo.Sexp) kwArgs {
	res := kwArgs{kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(args); i++ {
		name, ok := isKW(args[i])
		if !ok {
			res.positional = append(res.positional, args[i])
			continue
		}
		if i+1 < len(args) {
			res.kw[name] = args[i+1]
			i++
		} else {
			res.kw[name] = zygo.SexpNull
		}
	}
	return res
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toVector(s zygo.Sexp) (curve3d.Vector3, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.v, nil
	}
	return curve3d.Vector3{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

func toPoint(s zygo.Sexp) (curve3d.Point3, error) {
	if p, ok := s.(*sexpPoint3); ok {
		return p.p, nil
	}
	return curve3d.Point3{}, fmt.Errorf("expected point3, got %T (%s)", s, s.SexpString(nil))
}

func toCurve(s zygo.Sexp) (curve3d.Curve, error) {
	if c, ok := s.(*sexpCurve); ok {
		return c.c, nil
	}
	return nil, fmt.Errorf("expected curve, got %T (%s)", s, s.SexpString(nil))
}

// Typed keyword lookups. Each returns ok == false when the keyword is
// absent and an error when it is present with a value of the wrong type.

func kwFloat(a kwArgs, fn, name string) (float64, bool, error) {
	s, ok := a.kw[name]
	if !ok {
		return 0, false, nil
	}
	f, err := toFloat64(s)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	return f, true, nil
}

func kwVector(a kwArgs, fn, name string) (curve3d.Vector3, bool, error) {
	s, ok := a.kw[name]
	if !ok {
		return curve3d.Vector3{}, false, nil
	}
	v, err := toVector(s)
	if err != nil {
		return v, true, fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	return v, true, nil
}

func kwPoint(a kwArgs, fn, name string) (curve3d.Point3, bool, error) {
	s, ok := a.kw[name]
	if !ok {
		return curve3d.Point3{}, false, nil
	}
	p, err := toPoint(s)
	if err != nil {
		return p, true, fmt.Errorf("%s: %s: %w", fn, name, err)
	}
	return p, true, nil
}

// need runs a typed keyword lookup and turns absence into an error.
func need[T any](a kwArgs, fn, name string, get func(kwArgs, string, string) (T, bool, error)) (T, error) {
	v, ok, err := get(a, fn, name)
	if err == nil && !ok {
		err = fmt.Errorf("%s: missing :%s", fn, name)
	}
	return v, err
}

func numbers(fn string, args []zygo.Sexp, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", fn, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", fn, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

// state collects everything a script produces.
type state struct {
	curves []curve3d.Curve
	points []curve3d.Point3

	randMu *sync.Mutex
	rand   *rand.Rand
}

func (st *state) addCurve(c curve3d.Curve) zygo.Sexp {
	st.curves = append(st.curves, c)
	return &sexpCurve{c: c}
}

type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

func registerBuiltins(env *zygo.Zlisp, st *state) {
	for name, fn := range map[string]builtin{
		"vec3":         builtinVec3,
		"point3":       builtinPoint3,
		"circle":       st.builtinCircle,
		"ellipse":      st.builtinEllipse,
		"helix":        st.builtinHelix,
		"eval_curve":   builtinEvalCurve,
		"deriv_curve":  builtinDerivCurve,
		"intersect":    st.builtinIntersect,
		"translate":    st.builtinTranslate,
		"rotate":       st.builtinRotate,
		"scale":        st.builtinScale,
		"random_curve": st.builtinRandomCurve,
	} {
		env.AddFunction(name, fn)
	}
}

// (vec3 x y z)
func builtinVec3(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	xs, err := numbers("vec3", args, 3)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpVec3{v: curve3d.Vec3(xs[0], xs[1], xs[2])}, nil
}

// (point3 x y z)
func builtinPoint3(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	xs, err := numbers("point3", args, 3)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpPoint3{p: curve3d.Pt3(xs[0], xs[1], xs[2])}, nil
}

// (circle :center p :radius r :normal v [:start v])
func (st *state) builtinCircle(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	center, err := need(a, "circle", "center", kwPoint)
	if err != nil {
		return zygo.SexpNull, err
	}
	radius, err := need(a, "circle", "radius", kwFloat)
	if err != nil {
		return zygo.SexpNull, err
	}
	normal, err := need(a, "circle", "normal", kwVector)
	if err != nil {
		return zygo.SexpNull, err
	}
	start, hasStart, err := kwVector(a, "circle", "start")
	if err != nil {
		return zygo.SexpNull, err
	}

	var c *curve3d.Circle
	if hasStart {
		c, err = curve3d.NewCircleWithStart(center, radius, normal, start)
	} else {
		c, err = curve3d.NewCircle(center, radius, normal)
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("circle: %w", err)
	}
	return st.addCurve(c), nil
}

// (ellipse :center p :major a :minor b :normal v [:major-dir v])
func (st *state) builtinEllipse(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	center, err := need(a, "ellipse", "center", kwPoint)
	if err != nil {
		return zygo.SexpNull, err
	}
	major, err := need(a, "ellipse", "major", kwFloat)
	if err != nil {
		return zygo.SexpNull, err
	}
	minor, err := need(a, "ellipse", "minor", kwFloat)
	if err != nil {
		return zygo.SexpNull, err
	}
	normal, err := need(a, "ellipse", "normal", kwVector)
	if err != nil {
		return zygo.SexpNull, err
	}
	dir, hasDir, err := kwVector(a, "ellipse", "major-dir")
	if err != nil {
		return zygo.SexpNull, err
	}

	var e *curve3d.Ellipse
	if hasDir {
		e, err = curve3d.NewEllipseWithMajor(center, major, minor, normal, dir)
	} else {
		e, err = curve3d.NewEllipse(center, major, minor, normal)
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("ellipse: %w", err)
	}
	return st.addCurve(e), nil
}

// (helix :center p :radius r :step s [:axis v] [:start v])
func (st *state) builtinHelix(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	center, err := need(a, "helix", "center", kwPoint)
	if err != nil {
		return zygo.SexpNull, err
	}
	radius, err := need(a, "helix", "radius", kwFloat)
	if err != nil {
		return zygo.SexpNull, err
	}
	step, err := need(a, "helix", "step", kwFloat)
	if err != nil {
		return zygo.SexpNull, err
	}
	axis, hasAxis, err := kwVector(a, "helix", "axis")
	if err != nil {
		return zygo.SexpNull, err
	}
	start, hasStart, err := kwVector(a, "helix", "start")
	if err != nil {
		return zygo.SexpNull, err
	}

	var h *curve3d.Helix
	switch {
	case hasStart:
		if !hasAxis {
			axis = curve3d.Vec3(0, 0, 1)
		}
		h, err = curve3d.NewHelixWithStart(center, radius, step, axis, start)
	case hasAxis:
		h, err = curve3d.NewHelixAlong(center, radius, step, axis)
	default:
		h, err = curve3d.NewHelix(center, radius, step)
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("helix: %w", err)
	}
	return st.addCurve(h), nil
}

func curveAndParam(fn string, args []zygo.Sexp) (curve3d.Curve, float64, error) {
	if len(args) != 2 {
		return nil, 0, fmt.Errorf("%s requires a curve and a parameter, got %d arguments", fn, len(args))
	}
	c, err := toCurve(args[0])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", fn, err)
	}
	t, err := toFloat64(args[1])
	if err != nil {
		return nil, 0, fmt.Errorf("%s: parameter: %w", fn, err)
	}
	return c, t, nil
}

// (eval-curve c t)
func builtinEvalCurve(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	c, t, err := curveAndParam("eval-curve", args)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpPoint3{p: c.Eval(t)}, nil
}

// (deriv-curve c t)
func builtinDerivCurve(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	c, t, err := curveAndParam("deriv-curve", args)
	if err != nil {
		return zygo.SexpNull, err
	}
	return &sexpVec3{v: c.Deriv(t)}, nil
}

// (intersect a b [precision])
func (st *state) builtinIntersect(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 && len(args) != 3 {
		return zygo.SexpNull, fmt.Errorf("intersect requires two curves and an optional precision, got %d arguments", len(args))
	}
	a, err := toCurve(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("intersect: first curve: %w", err)
	}
	b, err := toCurve(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("intersect: second curve: %w", err)
	}
	precision := curve3d.DefaultPrecision
	if len(args) == 3 {
		if precision, err = toFloat64(args[2]); err != nil {
			return zygo.SexpNull, fmt.Errorf("intersect: precision: %w", err)
		}
	}

	pts := curve3d.Intersect(a, b, precision)
	st.points = append(st.points, pts...)
	items := make([]zygo.Sexp, len(pts))
	for i, p := range pts {
		items[i] = &sexpPoint3{p: p}
	}
	return zygo.MakeList(items), nil
}

func (st *state) transform(fn string, c curve3d.Curve, m sdf.M44) (zygo.Sexp, error) {
	out, err := curve3d.Transform(c, m)
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("%s: %w", fn, err)
	}
	return st.addCurve(out), nil
}

// (translate c v)
func (st *state) builtinTranslate(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("translate requires a curve and a vec3, got %d arguments", len(args))
	}
	c, err := toCurve(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: %w", err)
	}
	v, err := toVector(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("translate: offset: %w", err)
	}
	return st.transform("translate", c, sdf.Translate3d(v3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()}))
}

// (rotate c [:x radians] [:y radians] [:z radians]), applied X first, then
// Y, then Z.
func (st *state) builtinRotate(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	if len(a.positional) != 1 {
		return zygo.SexpNull, fmt.Errorf("rotate requires exactly one curve")
	}
	c, err := toCurve(a.positional[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
	}
	var angles [3]float64
	for i, axis := range []string{"x", "y", "z"} {
		if angles[i], _, err = kwFloat(a, "rotate", axis); err != nil {
			return zygo.SexpNull, err
		}
	}
	m := sdf.RotateZ(angles[2]).Mul(sdf.RotateY(angles[1])).Mul(sdf.RotateX(angles[0]))
	return st.transform("rotate", c, m)
}

// (scale c factor)
func (st *state) builtinScale(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	if len(args) != 2 {
		return zygo.SexpNull, fmt.Errorf("scale requires a curve and a factor, got %d arguments", len(args))
	}
	c, err := toCurve(args[0])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: %w", err)
	}
	f, err := toFloat64(args[1])
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("scale: factor: %w", err)
	}
	return st.transform("scale", c, sdf.Scale3d(v3.Vec{X: f, Y: f, Z: f}))
}

// (random-curve [:circle | :ellipse | :helix])
func (st *state) builtinRandomCurve(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
	a := parseArgs(args)
	if len(a.positional) != 0 || len(a.kw) > 1 {
		return zygo.SexpNull, fmt.Errorf("random-curve accepts at most one kind keyword")
	}

	st.randMu.Lock()
	defer st.randMu.Unlock()

	var c curve3d.Curve
	var err error
	if len(a.kw) == 0 {
		c, err = curve3d.RandomCurve(st.rand)
	} else {
		name := firstKey(a.kw)
		kind, ok := kindNames[name]
		if !ok {
			return zygo.SexpNull, fmt.Errorf("random-curve: unknown kind :%s", name)
		}
		if v := a.kw[name]; v != zygo.SexpNull {
			return zygo.SexpNull, fmt.Errorf("random-curve: unexpected value %s after :%s", v.SexpString(nil), name)
		}
		c, err = curve3d.RandomCurveOfKind(st.rand, kind)
	}
	if err != nil {
		return zygo.SexpNull, fmt.Errorf("random-curve: %w", err)
	}
	return st.addCurve(c), nil
}

var kindNames = map[string]curve3d.Kind{
	"circle":  curve3d.KindCircle,
	"ellipse": curve3d.KindEllipse,
	"helix":   curve3d.KindHelix,
}

func firstKey(m map[string]zygo.Sexp) string {
	for k := range m {
		return k
	}
	return ""
}
