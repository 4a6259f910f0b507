// Package script evaluates curve scripts: small Lisp programs, run in a
// sandboxed zygomys interpreter, that build curves with the curve3d
// factory and query them.
//
//	(def axis (vec3 0 0 1))
//	(def h (helix :center (point3 0 0 0) :radius 5 :step 6.283185307179586 :axis axis))
//	(def c (circle :center (point3 0 0 1) :radius 5 :normal axis))
//	(intersect h c)
//
// The builtins are vec3, point3, circle, ellipse, helix, eval-curve,
// deriv-curve, intersect, translate, rotate, scale and random-curve.
// Keywords (:radius) and kebab-case names (eval-curve) are accepted and
// rewritten before the source reaches zygomys.
package script

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"honnef.co/go/curve3d"
)

// EvalError is a non-fatal error in user code, such as a syntax error or
// an invalid curve.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the output of a successful evaluation.
type Result struct {
	// Curves holds every curve the script created, in creation order.
	Curves []curve3d.Curve
	// Points holds the points returned by every intersect call.
	Points []curve3d.Point3
	// Value is the printed value of the last expression.
	Value string
}

// DefaultTimeout is the limit for a single evaluation.
const DefaultTimeout = 5 * time.Second

// Engine evaluates scripts. It is safe for concurrent use; every call to
// Evaluate runs in a fresh sandbox.
type Engine struct {
	mu         sync.Mutex
	generation uint64

	timeout time.Duration

	randMu sync.Mutex
	rand   *rand.Rand
}

type Option func(*Engine)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithRand sets the generator used by random-curve. Without it, the engine
// uses a randomly seeded generator.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rand = r }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}
	if e.rand == nil {
		e.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e
}

// Evaluate runs source and returns what it produced.
//
//   - On success: result, nil, nil.
//   - On syntax or evaluation errors: nil, the errors, nil.
//   - On timeout, panic, or when a newer evaluation has started: nil, nil
//     and the error.
func (e *Engine) Evaluate(source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan evalResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- evalResult{err: fmt.Errorf("panic during evaluation: %v", r)}
			}
		}()
		res, evalErrs, err := e.evaluate(source)
		ch <- evalResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ch, e.timeout, func() bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		return gen == e.generation
	})
}

func (e *Engine) evaluate(source string) (*Result, []EvalError, error) {
	if strings.TrimSpace(source) == "" {
		return &Result{}, nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()

	st := &state{randMu: &e.randMu, rand: e.rand}
	registerBuiltins(env, st)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return nil, parseZygomysError(err), nil
	}
	v, err := env.Run()
	if err != nil {
		curve3d.Logger().Debug("script evaluation failed", "err", err)
		return nil, parseZygomysError(err), nil
	}

	res := &Result{Curves: st.curves, Points: st.points}
	if v != nil {
		res.Value = v.SexpString(nil)
	}
	return res, nil, nil
}

var (
	linePattern      = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)
	linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)
)

// parseZygomysError extracts the line number from a zygomys error message
// when it carries one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()
	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
