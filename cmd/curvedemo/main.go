// Command curvedemo exercises the curve3d package. It generates random
// curves, prints their points and derivatives at t = π/4, and sums the radii
// of the circles among them in parallel. With -script it evaluates a curve
// script instead.
package main

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"slices"

	"honnef.co/go/curve3d"
	"honnef.co/go/curve3d/internal/parallel"
	"honnef.co/go/curve3d/script"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("curvedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		n          = fs.Int("n", 20, "number of random curves")
		seed       = fs.Uint64("seed", 0, "random seed; 0 picks one")
		workers    = fs.Int("workers", 0, "maximum number of goroutines summing radii; 0 uses GOMAXPROCS")
		minPer     = fs.Int("min-per-worker", parallel.DefaultMinPerWorker, "minimum number of circles per goroutine")
		scriptPath = fs.String("script", "", "evaluate the curve script in this file")
		verbose    = fs.Bool("v", false, "log rejected curve constructions")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			// Usage has been printed.
			return nil
		}
		return err
	}

	if *verbose {
		curve3d.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer curve3d.SetLogger(nil)
	}

	if *seed == 0 {
		*seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(*seed, *seed))
	fmt.Fprintf(stdout, "seed %d\n", *seed)

	if *scriptPath != "" {
		return runScript(*scriptPath, r, stdout)
	}
	return runDemo(*n, r, parallel.Options{MaxWorkers: *workers, MinPerWorker: *minPer}, stdout)
}

func runDemo(n int, r *rand.Rand, opts parallel.Options, w io.Writer) error {
	curves := make([]curve3d.Curve, 0, n)
	for range n {
		c, err := curve3d.RandomCurve(r)
		if err != nil {
			curve3d.Logger().Warn("skipping random curve", "err", err)
			continue
		}
		curves = append(curves, c)
	}

	const t = math.Pi / 4
	for i, c := range curves {
		p, d := curve3d.EvalDeriv(c, t)
		fmt.Fprintf(w, "%3d %-7s P(π/4) = %v  P'(π/4) = %v\n", i, c.Kind(), p, d)
	}

	var circles []*curve3d.Circle
	for _, c := range curves {
		if ci, ok := curve3d.AsCircle(c); ok {
			circles = append(circles, ci)
		}
	}
	slices.SortFunc(circles, func(a, b *curve3d.Circle) int {
		return cmp.Compare(a.Radius(), b.Radius())
	})

	fmt.Fprintf(w, "%d circles by radius:\n", len(circles))
	for _, c := range circles {
		fmt.Fprintf(w, "    %.6f\n", c.Radius())
	}
	sum := parallel.Sum(circles, (*curve3d.Circle).Radius, opts)
	fmt.Fprintf(w, "sum of radii: %.6f\n", sum)
	return nil
}

func runScript(path string, r *rand.Rand, w io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	eng := script.NewEngine(script.WithRand(r))
	res, evalErrs, err := eng.Evaluate(string(src))
	if err != nil {
		return err
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			fmt.Fprintf(w, "%s: %s\n", path, e)
		}
		return fmt.Errorf("%s: %d errors", path, len(evalErrs))
	}

	for i, c := range res.Curves {
		fmt.Fprintf(w, "%3d %v\n", i, c)
	}
	for _, p := range res.Points {
		fmt.Fprintf(w, "intersection %v\n", p)
	}
	fmt.Fprintf(w, "=> %s\n", res.Value)
	return nil
}
