// Package parallel provides data-parallel reductions over slices.
package parallel

import (
	"runtime"
	"sync"
)

// DefaultMinPerWorker is the smallest number of elements worth handing to
// a goroutine of its own.
const DefaultMinPerWorker = 10

// Options configures a reduction. The zero value uses GOMAXPROCS workers
// and DefaultMinPerWorker.
type Options struct {
	// MaxWorkers caps the number of goroutines. If 0 or negative,
	// GOMAXPROCS is used.
	MaxWorkers int

	// MinPerWorker is the minimum number of elements per worker. If 0 or
	// negative, DefaultMinPerWorker is used.
	MinPerWorker int
}

// Workers returns the number of workers used for n elements:
// min(maxWorkers, ceil(n / minPerWorker)), and at least 1 for n > 0.
func (o Options) Workers(n int) int {
	if n <= 0 {
		return 0
	}
	maxWorkers := o.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	minPer := o.MinPerWorker
	if minPer <= 0 {
		minPer = DefaultMinPerWorker
	}
	return max(1, min(maxWorkers, (n+minPer-1)/minPer))
}

// Sum returns the sum of f over items. The slice is split into contiguous
// chunks, one per worker, whose sizes differ by at most one element, so
// every element is visited exactly once. Partial sums are combined in chunk
// order.
//
// f is called concurrently and must be safe for that.
func Sum[E any](items []E, f func(E) float64, opts Options) float64 {
	workers := opts.Workers(len(items))
	if workers <= 1 {
		var s float64
		for _, it := range items {
			s += f(it)
		}
		return s
	}

	partial := make([]float64, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		lo, hi := chunk(len(items), workers, w)
		go func() {
			defer wg.Done()
			var s float64
			for _, it := range items[lo:hi] {
				s += f(it)
			}
			partial[w] = s
		}()
	}
	wg.Wait()

	var total float64
	for _, s := range partial {
		total += s
	}
	return total
}

// chunk returns the bounds of the w-th of k contiguous chunks of n
// elements. The first n%k chunks hold one extra element.
func chunk(n, k, w int) (lo, hi int) {
	size, rem := n/k, n%k
	lo = w*size + min(w, rem)
	hi = lo + size
	if w < rem {
		hi++
	}
	return lo, hi
}
