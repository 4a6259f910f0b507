package script

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTimeout    = errors.New("evaluation timed out")
	ErrSuperseded = errors.New("evaluation superseded by a newer request")
)

type evalResult struct {
	result *Result
	errors []EvalError
	err    error
}

// waitWithTimeout waits for the result on ch for at most timeout. current
// reports whether the evaluation is still the newest one; stale results are
// discarded.
//
// On timeout the evaluating goroutine keeps running. Its result is dropped
// into the buffered channel and never read.
func waitWithTimeout(ch <-chan evalResult, timeout time.Duration, current func() bool) (*Result, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if !current() {
			return nil, nil, ErrSuperseded
		}
		return res.result, res.errors, res.err
	case <-timer.C:
		return nil, nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}
}
