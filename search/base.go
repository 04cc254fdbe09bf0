package search

import (
	"context"
	"errors"
	"runtime"
	"time"
)

// Body is the search routine a strategy supplies to Base.Run. profiling
// indicates whether this pass should be treated as the memory-profiled
// pass; the exact same code path must run either way — profiling only
// arms the allocation snapshot Run takes around the call, and must never
// change which states are visited.
type Body func(ctx context.Context, profiling bool) (sol *Solution, nodesExpanded int, err error)

// Base implements the idle -> running -> terminal state machine and the
// two-pass timing/memory instrumentation contract shared by every
// strategy. Strategies embed Base and supply a Body.
type Base struct {
	state State
	stats Stats
}

// State returns the current position in the state machine.
func (b *Base) State() State {
	return b.state
}

// Stats returns the instrumentation record, valid only in a terminal state.
func (b *Base) Stats() (Stats, error) {
	if !b.state.Terminal() {
		return Stats{}, ErrStatsNotReady
	}
	return b.stats, nil
}

// Run drives the two-pass contract: body runs once with profiling=false to
// capture wall time and nodes expanded, then once more with profiling=true
// to capture peak memory via a runtime.MemStats delta around the
// identical call. A solver instance is single-use; a second call to Run
// returns ErrAlreadyRun.
//
// A context deadline or cancellation observed by body is not treated as a
// Go error: spec.md §7 classifies a timeout as a logical "no solution"
// outcome, with the elapsed-time and nodes-expanded fields populated from
// the work done so far. Only a non-context error (an invariant violation
// surfaced by a strategy body) is propagated to the caller.
func (b *Base) Run(ctx context.Context, body Body) (State, error) {
	if b.state != StateIdle {
		return b.state, ErrAlreadyRun
	}
	b.state = StateRunning

	start := time.Now()
	sol, nodes, err := body(ctx, false)
	elapsed := time.Since(start)
	if err != nil && !isContextErr(err) {
		b.state = StateExhausted
		return b.state, err
	}

	// Second pass: identical code path, memory snapshot armed. Its
	// solution/node count are not reused for Stats (the first pass is the
	// timing/node-count authority); only the memory delta is kept. If the
	// context already expired, this pass returns immediately too; its
	// (near-zero) allocation delta is still a faithful profiled sample.
	memKB, _, _, err2 := profiledPass(func() (*Solution, int, error) {
		return body(ctx, true)
	})
	if err2 != nil && !isContextErr(err2) {
		b.state = StateExhausted
		return b.state, err2
	}

	b.stats = Stats{
		Solution:      sol,
		SearchTime:    elapsed,
		NodesExpanded: nodes,
		MemoryUsageKB: memKB,
	}

	switch {
	case sol != nil:
		b.state = StateSucceeded
	case err != nil:
		b.state = StateTimedOut
	default:
		b.state = StateExhausted
	}

	return b.state, nil
}

// isContextErr reports whether err is (or wraps) context.Canceled or
// context.DeadlineExceeded.
func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// profiledPass snapshots runtime.MemStats.TotalAlloc before and after fn,
// reporting the delta in kilobytes. TotalAlloc is monotonically
// increasing, so the delta is the bytes this call allocated; for a
// single-threaded synchronous search this is a reasonable proxy for peak
// attributable allocation without pulling in a sampling profiler.
func profiledPass(fn func() (*Solution, int, error)) (memKB uint64, sol *Solution, nodes int, err error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	sol, nodes, err = fn()

	runtime.ReadMemStats(&after)
	if after.TotalAlloc >= before.TotalAlloc {
		memKB = (after.TotalAlloc - before.TotalAlloc) / 1024
	}

	return memKB, sol, nodes, err
}
