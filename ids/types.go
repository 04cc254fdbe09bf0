package ids

import "time"

// DefaultMaxDepth is the default outermost depth cap (spec.md §9.3, same
// value as dfs.DefaultDepthLimit).
const DefaultMaxDepth = 500

// DefaultTimeout is the default wall-clock budget for the whole search.
const DefaultTimeout = 60 * time.Second

// deadlineSampleInterval is how many node expansions elapse between
// context deadline checks inside a single depth-limited iteration.
const deadlineSampleInterval = 1000

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds IDS's tunable parameters.
type Options struct {
	MaxDepth int
	Timeout  time.Duration
}

// DefaultOptions returns Options with MaxDepth and Timeout at their
// spec.md §4.5/§9.3 defaults.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth, Timeout: DefaultTimeout}
}

// WithMaxDepth overrides the default outer depth cap. Values <= 0 disable
// the cap (treated as unbounded, subject only to the timeout).
func WithMaxDepth(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxDepth = n
		} else {
			o.MaxDepth = 0
		}
	}
}

// WithTimeout overrides the default wall-clock deadline. A non-positive
// duration disables the deadline entirely.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.Timeout = d
	}
}
