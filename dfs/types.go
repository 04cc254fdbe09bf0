package dfs

// DefaultDepthLimit is the default maximum search depth. spec.md §9.3
// notes the source history was inconsistent between 50 and 500; this
// module settles on 500 and exposes it as a parameter.
const DefaultDepthLimit = 500

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds DFS's tunable parameters.
type Options struct {
	// DepthLimit bounds exploration; a frame at depth >= DepthLimit is
	// goal-tested but not expanded, so no child deeper than DepthLimit is
	// pushed onto the stack.
	DepthLimit int
}

// DefaultOptions returns Options with DepthLimit set to DefaultDepthLimit.
func DefaultOptions() Options {
	return Options{DepthLimit: DefaultDepthLimit}
}

// WithDepthLimit overrides the default depth limit. Values <= 0 disable
// the limit (treated as unbounded).
func WithDepthLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.DepthLimit = n
		} else {
			o.DepthLimit = 0
		}
	}
}
