package bfs

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds optional callbacks for observing a BFS run, e.g. to drive
// a visualization front-end replaying the move list into intermediate
// board states.
type Options struct {
	// OnExpand is called once per dequeued board, in expansion order.
	OnExpand func(key string, depth int)
	// OnEnqueue is called once per board added to the frontier.
	OnEnqueue func(key string, depth int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand:  func(string, int) {},
		OnEnqueue: func(string, int) {},
	}
}

// WithOnExpand registers a callback invoked when a board is dequeued.
func WithOnExpand(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnEnqueue registers a callback invoked when a board is enqueued.
func WithOnEnqueue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
