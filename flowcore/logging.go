package flowcore

import "github.com/rs/zerolog"

// Options are the knobs shared by every flow driver (cflow, gflow,
// pflow). Today that is just a logger, mirroring the shape of bfs.Option
// in the teacher library but trading "callbacks at each BFS stage" for
// "trace one layer/vertex decision at a time" — the log call sites live
// in each driver's Find, each grounded on a `log::debug!` call in
// original_source/src/pflow.rs.
type Options struct {
	Logger zerolog.Logger
}

// DefaultOptions returns Options with a disabled logger: Find pays no
// formatting cost unless a caller opts in via WithLogger.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// Option configures a flow driver invocation via functional arguments.
type Option func(*Options)

// WithLogger attaches l as the driver's zerolog.Logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// Resolve applies opts over DefaultOptions in order.
func Resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
