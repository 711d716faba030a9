package clip2d

// Option configures a clipping call.
// Use functional options to override the subdivision defaults.
//
// Example:
//
//	// Default tolerances
//	pieces := clip2d.ClipRect(seg, window)
//
//	// Coarser subdivision, bounded recursion
//	pieces = clip2d.ClipRect(seg, window, clip2d.WithEpsilon(0.01), clip2d.WithMaxDepth(32))
type Option func(*clipOptions)

// clipOptions holds optional configuration for clipping calls.
type clipOptions struct {
	epsilon  float64
	maxDepth int
	workers  int
}

// defaultOptions returns the default clipping options.
func defaultOptions() clipOptions {
	return clipOptions{
		epsilon:  DefaultEpsilon,
		maxDepth: DefaultMaxDepth,
		workers:  0, // batch calls interpret 0 as GOMAXPROCS
	}
}

func buildOptions(opts []Option) clipOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithEpsilon sets the Manhattan-length cutoff below which the
// subdivision clipper stops splitting. Non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *clipOptions) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}

// WithMaxDepth sets the maximum recursion depth for the subdivision
// clipper. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *clipOptions) {
		if depth > 0 {
			o.maxDepth = depth
		}
	}
}

// WithWorkers sets the number of goroutines used by the batch clipping
// functions. Zero or negative selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *clipOptions) {
		o.workers = n
	}
}
