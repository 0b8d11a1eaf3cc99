package interpolator

// Interpolator describes a scalar interpolation function f mapping a closed
// input domain into an output range. All implementations in this package
// are immutable after construction, so a single Interpolator may be
// evaluated from multiple goroutines without synchronization.
type Interpolator interface {
	// Eval evaluates f at x. It is total over the reals: outside the
	// domain, f is extended flat, so Eval(x) equals the value at the
	// nearest domain bound. Eval never fails.
	Eval(x float64) float64

	// ExceedsDomain reports whether x lies at or beyond the upper bound of
	// the domain. If it returns true for some x, then Eval(x+e) == Eval(x)
	// for every e >= 0: the output has saturated. There is no counterpart
	// for the lower bound.
	ExceedsDomain(x float64) bool

	// Domain returns the interpolator's domain.
	Domain() ClosedInterval
}
