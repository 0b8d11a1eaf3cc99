// Package interpolator provides scalar interpolation functions that map an
// input within a bounded domain to an output within a bounded range, and a
// way of composing them piecewise. It was designed for shaping control
// signals (ramps, easings, response curves), but the functions are general
// purpose.
//
// # Interpolators
//
// The package provides the following interpolation curves:
//
//   - [Step]: jumps from the range's low end to its high end at the
//     domain's lower bound
//   - [NearestNeighbor]: jumps at the domain's midpoint
//   - [Linear]: straight line between the range's ends
//   - [Sigmoid]: smooth logistic S-curve between the range's ends
//   - [Piecewise]: chains other interpolators over contiguous sub-domains
//
// All of them implement [Interpolator] and are immutable once constructed,
// so they can be shared freely, including across goroutines.
//
// # Domains, ranges, and saturation
//
// Every interpolator is constructed from two [ClosedInterval] values: a
// domain, which must have its bounds in strictly increasing order, and a
// range, which need not. Giving the range in descending order inverts the
// output direction, so for example a [Linear] over an inverted range has a
// negative slope.
//
// Evaluation is total: inputs outside the domain saturate at the value of
// the nearest domain bound rather than failing. [Interpolator.ExceedsDomain]
// reports saturation at the upper bound, for callers driving an
// interpolator with an increasing input (such as time) that want to know
// when its output has stopped changing. There is deliberately no
// lower-bound counterpart.
//
// # Errors
//
// All validation happens at construction time: [ErrInvalidInterval] for a
// degenerate or inverted domain, and [ErrNoInterpolators] or
// [ErrDiscontinuousDomain] for an ill-formed piecewise composition. Once an
// interpolator has been constructed, evaluation never fails.
package interpolator
