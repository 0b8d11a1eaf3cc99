package interpolator

import (
	"errors"
	"fmt"
)

// ErrInvalidInterval is returned by interpolator constructors when a domain
// interval is degenerate or inverted, i.e. when its lower bound is not
// strictly less than its upper bound.
var ErrInvalidInterval = errors.New("invalid interval")

// ClosedInterval is a closed interval [Low, High] on the real line. Both
// endpoints belong to the interval.
//
// Interpolator domains must satisfy Low < High and are validated by the
// interpolator constructors. Ranges carry no such constraint: a range with
// Low > High inverts the direction of the output, and its Length is
// negative.
type ClosedInterval struct {
	Low, High float64
}

// Interval is a shorthand for ClosedInterval{low, high}. It performs no
// validation; invalid domains are rejected when an interpolator is
// constructed from them.
func Interval(low, high float64) ClosedInterval {
	return ClosedInterval{low, high}
}

// Length returns the signed extent of the interval, defined as High − Low.
// It is negative for inverted intervals.
func (iv ClosedInterval) Length() float64 {
	return iv.High - iv.Low
}

// Midpoint returns the point halfway between the interval's bounds.
func (iv ClosedInterval) Midpoint() float64 {
	return iv.Low + (iv.High-iv.Low)/2
}

// Contains reports whether x lies in the interval, inclusive of both
// endpoints.
func (iv ClosedInterval) Contains(x float64) bool {
	return x >= iv.Low && x <= iv.High
}

// Clamp returns the point of the interval nearest to x.
func (iv ClosedInterval) Clamp(x float64) float64 {
	if x < iv.Low {
		return iv.Low
	}
	if x > iv.High {
		return iv.High
	}
	return x
}

// check rejects degenerate and inverted intervals. It is applied to
// domains, never to ranges.
func (iv ClosedInterval) check() error {
	if iv.Low >= iv.High {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, iv.Low, iv.High)
	}
	return nil
}
