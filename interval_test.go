package interpolator

import (
	"errors"
	"testing"
)

func TestIntervalDerived(t *testing.T) {
	iv := Interval(10, 20)
	if got := iv.Length(); got != 10 {
		t.Errorf("got length %g, want 10", got)
	}
	if got := iv.Midpoint(); got != 15 {
		t.Errorf("got midpoint %g, want 15", got)
	}

	// Inverted intervals are representable (they model inverted ranges)
	// and have negative length.
	if got := Interval(20, 10).Length(); got != -10 {
		t.Errorf("got length %g, want -10", got)
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval(10, 20)
	for _, x := range []float64{10, 15, 20} {
		if !iv.Contains(x) {
			t.Errorf("%v should contain %g", iv, x)
		}
	}
	for _, x := range []float64{9.999, 20.001} {
		if iv.Contains(x) {
			t.Errorf("%v shouldn't contain %g", iv, x)
		}
	}
}

func TestIntervalClamp(t *testing.T) {
	iv := Interval(10, 20)
	if got := iv.Clamp(5); got != 10 {
		t.Errorf("got %g, want 10", got)
	}
	if got := iv.Clamp(15); got != 15 {
		t.Errorf("got %g, want 15", got)
	}
	if got := iv.Clamp(25); got != 20 {
		t.Errorf("got %g, want 20", got)
	}
}

func TestInvalidDomain(t *testing.T) {
	constructors := map[string]func(domain, rng ClosedInterval) (Interpolator, error){
		"Step": func(domain, rng ClosedInterval) (Interpolator, error) {
			return NewStep(domain, rng)
		},
		"NearestNeighbor": func(domain, rng ClosedInterval) (Interpolator, error) {
			return NewNearestNeighbor(domain, rng)
		},
		"Linear": func(domain, rng ClosedInterval) (Interpolator, error) {
			return NewLinear(domain, rng)
		},
		"Sigmoid": func(domain, rng ClosedInterval) (Interpolator, error) {
			return NewSigmoid(domain, rng)
		},
	}

	for name, mk := range constructors {
		t.Run(name, func(t *testing.T) {
			// Degenerate and inverted domains are rejected.
			if _, err := mk(Interval(10, 10), Interval(100, 200)); !errors.Is(err, ErrInvalidInterval) {
				t.Errorf("got %v, want ErrInvalidInterval", err)
			}
			if _, err := mk(Interval(20, 10), Interval(100, 200)); !errors.Is(err, ErrInvalidInterval) {
				t.Errorf("got %v, want ErrInvalidInterval", err)
			}

			// Inverted and degenerate ranges are fine.
			if _, err := mk(Interval(10, 20), Interval(200, 100)); err != nil {
				t.Errorf("inverted range: got %v, want nil", err)
			}
			if _, err := mk(Interval(10, 20), Interval(100, 100)); err != nil {
				t.Errorf("degenerate range: got %v, want nil", err)
			}

			ip := must(mk(Interval(10, 20), Interval(100, 200)))
			diff(t, Interval(10, 20), ip.Domain())
		})
	}
}
