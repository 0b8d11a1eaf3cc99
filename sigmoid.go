package interpolator

import "math"

// sigmoidWindow is the half-width of the logistic input window. Inputs are
// rescaled from the domain onto [-sigmoidWindow, sigmoidWindow] before the
// logistic function is applied. At the window's edges the logistic reaches
// ≈0.018 and ≈0.982 rather than 0 and 1, so outputs just inside the domain
// land slightly short of the range's ends; widening the window would
// sharpen the curve and change every output.
const sigmoidWindow = 4

// Sigmoid maps the domain onto the range along a logistic S-curve. The
// curve is symmetric about the domain midpoint, where it passes through the
// middle of the range exactly. Outside the domain it saturates at the
// range's ends, like [Linear].
type Sigmoid struct {
	domain ClosedInterval
	rng    ClosedInterval
}

var _ Interpolator = Sigmoid{}

// NewSigmoid returns a sigmoid interpolator over the given domain and
// range. It fails with [ErrInvalidInterval] if the domain is degenerate or
// inverted. The range may be inverted.
func NewSigmoid(domain, rng ClosedInterval) (Sigmoid, error) {
	if err := domain.check(); err != nil {
		return Sigmoid{}, err
	}
	return Sigmoid{domain: domain, rng: rng}, nil
}

func (s Sigmoid) Eval(x float64) float64 {
	if x <= s.domain.Low {
		return s.rng.Low
	}
	if x >= s.domain.High {
		return s.rng.High
	}
	t := (x-s.domain.Low)/s.domain.Length()*(2*sigmoidWindow) - sigmoidWindow
	return sigmoid(t)*s.rng.Length() + s.rng.Low
}

// sigmoid evaluates the standard logistic function 1 / (1 + e^−t).
func sigmoid(t float64) float64 {
	return 1 / (1 + math.Exp(-t))
}

func (s Sigmoid) ExceedsDomain(x float64) bool {
	return x >= s.domain.High
}

func (s Sigmoid) Domain() ClosedInterval {
	return s.domain
}
