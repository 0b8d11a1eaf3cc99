package interpolator

// Step is a two-level step function. It evaluates to the low end of its
// range at and below the domain's lower bound, and to the high end
// everywhere above it, so the single discontinuity sits at the domain's
// left edge.
type Step struct {
	domain ClosedInterval
	rng    ClosedInterval
}

var _ Interpolator = Step{}

// NewStep returns a step interpolator over the given domain and range.
// It fails with [ErrInvalidInterval] if the domain is degenerate or
// inverted. The range may be inverted.
func NewStep(domain, rng ClosedInterval) (Step, error) {
	if err := domain.check(); err != nil {
		return Step{}, err
	}
	return Step{domain: domain, rng: rng}, nil
}

func (s Step) Eval(x float64) float64 {
	if x <= s.domain.Low {
		return s.rng.Low
	}
	return s.rng.High
}

func (s Step) ExceedsDomain(x float64) bool {
	return x >= s.domain.High
}

func (s Step) Domain() ClosedInterval {
	return s.domain
}
