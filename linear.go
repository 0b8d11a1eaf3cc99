package interpolator

// Linear maps the domain onto the range affinely and saturates at the
// range's ends outside the domain. An inverted range produces a negative
// slope, so the output decreases as x increases.
type Linear struct {
	domain ClosedInterval
	rng    ClosedInterval
	slope  float64
}

var _ Interpolator = Linear{}

// NewLinear returns a linear interpolator over the given domain and range.
// It fails with [ErrInvalidInterval] if the domain is degenerate or
// inverted. The range may be inverted.
func NewLinear(domain, rng ClosedInterval) (Linear, error) {
	if err := domain.check(); err != nil {
		return Linear{}, err
	}
	return Linear{
		domain: domain,
		rng:    rng,
		slope:  rng.Length() / domain.Length(),
	}, nil
}

func (l Linear) Eval(x float64) float64 {
	if x <= l.domain.Low {
		return l.rng.Low
	}
	if x >= l.domain.High {
		return l.rng.High
	}
	return l.rng.Low + (x-l.domain.Low)*l.slope
}

func (l Linear) ExceedsDomain(x float64) bool {
	return x >= l.domain.High
}

func (l Linear) Domain() ClosedInterval {
	return l.domain
}
