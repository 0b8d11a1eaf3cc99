package interpolator

// NearestNeighbor snaps every input to whichever end of the range belongs
// to the nearer domain bound. It is the same shape as [Step], but with the
// discontinuity at the domain's midpoint instead of its left edge.
type NearestNeighbor struct {
	domain   ClosedInterval
	rng      ClosedInterval
	midpoint float64
}

var _ Interpolator = NearestNeighbor{}

// NewNearestNeighbor returns a nearest-neighbor interpolator over the given
// domain and range. It fails with [ErrInvalidInterval] if the domain is
// degenerate or inverted. The range may be inverted.
func NewNearestNeighbor(domain, rng ClosedInterval) (NearestNeighbor, error) {
	if err := domain.check(); err != nil {
		return NearestNeighbor{}, err
	}
	return NearestNeighbor{
		domain:   domain,
		rng:      rng,
		midpoint: domain.Midpoint(),
	}, nil
}

// Eval returns the low end of the range for x at or below the domain
// midpoint, and the high end otherwise. An input exactly on the midpoint
// belongs to the low side.
func (n NearestNeighbor) Eval(x float64) float64 {
	if x <= n.midpoint {
		return n.rng.Low
	}
	return n.rng.High
}

func (n NearestNeighbor) ExceedsDomain(x float64) bool {
	return x >= n.domain.High
}

func (n NearestNeighbor) Domain() ClosedInterval {
	return n.domain
}
