package interpolator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInterpolators is returned by [NewPiecewise] when given no parts.
	ErrNoInterpolators = errors.New("piecewise interpolator needs at least one part")

	// ErrDiscontinuousDomain is returned by [NewPiecewise] when the parts'
	// domains don't line up end to end.
	ErrDiscontinuousDomain = errors.New("piecewise interpolator domains are not contiguous")
)

// Piecewise chains a sequence of interpolators into a single interpolator
// over their combined domain, delegating each evaluation to the part whose
// domain contains the input. A Piecewise is itself an [Interpolator] and
// may appear as a part of another Piecewise.
type Piecewise struct {
	// Spans from the first part's domain start to the last part's domain
	// end.
	domain ClosedInterval
	parts  []Interpolator
}

var _ Interpolator = Piecewise{}

// NewPiecewise returns a piecewise interpolator over the given parts. The
// parts must be ordered by domain and contiguous: each part's upper domain
// bound must exactly equal the next part's lower domain bound, with no gap
// or overlap and no tolerance for rounding. It fails with
// [ErrNoInterpolators] when given no parts and with
// [ErrDiscontinuousDomain] when the domains don't line up.
func NewPiecewise(parts ...Interpolator) (Piecewise, error) {
	if len(parts) == 0 {
		return Piecewise{}, ErrNoInterpolators
	}
	for i := 0; i < len(parts)-1; i++ {
		seam := parts[i].Domain().High
		next := parts[i+1].Domain().Low
		if seam != next {
			return Piecewise{}, fmt.Errorf("%w: part %d ends at %g, part %d starts at %g",
				ErrDiscontinuousDomain, i, seam, i+1, next)
		}
	}
	return Piecewise{
		domain: ClosedInterval{
			Low:  parts[0].Domain().Low,
			High: parts[len(parts)-1].Domain().High,
		},
		parts: parts,
	}, nil
}

// Eval delegates to the first part whose domain contains x. Inputs at or
// below the combined domain go to the first part and inputs at or above it
// to the last part, so the parts' own saturation behavior extends the
// composite flat in both directions. An input exactly on the seam between
// two parts belongs to the earlier one.
func (p Piecewise) Eval(x float64) float64 {
	if x <= p.domain.Low {
		return p.parts[0].Eval(x)
	}
	if x >= p.domain.High {
		return p.parts[len(p.parts)-1].Eval(x)
	}
	for _, part := range p.parts {
		if part.Domain().Contains(x) {
			return part.Eval(x)
		}
	}
	// The contiguity check guarantees the parts cover the combined domain
	// with no gaps.
	panic("unreachable")
}

// ExceedsDomain consults the combined domain only, never the parts'.
func (p Piecewise) ExceedsDomain(x float64) bool {
	return x >= p.domain.High
}

func (p Piecewise) Domain() ClosedInterval {
	return p.domain
}
