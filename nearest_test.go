package interpolator

import "testing"

func TestNearestNeighborEval(t *testing.T) {
	nni := must(NewNearestNeighbor(Interval(10, 20), Interval(100, 200)))

	evals := map[float64]float64{
		9:    100,
		10:   100,
		14:   100,
		15:   100, // the midpoint itself belongs to the low side
		15.1: 200,
		16:   200,
		21:   200,
	}
	for x, want := range evals {
		if got := nni.Eval(x); got != want {
			t.Errorf("Eval(%g) = %g, want %g", x, got, want)
		}
	}

	if nni.ExceedsDomain(15) {
		t.Error("ExceedsDomain(15) = true, want false")
	}
	if !nni.ExceedsDomain(21) {
		t.Error("ExceedsDomain(21) = false, want true")
	}
}

func TestNearestNeighborInvertedRange(t *testing.T) {
	nni := must(NewNearestNeighbor(Interval(10, 20), Interval(-100, -200)))

	evals := map[float64]float64{
		9:  -100,
		10: -100,
		14: -100,
		16: -200,
	}
	for x, want := range evals {
		if got := nni.Eval(x); got != want {
			t.Errorf("Eval(%g) = %g, want %g", x, got, want)
		}
	}
}
