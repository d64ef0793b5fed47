package collision

import "testing"

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestNaturalSplinePassesThroughNodes(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 3, 5, 4, 6}
	s := newNaturalSpline(x, y)

	for i := range x {
		got := s.eval(x[i])
		if !almostEqual(got, y[i], 1e-9) {
			t.Errorf("eval(x[%d]=%v) = %v, want %v (spline must interpolate its own nodes)", i, x[i], got, y[i])
		}
	}
}

func TestNaturalSplineLinearIsExact(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 2, 4, 6}
	s := newNaturalSpline(x, y)

	for _, xq := range []float64{0.5, 1.5, 2.5} {
		want := 2 * xq
		if got := s.eval(xq); !almostEqual(got, want, 1e-9) {
			t.Errorf("eval(%v) = %v, want %v (natural spline of a line is the line)", xq, got, want)
		}
	}
}

func TestNaturalSplineDegenerateCases(t *testing.T) {
	s0 := newNaturalSpline(nil, nil)
	if got := s0.eval(5); got != 0 {
		t.Errorf("eval on empty spline = %v, want 0", got)
	}

	s1 := newNaturalSpline([]float64{2}, []float64{7})
	if got := s1.eval(100); got != 7 {
		t.Errorf("eval on single-node spline = %v, want 7 (constant)", got)
	}
}

func TestNaturalSplineExtrapolates(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 2, 3}
	s := newNaturalSpline(x, y)

	// Past the tabulated range the evaluator must still return a finite
	// value rather than erroring, per the interpolator's silent-
	// extrapolation contract.
	got := s.eval(10)
	if got == 0 {
		t.Errorf("eval(10) outside [1,3] returned 0 unexpectedly")
	}
}
