package collision

import (
	"testing"

	"nebdiag/pkg/atomdata"
)

func TestRateCoeffDetailedBalance(t *testing.T) {
	el := atomdata.Levels{
		{Energy: 0, J: 1.5},
		{Energy: 14852.9, J: 1.5},
	}
	e := NewEvaluator(sampleOmegaTable())

	qDown, qUp := RateCoeff(el, e, 10000, 1, 2)
	if qDown <= 0 {
		t.Errorf("qDown = %v, want positive", qDown)
	}
	if qUp <= 0 {
		t.Errorf("qUp = %v, want positive", qUp)
	}
	// Upward excitation must be suppressed relative to downward
	// de-excitation by the Boltzmann factor, i.e. qUp < qDown here since
	// g_upper == g_lower and deltaE > 0.
	if qUp >= qDown {
		t.Errorf("qUp=%v should be smaller than qDown=%v for an endothermic excitation", qUp, qDown)
	}
}

func TestRateCoeffUsesCollisionRateWhenIRATSSet(t *testing.T) {
	table := &atomdata.OmegaTable{
		IRATS:        -10,
		Temperatures: []float64{3.7, 4.0},
		Transitions: []atomdata.OmegaTransition{
			{Lower: 1, Upper: 2, Strength: []float64{1.5, 1.5}},
		},
	}
	el := atomdata.Levels{{Energy: 0, J: 1.5}, {Energy: 100, J: 1.5}}
	e := NewEvaluator(table)

	qDown, _ := RateCoeff(el, e, 10000, 1, 2)
	want := 1.5e-10
	if !almostEqual(qDown, want, want*1e-6) {
		t.Errorf("qDown = %v, want %v (IRATS=-10 scales Omega by 1e-10)", qDown, want)
	}
}
