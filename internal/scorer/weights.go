package scorer

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Normalization scales: a raw property divided by its scale and clamped to
// [0,1] yields its sub-score.
const (
	molecularWeightScale = 1000
	xlogpScale           = 5
	hbondAcceptorScale   = 10
	hbondDonorScale      = 5
	rotatableBondScale   = 10
	complexityScale      = 1000
)

// ToxicityWeights weight the toxicity sub-scores. The weighted sum is divided
// by the count of non-zero sub-scores, not by the weight sum.
type ToxicityWeights struct {
	XLogP           float64
	RotatableBonds  float64
	MolecularWeight float64
	Complexity      float64
}

// EffectivenessWeights weight the effectiveness sub-scores. Weights of zero
// sub-scores are dropped and the rest renormalized to sum to 1.
type EffectivenessWeights struct {
	MolecularWeight float64
	XLogP           float64
	HBondAcceptors  float64
	HBondDonors     float64
	Complexity      float64
}

// DefaultToxicityWeights returns the toxicity weights.
func DefaultToxicityWeights() ToxicityWeights {
	return ToxicityWeights{
		XLogP:           0.4,
		RotatableBonds:  0.3,
		MolecularWeight: 0.2,
		Complexity:      0.1,
	}
}

// DefaultEffectivenessWeights returns the effectiveness weights.
// Weights sum to 1.
func DefaultEffectivenessWeights() EffectivenessWeights {
	return EffectivenessWeights{
		MolecularWeight: 0.25,
		XLogP:           0.25,
		HBondAcceptors:  0.2,
		HBondDonors:     0.2,
		Complexity:      0.1,
	}
}

func (w EffectivenessWeights) sum() float64 {
	return w.MolecularWeight + w.XLogP + w.HBondAcceptors + w.HBondDonors + w.Complexity
}

// validate checks that weights are non-negative and sum to 1.
func (w EffectivenessWeights) validate() error {
	var errs []string

	weights := map[string]float64{
		"molecular_weight": w.MolecularWeight,
		"xlogp":            w.XLogP,
		"hbond_acceptors":  w.HBondAcceptors,
		"hbond_donors":     w.HBondDonors,
		"complexity":       w.Complexity,
	}
	for name, v := range weights {
		if v < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if sum := w.sum(); math.Abs(sum-1) > 1e-9 {
		errs = append(errs, fmt.Sprintf("weights should sum to 1, got %.3f", sum))
	}

	if len(errs) > 0 {
		return eris.Errorf("scorer: weight validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// subScore normalizes v by scale into [0,1].
func subScore(v, scale float64) float64 {
	if v == 0 {
		return 0
	}
	return math.Max(0, math.Min(v/scale, 1))
}

// countNonZero returns how many sub-scores contributed.
func countNonZero(scores ...float64) int {
	n := 0
	for _, s := range scores {
		if s != 0 {
			n++
		}
	}
	return n
}
