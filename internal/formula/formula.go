// Package formula estimates properties of compounds known only by their
// molecular formula.
package formula

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/compound-cli/internal/scorer"
)

// atomicWeights covers the elements common in small-molecule drugs.
// Elements outside this table contribute nothing to the weight.
var atomicWeights = map[string]float64{
	"H":  1.008,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"P":  30.974,
	"S":  32.065,
	"F":  18.998,
	"Cl": 35.453,
	"Br": 79.904,
	"I":  126.904,
}

var elementPattern = regexp.MustCompile(`([A-Z][a-z]*)(\d*)`)

// SimulatedXLogP is reported for every formula-only compound.
const SimulatedXLogP = "2.45"

// MolecularWeight sums atomic weights over the element counts in formula,
// rounded to three decimals. Unknown elements are skipped.
func MolecularWeight(formula string) (float64, error) {
	var total float64
	for _, m := range elementPattern.FindAllStringSubmatch(formula, -1) {
		weight, ok := atomicWeights[m[1]]
		if !ok {
			continue
		}
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil {
				return 0, eris.Wrapf(err, "formula: count for %s", m[1])
			}
			count = n
		}
		total += weight * float64(count)
	}
	return math.Round(total*1000) / 1000, nil
}

// Estimate holds the simulated scores for a formula-only compound.
type Estimate struct {
	MolecularWeight float64
	BindingScore    float64
	BindingAffinity scorer.Score
	Toxicity        scorer.Score
	DrugLikeness    scorer.Score
	XLogP           string
}

// Simulate derives heuristic scores from the formula's molecular weight.
// A formula with no recognizable elements gets a neutral binding score of 50.
func Simulate(formula string) Estimate {
	mw, err := MolecularWeight(formula)
	if err != nil {
		mw = 0
	}

	binding := 50.0
	if mw != 0 {
		binding = math.Min(mw/500*100, 100)
	}

	est := Estimate{
		MolecularWeight: mw,
		BindingScore:    binding,
		BindingAffinity: scorer.Percent(binding),
		XLogP:           SimulatedXLogP,
	}

	switch {
	case binding < 60:
		est.Toxicity = scorer.Label(scorer.LabelLow)
	case binding < 80:
		est.Toxicity = scorer.Label(scorer.LabelMedium)
	default:
		est.Toxicity = scorer.Label(scorer.LabelHigh)
	}

	if binding > 70 {
		est.DrugLikeness = scorer.Label(scorer.LabelGood)
	} else {
		est.DrugLikeness = scorer.Label(scorer.LabelModerate)
	}

	return est
}

// WeightText renders a molecular weight for display, "N/A" when zero.
// Whole numbers keep one decimal place, e.g. "12011.0".
func WeightText(mw float64) string {
	if mw == 0 {
		return "N/A"
	}
	s := strconv.FormatFloat(mw, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
