package scorer

import (
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/compound-cli/internal/property"
)

// Property keys read from upstream records.
const (
	KeyMolecularWeight    = "MolecularWeight"
	KeyXLogP              = "XLogP"
	KeyHBondAcceptorCount = "HBondAcceptorCount"
	KeyHBondDonorCount    = "HBondDonorCount"
	KeyRotatableBondCount = "RotatableBondCount"
	KeyComplexity         = "Complexity"
)

// Scores bundles the four heuristic scores for one compound.
type Scores struct {
	BindingAffinity Score
	Toxicity        Score
	DrugLikeness    Score
	Effectiveness   *float64
}

// ScoreAll runs every score function over bag.
func ScoreAll(bag property.Bag) Scores {
	return Scores{
		BindingAffinity: BindingAffinity(bag),
		Toxicity:        Toxicity(bag),
		DrugLikeness:    DrugLikeness(bag),
		Effectiveness:   Effectiveness(bag),
	}
}

// reader collects typed reads from a bag and keeps the first coercion error.
type reader struct {
	bag property.Bag
	err error
}

func (r *reader) float(key string) float64 {
	if r.err != nil {
		return 0
	}
	v, err := property.Float(r.bag, key)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *reader) int(key string) int {
	if r.err != nil {
		return 0
	}
	v, err := property.Int(r.bag, key)
	if err != nil {
		r.err = err
	}
	return v
}

func logFailure(fn string, err error) {
	zap.L().Debug("scorer: computation failed",
		zap.String("score", fn),
		zap.Error(err),
	)
}

// BindingAffinity averages the non-zero sub-scores of molecular weight,
// XLogP, H-bond acceptors, H-bond donors and complexity, as a percentage.
func BindingAffinity(bag property.Bag) Score {
	r := &reader{bag: bag}
	mw := r.float(KeyMolecularWeight)
	logp := r.float(KeyXLogP)
	hba := r.int(KeyHBondAcceptorCount)
	hbd := r.int(KeyHBondDonorCount)
	cx := r.float(KeyComplexity)
	if r.err != nil {
		logFailure("binding_affinity", r.err)
		return NoScore()
	}

	subs := []float64{
		subScore(mw, molecularWeightScale),
		subScore(math.Abs(logp), xlogpScale),
		subScore(float64(hba), hbondAcceptorScale),
		subScore(float64(hbd), hbondDonorScale),
		subScore(cx, complexityScale),
	}

	weight := countNonZero(subs...)
	if weight == 0 {
		return Unavailable()
	}

	var sum float64
	for _, s := range subs {
		sum += s
	}
	return Percent(sum / float64(weight) * 100)
}

// Toxicity weights the XLogP, rotatable bond, molecular weight and
// complexity sub-scores and buckets the result into Low/Medium/High.
func Toxicity(bag property.Bag) Score {
	r := &reader{bag: bag}
	mw := r.float(KeyMolecularWeight)
	logp := r.float(KeyXLogP)
	rot := r.int(KeyRotatableBondCount)
	cx := r.float(KeyComplexity)
	if r.err != nil {
		logFailure("toxicity", r.err)
		return NoScore()
	}

	mwScore := subScore(mw, molecularWeightScale)
	logpScore := subScore(math.Abs(logp), xlogpScale)
	rotScore := subScore(float64(rot), rotatableBondScale)
	cxScore := subScore(cx, complexityScale)

	weight := countNonZero(mwScore, logpScore, rotScore, cxScore)
	if weight == 0 {
		return Unavailable()
	}

	w := DefaultToxicityWeights()
	score := (logpScore*w.XLogP +
		rotScore*w.RotatableBonds +
		mwScore*w.MolecularWeight +
		cxScore*w.Complexity) / float64(weight) * 100

	switch {
	case score < 30:
		return Label(LabelLow)
	case score < 70:
		return Label(LabelMedium)
	default:
		return Label(LabelHigh)
	}
}

// lipinskiRule is one Rule-of-Five style check over a single property.
type lipinskiRule struct {
	key     string
	integer bool
	passes  func(float64) bool
}

var lipinskiRules = []lipinskiRule{
	{key: KeyMolecularWeight, passes: func(v float64) bool { return v <= 500 }},
	{key: KeyXLogP, passes: func(v float64) bool { return v >= -0.4 && v <= 5.6 }},
	{key: KeyHBondAcceptorCount, integer: true, passes: func(v float64) bool { return v <= 10 }},
	{key: KeyHBondDonorCount, integer: true, passes: func(v float64) bool { return v <= 5 }},
	{key: KeyRotatableBondCount, integer: true, passes: func(v float64) bool { return v <= 10 }},
}

// DrugLikeness applies Lipinski-style checks to each non-zero property in
// bag and buckets the pass rate into Excellent/Good/Moderate/Poor.
func DrugLikeness(bag property.Bag) Score {
	r := &reader{bag: bag}
	passed, total := 0, 0

	for _, rule := range lipinskiRules {
		var v float64
		if rule.integer {
			v = float64(r.int(rule.key))
		} else {
			v = r.float(rule.key)
		}
		if r.err != nil {
			logFailure("drug_likeness", r.err)
			return NoScore()
		}
		// Unknown fields read as 0, so a zero never counts toward the total.
		if v == 0 {
			continue
		}
		total++
		if rule.passes(v) {
			passed++
		}
	}

	if total == 0 {
		return Unavailable()
	}

	pct := float64(passed) / float64(total) * 100
	switch {
	case pct >= 80:
		return Label(LabelExcellent)
	case pct >= 60:
		return Label(LabelGood)
	case pct >= 40:
		return Label(LabelModerate)
	default:
		return Label(LabelPoor)
	}
}

// Effectiveness is the weighted mean of the binding sub-scores, with weights
// of zero sub-scores dropped and the remainder renormalized. It returns a
// bare percentage, or nil when no sub-score contributed or the data could
// not be read.
func Effectiveness(bag property.Bag) *float64 {
	return weightedEffectiveness(bag, DefaultEffectivenessWeights())
}

func weightedEffectiveness(bag property.Bag, w EffectivenessWeights) *float64 {
	if err := w.validate(); err != nil {
		logFailure("effectiveness", err)
		return nil
	}

	r := &reader{bag: bag}
	mw := r.float(KeyMolecularWeight)
	logp := r.float(KeyXLogP)
	hba := r.int(KeyHBondAcceptorCount)
	hbd := r.int(KeyHBondDonorCount)
	cx := r.float(KeyComplexity)
	if r.err != nil {
		logFailure("effectiveness", r.err)
		return nil
	}

	parts := []struct {
		score  float64
		weight float64
	}{
		{subScore(mw, molecularWeightScale), w.MolecularWeight},
		{subScore(math.Abs(logp), xlogpScale), w.XLogP},
		{subScore(float64(hba), hbondAcceptorScale), w.HBondAcceptors},
		{subScore(float64(hbd), hbondDonorScale), w.HBondDonors},
		{subScore(cx, complexityScale), w.Complexity},
	}

	var total float64
	for i := range parts {
		if parts[i].score == 0 {
			parts[i].weight = 0
		}
		total += parts[i].weight
	}
	if total == 0 {
		return nil
	}

	var eff float64
	for _, p := range parts {
		eff += p.score * (p.weight / total)
	}
	eff *= 100
	return &eff
}
