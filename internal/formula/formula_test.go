package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compound-cli/internal/scorer"
)

func TestMolecularWeight(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    float64
	}{
		{"water", "H2O", 18.015},
		{"aspirin", "C9H8O4", 180.159},
		{"caffeine", "C8H10N4O2", 194.194},
		{"two-letter element", "NaCl", 35.453},
		{"bromine", "CH3Br", 94.939},
		{"implicit counts", "CO", 28.01},
		{"unknown elements only", "Xe", 0},
		{"empty", "", 0},
		{"lowercase ignored", "h2o", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MolecularWeight(tt.formula)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMolecularWeight_Overflow(t *testing.T) {
	_, err := MolecularWeight("C99999999999999999999999")
	require.Error(t, err)
}

func TestSimulate(t *testing.T) {
	est := Simulate("C9H8O4")

	assert.InDelta(t, 180.159, est.MolecularWeight, 1e-9)
	assert.InDelta(t, 36.0318, est.BindingScore, 1e-9)
	assert.Equal(t, "36.03%", est.BindingAffinity.String())
	assert.Equal(t, scorer.Label(scorer.LabelLow), est.Toxicity)
	assert.Equal(t, scorer.Label(scorer.LabelModerate), est.DrugLikeness)
	assert.Equal(t, "2.45", est.XLogP)
}

func TestSimulate_Buckets(t *testing.T) {
	tests := []struct {
		name         string
		formula      string
		wantBinding  string
		wantToxicity string
		wantLikeness string
	}{
		{"unparseable defaults to 50", "xyz", "50.00%", scorer.LabelLow, scorer.LabelModerate},
		{"medium", "C30", "72.07%", scorer.LabelMedium, scorer.LabelGood},
		{"capped", "C100", "100.00%", scorer.LabelHigh, scorer.LabelGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := Simulate(tt.formula)
			assert.Equal(t, tt.wantBinding, est.BindingAffinity.String())
			assert.Equal(t, tt.wantToxicity, est.Toxicity.String())
			assert.Equal(t, tt.wantLikeness, est.DrugLikeness.String())
		})
	}
}

func TestWeightText(t *testing.T) {
	assert.Equal(t, "N/A", WeightText(0))
	assert.Equal(t, "180.159", WeightText(180.159))
	assert.Equal(t, "28.01", WeightText(28.01))
	assert.Equal(t, "12011.0", WeightText(12011))
	assert.Equal(t, "32.0", WeightText(32))
}
