package model

import (
	"encoding/json"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/compound-cli/internal/links"
	"github.com/sells-group/compound-cli/internal/scorer"
)

func TestKnownInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      KnownInput
		wantErr bool
	}{
		{"complete", KnownInput{Structure: "CC(=O)OC1=CC=CC=C1C(=O)O", ID: "2244"}, false},
		{"missing id", KnownInput{Structure: "CCO"}, true},
		{"missing structure", KnownInput{ID: "702"}, true},
		{"whitespace only", KnownInput{Structure: "  ", ID: "702"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, eris.Is(err, ErrMissingFields))
		})
	}
}

func TestUnknownInput_Validate(t *testing.T) {
	require.NoError(t, UnknownInput{Formula: "C9H8O4", ReceptorID: "1HSG"}.Validate())

	err := UnknownInput{Formula: "C9H8O4"}.Validate()
	assert.True(t, eris.Is(err, ErrMissingFields))

	err = UnknownInput{ReceptorID: "1HSG"}.Validate()
	assert.True(t, eris.Is(err, ErrMissingFields))
}

func TestPrediction_JSONKeys(t *testing.T) {
	eff := 43.5
	p := Prediction{
		BindingAffinity: scorer.Percent(42),
		Toxicity:        scorer.Label(scorer.LabelLow),
		DrugLikeness:    scorer.NoScore(),
		Effectiveness:   &eff,
		GenomeReport:    "report",
		MolecularWeight: 180.16,
		Description:     "aspirin",
		Set:             links.For("2244", "KEY", "name"),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	keys := []string{
		"binding_affinity", "toxicity", "drug_likeness", "effectiveness", "genome_report",
		"molecular_weight", "molecular_formula", "iupac_name", "h_bond_donor_count",
		"h_bond_acceptor_count", "rotatable_bond_count", "xlogp", "description",
		"molecule_image_url", "structure3d_url", "genome_image_url", "pubchem_url",
		"chembl_url", "drugbank_url", "qr_code_url",
	}
	assert.Len(t, got, len(keys))
	for _, k := range keys {
		assert.Contains(t, got, k)
	}

	assert.Equal(t, "42.00%", got["binding_affinity"])
	assert.Equal(t, map[string]any{"score": nil, "display": "N/A"}, got["drug_likeness"])
	assert.Nil(t, got["molecular_formula"])
	assert.Equal(t, 180.16, got["molecular_weight"])
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov/compound/2244", got["pubchem_url"])
}

func TestPrediction_NilEffectiveness(t *testing.T) {
	data, err := json.Marshal(Prediction{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"effectiveness":null`)
}

func TestPrediction_YAMLInlinesLinks(t *testing.T) {
	p := Prediction{BindingAffinity: scorer.Unavailable(), Set: links.For("702", "", "ethanol")}

	data, err := yaml.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, "N/A", got["binding_affinity"])
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov/compound/702", got["pubchem_url"])
	assert.NotContains(t, got, "set")
}

func TestUnknownPrediction_ReceptorTitleOmitted(t *testing.T) {
	data, err := json.Marshal(UnknownPrediction{MolecularWeight: "N/A"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "receptor_title")

	data, err = json.Marshal(UnknownPrediction{ReceptorTitle: "HIV-1 PROTEASE"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"receptor_title":"HIV-1 PROTEASE"`)
}
