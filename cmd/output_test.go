package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/compound-cli/internal/model"
	"github.com/sells-group/compound-cli/internal/scorer"
)

func TestWriteResult(t *testing.T) {
	res := &model.UnknownPrediction{
		BindingAffinity: scorer.Percent(36.03),
		Toxicity:        scorer.Label(scorer.LabelLow),
		DrugLikeness:    scorer.NoScore(),
		MolecularWeight: "180.159",
	}

	tests := []struct {
		name   string
		format string
		want   []string
	}{
		{name: "json", format: "json", want: []string{`"binding_affinity": "36.03%"`, `"score": null`}},
		{name: "default", format: "", want: []string{`"toxicity": "Low"`}},
		{name: "yaml", format: "yaml", want: []string{"binding_affinity: 36.03%", "molecular_weight: \"180.159\"", "score: null"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeResult(&buf, tt.format, res))
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := writeResult(&buf, "xml", struct{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Zero(t, buf.Len())
}
