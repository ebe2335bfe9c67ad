package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilders(t *testing.T) {
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov/rest/pug/compound/cid/2244/PNG", MoleculeImage("2244"))
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov/rest/pug/compound/cid/2244/record/SDF/?record_type=3d", Structure3D("2244"))
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov/image/imgsrv.fcgi?cid=2244&t=l", GenomeImage("2244"))
	assert.Equal(t, "https://pubchem.ncbi.nlm.nih.gov/compound/2244", PubChem("2244"))
	assert.Equal(t, "https://www.ebi.ac.uk/chembl/compound_report_card/BSYNRYMUTXBXSQ-UHFFFAOYSA-N/", ChEMBL("BSYNRYMUTXBXSQ-UHFFFAOYSA-N"))
	assert.Equal(t, "https://www.ebi.ac.uk/chembl/compound_report_card//", ChEMBL(""))
}

func TestDrugBank(t *testing.T) {
	assert.Equal(t,
		"https://go.drugbank.com/unearth/q?search=2-acetyloxybenzoic%20acid&searcher=drugs",
		DrugBank("2-acetyloxybenzoic acid"),
	)
}

func TestQRCode(t *testing.T) {
	assert.Equal(t,
		"https://chart.googleapis.com/chart?cht=qr&chs=200x200&chl=https%3A//pubchem.ncbi.nlm.nih.gov/compound/2244",
		QRCode("https://pubchem.ncbi.nlm.nih.gov/compound/2244"),
	)
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc_XYZ-0.9~/", "abc_XYZ-0.9~/"},
		{"a b", "a%20b"},
		{"(2S)-2-amino", "%282S%29-2-amino"},
		{"a+b&c=d", "a%2Bb%26c%3Dd"},
		{"β-lactam", "%CE%B2-lactam"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Quote(tt.in), tt.in)
	}
}

func TestFor(t *testing.T) {
	set := For("2244", "BSYNRYMUTXBXSQ-UHFFFAOYSA-N", "2-acetyloxybenzoic acid")

	assert.Equal(t, PubChem("2244"), set.PubChem)
	assert.Equal(t, QRCode(set.PubChem), set.QRCode)
	assert.Equal(t, MoleculeImage("2244"), set.MoleculeImage)
	assert.Contains(t, set.DrugBank, "2-acetyloxybenzoic%20acid")
}
