// Package links builds the external reference URLs attached to a compound
// report. All builders are pure string templates.
package links

import (
	"fmt"
	"strings"
)

const (
	pubchemBase  = "https://pubchem.ncbi.nlm.nih.gov"
	chemblBase   = "https://www.ebi.ac.uk/chembl"
	drugbankBase = "https://go.drugbank.com"
	qrChartBase  = "https://chart.googleapis.com/chart"
)

// MoleculeImage returns the 2D structure PNG URL for a PubChem CID.
func MoleculeImage(cid string) string {
	return fmt.Sprintf("%s/rest/pug/compound/cid/%s/PNG", pubchemBase, cid)
}

// Structure3D returns the 3D SDF record URL for a PubChem CID.
func Structure3D(cid string) string {
	return fmt.Sprintf("%s/rest/pug/compound/cid/%s/record/SDF/?record_type=3d", pubchemBase, cid)
}

// GenomeImage returns the large rendered image URL for a PubChem CID.
func GenomeImage(cid string) string {
	return fmt.Sprintf("%s/image/imgsrv.fcgi?cid=%s&t=l", pubchemBase, cid)
}

// PubChem returns the compound summary page URL.
func PubChem(cid string) string {
	return fmt.Sprintf("%s/compound/%s", pubchemBase, cid)
}

// ChEMBL returns the ChEMBL report card URL for an InChIKey.
func ChEMBL(inchiKey string) string {
	return fmt.Sprintf("%s/compound_report_card/%s/", chemblBase, inchiKey)
}

// DrugBank returns a DrugBank drug search URL for a compound name.
func DrugBank(name string) string {
	return fmt.Sprintf("%s/unearth/q?search=%s&searcher=drugs", drugbankBase, Quote(name))
}

// QRCode returns a QR code image URL encoding target.
func QRCode(target string) string {
	return fmt.Sprintf("%s?cht=qr&chs=200x200&chl=%s", qrChartBase, Quote(target))
}

// Set holds every link attached to a known compound.
type Set struct {
	MoleculeImage string `json:"molecule_image_url" yaml:"molecule_image_url"`
	Structure3D   string `json:"structure3d_url" yaml:"structure3d_url"`
	GenomeImage   string `json:"genome_image_url" yaml:"genome_image_url"`
	PubChem       string `json:"pubchem_url" yaml:"pubchem_url"`
	ChEMBL        string `json:"chembl_url" yaml:"chembl_url"`
	DrugBank      string `json:"drugbank_url" yaml:"drugbank_url"`
	QRCode        string `json:"qr_code_url" yaml:"qr_code_url"`
}

// For builds the link set for a compound.
func For(cid, inchiKey, name string) Set {
	pubchem := PubChem(cid)
	return Set{
		MoleculeImage: MoleculeImage(cid),
		Structure3D:   Structure3D(cid),
		GenomeImage:   GenomeImage(cid),
		PubChem:       pubchem,
		ChEMBL:        ChEMBL(inchiKey),
		DrugBank:      DrugBank(name),
		QRCode:        QRCode(pubchem),
	}
}

// Quote percent-encodes s for use in a query value, leaving letters,
// digits, "_.-~" and "/" unescaped.
func Quote(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == '~', c == '/':
		return true
	}
	return false
}
