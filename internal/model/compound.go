// Package model defines the request inputs and response payloads shared by
// the HTTP API and the CLI.
package model

import (
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/compound-cli/internal/links"
	"github.com/sells-group/compound-cli/internal/scorer"
)

// ErrMissingFields is returned when a required input field is empty.
var ErrMissingFields = eris.New("missing required fields")

// KnownInput identifies a compound already registered in PubChem.
type KnownInput struct {
	Structure string `json:"structure" yaml:"structure"` // SMILES
	ID        string `json:"id" yaml:"id"`               // PubChem CID
}

// Validate reports ErrMissingFields unless both fields are set.
func (in KnownInput) Validate() error {
	if strings.TrimSpace(in.Structure) == "" || strings.TrimSpace(in.ID) == "" {
		return eris.Wrap(ErrMissingFields, "model: known compound needs structure and id")
	}
	return nil
}

// UnknownInput describes a compound known only by its formula, analysed
// against a receptor.
type UnknownInput struct {
	Formula    string `json:"chemical_formula" yaml:"chemical_formula"`
	ReceptorID string `json:"receptor_id" yaml:"receptor_id"` // PDB id
}

// Validate reports ErrMissingFields unless both fields are set.
func (in UnknownInput) Validate() error {
	if strings.TrimSpace(in.Formula) == "" || strings.TrimSpace(in.ReceptorID) == "" {
		return eris.Wrap(ErrMissingFields, "model: unknown compound needs chemical_formula and receptor_id")
	}
	return nil
}

// Prediction is the report for a known compound. Property fields carry the
// upstream value as normalized by property.Get and are null when absent.
type Prediction struct {
	BindingAffinity    scorer.Score `json:"binding_affinity" yaml:"binding_affinity"`
	Toxicity           scorer.Score `json:"toxicity" yaml:"toxicity"`
	DrugLikeness       scorer.Score `json:"drug_likeness" yaml:"drug_likeness"`
	Effectiveness      *float64     `json:"effectiveness" yaml:"effectiveness"`
	GenomeReport       string       `json:"genome_report" yaml:"genome_report"`
	MolecularWeight    any          `json:"molecular_weight" yaml:"molecular_weight"`
	MolecularFormula   any          `json:"molecular_formula" yaml:"molecular_formula"`
	IUPACName          any          `json:"iupac_name" yaml:"iupac_name"`
	HBondDonorCount    any          `json:"h_bond_donor_count" yaml:"h_bond_donor_count"`
	HBondAcceptorCount any          `json:"h_bond_acceptor_count" yaml:"h_bond_acceptor_count"`
	RotatableBondCount any          `json:"rotatable_bond_count" yaml:"rotatable_bond_count"`
	XLogP              any          `json:"xlogp" yaml:"xlogp"`
	Description        string       `json:"description" yaml:"description"`

	links.Set `yaml:",inline"`
}

// UnknownPrediction is the simulated report for a formula-only compound.
type UnknownPrediction struct {
	BindingAffinity scorer.Score `json:"binding_affinity" yaml:"binding_affinity"`
	Toxicity        scorer.Score `json:"toxicity" yaml:"toxicity"`
	DrugLikeness    scorer.Score `json:"drug_likeness" yaml:"drug_likeness"`
	Effectiveness   float64      `json:"effectiveness" yaml:"effectiveness"`
	GenomeReport    string       `json:"genome_report" yaml:"genome_report"`
	MolecularWeight string       `json:"molecular_weight" yaml:"molecular_weight"`
	Description     string       `json:"description" yaml:"description"`
	XLogP           string       `json:"xlogp" yaml:"xlogp"`
	ReceptorTitle   string       `json:"receptor_title,omitempty" yaml:"receptor_title,omitempty"`
}

// Resolution is the result of resolving a compound name to a CID.
type Resolution struct {
	Name      string `json:"name" yaml:"name"`
	CID       string `json:"cid" yaml:"cid"`
	MatchedAs string `json:"matched_as" yaml:"matched_as"`
	Broad     bool   `json:"broad" yaml:"broad"` // matched by word search
}

// FormulaCheck reports whether a molecular formula matches a PubChem compound.
type FormulaCheck struct {
	Exists bool   `json:"exists" yaml:"exists"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	CID    string `json:"cid,omitempty" yaml:"cid,omitempty"`
}
