package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompose_NoRecords(t *testing.T) {
	assert.Equal(t, Fallback, Compose(Findings{}))
}

func TestCompose_NoGeneticAssays(t *testing.T) {
	f := Findings{
		Assays: []Assay{
			{TargetName: "Cyclooxygenase inhibition", Activity: "Active"},
		},
		Targets:  []ProteinTarget{},
		Pathways: []string{},
	}
	assert.Equal(t, Fallback, Compose(f))
}

func TestCompose_AllSections(t *testing.T) {
	f := Findings{
		Assays: []Assay{
			{TargetName: "Gene expression assay", Activity: "Active"},
			{TargetName: "Kinase panel", Activity: "Inactive"},
			{TargetName: "DNA repair", Activity: ""},
			{TargetName: "PROTEIN binding", Activity: "Inconclusive"},
			{TargetName: "gene silencing", Activity: "Active"},
		},
		Targets: []ProteinTarget{
			{ProteinName: "PTGS1", InteractionType: "inhibitor"},
			{ProteinName: "PTGS2"},
			{ProteinName: "AKR1C1", InteractionType: "substrate"},
			{ProteinName: "NFKB1", InteractionType: "modulator"},
		},
		Pathways: []string{"Arachidonic acid metabolism", "Platelet activation", "Inflammation", "Extra"},
	}

	want := "Genetic Interaction Summary:\n" +
		"- Gene expression assay: Active\n" +
		"- DNA repair: No activity data\n" +
		"- PROTEIN binding: Inconclusive\n" +
		"\n" +
		"Protein Interactions:\n" +
		"- PTGS1: inhibitor\n" +
		"- PTGS2: Unknown interaction\n" +
		"- AKR1C1: substrate\n" +
		"\n" +
		"Genetic Pathways:\n" +
		"- Arachidonic acid metabolism\n" +
		"- Platelet activation\n" +
		"- Inflammation"

	assert.Equal(t, want, Compose(f))
}

func TestCompose_MissingSectionKeepsOrder(t *testing.T) {
	f := Findings{
		Pathways: []string{"Glycolysis"},
		Targets:  []ProteinTarget{{ProteinName: "HK1", InteractionType: "activator"}},
	}

	want := "Protein Interactions:\n- HK1: activator\n\nGenetic Pathways:\n- Glycolysis"
	assert.Equal(t, want, Compose(f))
}

func TestSections(t *testing.T) {
	sections := Sections(Findings{Pathways: []string{"A", "B"}})
	assert.Equal(t, []Section{{Title: TitleGeneticPathways, Lines: []string{"- A", "- B"}}}, sections)
	assert.Empty(t, Sections(Findings{}))
}

func TestComposeSimulated(t *testing.T) {
	want := "Genetic Interaction Summary:\n" +
		"- Predicted receptor binding site analysis completed\n" +
		"- Molecular docking simulation performed\n" +
		"- Binding affinity score: 36.03%\n" +
		"\n" +
		"Protein Interactions:\n" +
		"- Analysis based on structural similarities\n" +
		"- Potential interaction pathways identified\n" +
		"\n" +
		"Genetic Pathways:\n" +
		"- Predicted metabolic pathways analyzed\n" +
		"- Safety profile assessment completed"

	assert.Equal(t, want, ComposeSimulated("36.03%"))
	assert.Contains(t, ComposeSimulated(""), "Binding affinity score: N/A")
}
