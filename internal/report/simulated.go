package report

// ComposeSimulated renders the fixed report used for compounds that have no
// upstream record, quoting the simulated binding affinity.
func ComposeSimulated(bindingAffinity string) string {
	if bindingAffinity == "" {
		bindingAffinity = "N/A"
	}
	return Render([]Section{
		{
			Title: TitleGeneticSummary,
			Lines: []string{
				"- Predicted receptor binding site analysis completed",
				"- Molecular docking simulation performed",
				"- Binding affinity score: " + bindingAffinity,
			},
		},
		{
			Title: TitleProteinInteracts,
			Lines: []string{
				"- Analysis based on structural similarities",
				"- Potential interaction pathways identified",
			},
		},
		{
			Title: TitleGeneticPathways,
			Lines: []string{
				"- Predicted metabolic pathways analyzed",
				"- Safety profile assessment completed",
			},
		},
	})
}
