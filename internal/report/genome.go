// Package report composes the free-text genome interaction report returned
// alongside compound scores.
package report

import (
	"strings"
)

// Fallback is returned when no upstream record yielded a section.
const Fallback = "significant genetic interactions found. This compound have direct genomic effects."

const maxEntries = 3

// Section titles, in rendering order.
const (
	TitleGeneticSummary   = "Genetic Interaction Summary"
	TitleProteinInteracts = "Protein Interactions"
	TitleGeneticPathways  = "Genetic Pathways"
)

var geneticKeywords = []string{"gene", "dna", "protein"}

// Assay is one bioassay summary row.
type Assay struct {
	TargetName string
	Activity   string
}

// ProteinTarget is one protein the compound interacts with.
type ProteinTarget struct {
	ProteinName     string
	InteractionType string
}

// Findings holds the optional upstream records for one compound. A nil
// slice means the record was unavailable.
type Findings struct {
	Assays   []Assay
	Targets  []ProteinTarget
	Pathways []string
}

// Section is a titled list of report lines.
type Section struct {
	Title string
	Lines []string
}

// Sections builds the populated sections for f in their fixed order.
// Sections with no lines are omitted.
func Sections(f Findings) []Section {
	var out []Section

	var genetic []string
	for _, a := range f.Assays {
		if len(genetic) == maxEntries {
			break
		}
		if !isGenetic(a.TargetName) {
			continue
		}
		genetic = append(genetic, "- "+a.TargetName+": "+orDefault(a.Activity, "No activity data"))
	}
	if len(genetic) > 0 {
		out = append(out, Section{Title: TitleGeneticSummary, Lines: genetic})
	}

	var proteins []string
	for _, t := range first(f.Targets) {
		proteins = append(proteins, "- "+t.ProteinName+": "+orDefault(t.InteractionType, "Unknown interaction"))
	}
	if len(proteins) > 0 {
		out = append(out, Section{Title: TitleProteinInteracts, Lines: proteins})
	}

	var pathways []string
	for _, p := range first(f.Pathways) {
		pathways = append(pathways, "- "+p)
	}
	if len(pathways) > 0 {
		out = append(out, Section{Title: TitleGeneticPathways, Lines: pathways})
	}

	return out
}

// Render joins sections with a blank line between them.
func Render(sections []Section) string {
	blocks := make([]string, 0, len(sections))
	for _, s := range sections {
		lines := append([]string{s.Title + ":"}, s.Lines...)
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// Compose renders the report for f, or Fallback when nothing was found.
func Compose(f Findings) string {
	sections := Sections(f)
	if len(sections) == 0 {
		return Fallback
	}
	return Render(sections)
}

func isGenetic(target string) bool {
	lower := strings.ToLower(target)
	for _, kw := range geneticKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func first[T any](items []T) []T {
	if len(items) > maxEntries {
		return items[:maxEntries]
	}
	return items
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
