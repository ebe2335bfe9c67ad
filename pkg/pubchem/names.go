package pubchem

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NameVariations returns the spellings tried, in order, when resolving a
// compound name: as given, lowercase, uppercase, without spaces, and with
// spaces replaced by hyphens or underscores. The name is NFKC-normalized
// first and duplicates are dropped.
func NameVariations(name string) []string {
	n := strings.TrimSpace(norm.NFKC.String(name))
	if n == "" {
		return nil
	}

	candidates := []string{
		n,
		strings.ToLower(n),
		strings.ToUpper(n),
		strings.ReplaceAll(n, " ", ""),
		strings.ReplaceAll(n, " ", "-"),
		strings.ReplaceAll(n, " ", "_"),
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
