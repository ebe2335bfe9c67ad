// Package scorer derives heuristic compound scores from upstream property
// bags. Every function is total: missing or malformed fields degrade the
// score instead of failing the request.
package scorer

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which form a Score takes.
type Kind int

const (
	// KindUnavailable means no field contributed to the score ("N/A").
	KindUnavailable Kind = iota
	// KindPercent is a formatted percentage such as "42.17%".
	KindPercent
	// KindLabel is a categorical label such as "Medium".
	KindLabel
	// KindNoScore means the score could not be computed from the data.
	KindNoScore
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPercent:
		return "percent"
	case KindLabel:
		return "label"
	case KindNoScore:
		return "no_score"
	default:
		return "unavailable"
	}
}

// Categorical labels.
const (
	LabelLow       = "Low"
	LabelMedium    = "Medium"
	LabelHigh      = "High"
	LabelExcellent = "Excellent"
	LabelGood      = "Good"
	LabelModerate  = "Moderate"
	LabelPoor      = "Poor"
)

const notAvailable = "N/A"

// Score is the rendered result of a score function. Unavailable and NoScore
// both display as "N/A" but serialize differently: Unavailable is the bare
// string, NoScore is {"score": null, "display": "N/A"}.
type Score struct {
	Kind    Kind
	Display string
}

// Percent returns a percentage score formatted with two decimals.
func Percent(v float64) Score {
	return Score{Kind: KindPercent, Display: fmt.Sprintf("%.2f%%", v)}
}

// Label returns a categorical score.
func Label(l string) Score {
	return Score{Kind: KindLabel, Display: l}
}

// Unavailable returns the score used when no input field was usable.
func Unavailable() Score {
	return Score{Kind: KindUnavailable, Display: notAvailable}
}

// NoScore returns the score used when computation failed.
func NoScore() Score {
	return Score{Kind: KindNoScore, Display: notAvailable}
}

// String returns the display text.
func (s Score) String() string {
	if s.Display == "" {
		return notAvailable
	}
	return s.Display
}

type noScoreMarker struct {
	Score   *float64 `json:"score" yaml:"score"`
	Display string   `json:"display" yaml:"display"`
}

// MarshalJSON implements json.Marshaler.
func (s Score) MarshalJSON() ([]byte, error) {
	if s.Kind == KindNoScore {
		return json.Marshal(noScoreMarker{Display: notAvailable})
	}
	return json.Marshal(s.String())
}

// MarshalYAML implements yaml.Marshaler.
func (s Score) MarshalYAML() (any, error) {
	if s.Kind == KindNoScore {
		return noScoreMarker{Display: notAvailable}, nil
	}
	return s.String(), nil
}
