// Package infer classifies agent descriptors along three independent
// axes: implementation language, functional category, and authoring
// framework. Evidence is collected from tags, names, descriptions, and
// repository URLs as weighted contributions; a label is accepted only
// when the accumulated score clears a confidence floor, so a record
// short on signal simply stays unresolved.
package infer

import "github.com/mchmarny/agentctl/pkg/agent"

// Axis is one of the classification dimensions.
type Axis string

const (
	AxisLanguage  Axis = "language"
	AxisCategory  Axis = "category"
	AxisFramework Axis = "framework"
)

// Axes lists the classification dimensions in evaluation order.
var Axes = []Axis{AxisLanguage, AxisCategory, AxisFramework}

// Sentinel returns the axis placeholder value that marks a record as
// not yet classified. Inference only ever runs against the sentinel;
// any other value is treated as authoritative.
func (a Axis) Sentinel() string {
	switch a {
	case AxisLanguage:
		return "unknown"
	case AxisCategory:
		return "general"
	case AxisFramework:
		return "custom"
	}
	return ""
}

// Signal weights. Tags and declared fields are trusted most; free-text
// keyword matches count for less; the structured official-sample marker
// is deliberately heavier than any single generic match.
const (
	weightStrong = 3
	weightMedium = 2
	weightWeak   = 1

	weightSampleFramework = 4
	weightSampleLanguage  = 5

	// scoreFloor is the minimum top score accepted on any axis; a lone
	// weak signal never resolves a record.
	scoreFloor = 2

	// adkScoreFloor is the elevated floor for google-adk: "adk" is a
	// short overloaded acronym, so a bare text match needs a
	// corroborating tag before it counts.
	adkScoreFloor = 3
)

// Classifier runs the three axis inferences against a shared, read-only
// signal-table set.
type Classifier struct {
	cfg *Config
}

// New creates a Classifier. A nil config gets the default tables.
func New(cfg *Config) *Classifier {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Classifier{cfg: cfg}
}

// Infer runs a single axis against the record.
func (c *Classifier) Infer(axis Axis, a agent.Agent) (string, bool) {
	switch axis {
	case AxisLanguage:
		return c.Language(a)
	case AxisCategory:
		return c.Category(a)
	case AxisFramework:
		return c.Framework(a)
	}
	return "", false
}

// decide applies the shared confidence gate: no evidence or a top score
// below the floor yields no decision, and (where enforced) so does a
// tie between two distinct top candidates.
func decide(t tally, rejectTies bool) (string, bool) {
	if len(t) == 0 {
		return "", false
	}
	label, score, tied := t.top()
	if score < scoreFloor {
		return "", false
	}
	if rejectTies && tied {
		return "", false
	}
	return label, true
}
