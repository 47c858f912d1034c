package infer

import "regexp"

// PatternRule maps a compiled expression to a candidate label and the
// weight a match contributes.
type PatternRule struct {
	expr   *regexp.Regexp
	except *regexp.Regexp
	label  string
	weight int
}

func pattern(expr, label string, weight int) PatternRule {
	return PatternRule{
		expr:   regexp.MustCompile(expr),
		label:  label,
		weight: weight,
	}
}

// patternExcept builds a rule whose exclusion occurrences are blanked
// out of the text before expr runs, so only standalone occurrences
// count. Used where the intent would otherwise need a lookahead (e.g.
// "Java" but not "Java Script", while still crediting a separate
// standalone "Java" in the same text).
func patternExcept(expr, except, label string, weight int) PatternRule {
	r := pattern(expr, label, weight)
	r.except = regexp.MustCompile(except)
	return r
}

func (r PatternRule) matches(text string) bool {
	if r.except != nil {
		text = r.except.ReplaceAllString(text, " ")
	}
	return r.expr.MatchString(text)
}

// SuffixRule maps a repository basename suffix (e.g. "-go") to a label.
// Held in an ordered list so evaluation is deterministic.
type SuffixRule struct {
	suffix string
	label  string
}

// TagRule maps a family of tags to a category. Every tag in the family
// that appears on the record counts as a separate match.
type TagRule struct {
	tags     map[string]bool
	category string
}

func tagRule(category string, tags ...string) TagRule {
	m := make(map[string]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return TagRule{tags: m, category: category}
}

func (r TagRule) matchCount(tags map[string]bool) int {
	n := 0
	for t := range tags {
		if r.tags[t] {
			n++
		}
	}
	return n
}
