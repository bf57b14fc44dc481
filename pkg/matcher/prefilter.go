package matcher

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/arthur-debert/typofix/pkg/rules"
)

// literalPrefilter answers "which literal rules have their pattern
// ending exactly at the probe end" with one automaton pass, replacing
// per-rule suffix comparisons. Regex rules are untouched; the prefilter
// never changes results, only skips literal rules that cannot match.
type literalPrefilter struct {
	ac      ahocorasick.AhoCorasick
	ruleIdx []int // automaton pattern index -> index into the rule list
}

// newLiteralPrefilter builds the automaton over every literal pattern
// in ruleList. Returns nil when there is nothing to prefilter.
func newLiteralPrefilter(ruleList []rules.Rule) *literalPrefilter {
	var patterns []string
	var ruleIdx []int
	for i, rule := range ruleList {
		if rule.Pattern.Kind == rules.PatternLiteral && rule.Pattern.Literal != "" {
			patterns = append(patterns, rule.Pattern.Literal)
			ruleIdx = append(ruleIdx, i)
		}
	}
	if len(patterns) == 0 {
		return nil
	}

	// StandardMatch so overlapping iteration reports every occurrence;
	// leftmost semantics would drop a suffix hit shadowed by an earlier
	// overlapping pattern (e.g. "2/3" inside "1/2/3").
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		MatchKind: ahocorasick.StandardMatch,
		DFA:       true,
	})
	return &literalPrefilter{
		ac:      builder.Build(patterns),
		ruleIdx: ruleIdx,
	}
}

// suffixHits returns the set of rule indices whose literal pattern ends
// at the probe end
func (p *literalPrefilter) suffixHits(probe string) map[int]bool {
	hits := make(map[int]bool)
	iter := p.ac.IterOverlapping(probe)
	for next := iter.Next(); next != nil; next = iter.Next() {
		if next.End() == len(probe) {
			hits[p.ruleIdx[next.Pattern()]] = true
		}
	}
	return hits
}
