package rules

import (
	"regexp"
	"strings"
)

// PatternKind discriminates the pattern variants of a rule
type PatternKind int

const (
	// PatternNone never matches. It is the pattern of opaque entries:
	// names that resolved to neither a built-in nor an inline rule.
	PatternNone PatternKind = iota

	// PatternLiteral matches when the probe text ends with the literal
	PatternLiteral

	// PatternRegexp matches when the end-anchored expression matches the probe
	PatternRegexp
)

// Pattern is a tagged variant: a literal suffix or an end-anchored
// regular expression. The kind is an explicit discriminant; matching
// behavior never depends on runtime type inspection.
type Pattern struct {
	Kind    PatternKind
	Literal string
	Regexp  *regexp.Regexp
}

// Literal returns a pattern matching probe text that ends with s
func Literal(s string) Pattern {
	return Pattern{Kind: PatternLiteral, Literal: s}
}

// Anchored returns a pattern matching probe text against re. The
// expression must carry an end-of-text anchor ("$"); a pattern without
// one can match a correct substring at the wrong position. This is an
// authoring contract, not something the engine validates.
func Anchored(re *regexp.Regexp) Pattern {
	return Pattern{Kind: PatternRegexp, Regexp: re}
}

// Rule is a single compiled transformation
type Rule struct {
	// Name identifies built-in rules for group and removal resolution.
	// Inline rules are anonymous.
	Name string

	// Pattern is what the rule recognizes at the end of a probe
	Pattern Pattern

	// To is the replacement: a verbatim string for literal patterns, or
	// a template with $1-style back-references for regexp patterns
	To string
}

// Match is the result of a successful rule evaluation against a probe.
// It lives for a single change notification and is discarded after the
// replace is issued.
type Match struct {
	// Text is the matched suffix of the probe
	Text string

	// Output is the computed replacement for Text
	Output string
}

// Eval tests the rule against the end of probe. On a match it returns
// the matched suffix and the computed replacement output.
func (r Rule) Eval(probe string) (Match, bool) {
	switch r.Pattern.Kind {
	case PatternLiteral:
		if r.Pattern.Literal == "" || !strings.HasSuffix(probe, r.Pattern.Literal) {
			return Match{}, false
		}
		return Match{Text: r.Pattern.Literal, Output: r.To}, true

	case PatternRegexp:
		loc := r.Pattern.Regexp.FindStringSubmatchIndex(probe)
		if loc == nil || loc[1] != len(probe) {
			// An unanchored expression can match mid-probe; only a
			// match ending at the probe end is a real one.
			return Match{}, false
		}
		out := r.Pattern.Regexp.ExpandString(nil, r.To, probe, loc)
		return Match{Text: probe[loc[0]:loc[1]], Output: string(out)}, true

	default:
		return Match{}, false
	}
}

// Entry is one element of an include or extra list: a group name, a
// rule name, or an inline rule. Exactly one field is set.
type Entry struct {
	Name   string
	Inline *InlineRule
}

// InlineRule is a user-supplied rule in its declarative form
type InlineRule struct {
	From     string
	To       string
	IsRegexp bool
}

// ByName returns an Entry referencing a rule or group by name
func ByName(name string) Entry {
	return Entry{Name: name}
}

// Inline returns an Entry carrying a literal inline rule
func Inline(from, to string) Entry {
	return Entry{Inline: &InlineRule{From: from, To: to}}
}

// InlineRegexp returns an Entry carrying a regexp inline rule
func InlineRegexp(from, to string) Entry {
	return Entry{Inline: &InlineRule{From: from, To: to, IsRegexp: true}}
}

// Config is the declarative rule selection. Include defaults to all
// built-in groups when empty; Extra is appended after Include; Remove
// drops names from the final set, whether they were listed directly or
// reached through a group.
type Config struct {
	Include []Entry
	Extra   []Entry
	Remove  []string
}
