package matcher

import (
	"unicode/utf8"

	"github.com/arthur-debert/typofix/pkg/editor"
	"github.com/arthur-debert/typofix/pkg/logging"
	"github.com/arthur-debert/typofix/pkg/rules"
	"github.com/rs/zerolog"
)

// DefaultMaxLookback bounds how many runes before the cursor a probe
// may cover. The catalog's longest pattern is a quote pair, which is
// unbounded in principle; the bound keeps probes cheap on long lines.
// Probes carry one additional rune of context past the bound so that
// boundary patterns can see what really precedes the window.
const DefaultMaxLookback = 256

// Matcher evaluates a fixed, ordered rule list against the text
// preceding the host's cursor
type Matcher struct {
	logger      zerolog.Logger
	rules       []rules.Rule
	host        editor.Host
	maxLookback int
	prefilter   *literalPrefilter
}

// Option configures a Matcher
type Option func(*Matcher)

// WithMaxLookback overrides the probe lookback bound
func WithMaxLookback(n int) Option {
	return func(m *Matcher) {
		m.maxLookback = n
	}
}

// WithoutPrefilter disables the literal prefilter; evaluation falls
// back to per-rule suffix tests. Results are identical either way.
func WithoutPrefilter() Option {
	return func(m *Matcher) {
		m.prefilter = nil
	}
}

// New creates a matcher over the resolved rule list, bound to host
func New(ruleList []rules.Rule, host editor.Host, opts ...Option) *Matcher {
	m := &Matcher{
		logger:      logging.GetLogger("matcher"),
		rules:       ruleList,
		host:        host,
		maxLookback: DefaultMaxLookback,
		prefilter:   newLiteralPrefilter(ruleList),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Watch subscribes the matcher to the buffer's change stream. Only data
// changes whose inserted text ends at the cursor warrant re-checking;
// cursor moves, attribute changes, and deletions are filtered out here.
func (m *Matcher) Watch(buf *editor.Buffer) {
	buf.OnChange(func(ev editor.ChangeEvent) {
		if !relevantChange(ev) {
			return
		}
		m.OnTextChange(ev)
	})
}

// relevantChange reports whether ev is a data change at the text end
// nearest the cursor
func relevantChange(ev editor.ChangeEvent) bool {
	if !ev.IsDataChange() || ev.Kind == editor.ChangeDelete {
		return false
	}
	return ev.Cursor == ev.Start+utf8.RuneCountInString(ev.Text)
}

// OnTextChange probes the text before the cursor against every rule in
// order and applies the first match. It assumes the trigger condition
// has been checked by the caller (see Watch).
func (m *Matcher) OnTextChange(ev editor.ChangeEvent) {
	// Fetch one rune beyond the window. Boundary patterns need to see
	// the character preceding the window; without it a truncated window
	// is indistinguishable from the start of the text and a ^ anchor
	// fires where it should not.
	probe := m.host.TextBeforeCursor(m.maxLookback + 1)
	if probe == "" {
		return
	}
	truncated := m.host.CursorPosition() > utf8.RuneCountInString(probe)

	var literalHits map[int]bool
	if m.prefilter != nil {
		literalHits = m.prefilter.suffixHits(probe)
	}

	for i, rule := range m.rules {
		if m.prefilter != nil && rule.Pattern.Kind == rules.PatternLiteral && !literalHits[i] {
			continue
		}
		match, ok := rule.Eval(probe)
		if !ok {
			continue
		}
		if truncated && rule.Pattern.Kind == rules.PatternRegexp && len(match.Text) == len(probe) {
			// The match begins at the truncation edge. Whatever precedes
			// the window could invalidate its boundary, so decline it.
			// Literal rules carry no boundary assertion and stay valid.
			continue
		}
		m.logger.Debug().
			Str("rule", rule.Name).
			Str("matched", match.Text).
			Str("output", match.Output).
			Msg("Rule matched")
		m.apply(match)
		return // first match wins
	}
}

// apply issues the single atomic replace for a match: the matched
// suffix of the probe, spanning backwards from the cursor, becomes the
// computed output, carrying the attributes active at the cursor.
func (m *Matcher) apply(match rules.Match) {
	cursor := m.host.CursorPosition()
	matchedLen := utf8.RuneCountInString(match.Text)
	attrs := m.host.AttributesAtCursor()

	err := m.host.RunBatch(func(b editor.Batch) error {
		return b.ReplaceRange(cursor-matchedLen, cursor, match.Output, attrs)
	})
	if err != nil {
		// Not safety-critical: a failed replace leaves the original
		// text intact, so there is nothing to retry.
		m.logger.Warn().Err(err).Msg("Replace batch failed, text left unchanged")
	}
}
