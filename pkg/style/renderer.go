package style

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/typofix/pkg/rules"
)

// Renderer renders rule lists for the terminal
type Renderer struct {
	styled bool
}

// NewRenderer creates a renderer. With styled false, output is plain
// tab-separated text, stable enough for golden files and pipelines.
func NewRenderer(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// patternKindLabel names a pattern variant for display
func patternKindLabel(p rules.Pattern) string {
	switch p.Kind {
	case rules.PatternLiteral:
		return "literal"
	case rules.PatternRegexp:
		return "regexp"
	default:
		return "opaque"
	}
}

// patternSource returns the display form of a rule's pattern
func patternSource(p rules.Pattern) string {
	switch p.Kind {
	case rules.PatternLiteral:
		return p.Literal
	case rules.PatternRegexp:
		return p.Regexp.String()
	default:
		return ""
	}
}

// ruleName falls back to a placeholder for anonymous inline rules
func ruleName(r rules.Rule) string {
	if r.Name == "" {
		return "(inline)"
	}
	return r.Name
}

// RenderRuleList renders the resolved rule list, in order
func (r *Renderer) RenderRuleList(list []rules.Rule) string {
	if len(list) == 0 {
		return "No active rules"
	}
	if !r.styled {
		return r.renderPlain(list)
	}
	return r.renderTable(list)
}

// renderPlain emits one tab-separated line per rule
func (r *Renderer) renderPlain(list []rules.Rule) string {
	var b strings.Builder
	for _, rule := range list {
		b.WriteString(ruleName(rule))
		b.WriteString("\t")
		b.WriteString(patternKindLabel(rule.Pattern))
		b.WriteString("\t")
		b.WriteString(patternSource(rule.Pattern))
		b.WriteString("\t")
		b.WriteString(rule.To)
		b.WriteString("\n")
	}
	return b.String()
}

// renderTable emits a styled table with a title
func (r *Renderer) renderTable(list []rules.Rule) string {
	data := pterm.TableData{{"NAME", "KIND", "FROM", "TO"}}
	for _, rule := range list {
		data = append(data, []string{
			ruleName(rule),
			patternKindLabel(rule.Pattern),
			patternSource(rule.Pattern),
			rule.To,
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Srender only fails on malformed table data; fall back to the
		// plain form rather than dropping output
		return r.renderPlain(list)
	}

	return TitleStyle.Render("Active transformations") + "\n\n" + table
}
