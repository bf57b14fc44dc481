// Test Type: Unit Test
// Description: Tests for the built-in transformation catalog and its groups

package rules_test

import (
	"testing"

	"github.com/arthur-debert/typofix/pkg/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_MemberOrder(t *testing.T) {
	tests := []struct {
		group   string
		members []string
	}{
		{
			group:   "symbols",
			members: []string{"copyright", "trademark", "registered_trademark"},
		},
		{
			group: "mathematical",
			members: []string{
				"one_half", "one_third", "two_thirds", "one_forth", "three_quarters",
				"less_then_or_equal", "greater_then_or_equal", "not_equal",
				"arrow_left", "arrow_right",
			},
		},
		{
			group:   "typography",
			members: []string{"ellipsis", "en_dash", "em_dash"},
		},
		{
			group:   "quotes",
			members: []string{"quotes_primary", "quotes_secondary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.group, func(t *testing.T) {
			members, ok := rules.Group(tt.group)
			require.True(t, ok)
			assert.Equal(t, tt.members, members)
		})
	}
}

func TestBuiltin_SymbolOutputs(t *testing.T) {
	tests := []struct {
		name  string
		probe string
		want  string
	}{
		{"copyright", "(c)", "©"},
		{"trademark", "(tm)", "™"},
		{"registered_trademark", "(r)", "®"},
		{"one_half", "1/2", "½"},
		{"three_quarters", "3/4", "¾"},
		{"less_then_or_equal", "<=", "≤"},
		{"greater_then_or_equal", ">=", "≥"},
		{"not_equal", "!=", "≠"},
		{"arrow_left", "<-", "←"},
		{"ellipsis", "...", "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := rules.Builtin(tt.name)
			require.True(t, ok)

			m, matched := rule.Eval(tt.probe)
			require.True(t, matched)
			assert.Equal(t, tt.probe, m.Text)
			assert.Equal(t, tt.want, m.Output)
		})
	}
}

// arrow_right ships mapping "->" to "≠", the same output as not_equal.
// The catalog reproduces upstream as observed; this test pins that
// behavior so an accidental "fix" shows up as a failure.
func TestBuiltin_ArrowRightShipsNotEqualGlyph(t *testing.T) {
	rule, ok := rules.Builtin("arrow_right")
	require.True(t, ok)

	m, matched := rule.Eval("a->")
	require.True(t, matched)
	assert.Equal(t, "≠", m.Output)

	notEqual, _ := rules.Builtin("not_equal")
	assert.Equal(t, notEqual.To, rule.To)
}

func TestBuiltin_QuoteVariants(t *testing.T) {
	tests := []struct {
		name  string
		probe string
		text  string
		want  string
	}{
		{"quotes_primary", `say "hi"`, ` "hi"`, " “hi”"},
		{"quotes_secondary", `say 'hi'`, ` 'hi'`, " ‘hi’"},
		{"quotes_primary_en_gb", `say 'hi'`, ` 'hi'`, " ‘hi’"},
		{"quotes_secondary_en_gb", `say "hi"`, ` "hi"`, " “hi”"},
		{"quotes_primary_pl", `say "hi"`, ` "hi"`, " „hi”"},
		{"quotes_secondary_pl", `say 'hi'`, ` 'hi'`, " ‚hi’"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := rules.Builtin(tt.name)
			require.True(t, ok)

			m, matched := rule.Eval(tt.probe)
			require.True(t, matched)
			assert.Equal(t, tt.text, m.Text)
			assert.Equal(t, tt.want, m.Output)
		})
	}
}

func TestDefaultInclude(t *testing.T) {
	include := rules.DefaultInclude()

	names := make([]string, len(include))
	for i, e := range include {
		require.Nil(t, e.Inline)
		names[i] = e.Name
	}
	assert.Equal(t, []string{"symbols", "mathematical", "typography", "quotes"}, names)
}

func TestBuiltins_ContainsLocaleVariantsOutsideGroups(t *testing.T) {
	all := rules.Builtins()
	assert.Contains(t, all, "quotes_primary_pl")
	assert.Contains(t, all, "quotes_secondary_en_gb")

	for _, group := range []string{"symbols", "mathematical", "typography", "quotes"} {
		members, ok := rules.Group(group)
		require.True(t, ok)
		assert.NotContains(t, members, "quotes_primary_pl")
	}
}
