package rules

import (
	"regexp"

	"github.com/arthur-debert/typofix/pkg/registry"
)

// Group names of the built-in catalog
const (
	GroupSymbols      = "symbols"
	GroupMathematical = "mathematical"
	GroupTypography   = "typography"
	GroupQuotes       = "quotes"
)

// Catalog is a table of named rules and group definitions. Resolution
// reads it, never writes it: populate a catalog up front, then treat it
// as immutable. The built-in catalog is DefaultCatalog.
type Catalog struct {
	rules      registry.Registry[Rule]
	groups     registry.Registry[[]string]
	ruleOrder  []string
	groupOrder []string
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{
		rules:  registry.New[Rule](),
		groups: registry.New[[]string](),
	}
}

// AddRule registers a named rule
func (c *Catalog) AddRule(name string, rule Rule) error {
	rule.Name = name
	if err := c.rules.Register(name, rule); err != nil {
		return err
	}
	c.ruleOrder = append(c.ruleOrder, name)
	return nil
}

// AddGroup registers a group with its member names in evaluation order
func (c *Catalog) AddGroup(name string, members []string) error {
	if err := c.groups.Register(name, members); err != nil {
		return err
	}
	c.groupOrder = append(c.groupOrder, name)
	return nil
}

// Rule returns the rule registered under name
func (c *Catalog) Rule(name string) (Rule, bool) {
	rule, err := c.rules.Get(name)
	if err != nil {
		return Rule{}, false
	}
	return rule, true
}

// Group returns the ordered member names of a group
func (c *Catalog) Group(name string) ([]string, bool) {
	members, err := c.groups.Get(name)
	if err != nil {
		return nil, false
	}
	return members, true
}

// RuleNames returns all rule names in registration order
func (c *Catalog) RuleNames() []string {
	out := make([]string, len(c.ruleOrder))
	copy(out, c.ruleOrder)
	return out
}

// DefaultInclude returns the include list used when a configuration
// does not specify one: every group, in registration order
func (c *Catalog) DefaultInclude() []Entry {
	entries := make([]Entry, 0, len(c.groupOrder))
	for _, g := range c.groupOrder {
		entries = append(entries, ByName(g))
	}
	return entries
}

// DefaultCatalog is the built-in catalog: symbol substitutions,
// mathematical notation, typographic ellipsis and dashes, and
// locale-specific quote pairing
var DefaultCatalog = NewCatalog()

// quotePair builds the pattern for directional quote substitution: a
// boundary (start of probe or whitespace), an opening straight quote,
// the quoted span, and the closing straight quote ending the probe.
func quotePair(quote string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[ \t])(` + quote + `)([^` + quote + `]*)(` + quote + `)$`)
}

func mustAddRule(name string, rule Rule) {
	if err := DefaultCatalog.AddRule(name, rule); err != nil {
		panic(err)
	}
}

func mustAddGroup(name string, members []string) {
	if err := DefaultCatalog.AddGroup(name, members); err != nil {
		panic(err)
	}
}

func init() {
	// symbols
	mustAddRule("copyright", Rule{Pattern: Literal("(c)"), To: "©"})
	mustAddRule("trademark", Rule{Pattern: Literal("(tm)"), To: "™"})
	mustAddRule("registered_trademark", Rule{Pattern: Literal("(r)"), To: "®"})

	// mathematical
	mustAddRule("one_half", Rule{Pattern: Literal("1/2"), To: "½"})
	mustAddRule("one_third", Rule{Pattern: Literal("1/3"), To: "⅓"})
	mustAddRule("two_thirds", Rule{Pattern: Literal("2/3"), To: "⅔"})
	mustAddRule("one_forth", Rule{Pattern: Literal("1/4"), To: "¼"})
	mustAddRule("three_quarters", Rule{Pattern: Literal("3/4"), To: "¾"})
	mustAddRule("less_then_or_equal", Rule{Pattern: Literal("<="), To: "≤"})
	mustAddRule("greater_then_or_equal", Rule{Pattern: Literal(">="), To: "≥"})
	mustAddRule("not_equal", Rule{Pattern: Literal("!="), To: "≠"})
	mustAddRule("arrow_left", Rule{Pattern: Literal("<-"), To: "←"})
	// arrow_right producing "≠" reproduces the upstream catalog as
	// shipped; it duplicates not_equal's output instead of an arrow
	// glyph. Kept as observed until upstream intent is clarified.
	mustAddRule("arrow_right", Rule{Pattern: Literal("->"), To: "≠"})

	// typography
	mustAddRule("ellipsis", Rule{Pattern: Literal("..."), To: "…"})
	mustAddRule("en_dash", Rule{
		Pattern: Anchored(regexp.MustCompile(`(^|[ \t])(--)([ \t])$`)),
		To:      "${1}–${3}",
	})
	mustAddRule("em_dash", Rule{
		Pattern: Anchored(regexp.MustCompile(`(^|[ \t])(---)([ \t])$`)),
		To:      "${1}—${3}",
	})

	// quotes, US pairing plus locale variants. The locale variants are
	// addressable by name but belong to no group.
	mustAddRule("quotes_primary", Rule{Pattern: Anchored(quotePair(`"`)), To: "${1}“${3}”"})
	mustAddRule("quotes_secondary", Rule{Pattern: Anchored(quotePair(`'`)), To: "${1}‘${3}’"})
	mustAddRule("quotes_primary_en_gb", Rule{Pattern: Anchored(quotePair(`'`)), To: "${1}‘${3}’"})
	mustAddRule("quotes_secondary_en_gb", Rule{Pattern: Anchored(quotePair(`"`)), To: "${1}“${3}”"})
	mustAddRule("quotes_primary_pl", Rule{Pattern: Anchored(quotePair(`"`)), To: "${1}„${3}”"})
	mustAddRule("quotes_secondary_pl", Rule{Pattern: Anchored(quotePair(`'`)), To: "${1}‚${3}’"})

	mustAddGroup(GroupSymbols, []string{"copyright", "trademark", "registered_trademark"})
	mustAddGroup(GroupMathematical, []string{
		"one_half", "one_third", "two_thirds", "one_forth", "three_quarters",
		"less_then_or_equal", "greater_then_or_equal", "not_equal",
		"arrow_left", "arrow_right",
	})
	mustAddGroup(GroupTypography, []string{"ellipsis", "en_dash", "em_dash"})
	mustAddGroup(GroupQuotes, []string{"quotes_primary", "quotes_secondary"})
}

// Builtin returns a rule from the default catalog
func Builtin(name string) (Rule, bool) {
	return DefaultCatalog.Rule(name)
}

// Group returns a group from the default catalog
func Group(name string) ([]string, bool) {
	return DefaultCatalog.Group(name)
}

// Builtins returns the names of all default-catalog rules in catalog order
func Builtins() []string {
	return DefaultCatalog.RuleNames()
}

// DefaultInclude returns the default catalog's include list
func DefaultInclude() []Entry {
	return DefaultCatalog.DefaultInclude()
}
