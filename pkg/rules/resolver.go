package rules

import (
	"regexp"

	"github.com/arthur-debert/typofix/pkg/errors"
	"github.com/arthur-debert/typofix/pkg/logging"
)

// Resolve expands a configuration into the ordered list of active
// rules. It is a pure function of its input: expansion walks include
// followed by extra, group names expand into their fixed member order,
// duplicates keep their first occurrence, and anything named in remove
// is dropped whether it was listed directly or reached via a group.
//
// Unknown names are not an error. They resolve to inert opaque entries
// so that configurations can carry forward-compatible custom names.
func Resolve(cfg Config) ([]Rule, error) {
	return ResolveWith(DefaultCatalog, cfg)
}

// ResolveWith resolves against an explicit catalog instead of the
// built-in one
func ResolveWith(cat *Catalog, cfg Config) ([]Rule, error) {
	logger := logging.GetLogger("rules.resolver")
	defer logging.LogOperationStart(logger, "resolve rule configuration")()

	include := cfg.Include
	if len(include) == 0 {
		include = cat.DefaultInclude()
	}

	removed := make(map[string]bool, len(cfg.Remove))
	for _, name := range cfg.Remove {
		removed[name] = true
	}

	// Expansion: ordered, duplicate-suppressing accumulator. Named
	// entries are keyed by name; inline rules are anonymous and always
	// distinct.
	type slot struct {
		name   string
		inline *InlineRule
	}
	var expanded []slot
	seen := make(map[string]bool)

	appendName := func(name string) {
		if removed[name] || seen[name] {
			return
		}
		seen[name] = true
		expanded = append(expanded, slot{name: name})
	}

	for _, entry := range append(append([]Entry{}, include...), cfg.Extra...) {
		if entry.Inline != nil {
			expanded = append(expanded, slot{inline: entry.Inline})
			continue
		}
		if removed[entry.Name] {
			continue
		}
		if members, ok := cat.Group(entry.Name); ok {
			// Removal re-applies to expanded members: remove can name
			// an individual rule a group would otherwise bring in.
			for _, member := range members {
				appendName(member)
			}
			continue
		}
		appendName(entry.Name)
	}

	// Materialization
	resolved := make([]Rule, 0, len(expanded))
	for _, s := range expanded {
		if s.inline != nil {
			rule, err := compileInline(s.inline)
			if err != nil {
				return nil, err
			}
			resolved = append(resolved, rule)
			continue
		}
		if rule, ok := cat.Rule(s.name); ok {
			resolved = append(resolved, rule)
			continue
		}
		// Opaque pass-through: keeps the name visible without ever
		// matching anything.
		logger.Debug().Str("name", s.name).Msg("unknown rule name, passing through as opaque entry")
		resolved = append(resolved, Rule{Name: s.name})
	}

	logger.Debug().
		Int("ruleCount", len(resolved)).
		Int("removed", len(cfg.Remove)).
		Msg("Resolved rule configuration")

	return resolved, nil
}

// compileInline turns a declarative inline rule into a compiled one
func compileInline(in *InlineRule) (Rule, error) {
	if in.From == "" {
		return Rule{}, errors.New(errors.ErrRuleInvalid, "inline rule has an empty pattern")
	}
	if !in.IsRegexp {
		return Rule{Pattern: Literal(in.From), To: in.To}, nil
	}
	re, err := regexp.Compile(in.From)
	if err != nil {
		return Rule{}, errors.Wrapf(err, errors.ErrRuleInvalid,
			"inline rule pattern %q does not compile", in.From)
	}
	return Rule{Pattern: Anchored(re), To: in.To}, nil
}
