// Package rules defines the transformation rule model and resolves a
// declarative configuration into the ordered list of active rules.
//
// Rule order is load-bearing: the matcher stops at the first rule that
// matches a probe, so the position of a rule in the resolved list is a
// semantic tie-break, not a cosmetic one. Resolution preserves the
// first-occurrence order of include followed by extra, expands group
// names into their fixed member order, suppresses duplicates, and drops
// anything named in remove.
package rules
