// Package matcher drives rule evaluation off a host's change stream.
//
// For every data change ending at the cursor, the matcher probes the
// text immediately preceding the cursor against the resolved rules in
// order and stops at the first match, issuing a single atomic replace
// through the host. First-match-wins makes rule order a semantic
// tie-break; see package rules.
//
// Evaluation is synchronous and runs to completion inside the host's
// change notification. The matcher keeps no state between events beyond
// the compiled rule list and its host reference; a replacement that
// itself triggers a further rule is evaluated as an ordinary new change
// (chained transformations are accepted, not guarded against).
package matcher
