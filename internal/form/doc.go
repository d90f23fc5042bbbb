// Package form defines the signup/login field contract: the set of
// recognized fields, the ordered rule list for each one, and the record-level
// validator that evaluates a whole submission.
//
// Dispatch is data-driven: each field maps to a rule builder in a registry,
// so adding a field means adding a table entry rather than editing a switch.
// Within one field, rules run in order and the first failure wins; across
// fields there is no short-circuit, so a caller always receives the complete
// per-field picture in one pass.
//
// Constraint parameters (age bounds, email domain whitelist, password
// blacklist) are injected through Config so every consumer of the rule set
// evaluates the identical contract.
package form
