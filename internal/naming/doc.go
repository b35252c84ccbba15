// Package naming derives accessor method names from struct field names and
// ranks near-miss method names for diagnostics.
//
// Key functions:
//   - Capitalize: upper-cases the first rune of a field name
//   - Getter / Setter: scalar accessor names ("Is"/"Get"/"Set" + name)
//   - CollectionCandidates: adder/remover names for slice fields, per rule
//   - Levenshtein / Closest: edit distance and "did you mean" ranking
package naming
