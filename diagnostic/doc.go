// Package diagnostic provides structured verification failures shared by the
// runtime accessor verifier and the static accessor checker.
//
// Key capabilities:
//   - Per-field failures tagged with a stable Code
//   - "Did you mean" suggestions for missing accessors
//   - Expected/actual values with a readable diff for value mismatches
//   - Bookkeeping of checked and skipped fields
package diagnostic
