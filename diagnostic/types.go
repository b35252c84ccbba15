package diagnostic

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Code identifies the category of a verification failure.
type Code string

const (
	// CodeMethodNotFound means an accessor expected by convention (or by an
	// explicit name table) is missing or has the wrong signature.
	CodeMethodNotFound Code = "method-not-found"
	// CodeAccess means an accessor exists but cannot be used as one, e.g. a
	// getter with parameters or a result of an unrelated type.
	CodeAccess Code = "access"
	// CodeInvocation means an accessor panicked or returned a non-nil error.
	CodeInvocation Code = "invocation"
	// CodeValueMismatch means the getter did not return what the setter stored.
	CodeValueMismatch Code = "value-mismatch"
	// CodeSizeMismatch means a slice getter reported an unexpected length.
	CodeSizeMismatch Code = "size-mismatch"
	// CodeNoExample means no example value is known for the field's type.
	CodeNoExample Code = "no-example"
	// CodeAmbiguous means several methods satisfy the adder/remover rules.
	CodeAmbiguous Code = "ambiguous"
	// CodeInvalidInstance means the value under test is not a struct.
	CodeInvalidInstance Code = "invalid-instance"
)

// Diagnostic represents a single verification failure.
type Diagnostic struct {
	// Code is a stable identifier for this kind of failure.
	Code Code
	// Message is the human-readable description.
	Message string
	// Type is the declaring struct type, e.g. "graph.Post".
	Type string
	// Field is the struct field name (if any).
	Field string
	// Expected and Actual are set for value and size mismatches.
	Expected any
	Actual   any
	// Suggestions are near-miss method names or other possible fixes.
	Suggestions []string
}

// IsMismatch returns true for failures that compare an expected and an
// actual value.
func (d Diagnostic) IsMismatch() bool {
	return d.Code == CodeValueMismatch || d.Code == CodeSizeMismatch
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		msg = strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diff renders the difference between Expected and Actual, or an empty
// string when the failure carries no values.
func (d Diagnostic) Diff() string {
	if !d.IsMismatch() {
		return ""
	}

	return cmp.Diff(d.Expected, d.Actual, cmp.Exporter(func(reflect.Type) bool { return true }))
}

// Diagnostics holds the outcome of verifying one or more types.
type Diagnostics struct {
	Failures []Diagnostic
	// Checked lists "Type.field" for every field that was verified.
	Checked []string
	// Skipped lists "Type.field" for ignored, embedded and blank fields.
	Skipped []string
}

// AddFailure records a failure.
func (d *Diagnostics) AddFailure(f Diagnostic) {
	d.Failures = append(d.Failures, f)
}

// MarkChecked records that typeName.field was verified.
func (d *Diagnostics) MarkChecked(typeName, field string) {
	d.Checked = append(d.Checked, typeName+"."+field)
}

// MarkSkipped records that typeName.field was not verified.
func (d *Diagnostics) MarkSkipped(typeName, field string) {
	d.Skipped = append(d.Skipped, typeName+"."+field)
}

// HasFailures returns true if there are any failures.
func (d *Diagnostics) HasFailures() bool {
	return len(d.Failures) > 0
}

// IsValid returns true if there are no failures.
func (d *Diagnostics) IsValid() bool {
	return len(d.Failures) == 0
}

// ByField returns the failures recorded for field.
func (d *Diagnostics) ByField(field string) []Diagnostic {
	var out []Diagnostic
	for _, f := range d.Failures {
		if f.Field == field {
			out = append(out, f)
		}
	}

	return out
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Failures = append(d.Failures, other.Failures...)
	d.Checked = append(d.Checked, other.Checked...)
	d.Skipped = append(d.Skipped, other.Skipped...)
}

// Error returns a combined error from all failures, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := make([]string, 0, len(d.Failures))
	for _, f := range d.Failures {
		parts = append(parts, f.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
