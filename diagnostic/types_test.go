package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_String(t *testing.T) {
	tests := []struct {
		name     string
		diag     Diagnostic
		expected string
	}{
		{
			name:     "message only",
			diag:     Diagnostic{Message: "boom"},
			expected: "boom",
		},
		{
			name: "full",
			diag: Diagnostic{
				Code:    CodeMethodNotFound,
				Message: "no method SetName",
				Type:    "graph.User",
				Field:   "name",
			},
			expected: "[graph.User] name: [method-not-found] no method SetName",
		},
		{
			name: "with suggestions",
			diag: Diagnostic{
				Code:        CodeMethodNotFound,
				Message:     "no method SetName",
				Field:       "name",
				Suggestions: []string{"SetFullName", "SetNames"},
			},
			expected: "name: [method-not-found] no method SetName (did you mean SetFullName, SetNames?)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.diag.String())
		})
	}
}

func TestDiagnostic_Diff(t *testing.T) {
	type hidden struct{ value int }

	mismatch := Diagnostic{Code: CodeValueMismatch, Expected: hidden{1}, Actual: hidden{2}}
	assert.Contains(t, mismatch.Diff(), "value")

	notFound := Diagnostic{Code: CodeMethodNotFound, Expected: 1, Actual: 2}
	assert.Empty(t, notFound.Diff())
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.MarkChecked("graph.User", "name")
	d.MarkSkipped("graph.User", "serialVersionUID")
	d.AddFailure(Diagnostic{Code: CodeNoExample, Field: "birthday", Message: "no example"})

	var other Diagnostics
	other.AddFailure(Diagnostic{Code: CodeAmbiguous, Field: "tags", Message: "two adders"})
	d.Merge(other)

	assert.True(t, d.HasFailures())
	assert.Len(t, d.Failures, 2)
	assert.Equal(t, []string{"graph.User.name"}, d.Checked)
	assert.Equal(t, []string{"graph.User.serialVersionUID"}, d.Skipped)
	assert.Len(t, d.ByField("tags"), 1)
	assert.EqualError(t, d.Error(), "birthday: [no-example] no example; tags: [ambiguous] two adders")
}
