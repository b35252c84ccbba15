package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"name", "Name"},
		{"Name", "Name"},
		{"commentList", "CommentList"},
		{"iD", "ID"},
		{"a", "A"},
		{"", ""},
		{"état", "État"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := Capitalize(tt.input)
			if result != tt.expected {
				t.Errorf("Capitalize(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetterAndSetter(t *testing.T) {
	assert.Equal(t, "GetName", Getter("name", false))
	assert.Equal(t, "IsPublished", Getter("published", true))
	assert.Equal(t, "SetPublished", Setter("published"))
	assert.Equal(t, "GetTags", ListGetter("tags"))
}

func TestCollectionCandidates(t *testing.T) {
	tests := []struct {
		field    string
		expected []Candidate
	}{
		{
			field: "tags",
			expected: []Candidate{
				{RuleExact, "AddTags", "RemoveTags"},
				{RuleSingular, "AddTag", "RemoveTag"},
				{RuleWithoutList, "AddTags", "RemoveTags"},
			},
		},
		{
			field: "commentList",
			expected: []Candidate{
				{RuleExact, "AddCommentList", "RemoveCommentList"},
				{RuleSingular, "AddCommentLis", "RemoveCommentLis"},
				{RuleWithoutList, "AddComment", "RemoveComment"},
			},
		},
		{
			field: "properties",
			expected: []Candidate{
				{RuleProperties, "AddProperty", "RemoveProperty"},
				{RuleExact, "AddProperties", "RemoveProperties"},
				{RuleSingular, "AddPropertie", "RemovePropertie"},
				{RuleWithoutList, "AddProperties", "RemoveProperties"},
			},
		},
		{
			field: "x",
			expected: []Candidate{
				{RuleExact, "AddX", "RemoveX"},
				{RuleWithoutList, "AddX", "RemoveX"},
			},
		},
		{
			field: "list",
			expected: []Candidate{
				{RuleExact, "AddList", "RemoveList"},
				{RuleSingular, "AddLis", "RemoveLis"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.expected, CollectionCandidates(tt.field))
		})
	}
}

func TestAdderAndRemoverNames(t *testing.T) {
	assert.Equal(t, []string{"AddTags", "AddTag"}, AdderNames("tags"))
	assert.Equal(t, []string{"RemoveCommentList", "RemoveCommentLis", "RemoveComment"}, RemoverNames("commentList"))
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "properties", RuleProperties.String())
	assert.Equal(t, "without-list", RuleWithoutList.String())
	assert.Equal(t, "unknown", Rule(42).String())
}
