package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	prefixGet    = "Get"
	prefixIs     = "Is"
	prefixSet    = "Set"
	prefixAdd    = "Add"
	prefixRemove = "Remove"
)

// Capitalize upper-cases the first rune of name.
// Examples:
//   - "name" -> "Name"
//   - "commentList" -> "CommentList"
//   - "ID" -> "ID"
func Capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}

	return string(unicode.ToUpper(r)) + name[size:]
}

// Getter returns the getter name for a field. Boolean fields use the "Is"
// prefix, every other field uses "Get".
func Getter(field string, isBool bool) string {
	if isBool {
		return prefixIs + Capitalize(field)
	}

	return prefixGet + Capitalize(field)
}

// ListGetter returns the getter name for a slice field. Slice getters always
// use the "Get" prefix.
func ListGetter(field string) string {
	return prefixGet + Capitalize(field)
}

// Setter returns the setter name for a field.
func Setter(field string) string {
	return prefixSet + Capitalize(field)
}

// Rule identifies which naming heuristic produced a collection candidate.
type Rule int

const (
	RuleProperties  Rule = iota // "Properties" -> AddProperty / RemoveProperty
	RuleExact                   // "Tags" -> AddTags / RemoveTags
	RuleSingular                // "Tags" -> AddTag / RemoveTag (one trailing rune stripped)
	RuleWithoutList             // "CommentList" -> AddComment / RemoveComment
)

// String returns a human-readable rule name.
func (r Rule) String() string {
	switch r {
	case RuleProperties:
		return "properties"
	case RuleExact:
		return "exact"
	case RuleSingular:
		return "singular"
	case RuleWithoutList:
		return "without-list"
	default:
		return "unknown"
	}
}

// Candidate is a pair of adder/remover names proposed by one Rule.
type Candidate struct {
	Rule    Rule
	Adder   string
	Remover string
}

// CollectionCandidates returns the adder/remover names a slice field may use,
// in rule order. Rules that would produce a bare "Add"/"Remove" are skipped.
func CollectionCandidates(field string) []Candidate {
	capitalized := Capitalize(field)

	var out []Candidate

	if capitalized == "Properties" {
		out = append(out, newCandidate(RuleProperties, "Property"))
	}

	out = append(out, newCandidate(RuleExact, capitalized))

	if singular := stripLastRune(capitalized); singular != "" {
		out = append(out, newCandidate(RuleSingular, singular))
	}

	if withoutList := strings.ReplaceAll(capitalized, "List", ""); withoutList != "" {
		out = append(out, newCandidate(RuleWithoutList, withoutList))
	}

	return out
}

// AdderNames returns the distinct adder names proposed for field.
func AdderNames(field string) []string {
	var names []string
	for _, c := range CollectionCandidates(field) {
		names = appendUnique(names, c.Adder)
	}

	return names
}

// RemoverNames returns the distinct remover names proposed for field.
func RemoverNames(field string) []string {
	var names []string
	for _, c := range CollectionCandidates(field) {
		names = appendUnique(names, c.Remover)
	}

	return names
}

func newCandidate(rule Rule, stem string) Candidate {
	return Candidate{
		Rule:    rule,
		Adder:   prefixAdd + stem,
		Remover: prefixRemove + stem,
	}
}

// stripLastRune drops exactly one trailing rune, meant for simple "s" plurals.
func stripLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)

	return s[:len(s)-size]
}

func appendUnique(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}

	return append(names, name)
}
