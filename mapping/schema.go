package mapping

import (
	"strings"
)

// File represents the root of a YAML accessor table.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Types lists per-type accessor overrides.
	Types []TypeEntry `yaml:"types"`
}

// TypeEntry holds the overrides for one struct type.
type TypeEntry struct {
	// Type identifies the struct either by its short name ("graph.Post") or
	// by its full package path ("accessor-check/graph.Post").
	Type string `yaml:"type"`

	// Ignore lists fields that are never verified.
	Ignore StringOrArray `yaml:"ignore,omitempty"`

	// Fields maps a field name to its explicit accessor names.
	Fields map[string]Names `yaml:"fields,omitempty"`
}

// Names holds explicit accessor method names for one field. Empty members
// fall back to the naming convention.
type Names struct {
	Getter  string `yaml:"getter,omitempty"`
	Setter  string `yaml:"setter,omitempty"`
	Adder   string `yaml:"adder,omitempty"`
	Remover string `yaml:"remover,omitempty"`
}

// IsEmpty returns true if no accessor name is set.
func (n Names) IsEmpty() bool {
	return n == Names{}
}

// Merge returns n with empty members filled from other.
func (n Names) Merge(other Names) Names {
	if n.Getter == "" {
		n.Getter = other.Getter
	}

	if n.Setter == "" {
		n.Setter = other.Setter
	}

	if n.Adder == "" {
		n.Adder = other.Adder
	}

	if n.Remover == "" {
		n.Remover = other.Remover
	}

	return n
}

// StringOrArray is a list of strings that also accepts a single scalar in YAML.
type StringOrArray []string

// Lookup returns the entry for the struct named name in package pkgPath, or
// nil. Entries may use the short form "pkg.Name" or the full path form.
func (f *File) Lookup(pkgPath, name string) *TypeEntry {
	if f == nil {
		return nil
	}

	full := pkgPath + "." + name
	short := name
	if i := strings.LastIndex(pkgPath, "/"); i >= 0 {
		short = pkgPath[i+1:] + "." + name
	} else if pkgPath != "" {
		short = full
	}

	for i := range f.Types {
		if f.Types[i].Type == full || f.Types[i].Type == short {
			return &f.Types[i]
		}
	}

	return nil
}
