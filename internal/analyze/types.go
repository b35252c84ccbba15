package analyze

import (
	"go/types"
	"sort"

	"accessor-check/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "accessor-check/graph"
	Name    string // e.g., "Post"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the package-name qualified form, e.g. "graph.Post", which is
// also what reflect.Type.String reports.
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// StructInfo describes a named struct type and the methods of its pointer.
type StructInfo struct {
	ID      TypeID
	Fields  []FieldInfo
	Methods map[string]*types.Signature // exported methods of *T
	// Describer is true when *T has an AccessorFields method and lists its
	// accessors itself.
	Describer bool
}

// MethodNames returns the exported method names of *T, sorted.
func (s *StructInfo) MethodNames() []string {
	names := make([]string, 0, len(s.Methods))
	for name := range s.Methods {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string     // Go field name
	Exported bool       // Whether the field is exported
	Type     types.Type // Field type
	Embedded bool       // Whether the field is embedded (anonymous)
	Index    int        // Field index in the struct
}

// IsBool returns true for fields with a boolean underlying type.
func (f *FieldInfo) IsBool() bool {
	b, ok := f.Type.Underlying().(*types.Basic)
	return ok && b.Info()&types.IsBoolean != 0
}

// IsCollection returns true for slice fields other than byte slices.
func (f *FieldInfo) IsCollection() bool {
	s, ok := f.Type.Underlying().(*types.Slice)
	if !ok {
		return false
	}

	b, ok := s.Elem().Underlying().(*types.Basic)

	return !ok || b.Kind() != types.Byte
}

// TypeString renders the field type qualified by package name.
func (f *FieldInfo) TypeString() string {
	return types.TypeString(f.Type, func(p *types.Package) string { return p.Name() })
}

// TypeGraph holds all analyzed struct types from loaded packages.
type TypeGraph struct {
	// Structs maps TypeID to StructInfo for all named struct types.
	Structs map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Structs:  make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetStruct returns the StructInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetStruct(id TypeID) *StructInfo {
	return g.Structs[id]
}

// SortedIDs returns all struct IDs ordered by package path and name.
func (g *TypeGraph) SortedIDs() []TypeID {
	ids := make([]TypeID, 0, len(g.Structs))
	for id := range g.Structs {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].PkgPath != ids[j].PkgPath {
			return ids[i].PkgPath < ids[j].PkgPath
		}

		return ids[i].Name < ids[j].Name
	})

	return ids
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Types []TypeID // Struct types defined in this package
}
