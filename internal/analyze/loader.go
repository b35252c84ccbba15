package analyze

import (
	"fmt"
	"go/types"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

const describerMethod = "AccessorFields"

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	graph  *TypeGraph
	logger *zap.Logger
}

// NewAnalyzer creates a new Analyzer. A nil logger disables logging.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Analyzer{
		graph:  NewTypeGraph(),
		logger: logger,
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./graph", "accessor-check/graph").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg.Types)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts the exported struct types of a package.
func (a *Analyzer) processPackage(pkg *types.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.Path(),
		Name: pkg.Name(),
	}

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		info := a.analyzeStruct(named, st)
		info.ID = TypeID{PkgPath: pkg.Path(), Name: name}

		a.logger.Debug("analyzed struct",
			zap.String("type", info.ID.String()),
			zap.Int("fields", len(info.Fields)),
			zap.Int("methods", len(info.Methods)))

		a.graph.Structs[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.Path()] = pkgInfo
}

// analyzeStruct collects every declared field, exported or not, and the
// exported method set of the pointer type.
func (a *Analyzer) analyzeStruct(named *types.Named, st *types.Struct) *StructInfo {
	info := &StructInfo{
		Methods: make(map[string]*types.Signature),
	}

	for i := range st.NumFields() {
		field := st.Field(i)
		info.Fields = append(info.Fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     field.Type(),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	mset := types.NewMethodSet(types.NewPointer(named))
	for i := range mset.Len() {
		fn, ok := mset.At(i).Obj().(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}

		info.Methods[fn.Name()] = fn.Type().(*types.Signature)
	}

	if sig, ok := info.Methods[describerMethod]; ok && sig.Params().Len() == 0 && sig.Results().Len() == 1 {
		info.Describer = true
	}

	return info
}
