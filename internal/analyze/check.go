package analyze

import (
	"fmt"
	"go/types"
	"slices"
	"strings"

	"go.uber.org/zap"

	"accessor-check/diagnostic"
	"accessor-check/internal/naming"
	"accessor-check/mapping"
)

const (
	serialVersionField = "serialVersionUID"
	maxSuggestions     = 3
)

var errorType = types.Universe.Lookup("error").Type()

// Checker verifies accessor conventions on a TypeGraph without running code.
type Checker struct {
	mapping *mapping.File
	ignored []string
	logger  *zap.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithMapping applies per-type ignore lists and explicit accessor names.
func WithMapping(f *mapping.File) CheckerOption {
	return func(c *Checker) {
		c.mapping = f
	}
}

// WithIgnored excludes the named fields of every type.
func WithIgnored(fields ...string) CheckerOption {
	return func(c *Checker) {
		c.ignored = append(c.ignored, fields...)
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) CheckerOption {
	return func(c *Checker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		ignored: []string{serialVersionField},
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check inspects every struct of the graph in a stable order.
func (c *Checker) Check(graph *TypeGraph) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, id := range graph.SortedIDs() {
		c.CheckStruct(graph.Structs[id], res)
	}

	return res
}

// CheckStruct inspects one struct and records the outcome in res.
func (c *Checker) CheckStruct(info *StructInfo, res *diagnostic.Diagnostics) {
	typeName := info.ID.Short()
	entry := c.mapping.Lookup(info.ID.PkgPath, info.ID.Name)

	for i := range info.Fields {
		f := &info.Fields[i]
		if f.Embedded || f.Name == "_" || c.isIgnored(entry, f.Name) {
			res.MarkSkipped(typeName, f.Name)
			continue
		}

		// Describers list their accessors as closures, which only the
		// runtime verifier can exercise.
		if info.Describer {
			res.MarkSkipped(typeName, f.Name)
			continue
		}

		var names mapping.Names
		if entry != nil {
			names = entry.Fields[f.Name]
		}

		fc := &staticCheck{info: info, field: f, typeName: typeName, names: names, res: res}
		if f.IsCollection() {
			fc.collection()
		} else {
			fc.scalar()
		}

		c.logger.Debug("checked field",
			zap.String("type", typeName),
			zap.String("field", f.Name),
			zap.Bool("collection", f.IsCollection()))

		res.MarkChecked(typeName, f.Name)
	}
}

func (c *Checker) isIgnored(entry *mapping.TypeEntry, field string) bool {
	if slices.Contains(c.ignored, field) {
		return true
	}

	return entry != nil && entry.Ignore.Contains(field)
}

// Accessors is the resolved accessor set of one field.
type Accessors struct {
	Getter  string
	Setter  string
	Adder   string
	Remover string
}

// Resolve returns the accessor names the rules (and explicit names) select
// for a field. Collection members that do not resolve to exactly one method
// are left empty.
func Resolve(info *StructInfo, f *FieldInfo, names mapping.Names) Accessors {
	if !f.IsCollection() {
		return Accessors{
			Getter: orDefault(names.Getter, naming.Getter(f.Name, f.IsBool())),
			Setter: orDefault(names.Setter, naming.Setter(f.Name)),
		}
	}

	acc := Accessors{Getter: orDefault(names.Getter, naming.ListGetter(f.Name))}
	acc.Adder = resolveOne(info, names.Adder, naming.AdderNames(f.Name))
	acc.Remover = resolveOne(info, names.Remover, naming.RemoverNames(f.Name))

	return acc
}

func resolveOne(info *StructInfo, explicit string, candidates []string) string {
	if explicit != "" {
		return explicit
	}

	found := matching(info, candidates)
	if len(found) != 1 {
		return ""
	}

	return found[0]
}

func matching(info *StructInfo, candidates []string) []string {
	var found []string
	for _, name := range candidates {
		if _, ok := info.Methods[name]; ok {
			found = append(found, name)
		}
	}

	return found
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}

// staticCheck verifies the accessor signatures of a single field.
type staticCheck struct {
	info     *StructInfo
	field    *FieldInfo
	typeName string
	names    mapping.Names
	res      *diagnostic.Diagnostics
}

func (c *staticCheck) scalar() {
	acc := Resolve(c.info, c.field, c.names)
	ft := c.field.Type

	getter, ok := c.method(acc.Getter)
	if !ok {
		return
	}

	setter, ok := c.method(acc.Setter)
	if !ok {
		return
	}

	if !takesOne(setter, ft) {
		c.fail(diagnostic.CodeMethodNotFound, fmt.Sprintf(
			"method %s has signature %s, want func(%s)", acc.Setter, setter, c.field.TypeString()))
		return
	}

	if !returns(getter, ft) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf(
			"method %s has signature %s, want func() %s", acc.Getter, getter, c.field.TypeString()))
	}
}

func (c *staticCheck) collection() {
	getterName := orDefault(c.names.Getter, naming.ListGetter(c.field.Name))

	getter, ok := c.method(getterName)
	if !ok {
		return
	}

	adderName, ok := c.resolve("adder", c.names.Adder, naming.AdderNames(c.field.Name))
	if !ok {
		return
	}

	removerName, ok := c.resolve("remover", c.names.Remover, naming.RemoverNames(c.field.Name))
	if !ok {
		return
	}

	if getter.Params().Len() != 0 || getter.Results().Len() == 0 || !hasLen(getter.Results().At(0).Type()) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf(
			"method %s has signature %s, want func() %s", getterName, getter, c.field.TypeString()))
		return
	}

	adder, remover := c.info.Methods[adderName], c.info.Methods[removerName]
	if adder.Params().Len() != 1 || !takesOne(adder, adder.Params().At(0).Type()) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf("adder %s has signature %s, want one parameter", adderName, adder))
		return
	}

	if !takesOne(remover, adder.Params().At(0).Type()) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf(
			"remover %s has signature %s, want func(%s)", removerName, remover, adder.Params().At(0).Type()))
	}
}

func (c *staticCheck) resolve(role, explicit string, candidates []string) (string, bool) {
	if explicit != "" {
		_, ok := c.method(explicit)
		return explicit, ok
	}

	found := matching(c.info, candidates)
	switch len(found) {
	case 0:
		c.res.AddFailure(diagnostic.Diagnostic{
			Code:        diagnostic.CodeMethodNotFound,
			Message:     fmt.Sprintf("no %s found, tried %s", role, strings.Join(candidates, ", ")),
			Type:        c.typeName,
			Field:       c.field.Name,
			Suggestions: naming.Closest(candidates[0], c.info.MethodNames(), maxSuggestions),
		})

		return "", false

	case 1:
		return found[0], true

	default:
		c.fail(diagnostic.CodeAmbiguous, fmt.Sprintf(
			"%s is ambiguous, methods %s all match", role, strings.Join(found, ", ")))

		return "", false
	}
}

func (c *staticCheck) method(name string) (*types.Signature, bool) {
	if sig, ok := c.info.Methods[name]; ok {
		return sig, true
	}

	c.res.AddFailure(diagnostic.Diagnostic{
		Code:        diagnostic.CodeMethodNotFound,
		Message:     fmt.Sprintf("method %s not found", name),
		Type:        c.typeName,
		Field:       c.field.Name,
		Suggestions: naming.Closest(name, c.info.MethodNames(), maxSuggestions),
	})

	return nil, false
}

func (c *staticCheck) fail(code diagnostic.Code, msg string) {
	c.res.AddFailure(diagnostic.Diagnostic{
		Code:    code,
		Message: msg,
		Type:    c.typeName,
		Field:   c.field.Name,
	})
}

// takesOne reports whether sig is func(in) or func(in) error.
func takesOne(sig *types.Signature, in types.Type) bool {
	if sig.Params().Len() != 1 || sig.Variadic() || !types.Identical(sig.Params().At(0).Type(), in) {
		return false
	}

	results := sig.Results()

	return results.Len() == 0 || (results.Len() == 1 && types.Identical(results.At(0).Type(), errorType))
}

// returns reports whether sig is func() T or func() (T, error) with a T that
// can hold a value of type out.
func returns(sig *types.Signature, out types.Type) bool {
	if sig.Params().Len() != 0 {
		return false
	}

	results := sig.Results()
	switch results.Len() {
	case 1:
	case 2:
		if !types.Identical(results.At(1).Type(), errorType) {
			return false
		}
	default:
		return false
	}

	return types.AssignableTo(out, results.At(0).Type())
}

func hasLen(t types.Type) bool {
	switch t.Underlying().(type) {
	case *types.Slice, *types.Array, *types.Map:
		return true
	default:
		return false
	}
}
