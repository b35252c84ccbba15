package accessor

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"accessor-check/accessor/describe"
	"accessor-check/diagnostic"
	"accessor-check/mapping"
)

// SerialVersionField is always ignored.
const SerialVersionField = "serialVersionUID"

var (
	ErrNilInstance = errors.New("instance is nil")
	ErrNotStruct   = errors.New("instance is not a struct or a pointer to a struct")
)

// Names holds explicit accessor method names for one field.
type Names = mapping.Names

// Verifier checks the accessors of struct instances. It is not safe for
// concurrent use.
type Verifier struct {
	ignored       []string
	examples      ExampleTable
	fieldExamples map[string]any
	names         map[string]Names
	mapping       *mapping.File
	logger        *zap.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithLogger sets the logger used for per-field debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(v *Verifier) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithExample registers example as the value used for every field (or adder
// parameter) of its dynamic type.
func WithExample(example any) Option {
	return func(v *Verifier) {
		v.examples.Register(example)
	}
}

// WithFieldExample sets the example used for the named field, taking
// precedence over the type table. For slice fields it is the element passed
// to the adder and remover.
func WithFieldExample(field string, example any) Option {
	return func(v *Verifier) {
		v.fieldExamples[field] = example
	}
}

// WithNames sets explicit accessor names for every field called field.
func WithNames(field string, names Names) Option {
	return func(v *Verifier) {
		v.names[field] = names
	}
}

// WithMapping applies the per-type ignore lists and accessor names of f.
func WithMapping(f *mapping.File) Option {
	return func(v *Verifier) {
		v.mapping = f
	}
}

// New creates a Verifier with the default example table.
func New(opts ...Option) *Verifier {
	v := &Verifier{
		ignored:       []string{SerialVersionField},
		examples:      DefaultExamples(),
		fieldExamples: make(map[string]any),
		names:         make(map[string]Names),
		logger:        zap.NewNop(),
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// AddIgnoredField excludes every field called name from verification.
func (v *Verifier) AddIgnoredField(name string) {
	v.ignored = append(v.ignored, name)
}

// Examples returns the verifier's example table. Entries may be added before
// a run; they must not be modified during one.
func (v *Verifier) Examples() ExampleTable {
	return v.examples
}

// TestInstance verifies instance and reports every failure on t. Value and
// size mismatches go through assert.Equal, everything else through
// assert.Fail. It returns true when all fields passed.
func (v *Verifier) TestInstance(t assert.TestingT, instance any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	res := v.Verify(instance)
	for _, f := range res.Failures {
		if f.IsMismatch() {
			assert.Equal(t, f.Expected, f.Actual, f.String())
		} else {
			assert.Fail(t, f.String())
		}
	}

	return res.IsValid()
}

// Verify checks every declared field of instance, in declaration order, and
// returns the collected failures. A failure aborts the check of its own field
// only.
func (v *Verifier) Verify(instance any) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	target, err := addressable(instance)
	if err != nil {
		res.AddFailure(diagnostic.Diagnostic{
			Code:    diagnostic.CodeInvalidInstance,
			Type:    fmt.Sprintf("%T", instance),
			Message: err.Error(),
		})

		return res
	}

	st := target.Elem().Type()
	typeName := st.String()
	entry := v.mapping.Lookup(st.PkgPath(), st.Name())

	if d, ok := target.Interface().(describe.Describer); ok {
		v.verifyDescribed(d, st, typeName, entry, res)
		return res
	}

	for i := range st.NumField() {
		sf := st.Field(i)

		if v.skip(sf, entry) {
			v.logger.Debug("skipping field", zap.String("type", typeName), zap.String("field", sf.Name))
			res.MarkSkipped(typeName, sf.Name)

			continue
		}

		check := &fieldCheck{
			verifier: v,
			target:   target,
			field:    sf,
			typeName: typeName,
			names:    v.namesFor(sf.Name, entry),
			res:      res,
		}

		if isCollection(sf.Type) {
			v.logger.Debug("verifying collection field", zap.String("type", typeName), zap.String("field", sf.Name))
			check.collection()
		} else {
			v.logger.Debug("verifying scalar field", zap.String("type", typeName), zap.String("field", sf.Name))
			check.scalar()
		}

		res.MarkChecked(typeName, sf.Name)
	}

	return res
}

func (v *Verifier) skip(sf reflect.StructField, entry *mapping.TypeEntry) bool {
	if sf.Anonymous || sf.Name == "_" {
		return true
	}

	return v.isIgnored(sf.Name, entry)
}

func (v *Verifier) isIgnored(name string, entry *mapping.TypeEntry) bool {
	if slices.Contains(v.ignored, name) {
		return true
	}

	return entry != nil && entry.Ignore.Contains(name)
}

// namesFor merges names set through options with names from the mapping
// file; options win.
func (v *Verifier) namesFor(field string, entry *mapping.TypeEntry) Names {
	names := v.names[field]
	if entry != nil {
		names = names.Merge(entry.Fields[field])
	}

	return names
}

// addressable returns a pointer to the struct behind instance. Struct values
// are copied so pointer-receiver accessors can be called.
func addressable(instance any) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, ErrNilInstance
	}

	rv := reflect.ValueOf(instance)
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return reflect.Value{}, ErrNilInstance
		}

		if rv.Elem().Kind() != reflect.Struct {
			return reflect.Value{}, ErrNotStruct
		}

		return rv, nil

	case reflect.Struct:
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)

		return ptr, nil

	default:
		return reflect.Value{}, ErrNotStruct
	}
}

// isCollection reports whether a field is verified through an adder and a
// remover. Byte slices are treated as scalar values.
func isCollection(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && t.Elem().Kind() != reflect.Uint8
}
