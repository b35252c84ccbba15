package accessor

import (
	"reflect"

	"accessor-check/primitive"
)

// ExampleTable maps a type to the canonical example value used to exercise
// its accessors.
type ExampleTable map[reflect.Type]any

// DefaultExamples returns a table holding true for bool, zero for every
// numeric type and time.Duration, "test" for string, the Unix epoch for
// time.Time and an empty []any.
func DefaultExamples() ExampleTable {
	table := ExampleTable{}
	for kind := primitive.KindEnum(1); kind < primitive.KindPrimitiveEnum; kind++ {
		table.Register(primitive.Example(kind))
	}

	table.Register([]any{})

	return table
}

// Register stores v as the example for its dynamic type. A nil v is ignored.
func (t ExampleTable) Register(v any) {
	if v == nil {
		return
	}

	t[reflect.TypeOf(v)] = v
}

// Lookup returns the example for rtype. Named types over a basic kind
// (type Privacy string) fall back to the basic example converted to rtype.
func (t ExampleTable) Lookup(rtype reflect.Type) (any, bool) {
	if v, ok := t[rtype]; ok {
		return v, true
	}

	if v, ok := primitive.ExampleFor(rtype); ok && primitive.FromReflectType(rtype) == primitive.KindPrimitiveEnum {
		return v.Interface(), true
	}

	return nil, false
}
