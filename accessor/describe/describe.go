// Package describe lets a type list its accessors explicitly instead of
// following the Get/Set/Add/Remove naming convention.
//
// It has no dependencies beyond the standard library, so model packages can
// implement Describer without linking the verifier.
package describe

import "reflect"

// Describer is implemented by types that list their accessors explicitly.
type Describer interface {
	AccessorFields() []Field
}

// Field describes the accessors of one field. Build it with Scalar or
// Collection.
type Field struct {
	Name       string
	Collection bool

	typ        reflect.Type // field type for scalars, element type for collections
	example    any
	hasExample bool

	get    func() any
	set    func(any)
	length func() int
	add    func(any)
	remove func(any)
}

// Scalar describes a field read by get and written by set.
func Scalar[T any](name string, get func() T, set func(T)) Field {
	f := Field{Name: name, typ: reflect.TypeFor[T]()}
	if get != nil {
		f.get = func() any { return get() }
	}

	if set != nil {
		f.set = func(v any) { set(as[T](v)) }
	}

	return f
}

// Collection describes a slice field read by get and modified by add and
// remove.
func Collection[S ~[]E, E any](name string, get func() S, add, remove func(E)) Field {
	f := Field{Name: name, Collection: true, typ: reflect.TypeFor[E]()}
	if get != nil {
		f.length = func() int { return len(get()) }
	}

	if add != nil {
		f.add = func(v any) { add(as[E](v)) }
	}

	if remove != nil {
		f.remove = func(v any) { remove(as[E](v)) }
	}

	return f
}

// WithExample returns a copy of f that uses example instead of the type table.
func (f Field) WithExample(example any) Field {
	f.example = example
	f.hasExample = true

	return f
}

// Type is the field type of a scalar or the element type of a collection.
func (f Field) Type() reflect.Type { return f.typ }

// Example returns the value set through WithExample.
func (f Field) Example() (any, bool) { return f.example, f.hasExample }

// Complete reports whether every accessor the field kind needs is present.
func (f Field) Complete() bool {
	if f.Collection {
		return f.length != nil && f.add != nil && f.remove != nil
	}

	return f.get != nil && f.set != nil
}

// Get calls the scalar getter.
func (f Field) Get() any { return f.get() }

// Set calls the scalar setter.
func (f Field) Set(v any) { f.set(v) }

// Len returns the length of the collection.
func (f Field) Len() int { return f.length() }

// Add calls the collection adder.
func (f Field) Add(v any) { f.add(v) }

// Remove calls the collection remover.
func (f Field) Remove(v any) { f.remove(v) }

func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
