package accessor

import (
	"fmt"
	"reflect"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"accessor-check/accessor/describe"
	"accessor-check/diagnostic"
	"accessor-check/mapping"
)

// verifyDescribed checks the fields a describe.Describer lists. Declared
// fields of st that it leaves out, and that are not skipped, fail.
func (v *Verifier) verifyDescribed(d describe.Describer, st reflect.Type, typeName string, entry *mapping.TypeEntry, res *diagnostic.Diagnostics) {
	described := make(map[string]bool)

	for _, f := range d.AccessorFields() {
		described[f.Name] = true

		if v.isIgnored(f.Name, entry) {
			res.MarkSkipped(typeName, f.Name)
			continue
		}

		v.logger.Debug("verifying described field",
			zap.String("type", typeName),
			zap.String("field", f.Name),
			zap.Bool("collection", f.Collection))

		check := describedCheck{verifier: v, field: f, typeName: typeName, res: res}
		if f.Collection {
			check.collection()
		} else {
			check.scalar()
		}

		res.MarkChecked(typeName, f.Name)
	}

	for i := range st.NumField() {
		sf := st.Field(i)
		if described[sf.Name] {
			continue
		}

		if v.skip(sf, entry) {
			res.MarkSkipped(typeName, sf.Name)
			continue
		}

		res.AddFailure(diagnostic.Diagnostic{
			Code:    diagnostic.CodeMethodNotFound,
			Message: fmt.Sprintf("field %s has no accessor descriptor", sf.Name),
			Type:    typeName,
			Field:   sf.Name,
		})
		res.MarkChecked(typeName, sf.Name)
	}
}

type describedCheck struct {
	verifier *Verifier
	field    describe.Field
	typeName string
	res      *diagnostic.Diagnostics
}

func (c describedCheck) scalar() {
	if !c.field.Complete() {
		c.fail(diagnostic.CodeMethodNotFound, "descriptor has no getter or no setter")
		return
	}

	example, ok := c.example()
	if !ok {
		return
	}

	if err := protect(func() { c.field.Set(example) }); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling setter: %v", err))
		return
	}

	var actual any
	if err := protect(func() { actual = c.field.Get() }); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling getter: %v", err))
		return
	}

	if !assert.ObjectsAreEqual(example, actual) {
		c.res.AddFailure(diagnostic.Diagnostic{
			Code:     diagnostic.CodeValueMismatch,
			Message:  "getter did not return the value passed to the setter",
			Type:     c.typeName,
			Field:    c.field.Name,
			Expected: example,
			Actual:   actual,
		})
	}
}

func (c describedCheck) collection() {
	if !c.field.Complete() {
		c.fail(diagnostic.CodeMethodNotFound, "descriptor has no getter, adder or remover")
		return
	}

	example, ok := c.example()
	if !ok {
		return
	}

	if !c.expectLen(0, "before add") {
		return
	}

	if err := protect(func() { c.field.Add(example) }); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling adder: %v", err))
		return
	}

	if !c.expectLen(1, "after add") {
		return
	}

	if err := protect(func() { c.field.Remove(example) }); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling remover: %v", err))
		return
	}

	c.expectLen(0, "after remove")
}

func (c describedCheck) expectLen(want int, when string) bool {
	var got int
	if err := protect(func() { got = c.field.Len() }); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling getter: %v", err))
		return false
	}

	if got != want {
		c.res.AddFailure(diagnostic.Diagnostic{
			Code:     diagnostic.CodeSizeMismatch,
			Message:  fmt.Sprintf("getter returned %d elements %s, want %d", got, when, want),
			Type:     c.typeName,
			Field:    c.field.Name,
			Expected: want,
			Actual:   got,
		})

		return false
	}

	return true
}

// example resolves the per-field override of the verifier first, then the
// descriptor's own example, then the type table.
func (c describedCheck) example() (any, bool) {
	v, ok := c.verifier.fieldExamples[c.field.Name]
	if !ok {
		v, ok = c.field.Example()
	}

	if !ok {
		v, ok = c.verifier.examples.Lookup(c.field.Type())
	}

	if !ok {
		c.fail(diagnostic.CodeNoExample, fmt.Sprintf("no example value registered for type %s", c.field.Type()))
		return nil, false
	}

	value, err := exampleValue(v, c.field.Type())
	if err != nil {
		c.fail(diagnostic.CodeNoExample, err.Error())
		return nil, false
	}

	return value.Interface(), true
}

func (c describedCheck) fail(code diagnostic.Code, msg string) {
	c.res.AddFailure(diagnostic.Diagnostic{
		Code:    code,
		Message: msg,
		Type:    c.typeName,
		Field:   c.field.Name,
	})
}
