package accessor

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/huandu/go-clone"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"accessor-check/diagnostic"
	"accessor-check/internal/naming"
)

const maxSuggestions = 3

var errorType = reflect.TypeFor[error]()

// fieldCheck verifies the accessors of a single struct field.
type fieldCheck struct {
	verifier *Verifier
	target   reflect.Value // pointer to the struct under test
	field    reflect.StructField
	typeName string
	names    Names
	res      *diagnostic.Diagnostics

	methods []string // exported method names of target, filled lazily
}

func (c *fieldCheck) scalar() {
	ft := c.field.Type

	getterName := c.names.Getter
	if getterName == "" {
		getterName = naming.Getter(c.field.Name, ft.Kind() == reflect.Bool)
	}

	setterName := c.names.Setter
	if setterName == "" {
		setterName = naming.Setter(c.field.Name)
	}

	getter, ok := c.method(getterName)
	if !ok {
		return
	}

	setter, ok := c.method(setterName)
	if !ok {
		return
	}

	if !takesOne(setter.Type(), ft) {
		c.fail(diagnostic.CodeMethodNotFound, fmt.Sprintf(
			"method %s has signature %s, want func(%s)", setterName, setter.Type(), ft))
		return
	}

	if !returns(getter.Type(), ft) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf(
			"method %s has signature %s, want func() %s", getterName, getter.Type(), ft))
		return
	}

	example, ok := c.example(ft)
	if !ok {
		return
	}

	if _, err := invoke(setter, 0, example); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling %s: %v", setterName, err))
		return
	}

	out, err := invoke(getter, 1)
	if err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling %s: %v", getterName, err))
		return
	}

	expected, actual := example.Interface(), out[0].Interface()
	if !assert.ObjectsAreEqual(expected, actual) {
		c.res.AddFailure(diagnostic.Diagnostic{
			Code:     diagnostic.CodeValueMismatch,
			Message:  fmt.Sprintf("%s did not return the value passed to %s", getterName, setterName),
			Type:     c.typeName,
			Field:    c.field.Name,
			Expected: expected,
			Actual:   actual,
		})
	}
}

func (c *fieldCheck) collection() {
	getterName := c.names.Getter
	if getterName == "" {
		getterName = naming.ListGetter(c.field.Name)
	}

	getter, ok := c.method(getterName)
	if !ok {
		return
	}

	adder, adderName, ok := c.resolve("adder", c.names.Adder, naming.AdderNames(c.field.Name))
	if !ok {
		return
	}

	remover, removerName, ok := c.resolve("remover", c.names.Remover, naming.RemoverNames(c.field.Name))
	if !ok {
		return
	}

	gt := getter.Type()
	if gt.NumIn() != 0 || gt.NumOut() == 0 || !hasLen(gt.Out(0)) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf(
			"method %s has signature %s, want func() %s", getterName, gt, c.field.Type))
		return
	}

	at, rt := adder.Type(), remover.Type()
	if at.NumIn() != 1 || !takesOne(at, at.In(0)) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf("adder %s has signature %s, want one parameter", adderName, at))
		return
	}

	if !takesOne(rt, at.In(0)) {
		c.fail(diagnostic.CodeAccess, fmt.Sprintf(
			"remover %s has signature %s, want func(%s)", removerName, rt, at.In(0)))
		return
	}

	example, ok := c.example(at.In(0))
	if !ok {
		return
	}

	if !c.expectLen(getter, getterName, 0, "before "+adderName) {
		return
	}

	if _, err := invoke(adder, 0, example); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling %s: %v", adderName, err))
		return
	}

	if !c.expectLen(getter, getterName, 1, "after "+adderName) {
		return
	}

	if _, err := invoke(remover, 0, example); err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling %s: %v", removerName, err))
		return
	}

	c.expectLen(getter, getterName, 0, "after "+removerName)
}

// resolve finds the adder or remover for the field. An explicit name is used
// as is; otherwise every rule candidate is tried and more than one hit is
// reported as ambiguous.
func (c *fieldCheck) resolve(role, explicit string, candidates []string) (reflect.Value, string, bool) {
	if explicit != "" {
		m, ok := c.method(explicit)
		return m, explicit, ok
	}

	var found []string
	for _, name := range candidates {
		if c.target.MethodByName(name).IsValid() {
			found = append(found, name)
		}
	}

	switch len(found) {
	case 0:
		c.res.AddFailure(diagnostic.Diagnostic{
			Code:        diagnostic.CodeMethodNotFound,
			Message:     fmt.Sprintf("no %s found, tried %s", role, strings.Join(candidates, ", ")),
			Type:        c.typeName,
			Field:       c.field.Name,
			Suggestions: naming.Closest(candidates[0], c.methodNames(), maxSuggestions),
		})

		return reflect.Value{}, "", false

	case 1:
		return c.target.MethodByName(found[0]), found[0], true

	default:
		c.fail(diagnostic.CodeAmbiguous, fmt.Sprintf(
			"%s is ambiguous, methods %s all match", role, strings.Join(found, ", ")))

		return reflect.Value{}, "", false
	}
}

func (c *fieldCheck) expectLen(getter reflect.Value, getterName string, want int, when string) bool {
	out, err := invoke(getter, 1)
	if err != nil {
		c.fail(diagnostic.CodeInvocation, fmt.Sprintf("calling %s: %v", getterName, err))
		return false
	}

	got := out[0].Len()
	if got != want {
		c.res.AddFailure(diagnostic.Diagnostic{
			Code:     diagnostic.CodeSizeMismatch,
			Message:  fmt.Sprintf("%s returned %d elements %s, want %d", getterName, got, when, want),
			Type:     c.typeName,
			Field:    c.field.Name,
			Expected: want,
			Actual:   got,
		})

		return false
	}

	return true
}

// example returns a private copy of the example for rtype, honouring the
// per-field override.
func (c *fieldCheck) example(rtype reflect.Type) (reflect.Value, bool) {
	v, ok := c.verifier.fieldExamples[c.field.Name]
	if !ok {
		v, ok = c.verifier.examples.Lookup(rtype)
	}

	if !ok {
		c.fail(diagnostic.CodeNoExample, fmt.Sprintf("no example value registered for type %s", rtype))
		return reflect.Value{}, false
	}

	value, err := exampleValue(v, rtype)
	if err != nil {
		c.fail(diagnostic.CodeNoExample, err.Error())
		return reflect.Value{}, false
	}

	c.verifier.logger.Debug("using example",
		zap.String("type", c.typeName),
		zap.String("field", c.field.Name),
		zap.String("example", spew.Sprintf("%#v", value.Interface())))

	return value, true
}

// exampleValue deep-copies v so setters cannot mutate the shared table, and
// adapts it to rtype.
func exampleValue(v any, rtype reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch rtype.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(rtype), nil
		default:
			return reflect.Value{}, fmt.Errorf("nil example is not usable for type %s", rtype)
		}
	}

	value := reflect.ValueOf(clone.Clone(v))
	switch {
	case value.Type().AssignableTo(rtype):
		return value, nil
	case value.Type().ConvertibleTo(rtype) && value.Kind() == rtype.Kind():
		return value.Convert(rtype), nil
	default:
		return reflect.Value{}, fmt.Errorf("example of type %s is not usable for type %s", value.Type(), rtype)
	}
}

// method looks up an exported method of the target, reporting a
// method-not-found failure with near-miss suggestions when it is missing.
func (c *fieldCheck) method(name string) (reflect.Value, bool) {
	m := c.target.MethodByName(name)
	if m.IsValid() {
		return m, true
	}

	c.res.AddFailure(diagnostic.Diagnostic{
		Code:        diagnostic.CodeMethodNotFound,
		Message:     fmt.Sprintf("method %s not found", name),
		Type:        c.typeName,
		Field:       c.field.Name,
		Suggestions: naming.Closest(name, c.methodNames(), maxSuggestions),
	})

	return reflect.Value{}, false
}

func (c *fieldCheck) methodNames() []string {
	if c.methods == nil {
		t := c.target.Type()
		c.methods = make([]string, 0, t.NumMethod())
		for i := range t.NumMethod() {
			c.methods = append(c.methods, t.Method(i).Name)
		}
	}

	return c.methods
}

func (c *fieldCheck) fail(code diagnostic.Code, msg string) {
	c.verifier.logger.Debug("field check failed",
		zap.String("type", c.typeName),
		zap.String("field", c.field.Name),
		zap.String("code", string(code)),
		zap.String("message", msg))

	c.res.AddFailure(diagnostic.Diagnostic{
		Code:    code,
		Message: msg,
		Type:    c.typeName,
		Field:   c.field.Name,
	})
}

// takesOne reports whether mt is func(in) or func(in) error. Variadic
// methods never qualify.
func takesOne(mt, in reflect.Type) bool {
	if mt.NumIn() != 1 || mt.IsVariadic() || mt.In(0) != in {
		return false
	}

	return mt.NumOut() == 0 || (mt.NumOut() == 1 && mt.Out(0) == errorType)
}

// returns reports whether mt is func() T or func() (T, error) with a T that
// can hold a value of type out.
func returns(mt, out reflect.Type) bool {
	if mt.NumIn() != 0 {
		return false
	}

	switch mt.NumOut() {
	case 1:
	case 2:
		if mt.Out(1) != errorType {
			return false
		}
	default:
		return false
	}

	return mt.Out(0) == out || out.AssignableTo(mt.Out(0))
}

func hasLen(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	default:
		return false
	}
}
