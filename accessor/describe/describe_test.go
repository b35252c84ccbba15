package describe_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"accessor-check/accessor/describe"
)

func TestScalar(t *testing.T) {
	var v string
	f := describe.Scalar("name", func() string { return v }, func(s string) { v = s })

	assert.False(t, f.Collection)
	assert.True(t, f.Complete())
	assert.Equal(t, reflect.TypeFor[string](), f.Type())

	f.Set("x")
	assert.Equal(t, "x", f.Get())

	_, ok := f.Example()
	assert.False(t, ok)
}

func TestScalar_Incomplete(t *testing.T) {
	f := describe.Scalar[int]("count", nil, func(int) {})
	assert.False(t, f.Complete())
}

func TestCollection(t *testing.T) {
	var items []int
	f := describe.Collection("items",
		func() []int { return items },
		func(i int) { items = append(items, i) },
		func(int) { items = items[:0] },
	).WithExample(7)

	assert.True(t, f.Collection)
	assert.True(t, f.Complete())
	assert.Equal(t, reflect.TypeFor[int](), f.Type())

	ex, ok := f.Example()
	assert.True(t, ok)
	assert.Equal(t, 7, ex)

	f.Add(ex)
	assert.Equal(t, 1, f.Len())
	f.Remove(ex)
	assert.Equal(t, 0, f.Len())
}
