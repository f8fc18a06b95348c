package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noa-lang/noa/value"
)

func TestTruthyNumberZeroIsTruthy(t *testing.T) {
	// Every Number, including 0, is truthy; only nil and false are falsy.
	assert.True(t, value.Truthy(value.Number{Val: 0}))
	assert.True(t, value.Truthy(value.Number{Val: -1}))
	assert.True(t, value.Truthy(value.Number{Val: 42}))
}

func TestTruthyNilAndFalseAreFalsy(t *testing.T) {
	assert.False(t, value.Truthy(value.NilValue))
	assert.False(t, value.Truthy(value.Bool{Val: false}))
}

func TestTruthyStringAndTableAreTruthy(t *testing.T) {
	assert.True(t, value.Truthy(value.String{Val: ""}))
	assert.True(t, value.Truthy(value.NewTable()))
	assert.True(t, value.Truthy(value.Bool{Val: true}))
}

func TestEqualAcrossKindsIsFalse(t *testing.T) {
	assert.False(t, value.Equal(value.Number{Val: 1}, value.String{Val: "1"}))
}

func TestEqualNumbersBoolsStrings(t *testing.T) {
	assert.True(t, value.Equal(value.Number{Val: 1}, value.Number{Val: 1}))
	assert.False(t, value.Equal(value.Number{Val: 1}, value.Number{Val: 2}))
	assert.True(t, value.Equal(value.Bool{Val: true}, value.Bool{Val: true}))
	assert.True(t, value.Equal(value.String{Val: "a"}, value.String{Val: "a"}))
	assert.True(t, value.Equal(value.NilValue, value.NilValue))
}

func TestEqualTableIsByIdentity(t *testing.T) {
	a := value.NewTable()
	b := value.NewTable()
	assert.False(t, value.Equal(a, b), "two distinct empty tables are not equal")
	assert.True(t, value.Equal(a, a))
}

func TestLessNumericAndLexicographic(t *testing.T) {
	assert.True(t, value.Less(value.Number{Val: 1}, value.Number{Val: 2}))
	assert.False(t, value.Less(value.Number{Val: 2}, value.Number{Val: 1}))
	assert.True(t, value.Less(value.String{Val: "a"}, value.String{Val: "b"}))
	assert.False(t, value.Less(value.NilValue, value.NilValue))
}

func TestTableGetSetAndOrder(t *testing.T) {
	tbl := value.NewTable()
	tbl.Set("b", value.Number{Val: 2})
	tbl.Set("a", value.Number{Val: 1})
	tbl.Set("b", value.Number{Val: 99})

	assert.Equal(t, value.Number{Val: 99}, tbl.Get("b"))
	assert.Equal(t, value.NilValue, tbl.Get("missing"))
	assert.Equal(t, []string{"b", "a"}, tbl.Order, "overwriting an existing key does not move it in insertion order")
}

func TestTableString(t *testing.T) {
	tbl := value.NewTable()
	tbl.Set("a", value.Number{Val: 1})
	tbl.Set("b", value.String{Val: "x"})
	assert.Equal(t, `{a:1,b:x,}`, tbl.String())
}

func TestNumberStringHasNoTrailingZeros(t *testing.T) {
	assert.Equal(t, "3", value.Number{Val: 3}.String())
	assert.Equal(t, "3.5", value.Number{Val: 3.5}.String())
}
