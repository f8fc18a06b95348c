package stdlib_test

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noa-lang/noa/env"
	"github.com/noa-lang/noa/function"
	"github.com/noa-lang/noa/signal"
	"github.com/noa-lang/noa/stdlib"
	"github.com/noa-lang/noa/value"
)

func lookup(t *testing.T, g *env.Environment, name string) *function.Function {
	t.Helper()
	v, ok := g.Lookup(name)
	require.True(t, ok, "builtin %q should be registered", name)
	fn, ok := v.(*function.Function)
	require.True(t, ok)
	return fn
}

func TestRegisterBindsAllBuiltins(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	for _, name := range []string{"print", "println", "input", "str", "str_to_num", "len", "exit"} {
		_, ok := g.Lookup(name)
		assert.True(t, ok, "expected builtin %q to be registered", name)
	}
}

func TestPrintWritesWithoutNewline(t *testing.T) {
	var buf bytes.Buffer
	g := env.New(nil)
	stdlib.Register(g, &buf, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "print")
	_, err := fn.Native([]value.Value{value.String{Val: "a"}, value.String{Val: "b"}})
	require.NoError(t, err)
	assert.Equal(t, "ab", buf.String())
}

func TestPrintlnAppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	g := env.New(nil)
	stdlib.Register(g, &buf, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "println")
	_, err := fn.Native([]value.Value{value.Number{Val: 42}})
	require.NoError(t, err)
	assert.Equal(t, "42\n", buf.String())
}

func TestInputReturnsTrimmedLine(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("hello world\n")))
	fn := lookup(t, g, "input")
	v, err := fn.Native(nil)
	require.NoError(t, err)
	assert.Equal(t, value.String{Val: "hello world"}, v)
}

func TestInputReturnsNilOnReadFailure(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "input")
	v, err := fn.Native(nil)
	require.NoError(t, err)
	assert.Equal(t, value.NilValue, v)
}

func TestStrStringifiesAnyValue(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "str")
	v, err := fn.Native([]value.Value{value.Bool{Val: true}})
	require.NoError(t, err)
	assert.Equal(t, value.String{Val: "true"}, v)
}

func TestStrToNumParsesFloat(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "str_to_num")
	v, err := fn.Native([]value.Value{value.String{Val: "3.5"}})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 3.5}, v)
}

func TestStrToNumReturnsNilOnBadInput(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "str_to_num")
	v, err := fn.Native([]value.Value{value.String{Val: "not a number"}})
	require.NoError(t, err)
	assert.Equal(t, value.NilValue, v)
}

func TestStrToNumRejectsNonString(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "str_to_num")
	_, err := fn.Native([]value.Value{value.Number{Val: 1}})
	require.Error(t, err)
}

func TestLenOnStringAndTable(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "len")

	v, err := fn.Native([]value.Value{value.String{Val: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 5}, v)

	tbl := value.NewTable()
	tbl.Set("a", value.Number{Val: 1})
	v, err = fn.Native([]value.Value{tbl})
	require.NoError(t, err)
	assert.Equal(t, value.Number{Val: 1}, v)
}

func TestLenOnOtherKindIsError(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "len")
	_, err := fn.Native([]value.Value{value.Number{Val: 1}})
	require.Error(t, err)
}

func TestExitProducesExitSignal(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "exit")
	_, err := fn.Native([]value.Value{value.Number{Val: 7}})
	require.Error(t, err)
	sig, ok := err.(*signal.Signal)
	require.True(t, ok)
	assert.Equal(t, signal.KindExit, sig.Kind)
	assert.Equal(t, 7.0, sig.Value)
}

func TestExitOnNonNumberIsError(t *testing.T) {
	g := env.New(nil)
	stdlib.Register(g, &bytes.Buffer{}, bufio.NewReader(strings.NewReader("")))
	fn := lookup(t, g, "exit")
	_, err := fn.Native([]value.Value{value.String{Val: "nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a number")
}
