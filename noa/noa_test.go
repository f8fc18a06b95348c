package noa_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noa-lang/noa/noa"
)

// runCapture runs src against a fresh Runner with output captured, returning
// (stdout, exit code, error).
func runCapture(t *testing.T, src string) (string, float64, error) {
	t.Helper()
	var buf bytes.Buffer
	r := noa.NewRunner()
	r.SetWriter(&buf)
	code, err := r.Run(src)
	return buf.String(), code, err
}

// End-to-end scenarios.

func TestSeed1HelloWorld(t *testing.T) {
	out, code, err := runCapture(t, `println("hello");`)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
	assert.Equal(t, 0.0, code)
}

func TestSeed2Arithmetic(t *testing.T) {
	out, code, err := runCapture(t, `var a = 1; var b = 2; println(a + b);`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.Equal(t, 0.0, code)
}

func TestSeed3FunctionCall(t *testing.T) {
	out, code, err := runCapture(t, `fun add(x,y){ return x+y; } println(add(2,3));`)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)
	assert.Equal(t, 0.0, code)
}

func TestSeed4WhileLoop(t *testing.T) {
	out, code, err := runCapture(t, `var n = 0; var i = 0; while (i < 3) { n = n + i; i = i + 1; } println(n);`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
	assert.Equal(t, 0.0, code)
}

func TestSeed5ClosureCounter(t *testing.T) {
	out, code, err := runCapture(t, `fun make(){ var c = 0; fun inc(){ c = c + 1; return c; } return inc; } var f = make(); println(f()); println(f());`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
	assert.Equal(t, 0.0, code)
}

func TestSeed6TableMutationAndExitCode(t *testing.T) {
	out, code, err := runCapture(t, `var t = { "k": 1, }; t["k"] = t["k"] + 41; println(t["k"]); exit(7);`)
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)
	assert.Equal(t, 7.0, code)
}

// Language-level properties.

func TestShortCircuitOr(t *testing.T) {
	// sideEffect must not run (it would print "called") when the left
	// operand is truthy.
	out, code, err := runCapture(t, `
		fun sideEffect() { println("called"); return true; }
		var x = true or sideEffect();
		println(x);
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
	assert.Equal(t, 0.0, code)
}

func TestShortCircuitAnd(t *testing.T) {
	out, code, err := runCapture(t, `
		fun sideEffect() { println("called"); return true; }
		var x = false and sideEffect();
		println(x);
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
	assert.Equal(t, 0.0, code)
}

func TestLooseReturnAtTopLevelIsError(t *testing.T) {
	_, _, err := runCapture(t, `return 1;`)
	require.Error(t, err)
}

func TestDivisionByZeroStopsExecution(t *testing.T) {
	out, _, err := runCapture(t, `println("before"); var x = 1 / 0; println("after");`)
	require.Error(t, err)
	assert.Equal(t, "before\n", out, "execution must stop at the error, never reaching the second println")
}

func TestArithmeticOnNonNumberIsError(t *testing.T) {
	_, _, err := runCapture(t, `var x = true - 1;`)
	require.Error(t, err)
}

func TestSyntaxErrorIsReportedWithLineAndLexeme(t *testing.T) {
	_, _, err := runCapture(t, "var x = ;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line")
}

func TestRunnerPersistsStateAcrossCalls(t *testing.T) {
	var buf bytes.Buffer
	r := noa.NewRunner()
	r.SetWriter(&buf)

	_, err := r.Run(`var x = 10;`)
	require.NoError(t, err)
	_, err = r.Run(`println(x + 1);`)
	require.NoError(t, err)
	assert.Equal(t, "11\n", buf.String())
}

func TestEvalLineReturnsTrailingExpressionValue(t *testing.T) {
	r := noa.NewRunner()
	_, err := r.Run(`var x = 5;`)
	require.NoError(t, err)

	v, err := r.EvalLine(`x + 1;`)
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "6", v.String())
}

func TestStdlibLenOnStringAndTable(t *testing.T) {
	out, _, err := runCapture(t, `
		println(len("hello"));
		var t = { "a": 1, "b": 2, };
		println(len(t));
	`)
	require.NoError(t, err)
	assert.Equal(t, "5\n2\n", out)
}

func TestStdlibStrAndStrToNum(t *testing.T) {
	out, _, err := runCapture(t, `
		println(str(42));
		println(str_to_num("3.5") + 1);
		println(str_to_num("not a number") == nil);
	`)
	require.NoError(t, err)
	assert.Equal(t, "42\n4.5\ntrue\n", out)
}

func TestStdlibExitRequiresNumber(t *testing.T) {
	_, _, err := runCapture(t, `exit("nope");`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a number")
}

func TestStdlibLenOnInvalidTypeIsError(t *testing.T) {
	_, _, err := runCapture(t, `len(5);`)
	require.Error(t, err)
}
