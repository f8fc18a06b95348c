/*
File    : noa/value/value.go

Package value defines NOA's runtime Value sum: Number, String, Bool,
Nil, Function, and Table. Every concrete type implements the Value
interface's Kind/String/Inspect triple, matching Go's own Stringer
convention for the display form, with Inspect reserved for the more
detailed debug form.

Function is declared in package function (it needs the env and ast
packages, which would otherwise cycle back through here); it satisfies
this Value interface structurally.
*/
package value

import (
	"fmt"
	"strconv"
)

// Kind tags the dynamic type of a Value.
type Kind string

const (
	NumberKind   Kind = "number"
	StringKind   Kind = "string"
	BoolKind     Kind = "bool"
	NilKind      Kind = "nil"
	FunctionKind Kind = "function"
	TableKind    Kind = "table"
)

// Value is NOA's only polymorphic runtime type.
type Value interface {
	// Kind reports the dynamic type tag.
	Kind() Kind
	// String renders the value the way NOA's stringification rules
	// require: unquoted, no type decoration.
	String() string
	// Inspect renders a debug form used by error messages and table
	// display; for most kinds it is identical to String.
	Inspect() string
}

// Number is NOA's sole numeric type, a 64-bit float.
type Number struct {
	Val float64
}

func (n Number) Kind() Kind      { return NumberKind }
func (n Number) String() string  { return strconv.FormatFloat(n.Val, 'g', -1, 64) }
func (n Number) Inspect() string { return n.String() }

// String is an owned, immutable UTF-8 string value.
type String struct {
	Val string
}

func (s String) Kind() Kind      { return StringKind }
func (s String) String() string  { return s.Val }
func (s String) Inspect() string { return s.Val }

// Bool is a boolean value.
type Bool struct {
	Val bool
}

func (b Bool) Kind() Kind      { return BoolKind }
func (b Bool) String() string  { return strconv.FormatBool(b.Val) }
func (b Bool) Inspect() string { return b.String() }

// Nil is NOA's singleton absence-of-value. NilValue is exported so callers
// never need to allocate; comparisons should use Equal(v, value.NilValue) or
// a type switch rather than pointer identity, since Nil has no payload.
type Nil struct{}

func (Nil) Kind() Kind      { return NilKind }
func (Nil) String() string  { return "nil" }
func (Nil) Inspect() string { return "nil" }

// NilValue is the single Nil instance; Nil has no fields so any Nil{}
// literal is interchangeable with it.
var NilValue Value = Nil{}

// Table is NOA's associative String -> Value map. Its identity is the
// pointer to this struct, not its contents: two Table values are equal only
// if they share one *Table. Tables are shared by reference across every
// Value that holds them, so mutation through one alias is visible through
// all of them.
type Table struct {
	Entries map[string]Value
	// Order records insertion order so a freshly built literal stringifies
	// deterministically; iteration order is not part of the language
	// contract, but a stable order makes tests and REPL output
	// reproducible rather than relying on Go's randomized map order.
	Order []string
}

// NewTable returns an empty, ready-to-use Table.
func NewTable() *Table {
	return &Table{Entries: make(map[string]Value)}
}

func (t *Table) Kind() Kind { return TableKind }

// Get returns the value stored at key, or Nil if absent.
func (t *Table) Get(key string) Value {
	if v, ok := t.Entries[key]; ok {
		return v
	}
	return NilValue
}

// Set stores value at key, overwriting any prior entry; later duplicate
// keys in a literal and mutation through `t[k] = v` behave the same way.
func (t *Table) Set(key string, val Value) {
	if _, exists := t.Entries[key]; !exists {
		t.Order = append(t.Order, key)
	}
	t.Entries[key] = val
}

func (t *Table) String() string {
	out := "{"
	for _, k := range t.Order {
		out += fmt.Sprintf("%s:%s,", k, t.Entries[k].String())
	}
	out += "}"
	return out
}

func (t *Table) Inspect() string { return t.String() }

// Truthy implements NOA's truthiness rule: Nil and Bool(false) are falsy;
// everything else, including every Number (even 0), every String, every
// Function, and every Table, is truthy.
func Truthy(v Value) bool {
	switch t := v.(type) {
	case Nil:
		return false
	case Bool:
		return t.Val
	default:
		return true
	}
}

// Equal implements NOA equality: Nil equals only Nil, values of different
// kinds are never equal, Numbers/Bools/Strings compare by value, and
// anything else (Function, Table) compares by identity.
func Equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Nil:
		return true
	case Number:
		return av.Val == b.(Number).Val
	case Bool:
		return av.Val == b.(Bool).Val
	case String:
		return av.Val == b.(String).Val
	case *Table:
		bv, ok := b.(*Table)
		return ok && av == bv
	default:
		// Function and any other identity-compared kind.
		return a == b
	}
}

// Less implements the ordering half of NOA's comparison operators:
// numbers numerically, strings lexicographically, bools false<true, and
// any other pairing (including a kind mismatch) is simply false rather than
// an error.
func Less(a, b Value) bool {
	switch av := a.(type) {
	case Number:
		bv, ok := b.(Number)
		return ok && av.Val < bv.Val
	case String:
		bv, ok := b.(String)
		return ok && av.Val < bv.Val
	case Bool:
		bv, ok := b.(Bool)
		return ok && !av.Val && bv.Val
	default:
		return false
	}
}
