// Package value implements the runtime value model of the Scheme
// dialect: the tagged sum of values the evaluator passes around, the
// environment chain bindings live in, and the printer that renders
// values back to source text.
package value

import "math/big"

// Value is the sum type of every runtime datum. It is implemented only
// by the types in this package; the unexported marker method keeps the
// set closed the way a real sum type would be.
type Value interface {
	schemeValue()
}

// Bool is a Scheme boolean, printed #t / #f.
type Bool bool

func (Bool) schemeValue() {}

// Null is the empty list, (), and the terminator of every proper list.
type Null struct{}

func (Null) schemeValue() {}

// Nil is the sole Null value; list construction and the reader always
// reuse it rather than allocating fresh empty-list values.
var Nil = Null{}

// Int is a fixed-width signed integer, the narrowest numeric kind.
type Int int32

func (Int) schemeValue() {}

// BigInt is an arbitrary-precision integer, used for any integer that
// does not fit in Int: the result of an overflowing Int operation or a
// large literal. It is a defined type over math/big.Int (not
// an embedding) so it can carry the schemeValue marker.
type BigInt big.Int

func (*BigInt) schemeValue() {}

// Big exposes the underlying *big.Int for arithmetic.
func (b *BigInt) Big() *big.Int { return (*big.Int)(b) }

// NewBigInt wraps x as a Value.
func NewBigInt(x *big.Int) *BigInt { return (*BigInt)(x) }

// Float is a 64-bit IEEE-754 float, the widest numeric kind.
type Float float64

func (Float) schemeValue() {}

// Str is a Scheme string.
type Str string

func (Str) schemeValue() {}

// Cell is a mutable cons pair. The reader builds its lists back to front
// from a slice of parsed elements, so it never mutates a Cell itself.
type Cell struct {
	Car Value
	Cdr Value
}

func (*Cell) schemeValue() {}

// NewCell allocates a cons pair.
func NewCell(car, cdr Value) *Cell { return &Cell{Car: car, Cdr: cdr} }

// Closure is a lambda plus the environment it closed over. Params is
// either Nil (no parameters), a proper list of *Symbol (fixed arity), an
// improper list of *Symbol ending in a *Symbol (fixed-plus-rest), or a
// bare *Symbol (fully variadic). Body is a non-empty list of expressions
// evaluated in sequence, the way `begin` evaluates its operands.
type Closure struct {
	Params Value
	Body   Value
	Env    *Env
}

func (*Closure) schemeValue() {}

// Intrinsic is a built-in procedure implemented in Go. Arity is the
// exact argument count required, or -1 for variadic.
type Intrinsic struct {
	Name  string
	Arity int
	Fn    func(args []Value) (Value, error)
}

func (*Intrinsic) schemeValue() {}

// sentinel is the shape shared by every identity-only singleton value:
// NONE, EOF, and the two call/cc and apply marker tags.
type sentinel struct{ name string }

func (*sentinel) schemeValue() {}

func (s *sentinel) String() string { return s.name }

var (
	// None is the "no useful value" result: definitions, set!, display,
	// newline and the like all evaluate to it, and the REPL never prints it.
	None = &sentinel{name: "#<none>"}
	// EOF is returned by read and read-expression at end of input.
	EOF = &sentinel{name: "#<eof>"}
	// CallCCTag and ApplyTag are the marker values call/cc and apply are
	// bound to; apply_function unwraps them rather than dispatching on them
	// as ordinary procedures.
	CallCCTag = &sentinel{name: "#<call/cc>"}
	ApplyTag  = &sentinel{name: "#<apply>"}
)
