package value

import "github.com/pkg/errors"

// Env is one node of the environment chain: a binding of Sym to Val,
// linked to the next outward binding. A node whose Sym is FrameMarker
// carries no binding itself; it only marks where a call frame begins so
// that `define` knows where to insert.
type Env struct {
	Sym  *Symbol
	Val  Value
	Next *Env
}

func (*Env) schemeValue() {} // only ever printed diagnostically, never evaluated

// UnboundNameError reports a symbol with no binding in scope.
type UnboundNameError struct{ Sym *Symbol }

func (e *UnboundNameError) Error() string {
	return "unbound name: " + e.Sym.Name
}

// ArityMismatchError reports a parameter/argument count mismatch.
type ArityMismatchError struct{ Detail string }

func (e *ArityMismatchError) Error() string { return "arity mismatch: " + e.Detail }

// LookFor scans the chain head-outward for the first binding whose Sym is
// pointer-identical to sym.
func (e *Env) LookFor(sym *Symbol) (*Env, error) {
	for n := e; n != nil; n = n.Next {
		if n.Sym == sym {
			return n, nil
		}
	}
	return nil, errors.WithStack(&UnboundNameError{Sym: sym})
}

// Define inserts a new binding immediately after e, which must be the
// frame marker nearest the point of definition; it never replaces an
// existing binding, matching Scheme's "define never shadows in place"
// behavior within a single frame (repeated defines of the same name
// simply shadow the older one by coming first in the scan).
func (e *Env) Define(sym *Symbol, val Value) {
	e.Next = &Env{Sym: sym, Val: val, Next: e.Next}
}

// Set mutates this binding's value slot in place.
func (e *Env) Set(val Value) { e.Val = val }

// NewFrame conses a fresh frame marker in front of chain.
func NewFrame(chain *Env) *Env {
	return &Env{Sym: FrameMarker, Val: None, Next: chain}
}

// PrependDefs zips params against args onto chain, the way a closure's
// captured environment grows with one call frame's bindings. params is
// Nil, a proper or improper list of *Symbol, or a bare *Symbol (full rest
// args). Returns chain unchanged when params is Nil and args is Nil.
func PrependDefs(chain *Env, params, args Value) (*Env, error) {
	switch p := params.(type) {
	case Null:
		if _, ok := args.(Null); !ok {
			return nil, errors.WithStack(&ArityMismatchError{Detail: "too many arguments"})
		}
		return chain, nil
	case *Symbol:
		return &Env{Sym: p, Val: args, Next: chain}, nil
	case *Cell:
		sym, ok := p.Car.(*Symbol)
		if !ok {
			return nil, errors.WithStack(&ArityMismatchError{Detail: "parameter is not a symbol"})
		}
		argsCell, ok := args.(*Cell)
		if !ok {
			return nil, errors.WithStack(&ArityMismatchError{Detail: "too few arguments"})
		}
		rest, err := PrependDefs(chain, p.Cdr, argsCell.Cdr)
		if err != nil {
			return nil, err
		}
		return &Env{Sym: sym, Val: argsCell.Car, Next: rest}, nil
	default:
		return nil, errors.WithStack(&ArityMismatchError{Detail: "malformed parameter list"})
	}
}
