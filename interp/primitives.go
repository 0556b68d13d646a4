package interp

import (
	"fmt"

	"github.com/pkelchte/goscheme/value"
)

// installPrimitives populates the global environment with spec.md
// §4.6's required bindings plus the small standard-library additions
// documented in SPEC_FULL.md's DOMAIN STACK section (cond/and/or/let are
// wired as special forms in macros.go, not here; this file is only the
// procedure table).
func installPrimitives(in *Interpreter) {
	bind := func(name string, arity int, fn func([]value.Value) (value.Value, error)) {
		in.Global.Define(in.Table.Intern(name), &value.Intrinsic{Name: name, Arity: arity, Fn: fn})
	}

	in.Global.Define(in.Table.Intern("call/cc"), value.CallCCTag)
	in.Global.Define(in.Table.Intern("apply"), value.ApplyTag)

	bind("car", 1, func(a []value.Value) (value.Value, error) {
		c, ok := a[0].(*value.Cell)
		if !ok {
			return nil, typeMismatch("car", a[0])
		}
		return c.Car, nil
	})
	bind("cdr", 1, func(a []value.Value) (value.Value, error) {
		c, ok := a[0].(*value.Cell)
		if !ok {
			return nil, typeMismatch("cdr", a[0])
		}
		return c.Cdr, nil
	})
	bind("cons", 2, func(a []value.Value) (value.Value, error) {
		return cons(a[0], a[1]), nil
	})
	bind("eq?", 2, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0] == a[1]), nil
	})
	bind("pair?", 1, func(a []value.Value) (value.Value, error) {
		_, ok := a[0].(*value.Cell)
		return value.Bool(ok), nil
	})
	bind("null?", 1, func(a []value.Value) (value.Value, error) {
		_, ok := a[0].(value.Null)
		return value.Bool(ok), nil
	})
	bind("not", 1, func(a []value.Value) (value.Value, error) {
		b, ok := a[0].(value.Bool)
		return value.Bool(ok && !bool(b)), nil
	})
	bind("list", -1, func(a []value.Value) (value.Value, error) {
		return list(a...), nil
	})
	bind("display", 1, func(a []value.Value) (value.Value, error) {
		fmt.Fprint(in.Out, value.Stringify(a[0], false))
		return value.None, nil
	})
	bind("write", 1, func(a []value.Value) (value.Value, error) {
		fmt.Fprint(in.Out, value.Stringify(a[0], true))
		return value.None, nil
	})
	bind("newline", 0, func(a []value.Value) (value.Value, error) {
		fmt.Fprint(in.Out, "\n")
		return value.None, nil
	})
	bind("read", 0, func(a []value.Value) (value.Value, error) {
		return in.ReadExpression("", "")
	})
	bind("eof-object?", 1, func(a []value.Value) (value.Value, error) {
		return value.Bool(a[0] == value.EOF), nil
	})
	bind("symbol?", 1, func(a []value.Value) (value.Value, error) {
		_, ok := a[0].(*value.Symbol)
		return value.Bool(ok), nil
	})
	bind("number?", 1, func(a []value.Value) (value.Value, error) {
		return value.Bool(isNumber(a[0])), nil
	})
	bind("+", 2, func(a []value.Value) (value.Value, error) { return value.Add(a[0], a[1]) })
	bind("-", 2, func(a []value.Value) (value.Value, error) { return value.Subtract(a[0], a[1]) })
	bind("*", 2, func(a []value.Value) (value.Value, error) { return value.Multiply(a[0], a[1]) })
	bind("<", 2, compareAs(func(c int) bool { return c < 0 }))
	bind("=", 2, compareAs(func(c int) bool { return c == 0 }))
	bind(">", 2, compareAs(func(c int) bool { return c > 0 }))
	bind("<=", 2, compareAs(func(c int) bool { return c <= 0 }))
	bind(">=", 2, compareAs(func(c int) bool { return c >= 0 }))
	bind("error", 2, func(a []value.Value) (value.Value, error) {
		return nil, userError(a[0], a[1])
	})
	bind("globals", 0, func(a []value.Value) (value.Value, error) {
		var syms []value.Value
		for n := in.Global.Next; n != nil; n = n.Next {
			syms = append(syms, n.Sym)
		}
		return list(syms...), nil
	})

	bind("length", 1, func(a []value.Value) (value.Value, error) {
		n, err := listLength(a[0])
		if err != nil {
			return nil, err
		}
		return value.Int(n), nil
	})
	bind("reverse", 1, func(a []value.Value) (value.Value, error) {
		return reverseList(a[0]), nil
	})
	bind("append", -1, func(a []value.Value) (value.Value, error) {
		if len(a) == 0 {
			return value.Nil, nil
		}
		result := a[len(a)-1]
		for i := len(a) - 2; i >= 0; i-- {
			elems, err := toSlice(a[i])
			if err != nil {
				return nil, err
			}
			for j := len(elems) - 1; j >= 0; j-- {
				result = cons(elems[j], result)
			}
		}
		return result, nil
	})
	bind("list?", 1, func(a []value.Value) (value.Value, error) {
		_, err := toSlice(a[0])
		return value.Bool(err == nil), nil
	})
	bind("assoc", 2, func(a []value.Value) (value.Value, error) {
		key, lst := a[0], a[1]
		for {
			c, ok := lst.(*value.Cell)
			if !ok {
				return value.Bool(false), nil
			}
			pair, ok := c.Car.(*value.Cell)
			if ok && equalValues(pair.Car, key) {
				return pair, nil
			}
			lst = c.Cdr
		}
	})
	bind("member", 2, func(a []value.Value) (value.Value, error) {
		key, lst := a[0], a[1]
		for {
			c, ok := lst.(*value.Cell)
			if !ok {
				return value.Bool(false), nil
			}
			if equalValues(c.Car, key) {
				return c, nil
			}
			lst = c.Cdr
		}
	})
}

func compareAs(pred func(int) bool) func([]value.Value) (value.Value, error) {
	return func(a []value.Value) (value.Value, error) {
		c, err := value.Compare(a[0], a[1])
		if err != nil {
			return nil, err
		}
		return value.Bool(pred(c)), nil
	}
}

func isNumber(v value.Value) bool {
	switch v.(type) {
	case value.Int, *value.BigInt, value.Float:
		return true
	default:
		return false
	}
}

func listLength(v value.Value) (int, error) {
	n := 0
	for {
		switch x := v.(type) {
		case value.Null:
			return n, nil
		case *value.Cell:
			n++
			v = x.Cdr
		default:
			return 0, improperList(x)
		}
	}
}

// equalValues is Scheme's equal?: structural equality over cons spines,
// numeric equality across the tower's kinds, and identity everywhere
// else.
func equalValues(a, b value.Value) bool {
	if ac, ok := a.(*value.Cell); ok {
		bc, ok := b.(*value.Cell)
		return ok && equalValues(ac.Car, bc.Car) && equalValues(ac.Cdr, bc.Cdr)
	}
	if isNumber(a) && isNumber(b) {
		c, err := value.Compare(a, b)
		return err == nil && c == 0
	}
	return a == b
}
