package interp

import "github.com/pkelchte/goscheme/value"

// The supplemented syntax (cond, and, or, let) is pure sugar: each
// expands, at the moment Phase A dispatches on it, into the quote/if/
// lambda/begin forms spec.md's evaluator already knows how to run. None
// of this touches Value, Env, Continuation or the evaluator's step
// table; it only ever produces more S-expressions for Phase A to
// re-dispatch on.

func cons(car, cdr value.Value) *value.Cell { return value.NewCell(car, cdr) }

func list(items ...value.Value) value.Value {
	result := value.Value(value.Nil)
	for i := len(items) - 1; i >= 0; i-- {
		result = cons(items[i], result)
	}
	return result
}

// expandCond turns a cond's clause list into nested ifs. A clause is
// (test expr...) or (else expr...); else must be the body of the last
// clause examined but, like most small Schemes, this does not enforce
// that it's actually last.
func (in *Interpreter) expandCond(clauses value.Value) (value.Value, error) {
	c, ok := clauses.(*value.Cell)
	if !ok {
		return value.None, nil
	}
	clause, ok := c.Car.(*value.Cell)
	if !ok {
		return nil, typeMismatch("cond clause", c.Car)
	}
	test := clause.Car
	body := clause.Cdr
	if sym, ok := test.(*value.Symbol); ok && sym == in.sf.elseSym {
		return cons(in.sf.begin, body), nil
	}
	rest, err := in.expandCond(c.Cdr)
	if err != nil {
		return nil, err
	}
	return list(in.sf.ifSym, test, cons(in.sf.begin, body), rest), nil
}

// expandAnd turns (and e1 e2 ...) into (if e1 (and e2 ...) #f); no
// temporary is needed since only the truthiness of every operand but
// the last is ever examined.
func (in *Interpreter) expandAnd(exprs value.Value) (value.Value, error) {
	c, ok := exprs.(*value.Cell)
	if !ok {
		return value.Bool(true), nil
	}
	if _, isLast := c.Cdr.(value.Null); isLast {
		return c.Car, nil
	}
	rest, err := in.expandAnd(c.Cdr)
	if err != nil {
		return nil, err
	}
	return list(in.sf.ifSym, c.Car, rest, value.Bool(false)), nil
}

// expandOr turns (or e1 e2 ...) into a one-shot lambda that binds e1's
// value once and tests it, so e1 is never evaluated twice:
// ((lambda (t) (if t t (or e2 ...))) e1). The parameter symbol is built
// directly rather than interned, so it can never be shadowed by or
// shadow anything a user's source could spell.
func (in *Interpreter) expandOr(exprs value.Value) (value.Value, error) {
	c, ok := exprs.(*value.Cell)
	if !ok {
		return value.Bool(false), nil
	}
	if _, isLast := c.Cdr.(value.Null); isLast {
		return c.Car, nil
	}
	rest, err := in.expandOr(c.Cdr)
	if err != nil {
		return nil, err
	}
	tmp := &value.Symbol{Name: "or-result"}
	body := list(in.sf.ifSym, tmp, tmp, rest)
	lambdaExpr := list(in.sf.lambda, list(tmp), body)
	return list(lambdaExpr, c.Car), nil
}

// expandLet turns (let ((v e) ...) body...) into
// ((lambda (v ...) body...) e ...), reusing lambda/APPLY wholesale.
func (in *Interpreter) expandLet(tail value.Value) (value.Value, error) {
	c, ok := tail.(*value.Cell)
	if !ok {
		return nil, typeMismatch("let", tail)
	}
	body := c.Cdr
	var params, args []value.Value
	for b := c.Car; ; {
		bc, ok := b.(*value.Cell)
		if !ok {
			break
		}
		pair, ok := bc.Car.(*value.Cell)
		if !ok {
			return nil, typeMismatch("let binding", bc.Car)
		}
		params = append(params, pair.Car)
		args = append(args, mustCar(pair.Cdr))
		b = bc.Cdr
	}
	lambdaExpr := cons(in.sf.lambda, cons(list(params...), body))
	return cons(lambdaExpr, list(args...)), nil
}
