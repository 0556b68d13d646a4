package interp

import "github.com/pkelchte/goscheme/value"

// specialForms holds the interned symbols Phase A dispatches on by
// pointer identity; interning them once at construction keeps the hot
// loop free of map lookups.
type specialForms struct {
	quote, ifSym, begin, lambda, define, setBang *value.Symbol
	condSym, andSym, orSym, letSym, elseSym       *value.Symbol
}

func newSpecialForms(t *value.Table) specialForms {
	return specialForms{
		quote:   t.Intern("quote"),
		ifSym:   t.Intern("if"),
		begin:   t.Intern("begin"),
		lambda:  t.Intern("lambda"),
		define:  t.Intern("define"),
		setBang: t.Intern("set!"),
		condSym: t.Intern("cond"),
		andSym:  t.Intern("and"),
		orSym:   t.Intern("or"),
		letSym:  t.Intern("let"),
		elseSym: t.Intern("else"),
	}
}

// Evaluate drives the trampoline: it alternates Phase A (expression
// dispatch) and Phase B (continuation dispatch) until the continuation
// is empty, then returns the final value. It is the one place a Go
// panic from deep inside a primitive (a bad type assertion, say) is
// turned into a proper TypeMismatch instead of crashing the host.
func (in *Interpreter) Evaluate(expr value.Value) (result value.Value, err error) {
	k := &value.Continuation{}
	env := in.Global
	exp := expr
	inPhaseA := true

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = wrap(newError(KindTypeMismatch, "internal error: %v", r), k)
		}
	}()

	for {
		if inPhaseA {
			next, nenv, toB, stepErr := in.evalStep(exp, env, k)
			if stepErr != nil {
				return nil, wrap(stepErr, k)
			}
			exp, env = next, nenv
			inPhaseA = !toB
			continue
		}
		if len(k.Steps) == 0 {
			return exp, nil
		}
		next, nenv, toA, stepErr := in.contStep(exp, env, k)
		if stepErr != nil {
			return nil, wrap(stepErr, k)
		}
		exp, env = next, nenv
		inPhaseA = toA
	}
}

// evalStep is Phase A: inspect exp and either produce the value to hand
// to Phase B (toB=true) or a new exp/env pair to keep dispatching
// (toB=false), per spec.md's per-head-symbol table.
func (in *Interpreter) evalStep(exp value.Value, env *value.Env, k *value.Continuation) (value.Value, *value.Env, bool, error) {
	switch e := exp.(type) {
	case *value.Cell:
		if sym, ok := e.Car.(*value.Symbol); ok {
			tail := e.Cdr
			switch sym {
			case in.sf.quote:
				return mustCar(tail), env, true, nil
			case in.sf.ifSym:
				c := tail.(*value.Cell)
				k.Push(value.Step{Op: value.OpThen, Val: c.Cdr})
				return c.Car, env, false, nil
			case in.sf.begin:
				return in.beginFirst(tail, k, env)
			case in.sf.lambda:
				c := tail.(*value.Cell)
				return &value.Closure{Params: c.Car, Body: c.Cdr, Env: env}, env, true, nil
			case in.sf.define:
				c := tail.(*value.Cell)
				if sig, ok := c.Car.(*value.Cell); ok {
					// (define (f . args) body...) => (define f (lambda args body...))
					v, ok := sig.Car.(*value.Symbol)
					if !ok {
						return nil, nil, false, typeMismatch("define", sig.Car)
					}
					lambdaExpr := cons(in.sf.lambda, cons(sig.Cdr, c.Cdr))
					k.Push(value.Step{Op: value.OpDefine, Val: v})
					return lambdaExpr, env, false, nil
				}
				v, ok := c.Car.(*value.Symbol)
				if !ok {
					return nil, nil, false, typeMismatch("define", c.Car)
				}
				k.Push(value.Step{Op: value.OpDefine, Val: v})
				return mustCar(c.Cdr), env, false, nil
			case in.sf.setBang:
				c := tail.(*value.Cell)
				v, ok := c.Car.(*value.Symbol)
				if !ok {
					return nil, nil, false, typeMismatch("set!", c.Car)
				}
				binding, err := env.LookFor(v)
				if err != nil {
					return nil, nil, false, unboundName(v)
				}
				k.Push(value.Step{Op: value.OpSetq, Binding: binding})
				return mustCar(c.Cdr), env, false, nil
			case in.sf.condSym:
				expanded, err := in.expandCond(tail)
				if err != nil {
					return nil, nil, false, err
				}
				return expanded, env, false, nil
			case in.sf.andSym:
				expanded, err := in.expandAnd(tail)
				if err != nil {
					return nil, nil, false, err
				}
				return expanded, env, false, nil
			case in.sf.orSym:
				expanded, err := in.expandOr(tail)
				if err != nil {
					return nil, nil, false, err
				}
				return expanded, env, false, nil
			case in.sf.letSym:
				expanded, err := in.expandLet(tail)
				if err != nil {
					return nil, nil, false, err
				}
				return expanded, env, false, nil
			}
		}
		// procedure call: push APPLY with the argument expressions, then
		// dispatch the operator expression itself through Phase A.
		k.Push(value.Step{Op: value.OpApply, Val: e.Cdr})
		return e.Car, env, false, nil

	case *value.Symbol:
		binding, err := env.LookFor(e)
		if err != nil {
			return nil, nil, false, unboundName(e)
		}
		return binding.Val, env, true, nil

	default:
		return exp, env, true, nil
	}
}

func (in *Interpreter) beginFirst(body value.Value, k *value.Continuation, env *value.Env) (value.Value, *value.Env, bool, error) {
	c, ok := body.(*value.Cell)
	if !ok {
		return nil, nil, false, typeMismatch("begin", body)
	}
	if _, restEmpty := c.Cdr.(value.Null); !restEmpty {
		k.Push(value.Step{Op: value.OpBegin, Val: c.Cdr})
	}
	return c.Car, env, false, nil
}

// contStep is Phase B: pop one continuation step and act on it per the
// nine-operator table. Callers have already checked the stack is
// non-empty.
func (in *Interpreter) contStep(exp value.Value, env *value.Env, k *value.Continuation) (value.Value, *value.Env, bool, error) {
	step, _ := k.Pop()
	switch step.Op {
	case value.OpThen:
		branches := step.Val.(*value.Cell)
		if b, isFalse := exp.(value.Bool); isFalse && !bool(b) {
			if _, noElse := branches.Cdr.(value.Null); noElse {
				return value.None, env, false, nil
			}
			return branches.Cdr.(*value.Cell).Car, env, true, nil
		}
		return branches.Car, env, true, nil

	case value.OpBegin:
		c := step.Val.(*value.Cell)
		if _, restEmpty := c.Cdr.(value.Null); !restEmpty {
			k.Push(value.Step{Op: value.OpBegin, Val: c.Cdr})
		}
		return c.Car, env, true, nil

	case value.OpDefine:
		env.Define(step.Val.(*value.Symbol), exp)
		return value.None, env, false, nil

	case value.OpSetq:
		step.Binding.Set(exp)
		return value.None, env, false, nil

	case value.OpApply:
		return in.applyArgs(exp, step.Val, k, env)

	case value.OpConsArgs:
		list := value.NewCell(exp, step.Val)
		next, ok := k.Pop()
		if !ok {
			return nil, nil, false, newError(KindNotAFunction, "bug: empty continuation after CONS_ARGS")
		}
		switch next.Op {
		case value.OpEvalArg:
			k.Push(value.Step{Op: value.OpConsArgs, Val: list})
			return next.Val, env, true, nil
		case value.OpApplyFun:
			res, nenv, err := in.applyFunction(next.Val, reverseList(list), k, env)
			if err != nil {
				return nil, nil, false, err
			}
			return res, nenv, false, nil
		default:
			return nil, nil, false, newError(KindNotAFunction, "bug: malformed argument-evaluation steps")
		}

	case value.OpRestoreEnv:
		return exp, step.SavedEnv, false, nil
	}
	return nil, nil, false, newError(KindNotAFunction, "bug: unknown continuation step")
}

// applyArgs handles the APPLY step's own fan-out: no args applies
// immediately and the result continues straight through Phase B; one or
// more args schedules their left-to-right evaluation (Phase A) before
// applyFunction ever runs.
func (in *Interpreter) applyArgs(fn value.Value, args value.Value, k *value.Continuation, env *value.Env) (value.Value, *value.Env, bool, error) {
	if _, empty := args.(value.Null); empty {
		res, nenv, err := in.applyFunction(fn, value.Nil, k, env)
		if err != nil {
			return nil, nil, false, err
		}
		return res, nenv, false, nil
	}
	argsCell, ok := args.(*value.Cell)
	if !ok {
		return nil, nil, false, improperList(args)
	}
	k.Push(value.Step{Op: value.OpApplyFun, Val: fn})

	var rest []value.Value
	for tail := argsCell.Cdr; ; {
		c, ok := tail.(*value.Cell)
		if !ok {
			if _, isNull := tail.(value.Null); !isNull {
				return nil, nil, false, improperList(args)
			}
			break
		}
		rest = append(rest, c.Car)
		tail = c.Cdr
	}
	for i := len(rest) - 1; i >= 0; i-- {
		k.Push(value.Step{Op: value.OpEvalArg, Val: rest[i]})
	}
	k.Push(value.Step{Op: value.OpConsArgs, Val: value.Nil})
	return argsCell.Car, env, true, nil
}

func mustCar(v value.Value) value.Value {
	if c, ok := v.(*value.Cell); ok {
		return c.Car
	}
	return value.Nil
}

func reverseList(v value.Value) value.Value {
	result := value.Value(value.Nil)
	for {
		c, ok := v.(*value.Cell)
		if !ok {
			return result
		}
		result = value.NewCell(c.Car, result)
		v = c.Cdr
	}
}
