package interp

import "github.com/pkelchte/goscheme/value"

// applyFunction unwraps the call/cc and apply sentinel tags, then
// dispatches the real function value. It returns the frame the caller
// should continue in: for a closure this is the freshly built call
// frame (body evaluation starts at the next Phase B step), for
// everything else it is env unchanged.
func (in *Interpreter) applyFunction(fn value.Value, args value.Value, k *value.Continuation, env *value.Env) (value.Value, *value.Env, error) {
	for {
		switch fn {
		case value.CallCCTag:
			pushRestoreEnv(k, env)
			argsCell, ok := args.(*value.Cell)
			if !ok {
				return nil, nil, arityMismatch("call/cc")
			}
			fn = argsCell.Car
			args = value.NewCell(k.Snapshot(), value.Nil)
			continue
		case value.ApplyTag:
			argsCell, ok := args.(*value.Cell)
			if !ok {
				return nil, nil, arityMismatch("apply")
			}
			restCell, ok := argsCell.Cdr.(*value.Cell)
			if !ok {
				return nil, nil, arityMismatch("apply")
			}
			fn = argsCell.Car
			args = restCell.Car
			continue
		}
		break
	}

	switch f := fn.(type) {
	case *value.Intrinsic:
		argv, err := toSlice(args)
		if err != nil {
			return nil, nil, err
		}
		if f.Arity >= 0 && len(argv) != f.Arity {
			return nil, nil, arityMismatch(f.Name)
		}
		res, err := f.Fn(argv)
		if err != nil {
			return nil, nil, err
		}
		return res, env, nil

	case *value.Closure:
		pushRestoreEnv(k, env)
		k.Push(value.Step{Op: value.OpBegin, Val: f.Body})
		frameEnv, err := value.PrependDefs(f.Env, f.Params, args)
		if err != nil {
			return nil, nil, err
		}
		return value.None, value.NewFrame(frameEnv), nil

	case *value.Continuation:
		k.Replace(f)
		argsCell, ok := args.(*value.Cell)
		if !ok {
			return nil, nil, arityMismatch("continuation")
		}
		return argsCell.Car, env, nil

	default:
		return nil, nil, notAFunction(fn)
	}
}

// pushRestoreEnv implements the tail-call discipline: a RESTORE_ENV is
// pushed only when the top of the stack is not already one, which is
// what collapses an arbitrary tail-call chain to bounded stack growth.
func pushRestoreEnv(k *value.Continuation, env *value.Env) {
	if !k.TopIsRestoreEnv() {
		k.Push(value.Step{Op: value.OpRestoreEnv, SavedEnv: env})
	}
}

// toSlice converts a proper argument list into a Go slice, failing with
// ImproperList if the spine does not terminate in Null.
func toSlice(v value.Value) ([]value.Value, error) {
	var out []value.Value
	for {
		switch x := v.(type) {
		case value.Null:
			return out, nil
		case *value.Cell:
			out = append(out, x.Car)
			v = x.Cdr
		default:
			return nil, improperList(v)
		}
	}
}
