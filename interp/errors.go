package interp

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/pkelchte/goscheme/value"
)

// Kind names one of the seven error kinds spec.md's error-handling
// design distinguishes.
type Kind int

const (
	KindUnboundName Kind = iota
	KindArityMismatch
	KindNotAFunction
	KindTypeMismatch
	KindImproperList
	KindReaderError
	KindUserError
)

func (k Kind) String() string {
	switch k {
	case KindUnboundName:
		return "UnboundName"
	case KindArityMismatch:
		return "ArityMismatch"
	case KindNotAFunction:
		return "NotAFunction"
	case KindTypeMismatch:
		return "TypeMismatch"
	case KindImproperList:
		return "ImproperList"
	case KindReaderError:
		return "ReaderError"
	case KindUserError:
		return "UserError"
	default:
		return "Error"
	}
}

// SchemeError is every error the evaluator itself raises; Kind lets a
// host (or a test) classify one without parsing the message.
type SchemeError struct {
	Kind Kind
	msg  string
}

func (e *SchemeError) Error() string { return e.msg }

func newError(kind Kind, format string, args ...interface{}) error {
	return errors.WithStack(&SchemeError{Kind: kind, msg: fmt.Sprintf(format, args...)})
}

func unboundName(sym *value.Symbol) error {
	return newError(KindUnboundName, "unbound name: %s", sym.Name)
}

func arityMismatch(who string) error {
	return newError(KindArityMismatch, "arity mismatch: %s", who)
}

func notAFunction(v value.Value) error {
	return newError(KindNotAFunction, "not a function: %s", value.Stringify(v, true))
}

func typeMismatch(where string, v value.Value) error {
	return newError(KindTypeMismatch, "%s: wrong type: %s", where, value.Stringify(v, true))
}

func improperList(v value.Value) error {
	return newError(KindImproperList, "improper list: %s", value.Stringify(v, true))
}

// userError builds the exact text spec.md §6 mandates for the `error`
// primitive: "Error: <reason(display form)>: <arg(quoted form)>". It is
// never wrapped with a continuation trace; every other kind is.
func userError(reason, arg value.Value) error {
	msg := fmt.Sprintf("Error: %s: %s", value.Stringify(reason, false), value.Stringify(arg, true))
	return &SchemeError{Kind: KindUserError, msg: msg}
}

// wrap attaches the current continuation's printed form as a pseudo
// stack trace to every error kind except UserError, which propagates
// verbatim per spec.md §7's open question.
func wrap(err error, k *value.Continuation) error {
	if err == nil {
		return nil
	}
	var se *SchemeError
	if errors.As(err, &se) && se.Kind == KindUserError {
		return err
	}
	return errors.Wrap(err, value.Stringify(k, true))
}
