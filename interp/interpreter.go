// Package interp implements the trampolined evaluator: the expression
// dispatch / continuation dispatch state machine, first-class
// continuations via call/cc, function application, and the primitive
// procedure table the global environment ships with.
package interp

import (
	"io"

	"github.com/pkelchte/goscheme/reader"
	"github.com/pkelchte/goscheme/value"
)

// Interpreter is one isolated instance of the language: its own symbol
// table, its own global environment, its own reader. Two Interpreters
// never share a symbol, so a *value.Symbol read by one can never be
// pointer-equal to one read by the other — this is what lets several
// Interpreters coexist in one process instead of fighting over global
// state, per spec.md's design note on isolating the symbol table.
type Interpreter struct {
	Table  *value.Table
	Global *value.Env
	Reader *reader.Reader
	Out    io.Writer
	sf     specialForms
}

// New builds an Interpreter whose read primitive (and whose
// ReadExpression method) pulls lines from src, and whose display/write/
// newline primitives write to out.
func New(src reader.LineSource, out io.Writer) *Interpreter {
	t := value.NewTable()
	in := &Interpreter{
		Table:  t,
		Global: value.NewFrame(nil),
		Reader: reader.New(t, src),
		Out:    out,
		sf:     newSpecialForms(t),
	}
	installPrimitives(in)
	return in
}

// GlobalEnv returns the environment new top-level expressions evaluate
// in.
func (in *Interpreter) GlobalEnv() *value.Env { return in.Global }

// ReadExpression reads one expression from the interpreter's line
// source, per spec.md §6's read_expression(prompt1, prompt2) contract.
func (in *Interpreter) ReadExpression(prompt1, prompt2 string) (value.Value, error) {
	return in.Reader.ReadExpression(prompt1, prompt2)
}

// SetSource swaps the line source new expressions are read from,
// keeping the same symbol table (so anything already read stays
// pointer-comparable with what is read next). The CLI uses this to hand
// off from "load this file" to "now read from the terminal" without
// losing definitions the file just installed.
func (in *Interpreter) SetSource(src reader.LineSource) {
	in.Reader = reader.New(in.Table, src)
}
