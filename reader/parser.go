package reader

import (
	"strings"

	"github.com/pkelchte/goscheme/value"
)

// LineSource supplies one line of input at a time, printing prompt first.
// Implementations block until a line is available; NextLine returns
// ok=false at end-of-stream. This is the "blocking host callback" the
// core reads through instead of doing any I/O itself.
type LineSource interface {
	NextLine(prompt string) (line string, ok bool)
}

// ReaderError covers both malformed-input cases spec.md assigns to the
// reader: an unbalanced close paren and running out of input before an
// expression (or a dotted tail) is complete.
type ReaderError struct{ Msg string }

func (e *ReaderError) Error() string { return e.Msg }

// Reader parses S-expressions out of a LineSource, one per
// ReadExpression call, pulling additional lines on demand.
type Reader struct {
	table      *value.Table
	src        LineSource
	tokens     []string
	contPrompt string
}

// New builds a Reader that interns symbols into table and pulls lines
// from src.
func New(table *value.Table, src LineSource) *Reader {
	return &Reader{table: table, src: src}
}

func (r *Reader) fill(prompt string) bool {
	line, ok := r.src.NextLine(prompt)
	if !ok {
		return false
	}
	r.tokens = append(r.tokens, tokenizeLine(line)...)
	return true
}

// ReadExpression reads and parses one top-level expression, prompting
// with prompt1 for the first line it needs and prompt2 for every line it
// needs thereafter (continuation lines of a still-incomplete
// expression). It returns value.EOF, nil when the host signals
// end-of-stream before any token of a new expression arrives.
func (r *Reader) ReadExpression(prompt1, prompt2 string) (value.Value, error) {
	for len(r.tokens) == 0 {
		if !r.fill(prompt1) {
			return value.EOF, nil
		}
	}
	r.contPrompt = prompt2
	return r.parseExpr()
}

func (r *Reader) need() error {
	for len(r.tokens) == 0 {
		if !r.fill(r.contPrompt) {
			return &ReaderError{Msg: "unexpected EOF while reading"}
		}
	}
	return nil
}

func (r *Reader) pop() (string, error) {
	if err := r.need(); err != nil {
		return "", err
	}
	t := r.tokens[0]
	r.tokens = r.tokens[1:]
	return t, nil
}

func (r *Reader) peek() (string, error) {
	if err := r.need(); err != nil {
		return "", err
	}
	return r.tokens[0], nil
}

func (r *Reader) parseExpr() (value.Value, error) {
	tok, err := r.pop()
	if err != nil {
		return nil, err
	}
	switch tok {
	case "(":
		return r.parseList()
	case ")":
		return nil, &ReaderError{Msg: "unexpected )"}
	case "'":
		e, err := r.parseExpr()
		if err != nil {
			return nil, err
		}
		return value.NewCell(r.table.Intern("quote"), value.NewCell(e, value.Nil)), nil
	case "#t":
		return value.Bool(true), nil
	case "#f":
		return value.Bool(false), nil
	default:
		if strings.HasPrefix(tok, `"`) {
			return value.Str(tok[1:]), nil
		}
		if n, ok := value.ParseNumber(tok); ok {
			return n, nil
		}
		return r.table.Intern(tok), nil
	}
}

// parseList reads elements until a matching ')', supporting a dotted
// tail introduced by a lone '.' token.
func (r *Reader) parseList() (value.Value, error) {
	var elems []value.Value
	tail := value.Value(value.Nil)
	for {
		tok, err := r.peek()
		if err != nil {
			return nil, err
		}
		if tok == ")" {
			r.pop() //nolint:errcheck // just peeked it
			break
		}
		if tok == "." {
			r.pop() //nolint:errcheck
			t, err := r.parseExpr()
			if err != nil {
				return nil, err
			}
			tail = t
			closing, err := r.pop()
			if err != nil {
				return nil, err
			}
			if closing != ")" {
				return nil, &ReaderError{Msg: "malformed dotted list, expected )"}
			}
			break
		}
		e, err := r.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = value.NewCell(elems[i], result)
	}
	return result, nil
}

// StringLineSource serves lines from an in-memory slice, used by the
// file-loading CLI mode and by tests; it never prints prompts.
type StringLineSource struct {
	Lines []string
	pos   int
}

func (s *StringLineSource) NextLine(string) (string, bool) {
	if s.pos >= len(s.Lines) {
		return "", false
	}
	line := s.Lines[s.pos]
	s.pos++
	return line, true
}
