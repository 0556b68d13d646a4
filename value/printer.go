package value

import (
	"strconv"
	"strings"
)

// Stringify renders v as Scheme source text. When quoteStrings is false
// (display semantics) string values are rendered bare; read-expression's
// round trip and write both pass true.
func Stringify(v Value, quoteStrings bool) string {
	var b strings.Builder
	stringify(&b, v, quoteStrings)
	return b.String()
}

func stringify(b *strings.Builder, v Value, quoteStrings bool) {
	switch x := v.(type) {
	case Bool:
		if x {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Null:
		b.WriteString("()")
	case Int:
		b.WriteString(strconv.FormatInt(int64(x), 10))
	case *BigInt:
		b.WriteString(x.Big().Text(10))
	case Float:
		b.WriteString(formatFloat(float64(x)))
	case Str:
		if quoteStrings {
			b.WriteByte('"')
			b.WriteString(string(x))
			b.WriteByte('"')
		} else {
			b.WriteString(string(x))
		}
	case *Symbol:
		b.WriteString(x.Name)
	case *Cell:
		stringifyCell(b, x, quoteStrings)
	case *Closure:
		b.WriteString("#<closure:")
		stringify(b, x.Params, quoteStrings)
		b.WriteByte('>')
	case *Intrinsic:
		b.WriteString("#<intrinsic:" + x.Name + ">")
	case *Continuation:
		b.WriteString("#<continuation:")
		for i, s := range x.Steps {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.Op.String())
		}
		b.WriteByte('>')
	case *Env:
		stringifyEnv(b, x)
	case *sentinel:
		b.WriteString(x.String())
	default:
		b.WriteString("#<unknown>")
	}
}

func stringifyCell(b *strings.Builder, c *Cell, quoteStrings bool) {
	b.WriteByte('(')
	stringify(b, c.Car, quoteStrings)
	tail := c.Cdr
	for {
		switch t := tail.(type) {
		case Null:
			b.WriteByte(')')
			return
		case *Cell:
			b.WriteByte(' ')
			stringify(b, t.Car, quoteStrings)
			tail = t.Cdr
		default:
			b.WriteString(" . ")
			stringify(b, t, quoteStrings)
			b.WriteByte(')')
			return
		}
	}
}

// stringifyEnv is diagnostic-only: names head-outward, the global
// environment collapses to GlobalEnv, frame markers print as |. The
// global environment is the outermost frame of the chain, since every
// call frame is built on top of it.
func stringifyEnv(b *strings.Builder, e *Env) {
	var global *Env
	for n := e; n != nil; n = n.Next {
		if n.Sym == FrameMarker {
			global = n
		}
	}
	b.WriteString("#<env")
	for n := e; n != nil; n = n.Next {
		b.WriteByte(' ')
		switch {
		case n == global:
			b.WriteString("GlobalEnv>")
			return
		case n.Sym == FrameMarker:
			b.WriteByte('|')
		default:
			b.WriteString(n.Sym.Name)
		}
	}
	b.WriteByte('>')
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !strings.Contains(s, "Inf") && !strings.Contains(s, "NaN") {
		s += "."
	}
	return s
}
