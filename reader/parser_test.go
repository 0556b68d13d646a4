package reader

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pkelchte/goscheme/value"
)

func valueEqual() cmp.Option {
	return cmp.Comparer(func(a, b value.Value) bool {
		return value.Stringify(a, true) == value.Stringify(b, true)
	})
}

func readOne(t *testing.T, lines ...string) value.Value {
	t.Helper()
	r := New(value.NewTable(), &StringLineSource{Lines: lines})
	v, err := r.ReadExpression("", "")
	if err != nil {
		t.Fatalf("ReadExpression: %v", err)
	}
	return v
}

func TestReadExpressionRoundTrip(t *testing.T) {
	cases := []string{
		`(+ 5 6)`,
		`(cons (quote a) (cons (quote b) (quote c)))`,
		`(list 1 2 3)`,
		`(lambda (x y) (+ x y))`,
		`"a string with ; not a comment"`,
		`3.14`,
		`#t`,
		`(a . b)`,
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			v := readOne(t, src)
			if got := value.Stringify(v, true); got != src {
				t.Errorf("round trip: read(%q) -> stringify = %q", src, got)
			}
		})
	}
}

func TestReadExpressionMultiline(t *testing.T) {
	v := readOne(t, "(+ 1", "   2)")
	want := readOne(t, "(+ 1 2)")
	if diff := cmp.Diff(want, v, valueEqual()); diff != "" {
		t.Errorf("multiline read mismatch (-want +got):\n%s", diff)
	}
}

func TestReadExpressionEOF(t *testing.T) {
	r := New(value.NewTable(), &StringLineSource{})
	v, err := r.ReadExpression("", "")
	if err != nil {
		t.Fatalf("ReadExpression: %v", err)
	}
	if v != value.EOF {
		t.Errorf("expected EOF at empty source, got %v", value.Stringify(v, true))
	}
}

func TestReadExpressionUnbalancedParen(t *testing.T) {
	r := New(value.NewTable(), &StringLineSource{Lines: []string{")"}})
	if _, err := r.ReadExpression("", ""); err == nil {
		t.Error("expected an error reading a lone )")
	}
}

func TestCommentAfterStringIsNotEatenByComment(t *testing.T) {
	v := readOne(t, `"has a ; inside" ; real comment`)
	if got := value.Stringify(v, true); got != `"has a ; inside"` {
		t.Errorf("got %q", got)
	}
}

func TestSymbolInterningAcrossReads(t *testing.T) {
	table := value.NewTable()
	r1 := New(table, &StringLineSource{Lines: []string{"foo"}})
	v1, _ := r1.ReadExpression("", "")
	r2 := New(table, &StringLineSource{Lines: []string{"foo"}})
	v2, _ := r2.ReadExpression("", "")
	if v1 != v2 {
		t.Errorf("same table should intern identical *Symbol for repeated reads of foo")
	}
}

func TestSymbolInterningIsolatedPerTable(t *testing.T) {
	r1 := New(value.NewTable(), &StringLineSource{Lines: []string{"foo"}})
	v1, _ := r1.ReadExpression("", "")
	r2 := New(value.NewTable(), &StringLineSource{Lines: []string{"foo"}})
	v2, _ := r2.ReadExpression("", "")
	if v1 == v2 {
		t.Errorf("two independent tables must never share a symbol pointer")
	}
}
