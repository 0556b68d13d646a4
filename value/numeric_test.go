package value

import (
	"math"
	"math/big"
	"testing"
)

func TestAddPromotion(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Value
		wantKind int
	}{
		{"int+int stays int", Int(2), Int(3), 0},
		{"int overflow promotes to bigint", Int(math.MaxInt32), Int(1), 1},
		{"bigint demotes back to int", NewBigInt(big.NewInt(1)), Int(1), 0},
		{"float infects the result", Int(1), Float(2.5), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Add(c.a, c.b)
			if err != nil {
				t.Fatalf("Add: %v", err)
			}
			if k := numKind(got); k != c.wantKind {
				t.Errorf("kind = %d, want %d (value %s)", k, c.wantKind, Stringify(got, true))
			}
		})
	}
}

func TestAddExactBoundary(t *testing.T) {
	// Testable property: Add(a,b) is Int iff a+b fits in 32 bits.
	max := Int(math.MaxInt32)
	got, err := Add(max, Int(1))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(*BigInt); !ok {
		t.Errorf("expected overflow to promote to BigInt, got %T", got)
	}
	got2, err := Add(max, Int(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got2.(Int); !ok {
		t.Errorf("expected non-overflowing add to stay Int, got %T", got2)
	}
}

func TestMultiplyOverflow(t *testing.T) {
	big1 := Int(1 << 20)
	got, err := Multiply(big1, big1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := got.(*BigInt); !ok {
		t.Errorf("expected (1<<20)^2 to overflow to BigInt, got %T = %s", got, Stringify(got, true))
	}
}

func TestCompareAcrossKinds(t *testing.T) {
	cases := []struct {
		a, b Value
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Float(3.5), Int(3), 1},
		{NewBigInt(big.NewInt(1 << 40)), Int(1), 1},
	}
	for _, c := range cases {
		got, err := Compare(c.a, c.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Errorf("Compare(%s,%s) = %d, want %d", Stringify(c.a, true), Stringify(c.b, true), got, c.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		tok  string
		kind int
		ok   bool
	}{
		{"42", 0, true},
		{"-7", 0, true},
		{"99999999999999999999999999", 1, true},
		{"3.14", 2, true},
		{"abc", -1, false},
	}
	for _, c := range cases {
		v, ok := ParseNumber(c.tok)
		if ok != c.ok {
			t.Fatalf("ParseNumber(%q) ok = %v, want %v", c.tok, ok, c.ok)
		}
		if ok && numKind(v) != c.kind {
			t.Errorf("ParseNumber(%q) kind = %d, want %d", c.tok, numKind(v), c.kind)
		}
	}
}
