package value

import "testing"

func TestDefineInsertsAfterFrameMarker(t *testing.T) {
	table := NewTable()
	x := table.Intern("x")
	frame := NewFrame(nil)
	frame.Define(x, Int(1))

	binding, err := frame.LookFor(x)
	if err != nil {
		t.Fatalf("LookFor(x): %v", err)
	}
	if binding.Val != Value(Int(1)) {
		t.Errorf("x = %v, want 1", binding.Val)
	}
	if frame.Sym != FrameMarker {
		t.Fatalf("frame itself must remain the marker node")
	}
	if frame.Next.Sym != x {
		t.Errorf("Define must insert immediately after the frame marker")
	}
}

func TestRedefineShadowsOlderBinding(t *testing.T) {
	table := NewTable()
	x := table.Intern("x")
	frame := NewFrame(nil)
	frame.Define(x, Int(1))
	frame.Define(x, Int(2))

	binding, err := frame.LookFor(x)
	if err != nil {
		t.Fatal(err)
	}
	if binding.Val != Value(Int(2)) {
		t.Errorf("LookFor should find the most recent define first, got %v", binding.Val)
	}
}

func TestLookForUnbound(t *testing.T) {
	table := NewTable()
	frame := NewFrame(nil)
	if _, err := frame.LookFor(table.Intern("nope")); err == nil {
		t.Error("expected an unbound-name error")
	}
}

func TestPrependDefsFixedArity(t *testing.T) {
	table := NewTable()
	a, b := table.Intern("a"), table.Intern("b")
	params := NewCell(a, NewCell(b, Nil))
	args := NewCell(Int(1), NewCell(Int(2), Nil))

	chain, err := PrependDefs(nil, params, args)
	if err != nil {
		t.Fatal(err)
	}
	if chain.Sym != a || chain.Val != Value(Int(1)) {
		t.Errorf("first binding should be a=1, got %s=%v", chain.Sym.Name, chain.Val)
	}
	if chain.Next.Sym != b || chain.Next.Val != Value(Int(2)) {
		t.Errorf("second binding should be b=2, got %s=%v", chain.Next.Sym.Name, chain.Next.Val)
	}
}

func TestPrependDefsVariadic(t *testing.T) {
	table := NewTable()
	rest := table.Intern("rest")
	args := NewCell(Int(1), NewCell(Int(2), Nil))

	chain, err := PrependDefs(nil, rest, args)
	if err != nil {
		t.Fatal(err)
	}
	if chain.Sym != rest {
		t.Fatal("variadic param should bind the whole list")
	}
	if Stringify(chain.Val, true) != "(1 2)" {
		t.Errorf("rest = %s, want (1 2)", Stringify(chain.Val, true))
	}
}

func TestPrependDefsArityMismatch(t *testing.T) {
	table := NewTable()
	a, b := table.Intern("a"), table.Intern("b")
	params := NewCell(a, NewCell(b, Nil))
	args := NewCell(Int(1), Nil)

	if _, err := PrependDefs(nil, params, args); err == nil {
		t.Error("expected too-few-arguments error")
	}
}
