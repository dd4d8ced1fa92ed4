package lisp

import "testing"

func TestScopeDefineLookup(t *testing.T) {
	root := NewScope(nil)
	x := Intern("x")
	root.Define(x, Int(1))
	v, err := root.Lookup(x)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if v != Int(1) {
		t.Errorf("Lookup(x) = %v, want 1", v)
	}
}

func TestScopeLookupWalksChain(t *testing.T) {
	root := NewScope(nil)
	x := Intern("walks-chain-x")
	root.Define(x, Int(5))
	child := NewScope(root)
	v, err := child.Lookup(x)
	if err != nil {
		t.Fatalf("Lookup from child: %v", err)
	}
	if v != Int(5) {
		t.Errorf("Lookup(x) from child = %v, want 5", v)
	}
}

func TestScopeDefineShadowsOnlyInnermost(t *testing.T) {
	root := NewScope(nil)
	x := Intern("shadow-x")
	root.Define(x, Int(1))
	child := NewScope(root)
	child.Define(x, Int(2))

	v, _ := child.Lookup(x)
	if v != Int(2) {
		t.Errorf("child Lookup(x) = %v, want 2", v)
	}
	v, _ = root.Lookup(x)
	if v != Int(1) {
		t.Errorf("root Lookup(x) = %v, want 1 (untouched by child Define)", v)
	}
}

func TestScopeAssignRebindsNearestFrame(t *testing.T) {
	root := NewScope(nil)
	x := Intern("assign-x")
	root.Define(x, Int(1))
	child := NewScope(root)

	if err := child.Assign(x, Int(9)); err != nil {
		t.Fatalf("Assign: %v", err)
	}
	v, _ := root.Lookup(x)
	if v != Int(9) {
		t.Errorf("root Lookup(x) after child.Assign = %v, want 9", v)
	}
}

func TestScopeLookupUnboundIsNameError(t *testing.T) {
	root := NewScope(nil)
	_, err := root.Lookup(Intern("never-defined"))
	assertNameError(t, err)
}

func TestScopeAssignUnboundIsNameError(t *testing.T) {
	root := NewScope(nil)
	err := root.Assign(Intern("also-never-defined"), Int(0))
	assertNameError(t, err)
}

func assertNameError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected a name error, got nil")
	}
	le, ok := err.(*LispError)
	if !ok || le.Kind != ErrName {
		t.Fatalf("err = %v, want a name error", err)
	}
}
