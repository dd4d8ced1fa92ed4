package lisp

import "testing"

func mustRead(t *testing.T, src string) Value {
	t.Helper()
	r := NewReader(src)
	v, err := r.ReadExpr()
	if err != nil {
		t.Fatalf("ReadExpr(%q): %v", src, err)
	}
	return v
}

func TestReaderRoundTripsPrintedForm(t *testing.T) {
	cases := []string{
		"42", "-7", "#t", "#f", "foo", "()",
		"(1 2 3)", "(1 . 2)", "(1 2 . 3)", "(a (b c) d)",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			v := mustRead(t, src)
			if got := Str(v); got != src {
				t.Errorf("Str(ReadExpr(%q)) = %q, want %q", src, got, src)
			}
		})
	}
}

func TestReaderQuoteShorthand(t *testing.T) {
	v := mustRead(t, "'(1 2)")
	p, ok := AsPair(v)
	if !ok {
		t.Fatalf("quoted form is not a pair: %#v", v)
	}
	sym, ok := p.Head.(*Sym)
	if !ok || sym.Name != "quote" {
		t.Fatalf("head of quoted form = %#v, want symbol quote", p.Head)
	}
	if got := Str(v); got != "(quote (1 2))" {
		t.Errorf("Str(quoted) = %q, want (quote (1 2))", got)
	}
}

func TestReaderErrors(t *testing.T) {
	cases := []string{
		"",
		")",
		"(1 2",
		"(. 1)",
		"(1 . 2 3)",
		"(1 .)",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			r := NewReader(src)
			if _, err := r.ReadExpr(); err == nil {
				t.Errorf("ReadExpr(%q) succeeded, want a syntax error", src)
			}
		})
	}
}

func TestReaderAtEndDetectsTrailingInput(t *testing.T) {
	r := NewReader("1 2")
	if _, err := r.ReadExpr(); err != nil {
		t.Fatalf("ReadExpr: %v", err)
	}
	atEnd, err := r.AtEnd()
	if err != nil {
		t.Fatalf("AtEnd: %v", err)
	}
	if atEnd {
		t.Error("AtEnd should be false with trailing input remaining")
	}
}
