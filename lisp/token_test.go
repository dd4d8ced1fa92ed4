package lisp

import "testing"

func collectTokens(t *testing.T, src string) []Token {
	t.Helper()
	tok := NewTokenizer(src)
	var out []Token
	for {
		atEnd, err := tok.AtEnd()
		if err != nil {
			t.Fatalf("AtEnd: %v", err)
		}
		if atEnd {
			return out
		}
		tk, err := tok.Peek()
		if err != nil {
			t.Fatalf("Peek: %v", err)
		}
		out = append(out, tk)
		if err := tok.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
}

func TestTokenizeAtoms(t *testing.T) {
	toks := collectTokens(t, "(+ -3 4 foo? <= #t)")
	want := []TokenKind{TokOpen, TokSymbol, TokInt, TokInt, TokSymbol, TokSymbol, TokSymbol, TokClose}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v (%+v)", i, toks[i].Kind, k, toks[i])
		}
	}
	if toks[2].Int != -3 {
		t.Errorf("token 2 int = %d, want -3", toks[2].Int)
	}
}

func TestTokenizeBareSign(t *testing.T) {
	toks := collectTokens(t, "(+ - * /)")
	for i, want := range []TokenKind{TokOpen, TokSymbol, TokSymbol, TokSymbol, TokSymbol, TokClose} {
		if toks[i].Kind != want {
			t.Errorf("token %d kind = %v, want %v", i, toks[i].Kind, want)
		}
	}
	if toks[2].Name != "-" {
		t.Errorf("bare minus lexed as %q, want \"-\"", toks[2].Name)
	}
}

func TestTokenizeDotAndQuote(t *testing.T) {
	toks := collectTokens(t, "'(1 . 2)")
	want := []TokenKind{TokQuote, TokOpen, TokInt, TokDot, TokInt, TokClose}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestTokenizeInvalidChar(t *testing.T) {
	tok := NewTokenizer("@")
	_, err := tok.Peek()
	if err == nil {
		t.Fatal("expected a syntax error for an illegal start character")
	}
}

func TestTokenizeEmptyIsAtEnd(t *testing.T) {
	tok := NewTokenizer("   ")
	atEnd, err := tok.AtEnd()
	if err != nil {
		t.Fatalf("AtEnd: %v", err)
	}
	if !atEnd {
		t.Error("whitespace-only input should be at end")
	}
}
