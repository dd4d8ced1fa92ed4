package lisp

var quoteSym = Intern("quote")
var trueSymName = "#t"
var falseSymName = "#f"

// Reader builds value-model nodes from a Tokenizer's stream, implementing
// the grammar of §4.2: atoms, parenthesized lists (proper and dotted),
// and the quote shorthand.
type Reader struct {
	tok *Tokenizer
}

// NewReader constructs a reader over src.
func NewReader(src string) *Reader {
	return &Reader{tok: NewTokenizer(src)}
}

// AtEnd reports whether no input remains to be read.
func (r *Reader) AtEnd() (bool, error) {
	return r.tok.AtEnd()
}

// ReadExpr consumes one complete expression and returns its root value
// node.
func (r *Reader) ReadExpr() (Value, error) {
	atEnd, err := r.tok.AtEnd()
	if err != nil {
		return nil, err
	}
	if atEnd {
		return nil, newSyntaxError("", "unexpected end of input")
	}
	tok, err := r.tok.Peek()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case TokOpen:
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		return r.readListTail()
	case TokClose:
		return nil, newSyntaxError("", "unexpected close bracket")
	case TokDot:
		return nil, newSyntaxError("", "unexpected dot outside of a list")
	case TokQuote:
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		inner, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}
		return List(quoteSym, inner), nil
	case TokInt:
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		return Int(tok.Int), nil
	case TokSymbol:
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		switch tok.Name {
		case trueSymName:
			return Bool(true), nil
		case falseSymName:
			return Bool(false), nil
		default:
			return Intern(tok.Name), nil
		}
	default:
		return nil, newSyntaxError("", "unrecognized token")
	}
}

// readListTail reads the elements of a list after its opening bracket
// has already been consumed.
func (r *Reader) readListTail() (Value, error) {
	atEnd, err := r.tok.AtEnd()
	if err != nil {
		return nil, err
	}
	if atEnd {
		return nil, newSyntaxError("", "end of input before list was closed")
	}
	tok, err := r.tok.Peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokClose {
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if tok.Kind == TokDot {
		return nil, newSyntaxError("", "dot with no preceding element")
	}
	head, err := r.ReadExpr()
	if err != nil {
		return nil, err
	}
	atEnd, err = r.tok.AtEnd()
	if err != nil {
		return nil, err
	}
	if atEnd {
		return nil, newSyntaxError("", "end of input before list was closed")
	}
	next, err := r.tok.Peek()
	if err != nil {
		return nil, err
	}
	if next.Kind == TokDot {
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		tail, err := r.ReadExpr()
		if err != nil {
			return nil, err
		}
		atEnd, err = r.tok.AtEnd()
		if err != nil {
			return nil, err
		}
		if atEnd {
			return nil, newSyntaxError("", "end of input before list was closed")
		}
		closeTok, err := r.tok.Peek()
		if err != nil {
			return nil, err
		}
		if closeTok.Kind != TokClose {
			return nil, newSyntaxError("", "more than one element follows a dot")
		}
		if err := r.tok.Next(); err != nil {
			return nil, err
		}
		return Cons(head, tail), nil
	}
	tail, err := r.readListTail()
	if err != nil {
		return nil, err
	}
	return Cons(head, tail), nil
}
