package lisp

import (
	"strconv"
	"strings"
)

// Str returns the printed form of v, per §6: decimal integers, #t/#f,
// symbol names verbatim, () for the empty list, space-separated list
// notation for proper lists, and dotted notation for improper ones.
// Builtins and lambdas have no mandated printed form; this implementation
// emits an opaque placeholder for them rather than erroring.
func Str(v Value) string {
	switch x := v.(type) {
	case nil:
		return "()"
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case Bool:
		if x {
			return "#t"
		}
		return "#f"
	case *Sym:
		return x.Name
	case *Pair:
		return "(" + strPairBody(x) + ")"
	case *Builtin:
		return "#<builtin " + x.Name + ">"
	case *Lambda:
		return "#<lambda>"
	default:
		return "#<unknown>"
	}
}

func strPairBody(p *Pair) string {
	var b strings.Builder
	b.WriteString(Str(p.Head))
	tail := p.Tail
	for {
		switch t := tail.(type) {
		case nil:
			return b.String()
		case *Pair:
			b.WriteByte(' ')
			b.WriteString(Str(t.Head))
			tail = t.Tail
		default:
			b.WriteString(" . ")
			b.WriteString(Str(tail))
			return b.String()
		}
	}
}
