package lisp

// builtinTable is the central dispatch table described in §4.4: each
// entry names an operator, declares whether it is Special (receives its
// argument subexpressions unevaluated) or Applicative (receives already-
// evaluated arguments), and supplies the Go function implementing it.
// This collapses the teacher's two parallel mechanisms — Subr for
// applicative built-ins and FSubr for special forms, dispatched from two
// different maps in scheme/scheme.go's Eval — into the one table the
// distilled spec's REDESIGN FLAGS calls for.
var builtinTable = []struct {
	name       string
	discipline Discipline
	fn         BuiltinFunc
}{
	{"quote", Special, biQuote},
	{"if", Special, biIf},
	{"define", Special, biDefine},
	{"set!", Special, biSet},
	{"lambda", Special, biLambda},
	{"and", Special, biAnd},
	{"or", Special, biOr},

	{"+", Applicative, biAdd},
	{"-", Applicative, biSub},
	{"*", Applicative, biMul},
	{"/", Applicative, biDiv},
	{"=", Applicative, biNumEq},
	{"<", Applicative, biLess},
	{">", Applicative, biGreater},
	{"<=", Applicative, biLessEq},
	{">=", Applicative, biGreaterEq},
	{"min", Applicative, biMin},
	{"max", Applicative, biMax},
	{"abs", Applicative, biAbs},

	{"number?", Applicative, biNumberP},
	{"boolean?", Applicative, biBooleanP},
	{"symbol?", Applicative, biSymbolP},
	{"pair?", Applicative, biPairP},
	{"null?", Applicative, biNullP},
	{"list?", Applicative, biListP},

	{"cons", Applicative, biCons},
	{"car", Applicative, biCar},
	{"cdr", Applicative, biCdr},
	{"list", Applicative, biList},
	{"list-ref", Applicative, biListRef},
	{"list-tail", Applicative, biListTail},
	{"set-car!", Applicative, biSetCar},
	{"set-cdr!", Applicative, biSetCdr},

	{"not", Applicative, biNot},
}

// builtinsFrame is built once, at package initialization.
var builtinsFrame = newBuiltinsFrame()

// GlobalScope returns the process-wide builtins frame that sits at the
// root of every program's scope chain, analogous to the teacher's
// MakeGlobalEnv but populated with this dialect's closed operator set
// rather than a full Scheme standard library.
func GlobalScope() *Scope {
	return builtinsFrame
}

func newBuiltinsFrame() *Scope {
	root := NewScope(nil)
	for _, b := range builtinTable {
		root.Define(Intern(b.name), &Builtin{Name: b.name, Discipline: b.discipline, Fn: b.fn})
	}
	return root
}

func requireArgc(op string, args []Value, n int) error {
	if len(args) != n {
		return newRuntimeError(op, "expected exactly %d argument(s), got %d", n, len(args))
	}
	return nil
}

func requireInt(op string, v Value) (Int, error) {
	n, ok := AsInt(v)
	if !ok {
		return 0, newRuntimeError(op, "expected an integer, got %s", Str(v))
	}
	return n, nil
}

// --- control / binding special forms --------------------------------

func biQuote(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("quote", args)
	if err != nil {
		return nil, err
	}
	if len(elems) != 1 {
		return nil, newSyntaxError("quote", "expected exactly 1 argument, got %d", len(elems))
	}
	return elems[0], nil
}

func biIf(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("if", args)
	if err != nil {
		return nil, err
	}
	if len(elems) != 2 && len(elems) != 3 {
		return nil, newSyntaxError("if", "expected 2 or 3 arguments, got %d", len(elems))
	}
	test, err := ev.Eval(elems[0], scope)
	if err != nil {
		return nil, err
	}
	if Truthy(test) {
		return ev.Eval(elems[1], scope)
	}
	if len(elems) == 3 {
		return ev.Eval(elems[2], scope)
	}
	return nil, nil
}

func biDefine(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("define", args)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, newSyntaxError("define", "missing name")
	}
	switch head := elems[0].(type) {
	case *Sym:
		if len(elems) != 2 {
			return nil, newSyntaxError("define", "expected exactly 2 arguments, got %d", len(elems))
		}
		value, err := ev.Eval(elems[1], scope)
		if err != nil {
			return nil, err
		}
		scope.Define(head, value)
		return head, nil
	case *Pair:
		// (define (name . params) body...) => (define name (lambda (params) body...))
		nameSym, ok := head.Head.(*Sym)
		if !ok {
			return nil, newSyntaxError("define", "function name must be a symbol")
		}
		params, err := paramList(head.Tail)
		if err != nil {
			return nil, err
		}
		if len(elems) < 2 {
			return nil, newSyntaxError("define", "lambda body must not be empty")
		}
		scope.Define(nameSym, &Lambda{Params: params, Body: elems[1:], Env: scope})
		return nameSym, nil
	default:
		return nil, newSyntaxError("define", "name must be a symbol or a parameter list")
	}
}

func biSet(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("set!", args)
	if err != nil {
		return nil, err
	}
	if len(elems) != 2 {
		return nil, newSyntaxError("set!", "expected exactly 2 arguments, got %d", len(elems))
	}
	sym, ok := elems[0].(*Sym)
	if !ok {
		return nil, newSyntaxError("set!", "name must be a symbol")
	}
	value, err := ev.Eval(elems[1], scope)
	if err != nil {
		return nil, err
	}
	previous, err := scope.Swap(sym, value)
	if err != nil {
		return nil, err
	}
	return previous, nil
}

func biLambda(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("lambda", args)
	if err != nil {
		return nil, err
	}
	if len(elems) < 2 {
		return nil, newSyntaxError("lambda", "expected a parameter list and a non-empty body")
	}
	params, err := paramList(elems[0])
	if err != nil {
		return nil, err
	}
	return &Lambda{Params: params, Body: elems[1:], Env: scope}, nil
}

// paramList converts a proper list of symbols into a []*Sym, failing
// with a syntax error if it is improper or contains a non-symbol.
func paramList(v Value) ([]*Sym, error) {
	nodes, err := listToSlice("lambda", v)
	if err != nil {
		return nil, newSyntaxError("lambda", "parameter list must be a proper list")
	}
	params := make([]*Sym, len(nodes))
	for i, n := range nodes {
		sym, ok := n.(*Sym)
		if !ok {
			return nil, newSyntaxError("lambda", "parameters must be symbols")
		}
		params[i] = sym
	}
	return params, nil
}

func biAnd(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("and", args)
	if err != nil {
		return nil, err
	}
	var result Value = Bool(true)
	for _, e := range elems {
		v, err := ev.Eval(e, scope)
		if err != nil {
			return nil, err
		}
		result = v
		if !Truthy(v) {
			return result, nil
		}
	}
	return result, nil
}

func biOr(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("or", args)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		v, err := ev.Eval(e, scope)
		if err != nil {
			return nil, err
		}
		if Truthy(v) {
			return v, nil
		}
	}
	return Bool(false), nil
}

// --- arithmetic and comparison ---------------------------------------

func biAdd(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("+", args)
	if err != nil {
		return nil, err
	}
	var sum Int
	for _, e := range elems {
		n, err := requireInt("+", e)
		if err != nil {
			return nil, err
		}
		sum += n
	}
	return sum, nil
}

func biSub(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("-", args)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, newRuntimeError("-", "expected at least 1 argument")
	}
	first, err := requireInt("-", elems[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		return -first, nil
	}
	result := first
	for _, e := range elems[1:] {
		n, err := requireInt("-", e)
		if err != nil {
			return nil, err
		}
		result -= n
	}
	return result, nil
}

func biMul(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("*", args)
	if err != nil {
		return nil, err
	}
	result := Int(1)
	for _, e := range elems {
		n, err := requireInt("*", e)
		if err != nil {
			return nil, err
		}
		result *= n
	}
	return result, nil
}

// biDiv implements "/" per §9's documented choice: the unary case yields
// 1/x via integer division (constant zero for |x|>1), which is what the
// original source's control flow actually computes, rather than -x or a
// true reciprocal.
func biDiv(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("/", args)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, newRuntimeError("/", "expected at least 1 argument")
	}
	first, err := requireInt("/", elems[0])
	if err != nil {
		return nil, err
	}
	if len(elems) == 1 {
		if first == 0 {
			return nil, newRuntimeError("/", "division by zero")
		}
		return 1 / first, nil
	}
	result := first
	for _, e := range elems[1:] {
		n, err := requireInt("/", e)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, newRuntimeError("/", "division by zero")
		}
		result /= n
	}
	return result, nil
}

// chainedCompare implements the "0 or 1 args => true, else every
// adjacent pair must satisfy rel" semantics shared by =, <, >, <=, >=.
func chainedCompare(op string, args Value, rel func(a, b Int) bool) (Value, error) {
	elems, err := listToSlice(op, args)
	if err != nil {
		return nil, err
	}
	if len(elems) <= 1 {
		return Bool(true), nil
	}
	prev, err := requireInt(op, elems[0])
	if err != nil {
		return nil, err
	}
	for _, e := range elems[1:] {
		n, err := requireInt(op, e)
		if err != nil {
			return nil, err
		}
		if !rel(prev, n) {
			return Bool(false), nil
		}
		prev = n
	}
	return Bool(true), nil
}

func biNumEq(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	return chainedCompare("=", args, func(a, b Int) bool { return a == b })
}

func biLess(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	return chainedCompare("<", args, func(a, b Int) bool { return a < b })
}

func biGreater(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	return chainedCompare(">", args, func(a, b Int) bool { return a > b })
}

func biLessEq(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	return chainedCompare("<=", args, func(a, b Int) bool { return a <= b })
}

func biGreaterEq(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	return chainedCompare(">=", args, func(a, b Int) bool { return a >= b })
}

func biMin(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("min", args)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, newRuntimeError("min", "expected at least 1 argument")
	}
	best, err := requireInt("min", elems[0])
	if err != nil {
		return nil, err
	}
	for _, e := range elems[1:] {
		n, err := requireInt("min", e)
		if err != nil {
			return nil, err
		}
		if n < best {
			best = n
		}
	}
	return best, nil
}

func biMax(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("max", args)
	if err != nil {
		return nil, err
	}
	if len(elems) == 0 {
		return nil, newRuntimeError("max", "expected at least 1 argument")
	}
	best, err := requireInt("max", elems[0])
	if err != nil {
		return nil, err
	}
	for _, e := range elems[1:] {
		n, err := requireInt("max", e)
		if err != nil {
			return nil, err
		}
		if n > best {
			best = n
		}
	}
	return best, nil
}

func biAbs(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("abs", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("abs", elems, 1); err != nil {
		return nil, err
	}
	n, err := requireInt("abs", elems[0])
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return -n, nil
	}
	return n, nil
}

// --- type predicates ---------------------------------------------------

func biNumberP(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("number?", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("number?", elems, 1); err != nil {
		return nil, err
	}
	return Bool(IsInt(elems[0])), nil
}

func biBooleanP(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("boolean?", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("boolean?", elems, 1); err != nil {
		return nil, err
	}
	return Bool(IsBool(elems[0])), nil
}

func biSymbolP(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("symbol?", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("symbol?", elems, 1); err != nil {
		return nil, err
	}
	return Bool(IsSymbol(elems[0])), nil
}

func biPairP(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("pair?", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("pair?", elems, 1); err != nil {
		return nil, err
	}
	return Bool(IsPair(elems[0])), nil
}

func biNullP(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("null?", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("null?", elems, 1); err != nil {
		return nil, err
	}
	return Bool(IsEmpty(elems[0])), nil
}

func biListP(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("list?", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("list?", elems, 1); err != nil {
		return nil, err
	}
	return Bool(isProperList(elems[0])), nil
}

// --- list primitives ----------------------------------------------------

func biCons(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("cons", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("cons", elems, 2); err != nil {
		return nil, err
	}
	return Cons(elems[0], elems[1]), nil
}

func biCar(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("car", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("car", elems, 1); err != nil {
		return nil, err
	}
	p, ok := AsPair(elems[0])
	if !ok {
		return nil, newRuntimeError("car", "expected a pair, got %s", Str(elems[0]))
	}
	return p.Head, nil
}

func biCdr(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("cdr", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("cdr", elems, 1); err != nil {
		return nil, err
	}
	p, ok := AsPair(elems[0])
	if !ok {
		return nil, newRuntimeError("cdr", "expected a pair, got %s", Str(elems[0]))
	}
	return p.Tail, nil
}

func biList(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	return args, nil
}

func biListRef(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("list-ref", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("list-ref", elems, 2); err != nil {
		return nil, err
	}
	lst, err := listToSlice("list-ref", elems[0])
	if err != nil {
		return nil, err
	}
	k, err := requireInt("list-ref", elems[1])
	if err != nil {
		return nil, err
	}
	if k < 0 || int(k) >= len(lst) {
		return nil, newRuntimeError("list-ref", "index %d out of range for list of length %d", k, len(lst))
	}
	return lst[k], nil
}

func biListTail(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("list-tail", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("list-tail", elems, 2); err != nil {
		return nil, err
	}
	k, err := requireInt("list-tail", elems[1])
	if err != nil {
		return nil, err
	}
	lst, err := listToSlice("list-tail", elems[0])
	if err != nil {
		return nil, err
	}
	if k < 0 || int(k) > len(lst) {
		return nil, newRuntimeError("list-tail", "index %d out of range for list of length %d", k, len(lst))
	}
	cur := elems[0]
	for i := Int(0); i < k; i++ {
		p, _ := AsPair(cur)
		cur = p.Tail
	}
	return cur, nil
}

func biSetCar(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("set-car!", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("set-car!", elems, 2); err != nil {
		return nil, err
	}
	p, ok := AsPair(elems[0])
	if !ok {
		return nil, newRuntimeError("set-car!", "expected a pair, got %s", Str(elems[0]))
	}
	p.Head = elems[1]
	return nil, nil
}

func biSetCdr(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("set-cdr!", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("set-cdr!", elems, 2); err != nil {
		return nil, err
	}
	p, ok := AsPair(elems[0])
	if !ok {
		return nil, newRuntimeError("set-cdr!", "expected a pair, got %s", Str(elems[0]))
	}
	p.Tail = elems[1]
	return nil, nil
}

// --- boolean --------------------------------------------------------

func biNot(ev *Evaluator, args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("not", args)
	if err != nil {
		return nil, err
	}
	if err := requireArgc("not", elems, 1); err != nil {
		return nil, err
	}
	b, ok := elems[0].(Bool)
	return Bool(ok && !bool(b)), nil
}
