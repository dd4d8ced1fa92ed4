package lisp

// Evaluator holds no mutable state of its own; it exists so builtins can
// call back into evaluation (Eval, Apply) without those free functions
// needing to be package-level globals, and so a future extension (e.g. a
// call counter) has somewhere to live without changing every builtin's
// signature.
type Evaluator struct{}

// NewEvaluator constructs an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval interprets node under scope, dispatching on its runtime variant
// per §4.4: atoms are self-evaluating, a symbol resolves through the
// scope chain, and a pair is an application whose head is evaluated to
// find a callable and whose tail is handed to it unevaluated.
func (ev *Evaluator) Eval(node Value, scope *Scope) (Value, error) {
	switch x := node.(type) {
	case nil:
		return nil, newRuntimeError("", "cannot evaluate the empty list as an expression")
	case Int, Bool, *Builtin, *Lambda:
		return x, nil
	case *Sym:
		return scope.Lookup(x)
	case *Pair:
		fn, err := ev.Eval(x.Head, scope)
		if err != nil {
			return nil, err
		}
		if !IsCallable(fn) {
			return nil, newRuntimeError("", "%s is not applicable", Str(fn))
		}
		return ev.Apply(fn, x.Tail, scope)
	default:
		return nil, newRuntimeError("", "cannot evaluate value of unknown type")
	}
}

// Apply calls fn with the syntactic argument list args (the unevaluated
// tail of the application pair) under the caller's scope. For a Builtin
// this dispatches to its Fn according to its Discipline; for a Lambda it
// performs the full lambda-application protocol of §4.4.
func (ev *Evaluator) Apply(fn Value, args Value, scope *Scope) (Value, error) {
	switch f := fn.(type) {
	case *Builtin:
		if f.Discipline == Applicative {
			evaluated, err := ev.evalArgs(args, scope)
			if err != nil {
				return nil, err
			}
			return f.Fn(ev, evaluated, scope)
		}
		return f.Fn(ev, args, scope)
	case *Lambda:
		return ev.applyLambda(f, args, scope)
	default:
		return nil, newRuntimeError("", "%s is not applicable", Str(fn))
	}
}

// evalArgs evaluates each element of a syntactic argument list left to
// right in scope, returning the results as a freshly built list.
func (ev *Evaluator) evalArgs(args Value, scope *Scope) (Value, error) {
	elems, err := listToSlice("", args)
	if err != nil {
		return nil, err
	}
	evaluated := make([]Value, len(elems))
	for i, a := range elems {
		v, err := ev.Eval(a, scope)
		if err != nil {
			return nil, err
		}
		evaluated[i] = v
	}
	return List(evaluated...), nil
}

// applyLambda implements the protocol of §4.4: linearize and check arity,
// evaluate each argument in the caller's scope, bind parameters in a
// fresh frame chained to the lambda's captured scope (not the caller's),
// then evaluate the body in sequence and return the last value.
func (ev *Evaluator) applyLambda(fn *Lambda, args Value, scope *Scope) (Value, error) {
	argNodes, err := listToSlice("lambda", args)
	if err != nil {
		return nil, err
	}
	if len(argNodes) != len(fn.Params) {
		return nil, newRuntimeError("lambda", "expected %d argument(s), got %d", len(fn.Params), len(argNodes))
	}
	values := make([]Value, len(argNodes))
	for i, a := range argNodes {
		v, err := ev.Eval(a, scope)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	frame := NewScope(fn.Env)
	for i, p := range fn.Params {
		frame.Define(p, values[i])
	}
	var result Value
	for _, expr := range fn.Body {
		result, err = ev.Eval(expr, frame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
