package lisp

// Scope is one frame in the lexical scope chain: a name-to-value map plus
// a pointer to the enclosing frame. The chain generalizes the teacher's
// ((sym . val) ... . Globals) alist-of-cells representation into ordinary
// Go maps linked by a Parent pointer, since this dialect has no use for
// sharing scope frames as first-class pair-heap values the way the
// teacher's environment representation does.
type Scope struct {
	vars   map[*Sym]Value
	Parent *Scope
}

// NewScope creates an empty frame chained to parent. parent is nil only
// for the root builtins frame.
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[*Sym]Value), Parent: parent}
}

// Lookup walks from this frame outward and returns the value bound to
// sym in the nearest frame that holds it.
func (s *Scope) Lookup(sym *Sym) (Value, error) {
	for f := s; f != nil; f = f.Parent {
		if v, ok := f.vars[sym]; ok {
			return v, nil
		}
	}
	return nil, newNameError("", "unbound symbol: %s", sym.Name)
}

// Assign walks the chain and rebinds sym in the nearest frame that
// already holds it. It fails with a name error if sym is unbound
// anywhere on the chain.
func (s *Scope) Assign(sym *Sym, value Value) error {
	_, err := s.Swap(sym, value)
	return err
}

// Swap walks the chain, rebinds sym in the nearest frame that already
// holds it to value, and returns the value it held immediately before
// the rebind. It fails with a name error if sym is unbound anywhere on
// the chain, in which case value is never stored.
func (s *Scope) Swap(sym *Sym, value Value) (Value, error) {
	for f := s; f != nil; f = f.Parent {
		if old, ok := f.vars[sym]; ok {
			f.vars[sym] = value
			return old, nil
		}
	}
	return nil, newNameError("set!", "unbound symbol: %s", sym.Name)
}

// Define binds sym to value in this frame only, overwriting any existing
// binding in this frame (but leaving outer frames untouched).
func (s *Scope) Define(sym *Sym, value Value) {
	s.vars[sym] = value
}
