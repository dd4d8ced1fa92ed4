package lisp

import "fmt"

// ErrSyntax, ErrName and ErrRuntime are the three sentinel error kinds a
// caller can distinguish with errors.Is. They classify every error this
// package returns: malformed input, unbound names, and everything else
// (arity, type mismatches, out-of-range indices, non-callables).
var (
	ErrSyntax  = fmt.Errorf("syntax error")
	ErrName    = fmt.Errorf("name error")
	ErrRuntime = fmt.Errorf("runtime error")
)

// LispError wraps one of the three sentinel kinds with a human-readable
// message and, where applicable, the name of the offending operator.
type LispError struct {
	Kind    error
	Op      string
	Message string
}

func (e *LispError) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

func (e *LispError) Unwrap() error {
	return e.Kind
}

func newSyntaxError(op, format string, args ...any) *LispError {
	return &LispError{Kind: ErrSyntax, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newNameError(op, format string, args ...any) *LispError {
	return &LispError{Kind: ErrName, Op: op, Message: fmt.Sprintf(format, args...)}
}

func newRuntimeError(op, format string, args ...any) *LispError {
	return &LispError{Kind: ErrRuntime, Op: op, Message: fmt.Sprintf(format, args...)}
}
