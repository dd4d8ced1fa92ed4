package lisp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Interpreter pairs an evaluator with a long-lived global scope, the way
// the teacher's Main constructs one Globals-rooted environment and reuses
// it across every line the REPL reads.
type Interpreter struct {
	ev    *Evaluator
	scope *Scope
}

// NewInterpreter constructs an Interpreter with a fresh global scope
// rooted on the builtins frame.
func NewInterpreter() *Interpreter {
	return &Interpreter{ev: NewEvaluator(), scope: NewScope(GlobalScope())}
}

// Run is the package's one external entry point (§6): it tokenizes,
// reads exactly one expression from text, requires that nothing but
// trailing whitespace follows, evaluates the expression against the
// interpreter's persistent global scope, and returns its printed form.
func (in *Interpreter) Run(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", newSyntaxError("", "empty input")
	}
	r := NewReader(text)
	expr, err := r.ReadExpr()
	if err != nil {
		return "", err
	}
	atEnd, err := r.AtEnd()
	if err != nil {
		return "", err
	}
	if !atEnd {
		return "", newSyntaxError("", "garbage at end of input")
	}
	result, err := in.ev.Eval(expr, in.scope)
	if err != nil {
		return "", err
	}
	return Str(result), nil
}

// REPL implements the line-oriented driver of §4.5/§10.4: print a "> "
// prompt, read one line, run it, print the serialized result or an
// "[ERROR]: "-prefixed message, and loop until the input is exhausted.
func REPL(in io.Reader, out, errOut io.Writer) {
	interp := NewInterpreter()
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		result, err := interp.Run(line)
		if err != nil {
			fmt.Fprintln(errOut, "[ERROR]: "+err.Error())
			continue
		}
		fmt.Fprintln(out, result)
	}
}
