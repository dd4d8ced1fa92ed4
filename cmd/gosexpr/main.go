// Command gosexpr is a read-eval-print loop for the interpreter
// implemented by the lisp package. It takes no flags, environment
// variables, or script arguments: stdin is read one line at a time,
// each line's result or error is printed, and the loop exits at EOF.
package main

import (
	"os"

	"github.com/the-devid/hse-scheme/lisp"
)

func main() {
	lisp.REPL(os.Stdin, os.Stdout, os.Stderr)
}
