/*
File   : repl/repl.go
Package: repl

Package repl implements the interactive shell for the Monkey front end.
It is an external collaborator of the lexer/parser core (see spec.md): it
reads a line, hands the lexer to a printer loop, and prints either the
resulting token stream or, in parse mode, the pretty-printed program or
the parser's accumulated errors. It carries no
parsing logic of its own and is not covered by the core's tests.

The REPL uses readline for line editing and history and fatih/color for
colorized output, matching the teacher interpreter's REPL conventions.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/monkeylang/interpreter/lexer"
	"github.com/monkeylang/interpreter/parser"
	"github.com/monkeylang/interpreter/token"
)

// Prompt is the literal prompt string shown before every line of input.
const Prompt = ">> "

// Color definitions for REPL output.
var (
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
)

// Repl is a minimal read-eval-print loop: "eval" here means lexing (and,
// when parse errors are of interest, parsing) the line and printing the
// result, since no evaluator exists in this core.
type Repl struct {
	// DumpTokens selects the printed form: when true, every token the
	// lexer produces for the line is printed; when false, the line is
	// parsed and either the pretty-printed program or the parser's
	// errors are printed.
	DumpTokens bool
}

// New returns a Repl configured to dump tokens, matching the contract
// described in spec.md §6.3.
func New() *Repl {
	return &Repl{DumpTokens: true}
}

// Start runs the loop until EOF (Ctrl-D) or a readline error. reader is
// accepted for interface symmetry with classic REPL signatures but is
// not used directly: readline manages stdin itself.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	rl, err := readline.New(Prompt)
	if err != nil {
		fmt.Fprintf(writer, "could not start readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}

		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rl.SaveHistory(line)

		if r.DumpTokens {
			r.dumpTokens(writer, line)
		} else {
			r.printProgram(writer, line)
		}
	}
}

// dumpTokens prints every token NextToken produces for line, stopping
// once EOF is reached.
func (r *Repl) dumpTokens(writer io.Writer, line string) {
	l := lexer.New(line)
	for tok := l.NextToken(); tok.Type != token.EOF; tok = l.NextToken() {
		cyanColor.Fprintf(writer, "%+v\n", tok)
	}
}

// printProgram parses line and prints either the pretty-printed program
// or the parser's accumulated errors, never both.
func (r *Repl) printProgram(writer io.Writer, line string) {
	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			redColor.Fprintf(writer, "\t%s\n", msg)
		}
		return
	}

	yellowColor.Fprintln(writer, program.String())
}
