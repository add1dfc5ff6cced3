// Command monkey starts the interactive Monkey shell on stdin/stdout. It
// is glue only: greeting, username lookup, and I/O wiring live here so
// that the lexer/parser core stays free of process concerns.
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/monkeylang/interpreter/repl"
)

func main() {
	name := "there"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}

	fmt.Printf("Hello %s! This is the Monkey programming language.\n", name)
	fmt.Println("Feel free to type in commands.")

	repl.New().Start(os.Stdin, os.Stdout)
}
