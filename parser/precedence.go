/*
File   : parser/precedence.go
Package: parser

Precedence levels and the token-to-precedence table driving the Pratt
expression parser's infix loop.
*/
package parser

import "github.com/monkeylang/interpreter/token"

// Precedence orders how tightly an operator binds; higher values bind
// tighter. PREFIX is never produced by precedenceOf — it is supplied
// directly when recursing into a prefix operator's operand.
type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // ==, !=
	LESSGREATER // >, <
	SUM         // +, -
	PRODUCT     // *, /
	PREFIX      // -x, !x
	CALL        // myFunction(x)
)

// precedences maps each infix-capable token kind to its binding level.
// Anything absent from this table defaults to LOWEST.
var precedences = map[token.Type]Precedence{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
}

// precedenceOf returns the binding level for kind, defaulting to LOWEST
// for any token that never starts an infix operator.
func precedenceOf(kind token.Type) Precedence {
	if p, ok := precedences[kind]; ok {
		return p
	}
	return LOWEST
}
