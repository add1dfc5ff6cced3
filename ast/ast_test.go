package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/monkeylang/interpreter/token"
)

// TestString_LetStatement checks the "let name = value;" pretty-print
// format using hand-built nodes, independent of the parser.
func TestString_LetStatement(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&LetStatement{
				Token: token.Token{Type: token.LET, Literal: "let"},
				Name: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "myVar"},
					Value: "myVar",
				},
				Value: &Identifier{
					Token: token.Token{Type: token.IDENT, Literal: "anotherVar"},
					Value: "anotherVar",
				},
			},
		},
	}

	assert.Equal(t, "let myVar = anotherVar;", program.String())
}

// TestString_EmptyProgram checks the empty-program edge case for both
// String and TokenLiteral.
func TestString_EmptyProgram(t *testing.T) {
	program := &Program{}
	assert.Equal(t, "", program.String())
	assert.Equal(t, "", program.TokenLiteral())
}

// TestString_ReturnStatement_NoValue checks that a ReturnStatement with a
// nil ReturnValue still prints the trailing semicolon without a dangling
// space.
func TestString_ReturnStatement_NoValue(t *testing.T) {
	stmt := &ReturnStatement{Token: token.Token{Type: token.RETURN, Literal: "return"}}
	assert.Equal(t, "return;", stmt.String())
}

// TestString_ExpressionStatement_NilExpression checks that a statement
// whose expression failed to parse prints as the empty string.
func TestString_ExpressionStatement_NilExpression(t *testing.T) {
	stmt := &ExpressionStatement{Token: token.Token{Type: token.INT, Literal: "5"}}
	assert.Equal(t, "", stmt.String())
}

// TestString_PrefixAndInfix checks the fully parenthesized rendering used
// by the parser's precedence tests.
func TestString_PrefixAndInfix(t *testing.T) {
	five := &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "5"}, Value: 5}
	ten := &IntegerLiteral{Token: token.Token{Type: token.INT, Literal: "10"}, Value: 10}

	prefix := &PrefixExpression{
		Token:    token.Token{Type: token.MINUS, Literal: "-"},
		Operator: "-",
		Right:    five,
	}
	assert.Equal(t, "(-5)", prefix.String())

	infix := &InfixExpression{
		Token:    token.Token{Type: token.PLUS, Literal: "+"},
		Left:     five,
		Operator: "+",
		Right:    ten,
	}
	assert.Equal(t, "(5 + 10)", infix.String())
}
