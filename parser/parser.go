/*
File   : parser/parser.go
Package: parser

Package parser implements a Pratt parser (top-down operator precedence
parser) for Monkey. It turns the lexer's token stream into a *ast.Program,
accumulating human-readable error strings rather than aborting on the
first malformed construct, so that a single pass surfaces as many faults
as possible and still returns a best-effort tree.
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/monkeylang/interpreter/ast"
	"github.com/monkeylang/interpreter/lexer"
	"github.com/monkeylang/interpreter/token"
)

// prefixParseFn parses an expression that starts with the current token
// (identifiers, integer literals, prefix operators, ...).
type prefixParseFn func() ast.Expression

// infixParseFn parses the rest of an expression given the already-parsed
// left-hand side.
type infixParseFn func(ast.Expression) ast.Expression

// Parser holds the lexer being driven, the two-token lookahead window,
// the registered prefix/infix parse functions, and the accumulated error
// log. It is single-threaded and driven entirely by its caller.
type Parser struct {
	l      *lexer.Lexer
	errors []string

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New constructs a Parser over l and primes curToken/peekToken with two
// advances, so that curToken already holds the first real token by the
// time the caller calls ParseProgram.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		errors: []string{},
	}

	p.prefixParseFns = make(map[token.Type]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)

	p.infixParseFns = make(map[token.Type]infixParseFn)
	for _, kind := range []token.Type{
		token.PLUS, token.MINUS, token.SLASH, token.ASTERISK,
		token.EQ, token.NOT_EQ, token.LT, token.GT,
	} {
		p.registerInfix(kind, p.parseInfixExpression)
	}

	// Read two tokens, so curToken and peekToken are both populated.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(kind token.Type, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind token.Type, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

// Errors returns the accumulated syntax error log, in the order the
// faults were encountered. An empty slice means the parse was clean.
func (p *Parser) Errors() []string {
	return p.errors
}

// nextToken shifts the lookahead window forward by one token.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(kind token.Type) bool {
	return p.curToken.Type == kind
}

func (p *Parser) peekTokenIs(kind token.Type) bool {
	return p.peekToken.Type == kind
}

// expectPeek advances past peekToken if it matches kind, returning true.
// Otherwise it records a peek error and leaves the cursor where it was,
// returning false so the caller can abort the current statement.
func (p *Parser) expectPeek(kind token.Type) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.peekError(kind)
	return false
}

// peekError logs an "expected next token to be X, got Y instead" fault.
func (p *Parser) peekError(kind token.Type) {
	msg := fmt.Sprintf("expected next token to be %s, got %s instead",
		token.DisplayName(kind), token.DisplayName(p.peekToken.Type))
	p.errors = append(p.errors, msg)
}

// noPrefixParseFnError logs a "no prefix parse function for X found"
// fault when the current token can't start any expression.
func (p *Parser) noPrefixParseFnError(kind token.Type) {
	msg := fmt.Sprintf("no prefix parse function for %s found", token.DisplayName(kind))
	p.errors = append(p.errors, msg)
}

// ParseProgram drives the statement loop until EOF, collecting every
// successfully parsed statement into the returned Program. A let statement
// that fails to parse contributes only to the error log; an expression
// statement whose expression fails is still appended, with a nil
// Expression. Either way the loop advances past it and continues.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{Statements: []ast.Statement{}}

	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

// parseStatement dispatches on the current token's kind: let and return
// have dedicated forms, everything else is parsed as an expression
// statement.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses "let <ident> = <expr-placeholder>;". Expression
// parsing is not yet wired into let bindings (see DESIGN.md for the
// decision to keep this limitation from the reference implementation):
// after the mandatory IDENT and ASSIGN, tokens are skipped up to the
// terminating semicolon and Value is set to an empty placeholder
// identifier rather than the real right-hand-side expression.
func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}

	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	// TODO: parse the value expression here instead of skipping to ';'.
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	stmt.Value = &ast.Identifier{Token: token.New(token.IDENT, ""), Value: ""}

	return stmt
}

// parseReturnStatement parses "return <expr-placeholder>;", skipping to
// the terminating semicolon the same way parseLetStatement does.
func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.curToken}

	p.nextToken()

	// TODO: parse the return value expression here instead of skipping to ';'.
	for !p.curTokenIs(token.SEMICOLON) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}

	stmt.ReturnValue = &ast.Identifier{Token: token.New(token.IDENT, ""), Value: ""}

	return stmt
}

// parseExpressionStatement parses a bare expression used as a statement
// and consumes an optional trailing semicolon.
func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}

	return stmt
}

// parseExpression is the heart of the Pratt parser: it dispatches to a
// prefix handler for curToken, then repeatedly folds in infix operators
// whose precedence exceeds the caller-supplied threshold.
func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken.Type)
		return nil
	}
	leftExp := prefix()

	for !p.peekTokenIs(token.SEMICOLON) && precedence < precedenceOf(p.peekToken.Type) {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken()
		leftExp = infix(leftExp)
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

// parseIntegerLiteral re-parses the lexeme as a signed 64-bit integer.
// Overflow or a malformed digit sequence logs a "could not parse X as
// integer" fault and yields no node for this expression.
func (p *Parser) parseIntegerLiteral() ast.Expression {
	lit := &ast.IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("could not parse %s as integer", p.curToken.Literal)
		p.errors = append(p.errors, msg)
		return nil
	}

	lit.Value = value
	return lit
}

// parsePrefixExpression handles "!x" and "-x": capture the operator,
// advance past it, then recurse into the operand at PREFIX precedence so
// that e.g. "-a * b" binds as "(-a) * b" rather than "-(a * b)".
func (p *Parser) parsePrefixExpression() ast.Expression {
	expression := &ast.PrefixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()
	expression.Right = p.parseExpression(PREFIX)

	return expression
}

// parseInfixExpression handles every binary operator. The caller has
// already advanced curToken onto the operator; this captures its
// precedence, advances past it, and recurses into the right operand at
// that same precedence, which makes equal-precedence operators associate
// leftward.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Left:     left,
		Operator: p.curToken.Literal,
	}

	precedence := precedenceOf(p.curToken.Type)
	p.nextToken()
	expression.Right = p.parseExpression(precedence)

	return expression
}
