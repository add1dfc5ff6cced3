/*
File   : lexer/lexer.go
Package: lexer

Package lexer performs lexical analysis of Monkey source code. It scans
the source byte by byte, producing one Token at a time on demand: no
token stream is materialized up front, and no characters are buffered
beyond the single one-byte lookahead the scanner needs for two-character
operators.
*/
package lexer

import "github.com/monkeylang/interpreter/token"

// Lexer holds the character cursor over a single in-memory source string.
// It is single-threaded and not safe for concurrent use by multiple
// goroutines, though distinct Lexer instances over distinct strings share
// no state and may run on separate goroutines freely.
//
// Fields:
//   - input: the complete source text
//   - position: index of the byte currently held in ch
//   - readPosition: index of the next byte to read (always position+1;
//     peekChar inspects it without moving it)
//   - ch: the byte at position, or 0 once the input is exhausted
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
}

// New constructs a Lexer over source and primes the first character, so
// that immediately after construction ch holds input[0] (or 0 for an
// empty source), position is 0, and readPosition is 1.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances the cursor by one byte. When readPosition runs off
// the end of input, ch becomes the sentinel 0 byte and stays there on
// every subsequent call, which is what makes NextToken idempotent past
// end-of-input.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar inspects the next byte without advancing the cursor. It is a
// pure read: calling it any number of times has no effect on lexer state.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace consumes a run of space, tab, newline, or carriage
// return. No other bytes are treated as whitespace.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token in the source. Once the source is
// exhausted it returns EOF on every subsequent call.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = token.New(token.EQ, string(ch)+string(l.ch))
		} else {
			tok = token.New(token.ASSIGN, string(l.ch))
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = token.New(token.NOT_EQ, string(ch)+string(l.ch))
		} else {
			tok = token.New(token.BANG, string(l.ch))
		}
	case '+':
		tok = token.New(token.PLUS, string(l.ch))
	case '-':
		tok = token.New(token.MINUS, string(l.ch))
	case '*':
		tok = token.New(token.ASTERISK, string(l.ch))
	case '/':
		tok = token.New(token.SLASH, string(l.ch))
	case '<':
		tok = token.New(token.LT, string(l.ch))
	case '>':
		tok = token.New(token.GT, string(l.ch))
	case ';':
		tok = token.New(token.SEMICOLON, string(l.ch))
	case ',':
		tok = token.New(token.COMMA, string(l.ch))
	case '(':
		tok = token.New(token.LPAREN, string(l.ch))
	case ')':
		tok = token.New(token.RPAREN, string(l.ch))
	case '{':
		tok = token.New(token.LBRACE, string(l.ch))
	case '}':
		tok = token.New(token.RBRACE, string(l.ch))
	case 0:
		tok = token.New(token.EOF, "")
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return token.New(token.LookupIdent(literal), literal)
		} else if isDigit(l.ch) {
			return token.New(token.INT, l.readNumber())
		}
		tok = token.New(token.ILLEGAL, string(l.ch))
	}

	l.readChar()
	return tok
}

// readIdentifier scans a maximal run of letters/underscore starting at
// the current character and returns it. Note that digits are not part of
// an identifier in this lexer, even past the first character: "a1" lexes
// as IDENT "a" followed by INT "1".
func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// readNumber scans a maximal run of decimal digits starting at the
// current character and returns it as a string; the parser, not the
// lexer, is responsible for converting it to an integer value.
func (l *Lexer) readNumber() string {
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

// isLetter reports whether c can start or continue an identifier: ASCII
// letters and underscore only. No Unicode identifiers in this core.
func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

// isDigit reports whether c is an ASCII decimal digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
