package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLookupIdent_Keywords verifies that every reserved word classifies to
// its keyword kind and that an arbitrary identifier falls back to IDENT.
func TestLookupIdent_Keywords(t *testing.T) {
	tests := []struct {
		ident    string
		expected Type
	}{
		{"fn", FUNCTION},
		{"let", LET},
		{"true", TRUE},
		{"false", FALSE},
		{"if", IF},
		{"else", ELSE},
		{"return", RETURN},
		{"foobar", IDENT},
		{"x", IDENT},
		{"Let", IDENT}, // case-sensitive: not the keyword
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, LookupIdent(tt.ident), "ident=%q", tt.ident)
	}
}

// TestDisplayName covers the canonical literal/mnemonic mapping used in
// parser error strings.
func TestDisplayName(t *testing.T) {
	tests := []struct {
		kind     Type
		expected string
	}{
		{ASSIGN, "="},
		{FUNCTION, "FUNCTION"},
		{EOF, "EOF"},
		{IDENT, "IDENT"},
		{INT, "INT"},
		{EQ, "=="},
		{NOT_EQ, "!="},
		{LPAREN, "("},
		{RBRACE, "}"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayName(tt.kind))
	}
}

// TestNew verifies the plain constructor round-trips its arguments.
func TestNew(t *testing.T) {
	tok := New(INT, "5")
	assert.Equal(t, INT, tok.Type)
	assert.Equal(t, "5", tok.Literal)
}
