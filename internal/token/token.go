// Package token implements the Redcode tokenizer: it turns source text
// into a flat stream of typed tokens with source spans, preserving
// enough structure (one EOL token per logical line) for the parser
// phases to work line-at-a-time.
package token

import "fmt"

// Kind identifies a token's lexical category.
type Kind int

const (
	EOF Kind = iota
	EOL
	Ident
	Number
	Sigil   // unambiguous addressing-mode sigil: # $ @ {
	Comma
	Colon
	Dot
	LParen
	RParen
	Op // + - * / % ! < <= > >= == != && || and the sigil } (* < > } may also be sigils)
)

// Token is one lexical unit with its source position (1-based line and
// column) for diagnostics.
type Token struct {
	Kind Kind
	Text string
	Line int
	Col  int
}

// Pos renders "line:col" for error messages.
func (t Token) Pos() string { return fmt.Sprintf("%d:%d", t.Line, t.Col) }

func (t Token) String() string { return t.Text }
