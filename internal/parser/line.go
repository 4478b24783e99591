// Package parser implements the front half of Redcode assembly:
// tokenizing, EQU substitution, and FOR/ROF unrolling (spec §4.1
// phases 1-3), with each line's leading label declaration split off.
// The back half — label collection, expression resolution, modifier
// defaulting, and emission — lives in internal/assemble.
package parser

import (
	"fmt"
	"strings"

	"github.com/cjr29/corewar/internal/redcode"
	"github.com/cjr29/corewar/internal/token"
)

// Kind classifies a logical source line after label stripping.
type Kind int

const (
	KindEmpty Kind = iota
	KindEqu
	KindOrg
	KindEnd
	KindFor
	KindRof
	KindInstr
)

// Line is one logical source line: its leading label declarations (if
// any), its classification, and the remaining tokens of its statement.
type Line struct {
	Labels []string
	Kind   Kind
	Toks   []token.Token // statement tokens, labels and keyword stripped
	LineNo int
}

var keywords = map[string]Kind{
	"EQU": KindEqu,
	"ORG": KindOrg,
	"END": KindEnd,
	"FOR": KindFor,
	"ROF": KindRof,
}

func isKeyword(s string) bool {
	_, ok := keywords[strings.ToUpper(s)]
	return ok
}

// splitLines regroups a flat token stream (as produced by token.Lexer)
// back into per-physical-line token slices, using the EOL/EOF
// sentinels the lexer inserts.
func splitLines(toks []token.Token) [][]token.Token {
	var lines [][]token.Token
	var cur []token.Token
	for _, t := range toks {
		switch t.Kind {
		case token.EOL:
			lines = append(lines, cur)
			cur = nil
		case token.EOF:
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
		default:
			cur = append(cur, t)
		}
	}
	return lines
}

// classify turns one physical line's tokens into a Line, stripping at
// most one leading label declaration (identifier, optional ':') per
// spec §4.1: "a label declaration on an otherwise-empty line attaches
// to the next instruction; multiple labels may stack" across separate
// lines, and a label may also prefix an instruction on the same line.
func classify(toks []token.Token, lineNo int) (Line, error) {
	if len(toks) == 0 {
		return Line{Kind: KindEmpty, LineNo: lineNo}, nil
	}

	i := 0
	var labels []string
	// A leading identifier is a label unless it is itself a reserved
	// word (EQU/ORG/END/FOR/ROF) or a Redcode opcode mnemonic — those
	// always start their own statement, never a label declaration.
	if toks[0].Kind == token.Ident && !isKeyword(toks[0].Text) && !isOpcodeMnemonic(toks[0].Text) {
		labels = append(labels, toks[0].Text)
		i = 1
		if i < len(toks) && toks[i].Kind == token.Colon {
			i++
		}
	}

	rest := toks[i:]
	if len(rest) == 0 {
		return Line{Labels: labels, Kind: KindEmpty, LineNo: lineNo}, nil
	}

	if rest[0].Kind == token.Ident {
		if k, ok := keywords[strings.ToUpper(rest[0].Text)]; ok {
			return Line{Labels: labels, Kind: k, Toks: rest[1:], LineNo: lineNo}, nil
		}
	}

	return Line{Labels: labels, Kind: KindInstr, Toks: rest, LineNo: lineNo}, nil
}

func isOpcodeMnemonic(s string) bool {
	_, ok := redcode.ParseOpcode(s)
	return ok
}

// Tokenize lexes source and regroups it into classified logical lines.
func Tokenize(source string) ([]Line, []token.MetadataLine, error) {
	lx := token.New(source)
	toks, err := lx.Lex()
	if err != nil {
		return nil, nil, err
	}
	var lines []Line
	for i, lineToks := range splitLines(toks) {
		ln, err := classify(lineToks, i+1)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, ln)
	}
	return lines, lx.Metadata, nil
}
