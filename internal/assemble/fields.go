package assemble

import (
	"fmt"

	"github.com/cjr29/corewar/internal/expr"
	"github.com/cjr29/corewar/internal/redcode"
	"github.com/cjr29/corewar/internal/token"
)

// splitFields splits an instruction's operand tokens on top-level
// commas (spec §4.1: "<field>[, <field>]"). Redcode fields never
// contain a bare top-level comma, so paren depth is tracked only
// defensively.
func splitFields(toks []token.Token) [][]token.Token {
	var groups [][]token.Token
	var cur []token.Token
	depth := 0
	for _, t := range toks {
		switch t.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
		if t.Kind == token.Comma && depth == 0 {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	if len(cur) > 0 || len(groups) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

func isSigilToken(t token.Token) bool {
	return t.Kind == token.Sigil || (t.Kind == token.Op && token.IsSigilText(t.Text))
}

// parseField resolves one field's addressing-mode sigil (defaulting to
// Direct when omitted, the common Redcode convention) and evaluates
// its expression.
func parseField(group []token.Token, env expr.Env) (redcode.Field, error) {
	if len(group) == 0 {
		return redcode.Field{}, fmt.Errorf("missing field")
	}
	mode := redcode.Direct
	start := 0
	if isSigilToken(group[0]) {
		m, ok := redcode.ModeFromSigil(group[0].Text[0])
		if !ok {
			return redcode.Field{}, fmt.Errorf("%s: invalid addressing mode %q", group[0].Pos(), group[0].Text)
		}
		mode = m
		start = 1
	}
	exprToks := group[start:]
	if len(exprToks) == 0 {
		return redcode.Field{}, fmt.Errorf("%s: field has no value", group[0].Pos())
	}
	v, err := expr.Eval(exprToks, env)
	if err != nil {
		return redcode.Field{}, err
	}
	return redcode.Field{Mode: mode, Value: int(v)}, nil
}
