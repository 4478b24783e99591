package expr

import (
	"fmt"

	"github.com/cjr29/corewar/internal/token"
)

// precedence climbing, lowest to highest:
//
//	|| && (==  != < <= > >=) (+ -) (* / %) unary
var precedence = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, "<=": 3, ">": 3, ">=": 3,
	"+": 4, "-": 4,
	"*": 5, "/": 5, "%": 5,
}

type tparser struct {
	toks []token.Token
	pos  int
}

// Parse builds an expression tree from a token run. The run must not
// contain EOL/EOF tokens and must be a single complete expression.
func Parse(toks []token.Token) (Node, error) {
	p := &tparser{toks: toks}
	if len(p.toks) == 0 {
		return nil, fmt.Errorf("empty expression")
	}
	n, err := p.parseBinary(0)
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		t := p.toks[p.pos]
		return nil, fmt.Errorf("%s: unexpected token %q", t.Pos(), t.Text)
	}
	return n, nil
}

func (p *tparser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *tparser) parseBinary(minPrec int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		t, ok := p.peek()
		if !ok {
			return left, nil
		}
		prec, isOp := precedence[t.Text]
		if !isOp || prec < minPrec {
			return left, nil
		}
		p.pos++
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: t.Text, l: left, r: right, pos: t.Pos()}
	}
}

func (p *tparser) parseUnary() (Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	if t.Text == "-" || t.Text == "+" || t.Text == "!" {
		p.pos++
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: t.Text, x: x, pos: t.Pos()}, nil
	}
	return p.parsePrimary()
}

func (p *tparser) parsePrimary() (Node, error) {
	t, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	switch t.Kind {
	case token.Number:
		p.pos++
		var v int64
		for _, c := range t.Text {
			v = v*10 + int64(c-'0')
		}
		return numberNode{v: int32(v)}, nil
	case token.Ident:
		p.pos++
		return identNode{name: t.Text, pos: t.Pos()}, nil
	case token.LParen:
		p.pos++
		inner, err := p.parseBinary(0)
		if err != nil {
			return nil, err
		}
		rp, ok := p.peek()
		if !ok || rp.Kind != token.RParen {
			return nil, fmt.Errorf("%s: expected ')'", t.Pos())
		}
		p.pos++
		return inner, nil
	default:
		return nil, fmt.Errorf("%s: unexpected token %q in expression", t.Pos(), t.Text)
	}
}
