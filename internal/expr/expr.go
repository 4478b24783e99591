// Package expr evaluates the constant-expression language embedded in
// Redcode fields, FOR counts, and ORG/END arguments: + - * / % unary
// + - !, comparisons, and short-circuit && ||, all on i32 with
// wrapping overflow (spec §4.1).
package expr

import (
	"fmt"

	"github.com/cjr29/corewar/internal/token"
)

// Env resolves an identifier to its integer value. It returns false if
// the identifier is unknown.
type Env func(name string) (int32, bool)

// Node is one expression-tree node.
type Node interface {
	Eval(env Env) (int32, error)
}

type numberNode struct{ v int32 }

func (n numberNode) Eval(Env) (int32, error) { return n.v, nil }

type identNode struct {
	name string
	pos  string
}

func (n identNode) Eval(env Env) (int32, error) {
	v, ok := env(n.name)
	if !ok {
		return 0, fmt.Errorf("%s: unresolved identifier %q", n.pos, n.name)
	}
	return v, nil
}

type unaryNode struct {
	op  string
	x   Node
	pos string
}

func (n unaryNode) Eval(env Env) (int32, error) {
	v, err := n.x.Eval(env)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case "-":
		return -v, nil
	case "+":
		return v, nil
	case "!":
		return boolToI32(v == 0), nil
	default:
		return 0, fmt.Errorf("%s: bad unary operator %q", n.pos, n.op)
	}
}

type binaryNode struct {
	op   string
	l, r Node
	pos  string
}

func boolToI32(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

func (n binaryNode) Eval(env Env) (int32, error) {
	// Short-circuit booleans must not evaluate the right side eagerly.
	if n.op == "&&" {
		l, err := n.l.Eval(env)
		if err != nil {
			return 0, err
		}
		if l == 0 {
			return 0, nil
		}
		r, err := n.r.Eval(env)
		if err != nil {
			return 0, err
		}
		return boolToI32(r != 0), nil
	}
	if n.op == "||" {
		l, err := n.l.Eval(env)
		if err != nil {
			return 0, err
		}
		if l != 0 {
			return 1, nil
		}
		r, err := n.r.Eval(env)
		if err != nil {
			return 0, err
		}
		return boolToI32(r != 0), nil
	}

	l, err := n.l.Eval(env)
	if err != nil {
		return 0, err
	}
	r, err := n.r.Eval(env)
	if err != nil {
		return 0, err
	}
	switch n.op {
	case "+":
		return l + r, nil
	case "-":
		return l - r, nil
	case "*":
		return l * r, nil
	case "/":
		if r == 0 {
			return 0, fmt.Errorf("%s: division by zero in constant expression", n.pos)
		}
		return l / r, nil
	case "%":
		if r == 0 {
			return 0, fmt.Errorf("%s: modulo by zero in constant expression", n.pos)
		}
		return l % r, nil
	case "<":
		return boolToI32(l < r), nil
	case "<=":
		return boolToI32(l <= r), nil
	case ">":
		return boolToI32(l > r), nil
	case ">=":
		return boolToI32(l >= r), nil
	case "==":
		return boolToI32(l == r), nil
	case "!=":
		return boolToI32(l != r), nil
	default:
		return 0, fmt.Errorf("%s: bad binary operator %q", n.pos, n.op)
	}
}

// Eval parses and evaluates a token run in one step, a convenience for
// callers (like FOR counts) that just need the final value.
func Eval(toks []token.Token, env Env) (int32, error) {
	n, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return n.Eval(env)
}
