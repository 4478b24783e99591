package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjr29/corewar/internal/expr"
	"github.com/cjr29/corewar/internal/token"
)

func lex(t *testing.T, src string) []token.Token {
	t.Helper()
	toks, err := token.New(src).Lex()
	require.NoError(t, err)
	// drop the trailing EOL/EOF the lexer always appends for one line.
	out := toks[:0:0]
	for _, tk := range toks {
		if tk.Kind == token.EOL || tk.Kind == token.EOF {
			continue
		}
		out = append(out, tk)
	}
	return out
}

func eval(t *testing.T, src string, env expr.Env) int32 {
	t.Helper()
	v, err := expr.Eval(lex(t, src), env)
	require.NoError(t, err)
	return v
}

func noEnv(string) (int32, bool) { return 0, false }

func TestArithmeticPrecedence(t *testing.T) {
	assert.EqualValues(t, 14, eval(t, "2+3*4", noEnv))
	assert.EqualValues(t, 20, eval(t, "(2+3)*4", noEnv))
	assert.EqualValues(t, -1, eval(t, "-1", noEnv))
	assert.EqualValues(t, 7, eval(t, "10-3*1", noEnv))
}

func TestTruncatingDivision(t *testing.T) {
	assert.EqualValues(t, 2, eval(t, "7/3", noEnv))
	assert.EqualValues(t, 1, eval(t, "7%3", noEnv))
}

func TestComparisonsAndBooleans(t *testing.T) {
	assert.EqualValues(t, 1, eval(t, "3<4", noEnv))
	assert.EqualValues(t, 0, eval(t, "3>4", noEnv))
	assert.EqualValues(t, 1, eval(t, "1==1 && 2==2", noEnv))
	assert.EqualValues(t, 1, eval(t, "0 || 1", noEnv))
	assert.EqualValues(t, 0, eval(t, "!1", noEnv))
}

func TestShortCircuitDoesNotResolveRHS(t *testing.T) {
	env := func(name string) (int32, bool) {
		if name == "UNRESOLVED" {
			return 0, false
		}
		return 0, false
	}
	// && short-circuits on a false LHS without evaluating RHS.
	assert.EqualValues(t, 0, eval(t, "0 && UNRESOLVED", env))
	assert.EqualValues(t, 1, eval(t, "1 || UNRESOLVED", env))
}

func TestIdentifierLookup(t *testing.T) {
	env := func(name string) (int32, bool) {
		if name == "CORESIZE" {
			return 8000, true
		}
		return 0, false
	}
	assert.EqualValues(t, 8000, eval(t, "CORESIZE", env))
	_, err := expr.Eval(lex(t, "UNKNOWN"), env)
	assert.Error(t, err)
}

func TestOverflowWraps(t *testing.T) {
	big := "2147483647+1"
	assert.EqualValues(t, int32(-2147483648), eval(t, big, noEnv))
}
