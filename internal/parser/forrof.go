package parser

import (
	"fmt"

	"github.com/cjr29/corewar/internal/expr"
	"github.com/cjr29/corewar/internal/token"
)

// Warning is a non-fatal diagnostic surfaced alongside a successful
// parse.
type Warning struct {
	Line    int
	Message string
}

// ExpandForRof implements spec §4.1 phase 3: FOR n ... ROF unrolls the
// enclosed lines max(0, n) times; an optional index label preceding
// FOR takes the values 1..n across iterations, substituted like an
// EQU. Nested FORs are supported; the innermost index label shadows
// an outer one of the same name (spec §9 open question).
func ExpandForRof(lines []Line, builtins map[string]int32) ([]Line, []Warning, error) {
	var warnings []Warning
	out, err := expandForRof(lines, builtins, nil, &warnings)
	return out, warnings, err
}

func expandForRof(lines []Line, builtins map[string]int32, active map[string]bool, warnings *[]Warning) ([]Line, error) {
	var out []Line
	i := 0
	for i < len(lines) {
		ln := lines[i]
		if ln.Kind != KindFor {
			out = append(out, ln)
			i++
			continue
		}

		depth := 1
		j := i + 1
		for ; j < len(lines); j++ {
			switch lines[j].Kind {
			case KindFor:
				depth++
			case KindRof:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if j == len(lines) {
			return nil, fmt.Errorf("line %d: FOR without matching ROF", ln.LineNo)
		}
		body := lines[i+1 : j]

		env := func(name string) (int32, bool) {
			v, ok := builtins[name]
			return v, ok
		}
		n, err := expr.Eval(ln.Toks, env)
		if err != nil {
			return nil, fmt.Errorf("line %d: FOR count must be a constant expression: %w", ln.LineNo, err)
		}
		count := int(n)
		if count < 0 {
			count = 0
		}

		indexName := ""
		if len(ln.Labels) > 0 {
			indexName = ln.Labels[0]
		}
		if indexName != "" && active[indexName] {
			*warnings = append(*warnings, Warning{
				Line:    ln.LineNo,
				Message: fmt.Sprintf("FOR index label %q shadows an outer loop index", indexName),
			})
		}
		nextActive := active
		if indexName != "" {
			nextActive = cloneActiveSet(active)
			nextActive[indexName] = true
		}

		for iter := 1; iter <= count; iter++ {
			iterBody := body
			if indexName != "" {
				iterBody = substituteLinesIdent(body, indexName, int32(iter))
			}
			expanded, err := expandForRof(iterBody, builtins, nextActive, warnings)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded...)
		}
		i = j + 1
	}
	return out, nil
}

func cloneActiveSet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}

// substituteLinesIdent replaces every occurrence of an identifier in
// each line's statement tokens (never its label declarations, which
// are new bindings, not references) with a literal number token. The
// body of a nested FOR that rebinds the same name as its index is left
// alone (its own count expression is still substituted), so the inner
// binding shadows this one.
func substituteLinesIdent(lines []Line, name string, value int32) []Line {
	out := make([]Line, len(lines))
	shadowDepth := 0
	for i, ln := range lines {
		toks := ln.Toks
		if shadowDepth == 0 {
			toks = substituteIdent(ln.Toks, name, value)
		}
		switch {
		case ln.Kind == KindFor && (shadowDepth > 0 || (len(ln.Labels) > 0 && ln.Labels[0] == name)):
			shadowDepth++
		case ln.Kind == KindRof && shadowDepth > 0:
			shadowDepth--
		}
		out[i] = Line{
			Labels: ln.Labels,
			Kind:   ln.Kind,
			Toks:   toks,
			LineNo: ln.LineNo,
		}
	}
	return out
}

func substituteIdent(toks []token.Token, name string, value int32) []token.Token {
	out := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind == token.Ident && t.Text == name {
			out = append(out, token.Token{Kind: token.Number, Text: fmt.Sprintf("%d", value), Line: t.Line, Col: t.Col})
			continue
		}
		out = append(out, t)
	}
	return out
}
