package parser

import (
	"fmt"

	"github.com/cjr29/corewar/internal/token"
)

// ExpandEqu implements spec §4.1 phase 2: each EQU binds a label to
// raw token text; every later non-declaration occurrence of that
// label is textually replaced before further parsing of its line.
// EQU text may reference earlier EQUs (substituted eagerly, at
// definition time); redefinition and self-recursion are errors.
func ExpandEqu(lines []Line) ([]Line, error) {
	defs := map[string][]token.Token{}
	continuing := "" // name of the EQU def still accepting continuation lines

	out := make([]Line, 0, len(lines))
	for _, ln := range lines {
		if ln.Kind == KindEqu {
			if len(ln.Labels) == 0 {
				// continuation: "EQU ..." with no label, appends to
				// the most recently opened definition.
				if continuing == "" {
					return nil, fmt.Errorf("line %d: EQU continuation with no preceding definition", ln.LineNo)
				}
				body, err := substitute(ln.Toks, defs)
				if err != nil {
					return nil, err
				}
				defs[continuing] = append(defs[continuing], body...)
				continue
			}
			name := ln.Labels[0]
			if _, dup := defs[name]; dup {
				return nil, fmt.Errorf("line %d: EQU redefinition of %q", ln.LineNo, name)
			}
			body, err := substitute(ln.Toks, defs)
			if err != nil {
				return nil, err
			}
			if referencesSelf(body, name) {
				return nil, fmt.Errorf("line %d: EQU %q is self-recursive", ln.LineNo, name)
			}
			defs[name] = body
			continuing = name
			continue
		}

		continuing = ""
		substToks, err := substitute(ln.Toks, defs)
		if err != nil {
			return nil, err
		}
		out = append(out, Line{Labels: ln.Labels, Kind: ln.Kind, Toks: substToks, LineNo: ln.LineNo})
	}
	return out, nil
}

// substitute replaces every identifier token matching a known EQU
// name with that EQU's bound token run.
func substitute(toks []token.Token, defs map[string][]token.Token) ([]token.Token, error) {
	var out []token.Token
	for _, t := range toks {
		if t.Kind == token.Ident {
			if body, ok := defs[t.Text]; ok {
				out = append(out, body...)
				continue
			}
		}
		out = append(out, t)
	}
	return out, nil
}

func referencesSelf(toks []token.Token, name string) bool {
	for _, t := range toks {
		if t.Kind == token.Ident && t.Text == name {
			return true
		}
	}
	return false
}
