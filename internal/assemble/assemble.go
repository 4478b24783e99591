// Package assemble implements the back half of Redcode assembly:
// label collection, label-relative expression resolution,
// default-modifier filling, and
// emission of a resolved redcode.Program (spec §4.1 phases 4-7). The
// front half — tokenizing, EQU/FOR expansion — lives in
// internal/parser.
package assemble

import (
	"fmt"

	"github.com/cjr29/corewar/internal/expr"
	"github.com/cjr29/corewar/internal/offset"
	"github.com/cjr29/corewar/internal/parser"
	"github.com/cjr29/corewar/internal/redcode"
	"github.com/cjr29/corewar/internal/token"
)

// Limits is an alias of parser.Limits so callers only need to import
// one config shape.
type Limits = parser.Limits

// Warning is a non-fatal diagnostic.
type Warning = parser.Warning

var builtinNames = map[string]bool{
	"CORESIZE": true, "MAXCYCLES": true, "MAXPROCESSES": true,
	"MAXLENGTH": true, "MINDISTANCE": true, "CURLINE": true,
}

// Assemble implements spec §4.1's public contract:
// parse(source_text) -> (Warrior, []Warning) | (error, []Warning).
func Assemble(source string, limits Limits) (redcode.Warrior, []Warning, error) {
	lines, warnings, err := parser.Prepare(source, limits)
	if err != nil {
		return redcode.Warrior{}, warnings, err
	}
	name, author, strategy := parser.Metadata(source)

	labelMap := map[string]int{}
	var instrLines []parser.Line
	var pendingLabels []string
	var originToks []token.Token
	originSet := false
	originCurLine := 0

	for _, ln := range lines {
		switch ln.Kind {
		case parser.KindEmpty:
			pendingLabels = append(pendingLabels, ln.Labels...)
		case parser.KindOrg, parser.KindEnd:
			if originSet {
				return redcode.Warrior{}, warnings, fmt.Errorf("line %d: ORG/END origin set twice", ln.LineNo)
			}
			originSet = true
			originToks = ln.Toks
			originCurLine = len(instrLines)
			pendingLabels = append(pendingLabels, ln.Labels...)
			if ln.Kind == parser.KindEnd {
				goto doneCollecting
			}
		case parser.KindInstr:
			all := append(pendingLabels, ln.Labels...)
			pendingLabels = nil
			for _, lbl := range all {
				if _, dup := labelMap[lbl]; dup {
					return redcode.Warrior{}, warnings, fmt.Errorf("line %d: duplicate label %q", ln.LineNo, lbl)
				}
				if builtinNames[lbl] {
					warnings = append(warnings, Warning{Line: ln.LineNo, Message: fmt.Sprintf("label %q shadows a builtin identifier", lbl)})
				}
				labelMap[lbl] = len(instrLines)
			}
			instrLines = append(instrLines, ln)
		default:
			return redcode.Warrior{}, warnings, fmt.Errorf("line %d: unexpected statement after expansion", ln.LineNo)
		}
	}
doneCollecting:

	n := len(instrLines)
	if n == 0 {
		warnings = append(warnings, Warning{Message: "warrior has no instructions"})
	}

	builtins := limits.Builtins()
	envFor := func(curLine int) expr.Env {
		return func(name string) (int32, bool) {
			if idx, ok := labelMap[name]; ok {
				return int32(idx - curLine), true
			}
			if name == "CURLINE" {
				return int32(curLine), true
			}
			if v, ok := builtins[name]; ok {
				return v, true
			}
			return 0, false
		}
	}

	instructions := make([]redcode.Instruction, n)
	for i, ln := range instrLines {
		inst, err := resolveInstruction(ln, envFor(i))
		if err != nil {
			return redcode.Warrior{}, warnings, err
		}
		instructions[i] = inst
	}

	origin := 0
	if originSet && len(originToks) > 0 {
		v, err := expr.Eval(originToks, envFor(originCurLine))
		if err != nil {
			return redcode.Warrior{}, warnings, fmt.Errorf("ORG/END: %w", err)
		}
		origin = offset.New(int(v), builtinInt(builtins, "CORESIZE")).Value()
	}
	if n > 0 && (origin < 0 || origin >= n) {
		warnings = append(warnings, Warning{Message: fmt.Sprintf("ORG %d points past the last instruction (len=%d)", origin, n)})
	}

	w := redcode.Warrior{
		Program: redcode.Program{Instructions: instructions, Origin: origin},
		Metadata: redcode.Metadata{
			Name:     name,
			Author:   author,
			Strategy: strategy,
		},
	}
	return w, warnings, nil
}

func builtinInt(b map[string]int32, name string) int {
	return int(b[name])
}

func resolveInstruction(ln parser.Line, env expr.Env) (redcode.Instruction, error) {
	toks := ln.Toks
	if len(toks) == 0 {
		return redcode.Instruction{}, fmt.Errorf("line %d: empty instruction", ln.LineNo)
	}
	opcode, ok := redcode.ParseOpcode(toks[0].Text)
	if !ok {
		return redcode.Instruction{}, fmt.Errorf("%s: unknown opcode %q", toks[0].Pos(), toks[0].Text)
	}
	idx := 1
	var explicitMod *redcode.Modifier
	if idx < len(toks) && toks[idx].Kind == token.Dot {
		idx++
		if idx >= len(toks) {
			return redcode.Instruction{}, fmt.Errorf("%s: missing modifier after '.'", toks[idx-1].Pos())
		}
		m, ok := redcode.ParseModifier(toks[idx].Text)
		if !ok {
			return redcode.Instruction{}, fmt.Errorf("%s: unknown modifier %q", toks[idx].Pos(), toks[idx].Text)
		}
		explicitMod = &m
		idx++
	}

	groups := splitFields(toks[idx:])
	if len(groups) == 0 {
		return redcode.Instruction{}, fmt.Errorf("line %d: %s requires at least one field", ln.LineNo, opcode)
	}
	if len(groups) > 2 {
		return redcode.Instruction{}, fmt.Errorf("line %d: too many fields for %s", ln.LineNo, opcode)
	}

	aField, err := parseField(groups[0], env)
	if err != nil {
		return redcode.Instruction{}, err
	}
	bField := redcode.Field{Mode: redcode.Direct, Value: 0}
	if len(groups) == 2 {
		bField, err = parseField(groups[1], env)
		if err != nil {
			return redcode.Instruction{}, err
		}
	}

	modifier := explicitMod
	if modifier == nil {
		m := redcode.DefaultModifier(opcode, aField.Mode, bField.Mode)
		modifier = &m
	}

	return redcode.Instruction{Opcode: opcode, Modifier: *modifier, A: aField, B: bField}, nil
}
