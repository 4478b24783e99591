package parser

// Limits carries the subset of CoreConfig the parser needs to bind
// the builtin identifiers CORESIZE/MAXCYCLES/MAXPROCESSES/MAXLENGTH/
// MINDISTANCE (spec §4.1 phase 5). Defined locally (rather than
// imported from internal/core) so the parser never depends on the
// simulation engine — config flows in from the caller instead of
// living behind a package global (spec §9 "Global state").
type Limits struct {
	CoreSize     int
	MaxCycles    int
	MaxProcesses int
	MaxLength    int
	MinDistance  int
}

// Builtins returns the static label -> value table for a given set of
// limits. CURLINE is bound later, per instruction, by the assembler
// since it depends on the instruction's own index.
func (l Limits) Builtins() map[string]int32 {
	return map[string]int32{
		"CORESIZE":     int32(l.CoreSize),
		"MAXCYCLES":    int32(l.MaxCycles),
		"MAXPROCESSES": int32(l.MaxProcesses),
		"MAXLENGTH":    int32(l.MaxLength),
		"MINDISTANCE":  int32(l.MinDistance),
	}
}

// Prepare runs phases 1-3 of spec §4.1: tokenize, expand EQU
// substitutions, unroll FOR/ROF. The result is a flat sequence of
// label/ORG/END/instruction lines ready for label collection in
// internal/assemble.
func Prepare(source string, limits Limits) ([]Line, []Warning, error) {
	lines, _, err := Tokenize(source)
	if err != nil {
		return nil, nil, err
	}
	lines, err = ExpandEqu(lines)
	if err != nil {
		return nil, nil, err
	}
	lines, warnings, err := ExpandForRof(lines, limits.Builtins())
	if err != nil {
		return nil, warnings, err
	}
	out := lines[:0]
	for _, ln := range lines {
		if ln.Kind == KindEmpty && len(ln.Labels) == 0 {
			continue // blank or comment-only line
		}
		out = append(out, ln)
	}
	return out, warnings, nil
}

// Metadata re-exposes the metadata comments recognized while
// tokenizing, since Prepare only returns post-expansion statement
// lines.
func Metadata(source string) (name, author, strategy string) {
	_, meta, err := Tokenize(source)
	if err != nil {
		return "", "", ""
	}
	for _, m := range meta {
		switch m.Key {
		case "name":
			name = m.Text
		case "author":
			author = m.Text
		case "strategy":
			strategy = m.Text
		}
	}
	return
}
