// Package redcode holds the Redcode instruction model: opcodes,
// modifiers, addressing modes, fields, instructions, and the resolved
// program/warrior types produced by the assembler.
package redcode

import "strings"

// Opcode identifies a Redcode instruction mnemonic.
type Opcode byte

// The ICWS-94 opcode set. LDP/STP are recognized by the grammar but
// rejected at load time; see spec §9.
const (
	DAT Opcode = iota
	MOV
	ADD
	SUB
	MUL
	DIV
	MOD
	JMP
	JMZ
	JMN
	DJN
	CMP
	SEQ
	SNE
	SLT
	SPL
	NOP
	LDP
	STP
)

var opcodeNames = map[Opcode]string{
	DAT: "DAT", MOV: "MOV", ADD: "ADD", SUB: "SUB", MUL: "MUL",
	DIV: "DIV", MOD: "MOD", JMP: "JMP", JMZ: "JMZ", JMN: "JMN",
	DJN: "DJN", CMP: "CMP", SEQ: "SEQ", SNE: "SNE", SLT: "SLT",
	SPL: "SPL", NOP: "NOP", LDP: "LDP", STP: "STP",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "???"
}

// ParseOpcode resolves a mnemonic (case-insensitive) to an Opcode.
// CMP and SEQ are synonyms in source text: both decode to CMP, so
// ParseOpcode never returns the SEQ constant.
func ParseOpcode(s string) (Opcode, bool) {
	switch strings.ToUpper(s) {
	case "DAT":
		return DAT, true
	case "MOV":
		return MOV, true
	case "ADD":
		return ADD, true
	case "SUB":
		return SUB, true
	case "MUL":
		return MUL, true
	case "DIV":
		return DIV, true
	case "MOD":
		return MOD, true
	case "JMP":
		return JMP, true
	case "JMZ":
		return JMZ, true
	case "JMN":
		return JMN, true
	case "DJN":
		return DJN, true
	case "CMP", "SEQ":
		return CMP, true
	case "SNE":
		return SNE, true
	case "SLT":
		return SLT, true
	case "SPL":
		return SPL, true
	case "NOP":
		return NOP, true
	case "LDP":
		return LDP, true
	case "STP":
		return STP, true
	default:
		return 0, false
	}
}

// Modifier selects which field(s) of the source/destination an opcode
// acts on.
type Modifier byte

const (
	ModA Modifier = iota
	ModB
	ModAB
	ModBA
	ModF
	ModX
	ModI
)

var modifierNames = map[Modifier]string{
	ModA: "A", ModB: "B", ModAB: "AB", ModBA: "BA",
	ModF: "F", ModX: "X", ModI: "I",
}

func (m Modifier) String() string {
	if s, ok := modifierNames[m]; ok {
		return s
	}
	return "?"
}

// ParseModifier resolves a modifier mnemonic (case-insensitive).
func ParseModifier(s string) (Modifier, bool) {
	switch strings.ToUpper(s) {
	case "A":
		return ModA, true
	case "B":
		return ModB, true
	case "AB":
		return ModAB, true
	case "BA":
		return ModBA, true
	case "F":
		return ModF, true
	case "X":
		return ModX, true
	case "I":
		return ModI, true
	default:
		return 0, false
	}
}

// Mode is a field's addressing mode sigil.
type Mode byte

const (
	Immediate Mode = iota
	Direct
	IndirectA
	IndirectB
	PredecA
	PredecB
	PostincA
	PostincB
)

var modeSigils = map[Mode]byte{
	Immediate: '#', Direct: '$', IndirectA: '*', IndirectB: '@',
	PredecA: '{', PredecB: '<', PostincA: '}', PostincB: '>',
}

func (m Mode) String() string { return string(modeSigils[m]) }

// ModeFromSigil resolves an addressing-mode sigil character.
func ModeFromSigil(c byte) (Mode, bool) {
	for m, s := range modeSigils {
		if s == c {
			return m, true
		}
	}
	return 0, false
}

// DefaultModifier implements the ICWS-94 (opcode, A-mode, B-mode) ->
// modifier table from spec §4.1 step 6.
func DefaultModifier(op Opcode, aMode, bMode Mode) Modifier {
	switch op {
	case DAT:
		return ModF
	case MOV, CMP, SNE:
		if aMode == Immediate {
			return ModAB
		}
		if bMode == Immediate {
			return ModB
		}
		return ModI
	case ADD, SUB, MUL, DIV, MOD:
		if aMode == Immediate {
			return ModAB
		}
		if bMode == Immediate {
			return ModB
		}
		return ModF
	case SLT:
		if aMode == Immediate {
			return ModAB
		}
		return ModB
	case JMP, JMZ, JMN, DJN, SPL, NOP:
		return ModB
	default:
		return ModF
	}
}
