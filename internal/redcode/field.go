package redcode

import "fmt"

// Field is one operand of an instruction: an addressing mode plus a
// resolved signed value (already reduced to a relative offset or raw
// immediate by the assembler — see spec §4.1 step 5).
type Field struct {
	Mode  Mode
	Value int
}

func (f Field) String() string {
	return fmt.Sprintf("%s%d", f.Mode, f.Value)
}

// Instruction is a single resolved Redcode instruction: opcode,
// modifier, and two addressed fields.
type Instruction struct {
	Opcode   Opcode
	Modifier Modifier
	A        Field
	B        Field
}

// String renders the canonical load-file form from spec §6:
// "OPCODE.MOD <A-mode><A-value>, <B-mode><B-value>", opcode column
// fixed-width at 8 characters.
func (i Instruction) String() string {
	head := fmt.Sprintf("%s.%s", i.Opcode, i.Modifier)
	return fmt.Sprintf("%-8s%s, %s", head, i.A, i.B)
}

// Default returns the core's default-filled instruction: DAT.F $0, $0.
func Default() Instruction {
	return Instruction{
		Opcode:   DAT,
		Modifier: ModF,
		A:        Field{Mode: Direct, Value: 0},
		B:        Field{Mode: Direct, Value: 0},
	}
}
