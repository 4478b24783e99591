package redcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjr29/corewar/internal/redcode"
)

func TestDefaultModifierTable(t *testing.T) {
	assert.Equal(t, redcode.ModF, redcode.DefaultModifier(redcode.DAT, redcode.Direct, redcode.Direct))
	assert.Equal(t, redcode.ModAB, redcode.DefaultModifier(redcode.MOV, redcode.Immediate, redcode.Direct))
	assert.Equal(t, redcode.ModB, redcode.DefaultModifier(redcode.MOV, redcode.Direct, redcode.Immediate))
	assert.Equal(t, redcode.ModI, redcode.DefaultModifier(redcode.MOV, redcode.Direct, redcode.Direct))
	assert.Equal(t, redcode.ModF, redcode.DefaultModifier(redcode.ADD, redcode.Direct, redcode.Direct))
	assert.Equal(t, redcode.ModB, redcode.DefaultModifier(redcode.SLT, redcode.Direct, redcode.Direct))
	assert.Equal(t, redcode.ModAB, redcode.DefaultModifier(redcode.SLT, redcode.Immediate, redcode.Direct))
	assert.Equal(t, redcode.ModB, redcode.DefaultModifier(redcode.JMP, redcode.Direct, redcode.Direct))
	assert.Equal(t, redcode.ModB, redcode.DefaultModifier(redcode.NOP, redcode.Direct, redcode.Direct))
}

func TestInstructionStringCanonical(t *testing.T) {
	i := redcode.Instruction{
		Opcode:   redcode.MOV,
		Modifier: redcode.ModI,
		A:        redcode.Field{Mode: redcode.Direct, Value: 0},
		B:        redcode.Field{Mode: redcode.Direct, Value: 1},
	}
	assert.Equal(t, "MOV.I   $0, $1", i.String())
}

func TestDefaultInstructionIsDatF00(t *testing.T) {
	d := redcode.Default()
	assert.Equal(t, redcode.DAT, d.Opcode)
	assert.Equal(t, redcode.ModF, d.Modifier)
	assert.Equal(t, 0, d.A.Value)
	assert.Equal(t, 0, d.B.Value)
}

func TestParseOpcodeCaseInsensitive(t *testing.T) {
	op, ok := redcode.ParseOpcode("mov")
	assert.True(t, ok)
	assert.Equal(t, redcode.MOV, op)

	_, ok = redcode.ParseOpcode("nope")
	assert.False(t, ok)
}
