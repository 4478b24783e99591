package assemble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjr29/corewar/internal/assemble"
	"github.com/cjr29/corewar/internal/redcode"
)

var limits = assemble.Limits{CoreSize: 8000, MaxCycles: 80000, MaxProcesses: 8000, MaxLength: 100, MinDistance: 100}

func TestAssembleImp(t *testing.T) {
	w, warnings, err := assemble.Assemble("MOV $0, $1\n", limits)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, w.Program.Instructions, 1)
	inst := w.Program.Instructions[0]
	assert.Equal(t, redcode.MOV, inst.Opcode)
	assert.Equal(t, redcode.ModI, inst.Modifier)
	assert.Equal(t, 0, inst.A.Value)
	assert.Equal(t, 1, inst.B.Value)
	assert.Equal(t, 0, w.Program.Origin)
}

func TestAssembleDwarf(t *testing.T) {
	src := `ADD #4, $3
MOV $2, @2
JMP $-2, $0
DAT #0, #0
`
	w, _, err := assemble.Assemble(src, limits)
	require.NoError(t, err)
	require.Len(t, w.Program.Instructions, 4)
	assert.Equal(t, redcode.ADD, w.Program.Instructions[0].Opcode)
	assert.Equal(t, redcode.JMP, w.Program.Instructions[2].Opcode)
	assert.Equal(t, -2, w.Program.Instructions[2].A.Value)
}

func TestLabelResolutionIsRelative(t *testing.T) {
	src := "loop ADD #1, $1\nJMP $loop, $0\n"
	w, _, err := assemble.Assemble(src, limits)
	require.NoError(t, err)
	// "loop" is instruction index 0; JMP is instruction index 1.
	// relative offset = 0 - 1 = -1.
	assert.Equal(t, -1, w.Program.Instructions[1].A.Value)
}

func TestUnresolvedIdentifierErrors(t *testing.T) {
	_, _, err := assemble.Assemble("JMP $nowhere, $0\n", limits)
	assert.Error(t, err)
}

func TestDuplicateLabelErrors(t *testing.T) {
	src := "x DAT #0, #0\nx DAT #0, #0\n"
	_, _, err := assemble.Assemble(src, limits)
	assert.Error(t, err)
}

func TestCurlineBuiltin(t *testing.T) {
	src := "DAT #0, #0\nDAT #CURLINE, #0\n"
	w, _, err := assemble.Assemble(src, limits)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Program.Instructions[1].A.Value)
}

func TestEmptyWarriorWarns(t *testing.T) {
	_, warnings, err := assemble.Assemble("; just a comment\n", limits)
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
}

func TestOrgSetsOrigin(t *testing.T) {
	src := "ORG start\nDAT #0, #0\nstart MOV $0, $1\n"
	w, _, err := assemble.Assemble(src, limits)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Program.Origin)
}

func TestDefaultModifierWhenOmitted(t *testing.T) {
	w, _, err := assemble.Assemble("ADD #1, #2\n", limits)
	require.NoError(t, err)
	assert.Equal(t, redcode.ModAB, w.Program.Instructions[0].Modifier)
}

func TestCanonicalDumpRoundTrips(t *testing.T) {
	w, _, err := assemble.Assemble("MOV $0, $1\n", limits)
	require.NoError(t, err)
	dumped := w.Program.Instructions[0].String()
	w2, _, err := assemble.Assemble(dumped+"\n", limits)
	require.NoError(t, err)
	assert.Equal(t, w.Program.Instructions, w2.Program.Instructions)
}
