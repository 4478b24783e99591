package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjr29/corewar/internal/assemble"
	"github.com/cjr29/corewar/internal/core"
	"github.com/cjr29/corewar/internal/redcode"
)

func smallConfig() core.Config {
	return core.Config{
		CoreSize:         80,
		MaxCycles:        2000,
		MaxProcesses:     64,
		MaxWarriorLength: 20,
		MinDistance:      20,
		PSpace:           10,
	}
}

func assembleOrFail(t *testing.T, src string, cfg core.Config) redcode.Warrior {
	t.Helper()
	w, _, err := assemble.Assemble(src, cfg.Limits())
	require.NoError(t, err)
	return w
}

func TestImpCopiesItselfForever(t *testing.T) {
	cfg := smallConfig()
	c := core.NewCore(cfg)
	imp := assembleOrFail(t, "MOV $0, $1\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{imp}, rand.New(rand.NewSource(1))))

	for i := 0; i < 500; i++ {
		require.True(t, c.Step())
	}
	assert.True(t, c.Alive(0))
}

func TestSingleWarriorLosesOnSuicide(t *testing.T) {
	cfg := smallConfig()
	c := core.NewCore(cfg)
	suicide := assembleOrFail(t, "DAT #0, #0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{suicide}, rand.New(rand.NewSource(1))))

	outcomes := c.Run()
	require.Len(t, outcomes, 1)
	assert.Equal(t, core.OutcomeLoss, outcomes[0])
	assert.False(t, c.Alive(0))
	assert.Error(t, c.DeathCause(0))
}

func TestSingleWarriorSurvivesToCycleLimitWins(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxCycles = 50
	c := core.NewCore(cfg)
	nop := assembleOrFail(t, "NOP $0, $0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{nop}, rand.New(rand.NewSource(1))))

	outcomes := c.Run()
	assert.Equal(t, core.OutcomeWin, outcomes[0])
	assert.Equal(t, 50, c.CyclesRun())
}

func TestDwarfBeatsSuicide(t *testing.T) {
	cfg := smallConfig()
	c := core.NewCore(cfg)
	dwarf := assembleOrFail(t, "ADD #4, $3\nMOV $2, @2\nJMP $-2, $0\nDAT #0, #0\n", cfg)
	suicide := assembleOrFail(t, "DAT #0, #0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{dwarf, suicide}, rand.New(rand.NewSource(7))))

	outcomes := c.Run()
	require.Len(t, outcomes, 2)
	assert.Equal(t, core.OutcomeWin, outcomes[0])
	assert.Equal(t, core.OutcomeLoss, outcomes[1])
	assert.False(t, c.Alive(1))
}

func TestRunStopsAsSoonAsOneSurvivorRemains(t *testing.T) {
	cfg := smallConfig()
	c := core.NewCore(cfg)
	suicide := assembleOrFail(t, "DAT #0, #0\n", cfg)
	loop := assembleOrFail(t, "JMP $0, $0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{suicide, loop}, rand.New(rand.NewSource(1))))

	outcomes := c.Run()
	assert.Equal(t, core.OutcomeLoss, outcomes[0])
	assert.Equal(t, core.OutcomeWin, outcomes[1])
	// The loser dies on the first cycle; the scheduler must declare
	// the survivor a winner immediately rather than stepping it all
	// the way to max_cycles.
	assert.Less(t, c.CyclesRun(), cfg.MaxCycles)
}

func TestMutualSuicideIsATie(t *testing.T) {
	cfg := smallConfig()
	c := core.NewCore(cfg)
	a := assembleOrFail(t, "DAT #0, #0\n", cfg)
	b := assembleOrFail(t, "DAT #0, #0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{a, b}, rand.New(rand.NewSource(3))))

	outcomes := c.Run()
	assert.Equal(t, core.OutcomeTie, outcomes[0])
	assert.Equal(t, core.OutcomeTie, outcomes[1])
}

func TestDivideByZeroKillsThread(t *testing.T) {
	cfg := smallConfig()
	c := core.NewCore(cfg)
	divZero := assembleOrFail(t, "DIV #0, $0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{divZero}, rand.New(rand.NewSource(1))))

	require.True(t, c.Step())
	assert.False(t, c.Alive(0))
	_, isDivZero := c.DeathCause(0).(core.DivideByZeroError)
	assert.True(t, isDivZero)
}

func TestSplitCapsAtMaxProcesses(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxProcesses = 2
	c := core.NewCore(cfg)
	splitter := assembleOrFail(t, "SPL $1, $0\nJMP $-1, $0\n", cfg)
	require.NoError(t, c.LoadWarriors([]redcode.Warrior{splitter}, rand.New(rand.NewSource(1))))

	for i := 0; i < 20; i++ {
		require.True(t, c.Step())
	}
	assert.True(t, c.Alive(0))
}

func TestMinDistanceTooLargeErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.MinDistance = 1000
	c := core.NewCore(cfg)
	w := assembleOrFail(t, "NOP $0, $0\n", cfg)
	err := c.LoadWarriors([]redcode.Warrior{w, w}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	var target core.MinDistanceTooLargeError
	assert.ErrorAs(t, err, &target)
}

func TestWarriorTooLongErrors(t *testing.T) {
	cfg := smallConfig()
	cfg.MaxWarriorLength = 1
	c := core.NewCore(cfg)
	w := assembleOrFail(t, "NOP $0, $0\nNOP $0, $0\n", cfg)
	err := c.LoadWarriors([]redcode.Warrior{w}, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	var target core.WarriorTooLongError
	assert.ErrorAs(t, err, &target)
}
