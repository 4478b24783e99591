package core

import (
	"fmt"

	"github.com/cjr29/corewar/internal/offset"
	"github.com/cjr29/corewar/internal/queue"
	"github.com/cjr29/corewar/internal/redcode"
)

// RNG is the minimal seedable-source interface LoadWarriors needs for
// placement. *math/rand.Rand satisfies it, letting callers pick a
// deterministic seed for reproducible battles.
type RNG interface {
	Intn(n int) int
}

// Core is the circular memory arena plus the bookkeeping a battle
// needs: which warrior owns which thread, who is still alive, and why
// the dead died.
type Core struct {
	cfg    Config
	cells  []redcode.Instruction
	queue  *queue.Queue
	names  []string
	alive  []bool
	causes []error
	cycles int
}

// NewCore allocates a core_size ring, every cell defaulted to DAT.F $0,
// $0 per spec §4.2.
func NewCore(cfg Config) *Core {
	cells := make([]redcode.Instruction, cfg.CoreSize)
	for i := range cells {
		cells[i] = redcode.Default()
	}
	return &Core{cfg: cfg, cells: cells}
}

// Len reports core_size.
func (c *Core) Len() int { return len(c.cells) }

// Config returns the core's configuration.
func (c *Core) Config() Config { return c.cfg }

// CyclesRun reports how many scheduler steps have executed so far,
// whether through Run or direct Step calls.
func (c *Core) CyclesRun() int { return c.cycles }

// NumWarriors reports how many warriors were loaded.
func (c *Core) NumWarriors() int { return len(c.names) }

// Name returns the display name of warrior w.
func (c *Core) Name(w int) string { return c.names[w] }

// Alive reports whether warrior w still has at least one live thread.
func (c *Core) Alive(w int) bool { return c.alive[w] }

// DeathCause returns the reason warrior w died, or nil if it never
// died (either still alive, or the battle ended before it could).
func (c *Core) DeathCause(w int) error { return c.causes[w] }

func (c *Core) norm(v int) int {
	return offset.New(v, len(c.cells)).Value()
}

// Get returns the instruction at a core-relative address.
func (c *Core) Get(addr int) redcode.Instruction {
	return c.cells[c.norm(addr)]
}

// Window returns count consecutive cells starting at addr, wrapping
// around the ring.
func (c *Core) Window(addr, count int) []redcode.Instruction {
	out := make([]redcode.Instruction, count)
	for i := 0; i < count; i++ {
		out[i] = c.Get(addr + i)
	}
	return out
}

func unsupported(inst redcode.Instruction) bool {
	return inst.Opcode == redcode.LDP || inst.Opcode == redcode.STP
}

// LoadWarriors places every warrior in the core with random, evenly
// spaced starting offsets (spec §4.2) and seeds one thread per warrior
// in the scheduling queue. Warriors must already be assembled; LDP/STP
// are rejected here since the executor never implemented them (spec
// §9 lists them out of scope).
func (c *Core) LoadWarriors(warriors []redcode.Warrior, rng RNG) error {
	n := len(warriors)
	c.names = make([]string, n)
	c.alive = make([]bool, n)
	c.causes = make([]error, n)
	c.queue = queue.New(n, c.cfg.MaxProcesses)
	if n == 0 {
		return nil
	}

	coreSize := len(c.cells)
	spacing := coreSize / n
	if spacing < c.cfg.MinDistance {
		return MinDistanceTooLargeError{Spacing: spacing, MinDistance: c.cfg.MinDistance}
	}

	for i, w := range warriors {
		if w.Len() > c.cfg.MaxWarriorLength {
			return WarriorTooLongError{Index: i, Length: w.Len(), Max: c.cfg.MaxWarriorLength}
		}
		for _, inst := range w.Program.Instructions {
			if unsupported(inst) {
				return UnsupportedOpcodeError{Index: i, Opcode: inst.Opcode}
			}
		}

		low := i*spacing + c.cfg.MinDistance
		high := (i+1)*spacing - w.Len()
		base := low
		if high > low {
			base = low + rng.Intn(high-low)
		}
		base = c.norm(base)

		for off, inst := range w.Program.Instructions {
			c.cells[c.norm(base+off)] = inst
		}

		start := c.norm(base + w.Program.Origin)
		c.queue.Seed(i, start)
		c.names[i] = w.DisplayName(fmt.Sprintf("warrior-%d", i))
		c.alive[i] = true
	}
	return nil
}
