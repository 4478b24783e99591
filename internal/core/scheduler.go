package core

import "github.com/cjr29/corewar/internal/queue"

// Outcome is a warrior's final standing once a battle ends.
type Outcome int

const (
	OutcomeLoss Outcome = iota
	OutcomeTie
	OutcomeWin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLoss:
		return "loss"
	default:
		return "tie"
	}
}

// Step executes the next queued thread, if any, and requeues,
// reschedules, or drops it according to what happened (spec §4.5).
// It reports whether a thread actually ran; false means the queue was
// already empty.
func (c *Core) Step() bool {
	e, ok := c.queue.Pop()
	if !ok {
		return false
	}
	inst := c.Get(e.Offset)
	out := c.execute(e.Offset, inst)
	c.cycles++
	if c.cfg.Logger != nil {
		c.cfg.Logger.Printf("cycle %d warrior=%d thread=%d pc=%d %s", c.cycles, e.WarriorID, e.ThreadID, e.Offset, inst)
	}

	if out.err != nil {
		if c.queue.Drop(e.WarriorID) {
			c.alive[e.WarriorID] = false
			c.causes[e.WarriorID] = out.err
		}
		return true
	}

	if out.spawn {
		c.queue.Split(e.WarriorID, e.ThreadID, out.nextPC, out.split)
	} else {
		c.queue.Requeue(queue.Entry{WarriorID: e.WarriorID, ThreadID: e.ThreadID, Offset: out.nextPC})
	}
	return true
}

// Run steps the scheduler until one of spec §4.5's three halt
// conditions holds: max_cycles is reached, the queue drains, or (in a
// battle with more than one entrant) at most one warrior remains
// un-Lossed, which is declared the winner immediately rather than
// being stepped further — running it past that point could let it
// self-destruct later and flip a Win into a Loss or Tie.
func (c *Core) Run() []Outcome {
	for c.cycles < c.cfg.MaxCycles {
		if !c.Step() {
			break
		}
		if len(c.alive) > 1 && c.aliveCount() <= 1 {
			break
		}
	}
	return c.Outcomes()
}

// aliveCount reports how many warriors still have a live thread.
func (c *Core) aliveCount() int {
	n := 0
	for _, a := range c.alive {
		if a {
			n++
		}
	}
	return n
}

// Outcomes reports each warrior's standing given the current alive
// set. A single-warrior battle never wins by simply being the sole
// entrant: it must survive to see an outcome, and losing its last
// thread is a loss, not a trivial win (spec §9's documented fix for
// the single-warrior case).
func (c *Core) Outcomes() []Outcome {
	n := len(c.alive)
	out := make([]Outcome, n)
	aliveCount := c.aliveCount()
	for i, a := range c.alive {
		switch {
		case n == 1:
			if a {
				out[i] = OutcomeWin
			} else {
				out[i] = OutcomeLoss
			}
		case aliveCount == 1:
			if a {
				out[i] = OutcomeWin
			} else {
				out[i] = OutcomeLoss
			}
		case aliveCount == 0:
			out[i] = OutcomeTie
		default:
			if a {
				out[i] = OutcomeTie
			} else {
				out[i] = OutcomeLoss
			}
		}
	}
	return out
}
