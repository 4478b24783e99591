package core

import "github.com/cjr29/corewar/internal/redcode"

// outcome is what executing one instruction did to its own thread.
type outcome struct {
	nextPC int
	split  int  // target pc for a new SPL thread; only valid if spawn
	spawn  bool
	err    error // non-nil kills the thread (DAT, divide by zero)
}

// execute runs the instruction at pc and reports what happened to the
// thread that ran it (spec §4.4). It never touches the scheduler
// queue directly; the scheduler decides what an outcome means for
// thread bookkeeping.
func (c *Core) execute(pc int, inst redcode.Instruction) outcome {
	ptrA, ptrB := c.pointers(pc, inst)
	next := c.norm(pc + 1)

	switch inst.Opcode {
	case redcode.DAT:
		return outcome{err: ExecuteDatError{PC: pc}}

	case redcode.MOV:
		c.move(inst.Modifier, ptrA, ptrB)
		return outcome{nextPC: next}

	case redcode.ADD:
		if err := c.arith(inst.Modifier, ptrA, ptrB, pc, func(s, d int) (int, bool) { return d + s, true }); err != nil {
			return outcome{err: err}
		}
		return outcome{nextPC: next}

	case redcode.SUB:
		if err := c.arith(inst.Modifier, ptrA, ptrB, pc, func(s, d int) (int, bool) { return d - s, true }); err != nil {
			return outcome{err: err}
		}
		return outcome{nextPC: next}

	case redcode.MUL:
		if err := c.arith(inst.Modifier, ptrA, ptrB, pc, func(s, d int) (int, bool) { return d * s, true }); err != nil {
			return outcome{err: err}
		}
		return outcome{nextPC: next}

	case redcode.DIV:
		if err := c.arith(inst.Modifier, ptrA, ptrB, pc, func(s, d int) (int, bool) {
			if s == 0 {
				return 0, false
			}
			return d / s, true
		}); err != nil {
			return outcome{err: err}
		}
		return outcome{nextPC: next}

	case redcode.MOD:
		if err := c.arith(inst.Modifier, ptrA, ptrB, pc, func(s, d int) (int, bool) {
			if s == 0 {
				return 0, false
			}
			return d % s, true
		}); err != nil {
			return outcome{err: err}
		}
		return outcome{nextPC: next}

	case redcode.JMP:
		return outcome{nextPC: ptrA}

	case redcode.JMZ:
		if c.testFields(inst.Modifier, ptrB, func(v int) bool { return v == 0 }) {
			return outcome{nextPC: ptrA}
		}
		return outcome{nextPC: next}

	case redcode.JMN:
		if !c.testFields(inst.Modifier, ptrB, func(v int) bool { return v == 0 }) {
			return outcome{nextPC: ptrA}
		}
		return outcome{nextPC: next}

	case redcode.DJN:
		nonzero := c.decrementAndTest(inst.Modifier, ptrB)
		if nonzero {
			return outcome{nextPC: ptrA}
		}
		return outcome{nextPC: next}

	case redcode.CMP:
		if c.compare(inst.Modifier, ptrA, ptrB, func(a, b int) bool { return a == b }) {
			return outcome{nextPC: c.norm(pc + 2)}
		}
		return outcome{nextPC: next}

	case redcode.SNE:
		if !c.compare(inst.Modifier, ptrA, ptrB, func(a, b int) bool { return a == b }) {
			return outcome{nextPC: c.norm(pc + 2)}
		}
		return outcome{nextPC: next}

	case redcode.SLT:
		mod := inst.Modifier
		if mod == redcode.ModI {
			mod = redcode.ModF // whole-instruction I applies to equality compares only
		}
		if c.compare(mod, ptrA, ptrB, func(a, b int) bool { return a < b }) {
			return outcome{nextPC: c.norm(pc + 2)}
		}
		return outcome{nextPC: next}

	case redcode.SPL:
		return outcome{nextPC: next, spawn: true, split: ptrA}

	case redcode.NOP:
		return outcome{nextPC: next}

	default:
		return outcome{err: UnsupportedOpcodeError{Opcode: inst.Opcode}}
	}
}

// move implements MOV's seven modifiers (spec §4.4): which field(s)
// travel from the A-operand to the B-operand, or I for the whole cell.
func (c *Core) move(mod redcode.Modifier, ptrA, ptrB int) {
	switch mod {
	case redcode.ModA:
		c.writeA(ptrB, c.readA(ptrA))
	case redcode.ModB:
		c.writeB(ptrB, c.readB(ptrA))
	case redcode.ModAB:
		c.writeB(ptrB, c.readA(ptrA))
	case redcode.ModBA:
		c.writeA(ptrB, c.readB(ptrA))
	case redcode.ModF:
		c.writeA(ptrB, c.readA(ptrA))
		c.writeB(ptrB, c.readB(ptrA))
	case redcode.ModX:
		c.writeB(ptrB, c.readA(ptrA))
		c.writeA(ptrB, c.readB(ptrA))
	case redcode.ModI:
		c.cells[ptrB] = c.cells[ptrA]
	}
}

// arith applies op(src, dst) -> dst for the field pair(s) the modifier
// selects. I behaves like F: both fields move independently (an
// instruction's opcode/modifier never participate in arithmetic). pc
// only labels a DivideByZeroError. Under X all four fields are read
// before either write lands, so a self-referential A==B cell sees its
// pre-write values.
func (c *Core) arith(mod redcode.Modifier, ptrA, ptrB, pc int, op func(src, dst int) (int, bool)) error {
	switch mod {
	case redcode.ModA:
		v, ok := op(c.readA(ptrA), c.readA(ptrB))
		if !ok {
			return DivideByZeroError{PC: pc}
		}
		c.writeA(ptrB, v)
	case redcode.ModB:
		v, ok := op(c.readB(ptrA), c.readB(ptrB))
		if !ok {
			return DivideByZeroError{PC: pc}
		}
		c.writeB(ptrB, v)
	case redcode.ModAB:
		v, ok := op(c.readA(ptrA), c.readB(ptrB))
		if !ok {
			return DivideByZeroError{PC: pc}
		}
		c.writeB(ptrB, v)
	case redcode.ModBA:
		v, ok := op(c.readB(ptrA), c.readA(ptrB))
		if !ok {
			return DivideByZeroError{PC: pc}
		}
		c.writeA(ptrB, v)
	case redcode.ModF, redcode.ModI:
		// Each side commits independently: DIV.F with a zero A-side
		// divisor still writes the B-side result (spec §4.4/§8).
		okA, okB := true, true
		if va, ok := op(c.readA(ptrA), c.readA(ptrB)); ok {
			c.writeA(ptrB, va)
		} else {
			okA = false
		}
		if vb, ok := op(c.readB(ptrA), c.readB(ptrB)); ok {
			c.writeB(ptrB, vb)
		} else {
			okB = false
		}
		if !okA || !okB {
			return DivideByZeroError{PC: pc}
		}
	case redcode.ModX:
		srcA, srcB := c.readA(ptrA), c.readB(ptrA)
		dstA, dstB := c.readA(ptrB), c.readB(ptrB)
		okA, okB := true, true
		if va, ok := op(srcB, dstA); ok {
			c.writeA(ptrB, va)
		} else {
			okA = false
		}
		if vb, ok := op(srcA, dstB); ok {
			c.writeB(ptrB, vb)
		} else {
			okB = false
		}
		if !okA || !okB {
			return DivideByZeroError{PC: pc}
		}
	}
	return nil
}

// compare reports whether the A-operand and B-operand satisfy test
// for every field pair the modifier selects (spec §4.4's CMP/SEQ, SNE,
// SLT). F requires both field pairs to satisfy test; X compares
// crosswise; I ignores test and requires the two whole instructions to
// be equal, so SLT passes F in place of I.
func (c *Core) compare(mod redcode.Modifier, ptrA, ptrB int, test func(a, b int) bool) bool {
	switch mod {
	case redcode.ModA:
		return test(c.readA(ptrA), c.readA(ptrB))
	case redcode.ModB:
		return test(c.readB(ptrA), c.readB(ptrB))
	case redcode.ModAB:
		return test(c.readA(ptrA), c.readB(ptrB))
	case redcode.ModBA:
		return test(c.readB(ptrA), c.readA(ptrB))
	case redcode.ModF:
		return test(c.readA(ptrA), c.readA(ptrB)) && test(c.readB(ptrA), c.readB(ptrB))
	case redcode.ModI:
		return c.cells[ptrA] == c.cells[ptrB]
	case redcode.ModX:
		return test(c.readA(ptrA), c.readB(ptrB)) && test(c.readB(ptrA), c.readA(ptrB))
	}
	return false
}

// testFields reports whether every field the modifier selects at ptr
// satisfies test, for JMZ/JMN.
func (c *Core) testFields(mod redcode.Modifier, ptr int, test func(int) bool) bool {
	switch mod {
	case redcode.ModA, redcode.ModBA:
		return test(c.readA(ptr))
	case redcode.ModB, redcode.ModAB:
		return test(c.readB(ptr))
	default: // F, X, I: both fields
		return test(c.readA(ptr)) && test(c.readB(ptr))
	}
}

// decrementAndTest implements DJN: decrement the field(s) the
// modifier selects at ptr, then report whether the decremented
// value(s) are all nonzero. F/X/I decrement and test both fields.
func (c *Core) decrementAndTest(mod redcode.Modifier, ptr int) bool {
	switch mod {
	case redcode.ModA, redcode.ModBA:
		c.writeA(ptr, c.readA(ptr)-1)
		return c.readA(ptr) != 0
	case redcode.ModB, redcode.ModAB:
		c.writeB(ptr, c.readB(ptr)-1)
		return c.readB(ptr) != 0
	default:
		c.writeA(ptr, c.readA(ptr)-1)
		c.writeB(ptr, c.readB(ptr)-1)
		return c.readA(ptr) != 0 && c.readB(ptr) != 0
	}
}
