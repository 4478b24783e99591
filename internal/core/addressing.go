package core

import "github.com/cjr29/corewar/internal/redcode"

// resolve implements spec §4.3: turn a field's addressing mode into an
// effective core address, applying the pre-decrement/post-increment
// side effects the mode prescribes along the way. Immediate fields
// resolve to pc itself, so reading the field's own value through the
// normal A/B accessors below falls out for free.
func (c *Core) resolve(pc int, f redcode.Field) int {
	switch f.Mode {
	case redcode.Immediate:
		return pc
	case redcode.Direct:
		return c.norm(pc + f.Value)
	case redcode.IndirectA:
		loc := c.norm(pc + f.Value)
		return c.norm(loc + c.cells[loc].A.Value)
	case redcode.IndirectB:
		loc := c.norm(pc + f.Value)
		return c.norm(loc + c.cells[loc].B.Value)
	case redcode.PredecA:
		loc := c.norm(pc + f.Value)
		c.cells[loc].A.Value = c.norm(c.cells[loc].A.Value - 1)
		return c.norm(loc + c.cells[loc].A.Value)
	case redcode.PredecB:
		loc := c.norm(pc + f.Value)
		c.cells[loc].B.Value = c.norm(c.cells[loc].B.Value - 1)
		return c.norm(loc + c.cells[loc].B.Value)
	case redcode.PostincA:
		loc := c.norm(pc + f.Value)
		target := c.norm(loc + c.cells[loc].A.Value)
		c.cells[loc].A.Value = c.norm(c.cells[loc].A.Value + 1)
		return target
	case redcode.PostincB:
		loc := c.norm(pc + f.Value)
		target := c.norm(loc + c.cells[loc].B.Value)
		c.cells[loc].B.Value = c.norm(c.cells[loc].B.Value + 1)
		return target
	default:
		return c.norm(pc + f.Value)
	}
}

// pointers resolves both operand addresses for an instruction in
// order: A first (with any side effects it causes), then B. Redcode
// programs that rely on A's side effect feeding B's resolution (rare,
// but legal) see that ordering.
func (c *Core) pointers(pc int, inst redcode.Instruction) (ptrA, ptrB int) {
	ptrA = c.resolve(pc, inst.A)
	ptrB = c.resolve(pc, inst.B)
	return
}

func (c *Core) readA(ptr int) int { return c.cells[ptr].A.Value }
func (c *Core) readB(ptr int) int { return c.cells[ptr].B.Value }

func (c *Core) writeA(ptr, v int) { c.cells[ptr].A.Value = c.norm(v) }
func (c *Core) writeB(ptr, v int) { c.cells[ptr].B.Value = c.norm(v) }
