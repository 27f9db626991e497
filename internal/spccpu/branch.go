package spccpu

// Conditional branches, control flow (CALL/RET/JMP/PCALL/TCALL/BRK/RET1)
// and the combined test-and-branch forms DBNZ/CBNE.

// branchIf takes the branch when cond is true, adding 2 cycles per
// spec.md's 4->6 / base->base+2 pattern.
func (c *CPU) branchIf(cond bool, displacement uint8) int {
	if cond {
		c.PC = rel(c.PC, displacement)
		return 2
	}
	return 0
}

func (c *CPU) call(target uint16, returnPC uint16) {
	c.pushWord(returnPC)
	c.PC = target
}

func (c *CPU) ret() {
	c.PC = c.popWord()
}

func (c *CPU) ret1() {
	c.PSW = c.popByte()
	c.PC = c.popWord()
}

// tcall calls one of the 16 fixed vectors living at 0xFFC0-0xFFDF (two
// bytes each, TCALL0 at the highest address 0xFFDE descending to TCALL15
// at 0xFFC0). The extended IPL ROM region is a spec.md Non-goal, so these
// vectors are read out of ordinary RAM like any other address.
func (c *CPU) tcall(n uint8, returnPC uint16) {
	vectorAddr := uint16(0xFFC0) + uint16(15-n)*2
	target := c.mem.ReadWord(vectorAddr)
	c.call(target, returnPC)
}

func (c *CPU) pcall(page uint8, returnPC uint16) {
	c.call(0xFF00|uint16(page), returnPC)
}

// brk pushes PC and PSW, clears I, sets B, then jumps through the BRK
// vector at 0xFFDE.
func (c *CPU) brk(returnPC uint16) {
	c.pushWord(returnPC)
	c.pushByte(c.PSW)
	c.setFlag(FlagI, false)
	c.setFlag(FlagB, true)
	c.PC = c.mem.ReadWord(0xFFDE)
}

// dbnz decrements the register or memory pointed at, then branches if the
// result is non-zero. Flags are unaffected.
func (c *CPU) dbnzReg(reg *uint8, displacement uint8) int {
	*reg--
	if *reg != 0 {
		c.PC = rel(c.PC, displacement)
		return 2
	}
	return 0
}

func (c *CPU) dbnzMem(addr uint16, displacement uint8) int {
	v := c.mem.ReadByte(addr) - 1
	c.mem.WriteByte(addr, v)
	if v != 0 {
		c.PC = rel(c.PC, displacement)
		return 2
	}
	return 0
}

// cbne compares A against the memory operand without touching any flags,
// branching if they differ.
func (c *CPU) cbne(addr uint16, displacement uint8) int {
	savedPSW := c.PSW
	v := c.mem.ReadByte(addr)
	notEqual := c.A != v
	c.PSW = savedPSW
	if notEqual {
		c.PC = rel(c.PC, displacement)
		return 2
	}
	return 0
}
