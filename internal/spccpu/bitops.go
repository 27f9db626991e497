package spccpu

// Single-bit operations: SET1/CLR1 on a direct-page byte, BBS/BBC
// bit-test-and-branch, TSET1/TCLR1 on an absolute address, and the
// mem.bit carry operations (OR1/AND1/EOR1/NOT1/MOV1).

func (c *CPU) set1(addr uint16, bitIdx uint8) {
	v := c.mem.ReadByte(addr)
	c.mem.WriteByte(addr, v|(1<<bitIdx))
}

func (c *CPU) clr1(addr uint16, bitIdx uint8) {
	v := c.mem.ReadByte(addr)
	c.mem.WriteByte(addr, v&^(1<<bitIdx))
}

// bbs branches by rel if the given bit of the direct-page byte is set.
// Returns the cycles beyond the caller's 5-cycle base: 2 when taken (7 in
// total), 0 when not taken.
func (c *CPU) bbs(addr uint16, bitIdx uint8, displacement uint8) int {
	v := c.mem.ReadByte(addr)
	if v&(1<<bitIdx) != 0 {
		c.PC = rel(c.PC, displacement)
		return 2
	}
	return 0
}

func (c *CPU) bbc(addr uint16, bitIdx uint8, displacement uint8) int {
	v := c.mem.ReadByte(addr)
	if v&(1<<bitIdx) == 0 {
		c.PC = rel(c.PC, displacement)
		return 2
	}
	return 0
}

// tset1 computes N,Z as if A-M, then writes M|A back to the address.
func (c *CPU) tset1(addr uint16) {
	m := c.mem.ReadByte(addr)
	c.setNZ(c.A - m)
	c.mem.WriteByte(addr, m|c.A)
}

// tclr1 computes N,Z as if A-M, then writes M&^A back to the address.
func (c *CPU) tclr1(addr uint16) {
	m := c.mem.ReadByte(addr)
	c.setNZ(c.A - m)
	c.mem.WriteByte(addr, m&^c.A)
}

func memBitValue(bus Bus, addr uint16, bitIdx uint8) bool {
	return bus.ReadByte(addr)&(1<<bitIdx) != 0
}

func (c *CPU) or1(addr uint16, bitIdx uint8, negate bool) {
	bitVal := memBitValue(c.mem, addr, bitIdx)
	if negate {
		bitVal = !bitVal
	}
	c.setFlag(FlagC, c.getFlag(FlagC) || bitVal)
}

func (c *CPU) and1(addr uint16, bitIdx uint8, negate bool) {
	bitVal := memBitValue(c.mem, addr, bitIdx)
	if negate {
		bitVal = !bitVal
	}
	c.setFlag(FlagC, c.getFlag(FlagC) && bitVal)
}

func (c *CPU) eor1(addr uint16, bitIdx uint8) {
	bitVal := memBitValue(c.mem, addr, bitIdx)
	c.setFlag(FlagC, c.getFlag(FlagC) != bitVal)
}

func (c *CPU) not1(addr uint16, bitIdx uint8) {
	v := c.mem.ReadByte(addr)
	c.mem.WriteByte(addr, v^(1<<bitIdx))
}

func (c *CPU) mov1ToC(addr uint16, bitIdx uint8) {
	c.setFlag(FlagC, memBitValue(c.mem, addr, bitIdx))
}

func (c *CPU) mov1FromC(addr uint16, bitIdx uint8) {
	if c.getFlag(FlagC) {
		c.set1(addr, bitIdx)
	} else {
		c.clr1(addr, bitIdx)
	}
}
