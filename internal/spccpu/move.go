package spccpu

// Data movement: register/memory MOV forms, MOVW, XCN, PUSH/POP.

// movToA loads A from a byte value, setting N,Z.
func (c *CPU) movToA(v uint8) {
	c.A = v
	c.setNZ(v)
}

func (c *CPU) movToX(v uint8) {
	c.X = v
	c.setNZ(v)
}

func (c *CPU) movToY(v uint8) {
	c.Y = v
	c.setNZ(v)
}

// movwLoad loads YA from a direct-page word, setting Z iff both bytes are
// zero and N from Y's bit 7 (equivalent to the 16-bit N/Z rule).
func (c *CPU) movwLoad(addr uint16) {
	v := c.mem.ReadWord(addr)
	c.setYA(v)
	c.setNZ16(v)
}

// movwStore stores YA to a direct-page word; flags are unaffected.
func (c *CPU) movwStore(addr uint16) {
	c.mem.WriteWord(addr, c.YA())
}

func (c *CPU) xcn() {
	c.A = (c.A << 4) | (c.A >> 4)
	c.setNZ(c.A)
}
