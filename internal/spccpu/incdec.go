package spccpu

// Increment/decrement on registers, direct-page bytes and direct-page
// words.

func (c *CPU) inc8(v uint8) uint8 {
	result := v + 1
	c.setNZ(result)
	return result
}

func (c *CPU) dec8(v uint8) uint8 {
	result := v - 1
	c.setNZ(result)
	return result
}

func (c *CPU) incw(addr uint16) {
	v := c.mem.ReadWord(addr) + 1
	c.mem.WriteWord(addr, v)
	c.setNZ16(v)
}

func (c *CPU) decw(addr uint16) {
	v := c.mem.ReadWord(addr) - 1
	c.mem.WriteWord(addr, v)
	c.setNZ16(v)
}
