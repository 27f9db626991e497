package spccpu

// Shift and rotate operations shared by the A/$dp/$dp+X/$aaaa forms.

func (c *CPU) asl(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v << 1
	c.setFlag(FlagC, carry)
	c.setNZ(result)
	return result
}

func (c *CPU) lsr(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v >> 1
	c.setFlag(FlagC, carry)
	c.setNZ(result)
	return result
}

func (c *CPU) rol(v uint8) uint8 {
	var oldCarry uint8
	if c.getFlag(FlagC) {
		oldCarry = 1
	}
	newCarry := v&0x80 != 0
	result := (v << 1) | oldCarry
	c.setFlag(FlagC, newCarry)
	c.setNZ(result)
	return result
}

func (c *CPU) ror(v uint8) uint8 {
	var oldCarry uint8
	if c.getFlag(FlagC) {
		oldCarry = 0x80
	}
	newCarry := v&0x01 != 0
	result := (v >> 1) | oldCarry
	c.setFlag(FlagC, newCarry)
	c.setNZ(result)
	return result
}
