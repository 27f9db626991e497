package spccpu

// Helpers resolving the addressing modes spec.md §4.3 requires into
// effective addresses or immediate values. All direct-page helpers honor
// the P flag via dpBase so every access observes the MMIO window through
// the Bus, exactly like any other read/write.

func (c *CPU) dpAddr(d uint8) uint16 {
	return c.dpBase() + uint16(d)
}

func (c *CPU) dpXAddr(d uint8) uint16 {
	return c.dpBase() + uint16(d+c.X)
}

func (c *CPU) dpYAddr(d uint8) uint16 {
	return c.dpBase() + uint16(d+c.Y)
}

// indirectX resolves [(X)]: the direct-page byte pointed to by X.
func (c *CPU) indirectX() uint16 {
	return c.dpBase() + uint16(c.X)
}

// indirectXIndexed resolves [$dp+X]: a pointer word stored at direct-page
// (d+X), used directly as the effective address.
func (c *CPU) indirectXIndexed(d uint8) uint16 {
	ptrAddr := c.dpBase() + uint16(d+c.X)
	return c.mem.ReadWord(ptrAddr)
}

// indirectIndexedY resolves [$dp]+Y: a pointer word stored at direct-page
// d, with Y added to it to form the effective address.
func (c *CPU) indirectIndexedY(d uint8) uint16 {
	ptrAddr := c.dpBase() + uint16(d)
	ptr := c.mem.ReadWord(ptrAddr)
	return ptr + uint16(c.Y)
}

func absAddr(lo, hi uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) absXAddr(lo, hi uint8) uint16 {
	return absAddr(lo, hi) + uint16(c.X)
}

func (c *CPU) absYAddr(lo, hi uint8) uint16 {
	return absAddr(lo, hi) + uint16(c.Y)
}

// memBit decodes a mem.bit operand (two little-endian bytes): the low 13
// bits are the absolute address, the top 3 bits select the bit index.
func memBit(lo, hi uint8) (addr uint16, bitIdx uint8) {
	word := absAddr(lo, hi)
	return word & 0x1FFF, uint8(word >> 13)
}

// rel applies a signed relative displacement to a PC already advanced past
// the instruction's operand bytes.
func rel(pc uint16, displacement uint8) uint16 {
	return uint16(int32(pc) + int32(int8(displacement)))
}
