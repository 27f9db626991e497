package spccpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_set1Clr1(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x0010, 0x00)

	c.set1(0x0010, 3)
	assert.Equal(t, uint8(0x08), mem.ReadByte(0x0010))

	c.clr1(0x0010, 3)
	assert.Equal(t, uint8(0x00), mem.ReadByte(0x0010))
}

func TestCPU_tset1Tclr1ComputeFlagsLikeSubtractButOrAndAndStore(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x2000, 0x0F)
	c.A = 0xF0

	c.tset1(0x2000)
	assert.Equal(t, uint8(0xFF), mem.ReadByte(0x2000))
	assert.True(t, c.getFlag(FlagN), "N,Z computed as if A-M")

	mem.WriteByte(0x2001, 0xFF)
	c.A = 0x0F
	c.tclr1(0x2001)
	assert.Equal(t, uint8(0xF0), mem.ReadByte(0x2001))
}

func TestCPU_or1And1Eor1CarryOps(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x3000, 0x01) // bit 0 set

	c.setFlag(FlagC, false)
	c.or1(0x3000, 0, false)
	assert.True(t, c.getFlag(FlagC))

	c.setFlag(FlagC, true)
	c.and1(0x3000, 0, false)
	assert.True(t, c.getFlag(FlagC))

	c.and1(0x3000, 1, false) // bit 1 clear -> AND false
	assert.False(t, c.getFlag(FlagC))

	c.setFlag(FlagC, false)
	c.eor1(0x3000, 0)
	assert.True(t, c.getFlag(FlagC))
}

func TestCPU_mov1RoundTripsThroughCarry(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteByte(0x4000, 0x00)

	c.setFlag(FlagC, true)
	c.mov1FromC(0x4000, 2)
	assert.Equal(t, uint8(0x04), mem.ReadByte(0x4000))

	c.setFlag(FlagC, false)
	c.mov1ToC(0x4000, 2)
	assert.True(t, c.getFlag(FlagC))
}
