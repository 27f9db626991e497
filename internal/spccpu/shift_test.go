package spccpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_aslLsrCarryFromShiftedBit(t *testing.T) {
	c, _ := newTestCPU()

	result := c.asl(0x81)
	assert.Equal(t, uint8(0x02), result)
	assert.True(t, c.getFlag(FlagC), "ASL carry takes the old bit 7")

	result = c.lsr(0x01)
	assert.Equal(t, uint8(0x00), result)
	assert.True(t, c.getFlag(FlagC), "LSR carry takes the old bit 0")
	assert.True(t, c.getFlag(FlagZ))
}

func TestCPU_rolRorRotateThroughCarry(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(FlagC, true)

	result := c.rol(0x80)
	assert.Equal(t, uint8(0x01), result, "bit 7 exits to carry, old carry enters bit 0")
	assert.True(t, c.getFlag(FlagC))

	c.setFlag(FlagC, false)
	result = c.ror(0x01)
	assert.Equal(t, uint8(0x00), result)
	assert.True(t, c.getFlag(FlagC), "bit 0 exits to carry")
}

func TestCPU_incDecWrapModulo256(t *testing.T) {
	c, _ := newTestCPU()
	assert.Equal(t, uint8(0x00), c.inc8(0xFF))
	assert.True(t, c.getFlag(FlagZ))

	assert.Equal(t, uint8(0xFF), c.dec8(0x00))
	assert.True(t, c.getFlag(FlagN))
}

func TestCPU_incwDecwUse16BitResult(t *testing.T) {
	c, mem := newTestCPU()
	mem.WriteWord(0x0020, 0xFFFF)
	c.incw(0x0020)
	assert.Equal(t, uint16(0x0000), mem.ReadWord(0x0020))
	assert.True(t, c.getFlag(FlagZ))

	mem.WriteWord(0x0020, 0x0000)
	c.decw(0x0020)
	assert.Equal(t, uint16(0xFFFF), mem.ReadWord(0x0020))
	assert.True(t, c.getFlag(FlagN))
}
