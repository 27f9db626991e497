package spccpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPU_branchIfTakenAddsTwoCycles(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x3000

	extra := c.branchIf(true, 0x05)
	assert.Equal(t, 2, extra)
	assert.Equal(t, uint16(0x3005), c.PC)
}

func TestCPU_branchIfNotTakenLeavesPC(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x3000

	extra := c.branchIf(false, 0x05)
	assert.Equal(t, 0, extra)
	assert.Equal(t, uint16(0x3000), c.PC)
}

func TestCPU_branchIfBackwardDisplacement(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x3000

	c.branchIf(true, 0xFE) // -2
	assert.Equal(t, uint16(0x2FFE), c.PC)
}

func TestCPU_dbnzRegDecrementsThenBranches(t *testing.T) {
	c, _ := newTestCPU()
	c.PC = 0x1000
	c.Y = 1

	extra := c.dbnzReg(&c.Y, 0x10)
	assert.Equal(t, uint8(0), c.Y)
	assert.Equal(t, 0, extra, "reaching zero does not branch")

	c.Y = 2
	c.PC = 0x1000
	extra = c.dbnzReg(&c.Y, 0x10)
	assert.Equal(t, uint8(1), c.Y)
	assert.Equal(t, 2, extra)
	assert.Equal(t, uint16(0x1010), c.PC)
}

func TestCPU_cbneRestoresFlagsAfterCompare(t *testing.T) {
	c, mem := newTestCPU()
	c.PC = 0x1000
	c.A = 0x05
	mem.WriteByte(0x0020, 0x09)
	c.setFlag(FlagZ, true)
	c.setFlag(FlagN, true)

	extra := c.cbne(0x0020, 0x04)
	assert.Equal(t, 2, extra, "A != M so CBNE branches")
	assert.True(t, c.getFlag(FlagZ), "CBNE must not disturb flags")
	assert.True(t, c.getFlag(FlagN))
}

func TestCPU_tcallReadsVectorDescendingFromFFDE(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0xFF
	mem.WriteWord(0xFFDE, 0xBEEF) // TCALL0

	c.tcall(0, 0x1234)
	assert.Equal(t, uint16(0xBEEF), c.PC)
	ret := c.popWord()
	assert.Equal(t, uint16(0x1234), ret)
}

func TestCPU_pcallTargetsFF00Page(t *testing.T) {
	c, _ := newTestCPU()
	c.SP = 0xFF
	c.pcall(0x80, 0x2000)
	assert.Equal(t, uint16(0xFF80), c.PC)
}

func TestCPU_brkPushesPCThenPSWAndJumpsThroughFFDE(t *testing.T) {
	c, mem := newTestCPU()
	c.SP = 0xFF
	c.PSW = 0x81
	mem.WriteWord(0xFFDE, 0x9000)

	c.brk(0x1000)
	assert.Equal(t, uint16(0x9000), c.PC)
	assert.False(t, c.getFlag(FlagI))
	assert.True(t, c.getFlag(FlagB))

	savedPSW := c.popByte()
	savedPC := c.popWord()
	assert.Equal(t, uint8(0x81), savedPSW)
	assert.Equal(t, uint16(0x1000), savedPC)
}

func TestCPU_clrvAlsoClearsH(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(FlagV, true)
	c.setFlag(FlagH, true)
	c.clrv()
	assert.False(t, c.getFlag(FlagV))
	assert.False(t, c.getFlag(FlagH))
}

func TestCPU_notcTogglesCarry(t *testing.T) {
	c, _ := newTestCPU()
	require.False(t, c.getFlag(FlagC))
	c.notc()
	assert.True(t, c.getFlag(FlagC))
	c.notc()
	assert.False(t, c.getFlag(FlagC))
}
