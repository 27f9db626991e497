package spccpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPU_adcBoundaryCases(t *testing.T) {
	t.Run("0xFF + 0x01 wraps with carry, no overflow", func(t *testing.T) {
		c, _ := newTestCPU()
		c.A = 0xFF
		c.setFlag(FlagC, false)
		c.adc(0x01)

		assert.Equal(t, uint8(0x00), c.A)
		assert.True(t, c.getFlag(FlagC))
		assert.True(t, c.getFlag(FlagZ))
		assert.False(t, c.getFlag(FlagN))
		assert.False(t, c.getFlag(FlagV))
	})

	t.Run("0x7F + 0x01 signed overflow into negative", func(t *testing.T) {
		c, _ := newTestCPU()
		c.A = 0x7F
		c.setFlag(FlagC, false)
		c.adc(0x01)

		assert.Equal(t, uint8(0x80), c.A)
		assert.True(t, c.getFlag(FlagV))
		assert.True(t, c.getFlag(FlagN))
		assert.False(t, c.getFlag(FlagZ))
		assert.False(t, c.getFlag(FlagC))
	})
}

func TestCPU_cmpSetsZCOnEquality(t *testing.T) {
	c, _ := newTestCPU()
	c.cmp(0x42, 0x42)
	assert.True(t, c.getFlag(FlagZ))
	assert.True(t, c.getFlag(FlagC))
}

func TestCPU_cmpDoesNotTouchOverflow(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlag(FlagV, true)
	c.cmp(0x7F, 0xFF)
	assert.True(t, c.getFlag(FlagV), "CMP must not update V in this CPU's newer behavior")
}

func TestCPU_sbcSetsHEqualToV(t *testing.T) {
	c, _ := newTestCPU()
	c.A = 0x00
	c.setFlag(FlagC, true) // no incoming borrow
	c.sbc(0x01)

	assert.Equal(t, c.getFlag(FlagV), c.getFlag(FlagH))
}

func TestCPU_andOrEorSetNZFromResult(t *testing.T) {
	cases := []struct {
		name   string
		op     func(c *CPU, m uint8)
		a, m   uint8
		result uint8
	}{
		{"AND zero result", func(c *CPU, m uint8) { c.and(m) }, 0xF0, 0x0F, 0x00},
		{"OR sets negative", func(c *CPU, m uint8) { c.or(m) }, 0x01, 0x80, 0x81},
		{"EOR identity is zero", func(c *CPU, m uint8) { c.eor(m) }, 0x5A, 0x5A, 0x00},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestCPU()
			c.A = tc.a
			tc.op(c, tc.m)
			assert.Equal(t, tc.result, c.A)
			assert.Equal(t, tc.result == 0, c.getFlag(FlagZ))
			assert.Equal(t, tc.result&0x80 != 0, c.getFlag(FlagN))
		})
	}
}

func TestCPU_addwCarryAndZero(t *testing.T) {
	c, mem := newTestCPU()
	c.setYA(0xFFFF)
	mem.WriteWord(0x0010, 0x0001)

	c.addw(mem.ReadWord(0x0010))
	assert.Equal(t, uint16(0x0000), c.YA())
	assert.True(t, c.getFlag(FlagC))
	assert.True(t, c.getFlag(FlagZ))
}

func TestCPU_mulYAStoresHighLow(t *testing.T) {
	c, _ := newTestCPU()
	c.Y = 0x10
	c.A = 0x10
	c.mulYA()
	assert.Equal(t, uint16(0x0100), c.YA())
}

func TestCPU_divYAQuotientRemainder(t *testing.T) {
	c, _ := newTestCPU()
	c.setYA(0x0064) // 100
	c.X = 9
	c.divYA()
	assert.Equal(t, uint8(11), c.A)
	assert.Equal(t, uint8(1), c.Y)
}
