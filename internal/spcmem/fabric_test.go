package spcmem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubDSP is the minimal DSPRegisters fake used to exercise the F2/F3
// register pair without pulling in spcdsp.
type stubDSP struct {
	regs    [128]byte
	written []uint8
}

func (s *stubDSP) ReadRegister(index uint8) uint8 { return s.regs[index] }
func (s *stubDSP) WriteRegister(index uint8, value uint8) {
	s.regs[index] = value
	s.written = append(s.written, index)
}

func TestFabric_readWriteByteRoundTrip(t *testing.T) {
	f := New()
	for addr := 0; addr <= 0xFFFF; addr += 0x1111 {
		a := uint16(addr)
		if a >= 0x00F3 && a <= 0x00FF {
			continue // excluded by spec.md's round-trip law (MMIO side effects)
		}
		f.WriteByte(a, 0xAB)
		assert.Equal(t, uint8(0xAB), f.ReadByte(a), "address %04X", a)
	}
}

func TestFabric_readWriteWordLittleEndian(t *testing.T) {
	f := New()
	f.WriteWord(0x1000, 0x1234)
	assert.Equal(t, uint8(0x34), f.ReadByte(0x1000))
	assert.Equal(t, uint8(0x12), f.ReadByte(0x1001))
	assert.Equal(t, uint16(0x1234), f.ReadWord(0x1000))
}

func TestFabric_dspIndexWrapsModulo127(t *testing.T) {
	f := New()
	dsp := &stubDSP{}
	f.SetDSP(dsp)

	f.WriteByte(0x00F2, 200) // > 127
	f.WriteByte(0x00F3, 0x55)

	assert.Equal(t, uint8(200%127), dsp.written[0])
	assert.Equal(t, uint8(0x55), dsp.regs[200%127])
}

func TestFabric_dspIndexInRangePassesThrough(t *testing.T) {
	f := New()
	dsp := &stubDSP{}
	f.SetDSP(dsp)

	f.WriteByte(0x00F2, 0x4C)
	f.WriteByte(0x00F3, 0x7F)
	assert.Equal(t, uint8(0x4C), dsp.written[0])

	dsp.regs[0x4C] = 0x99
	assert.Equal(t, uint8(0x99), f.ReadByte(0x00F3))
}

func TestFabric_timerCounterReadClears(t *testing.T) {
	f := New()

	f.WriteByte(0x00FA, 0x01) // T0 divisor
	f.WriteByte(0x00F1, 0x01) // enable T0

	for cycle := uint64(0); cycle <= 256; cycle += 256 {
		f.SetCycle(cycle)
	}

	first := f.ReadByte(0x00FD)
	second := f.ReadByte(0x00FD)
	assert.Equal(t, uint8(1), first)
	assert.Equal(t, uint8(0), second)
}

func TestFabric_timerCounterWritesIgnored(t *testing.T) {
	f := New()
	f.WriteByte(0x00FA, 0x01)
	f.WriteByte(0x00F1, 0x01)
	f.SetCycle(256)

	f.WriteByte(0x00FD, 0xFF) // should be a no-op
	assert.Equal(t, uint8(1), f.ReadByte(0x00FD))
}

func TestFabric_directPageBase(t *testing.T) {
	assert.Equal(t, uint16(0x0000), DirectPageBase(false))
	assert.Equal(t, uint16(0x0100), DirectPageBase(true))
}

func TestFabric_rawMMIOAddressesBehaveAsRegisters(t *testing.T) {
	f := New()
	f.WriteByte(0x00F0, 0x42)
	assert.Equal(t, uint8(0x42), f.ReadByte(0x00F0))

	f.WriteByte(0x00F4, 0x11)
	assert.Equal(t, uint8(0x11), f.ReadByte(0x00F4))
}

func TestFabric_ordinaryRAMOutsideMMIOWindow(t *testing.T) {
	f := New()
	f.WriteByte(0x0000, 0x01)
	f.WriteByte(0x00EF, 0x02)
	f.WriteByte(0x0100, 0x03)
	f.WriteByte(0xFFFF, 0x04)

	assert.Equal(t, uint8(0x01), f.ReadByte(0x0000))
	assert.Equal(t, uint8(0x02), f.ReadByte(0x00EF))
	assert.Equal(t, uint8(0x03), f.ReadByte(0x0100))
	assert.Equal(t, uint8(0x04), f.ReadByte(0xFFFF))
}

func TestFabric_timerDisableResetsState(t *testing.T) {
	f := New()
	f.WriteByte(0x00FA, 0x01)
	f.WriteByte(0x00F1, 0x01)
	f.SetCycle(256)
	assert.Equal(t, uint8(1), f.ReadByte(0x00FD))

	f.WriteByte(0x00F1, 0x00) // disable T0
	f.WriteByte(0x00F1, 0x01) // re-enable, divisor re-latched from 0xFA, counter reset
	assert.Equal(t, uint8(0), f.ReadByte(0x00FD))

	f.SetCycle(512)
	assert.Equal(t, uint8(1), f.ReadByte(0x00FD))
}
