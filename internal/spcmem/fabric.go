// Package spcmem implements the 64 KiB byte-addressable memory fabric
// shared by the CPU, timers and DSP: a flat RAM array with a 16-byte
// memory-mapped I/O window at 0x00F0-0x00FF.
package spcmem

import (
	"log/slog"

	"github.com/kestrel-audio/spc700/internal/spctimer"
)

// DSPRegisters is the subset of the DSP voice engine the memory fabric
// needs in order to service reads/writes through the F2 (index) / F3
// (data) register pair. Implemented by spcdsp.Engine; kept as an interface
// here so spcmem and spcdsp don't need to import each other.
type DSPRegisters interface {
	ReadRegister(index uint8) uint8
	WriteRegister(index uint8, value uint8)
}

// MMIO register offsets within the 0x00F0-0x00FF window, relative to 0xF0.
const (
	regTest    = 0x00
	regControl = 0x01
	regDSPIdx  = 0x02
	regDSPData = 0x03
	// 0x04-0x09 CPU I/O ports and aux I/O, raw RAM both ways.
	regTimer0Div = 0x0A
	regTimer1Div = 0x0B
	regTimer2Div = 0x0C
	regTimer0Out = 0x0D
	regTimer1Out = 0x0E
	regTimer2Out = 0x0F
)

// Fabric is the 64 KiB RAM image plus the hardware register dispatch that
// sits at 0x00F0-0x00FF.
type Fabric struct {
	ram [0x10000]byte

	timers   spctimer.Bank
	dsp      DSPRegisters
	dspIndex uint8
	control  uint8
	cycle    uint64
}

// New creates a Fabric with RAM zeroed. Until SetDSP is called, reads of
// 0xF3 return 0 and writes to 0xF3 reach only the RAM byte.
func New() *Fabric {
	return &Fabric{}
}

// SetDSP wires the DSP register file that the F2/F3 register pair targets.
func (f *Fabric) SetDSP(dsp DSPRegisters) {
	f.dsp = dsp
}

// LoadRAM overwrites the entire 64 KiB RAM image, used when applying a
// loaded snapshot.
func (f *Fabric) LoadRAM(data []byte) {
	copy(f.ram[:], data)
}

// SetCycle updates the fabric's view of the shared cycle counter and ticks
// the timers up to it. The Scheduler calls this once per instruction so
// that reads of the MMIO window observe up-to-date timer state.
func (f *Fabric) SetCycle(cycle uint64) {
	f.cycle = cycle
	f.timers.Tick(cycle)
}

// ReadByte reads a single byte, dispatching addresses 0x00F0-0x00FF to the
// hardware registers.
func (f *Fabric) ReadByte(addr uint16) uint8 {
	if addr >= 0x00F0 && addr <= 0x00FF {
		return f.readReg(uint8(addr - 0x00F0))
	}
	return f.ram[addr]
}

// WriteByte writes a single byte, dispatching addresses 0x00F0-0x00FF to
// the hardware registers.
func (f *Fabric) WriteByte(addr uint16, value uint8) {
	if addr >= 0x00F0 && addr <= 0x00FF {
		f.writeReg(uint8(addr-0x00F0), value)
		return
	}
	f.ram[addr] = value
}

// ReadWord reads a little-endian 16-bit word from two successive bytes.
func (f *Fabric) ReadWord(addr uint16) uint16 {
	lo := f.ReadByte(addr)
	hi := f.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// WriteWord writes a little-endian 16-bit word as two successive bytes,
// low byte first.
func (f *Fabric) WriteWord(addr uint16, value uint16) {
	f.WriteByte(addr, uint8(value))
	f.WriteByte(addr+1, uint8(value>>8))
}

func (f *Fabric) readReg(offset uint8) uint8 {
	switch offset {
	case regDSPData:
		if f.dsp == nil {
			return 0
		}
		return f.dsp.ReadRegister(f.dspIndex)
	case regTimer0Out:
		return f.timers.ReadCounter(spctimer.T0)
	case regTimer1Out:
		return f.timers.ReadCounter(spctimer.T1)
	case regTimer2Out:
		return f.timers.ReadCounter(spctimer.T2)
	default:
		return f.ram[0x00F0+uint16(offset)]
	}
}

func (f *Fabric) writeReg(offset uint8, value uint8) {
	f.ram[0x00F0+uint16(offset)] = value

	switch offset {
	case regControl:
		f.control = value
		f.applyControl(value)
	case regDSPIdx:
		idx := value
		if idx > 127 {
			idx %= 127
			slog.Warn("DSP register index out of range, wrapped", "requested", value, "used", idx)
		}
		f.dspIndex = idx
	case regDSPData:
		if f.dsp != nil {
			f.dsp.WriteRegister(f.dspIndex, value)
		}
	case regTimer0Out, regTimer1Out, regTimer2Out:
		// Timer output counters are read-only; writes are silently ignored.
	}
}

func (f *Fabric) applyControl(value uint8) {
	f.setTimerEnable(spctimer.T0, value&0x01 != 0, regTimer0Div)
	f.setTimerEnable(spctimer.T1, value&0x02 != 0, regTimer1Div)
	f.setTimerEnable(spctimer.T2, value&0x04 != 0, regTimer2Div)
}

func (f *Fabric) setTimerEnable(idx spctimer.Index, enable bool, divRegOffset uint8) {
	wasEnabled := f.timers.Enabled(idx)
	switch {
	case enable && !wasEnabled:
		divisor := f.ram[0x00F0+uint16(divRegOffset)]
		f.timers.Enable(idx, divisor, f.cycle)
	case !enable && wasEnabled:
		f.timers.Disable(idx)
	}
}

// DirectPageBase returns 0x0100 if p is true (direct page 1), else 0x0000.
func DirectPageBase(p bool) uint16 {
	if p {
		return 0x0100
	}
	return 0x0000
}
