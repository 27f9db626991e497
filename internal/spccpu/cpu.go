// Package spccpu implements the SPC700 CPU: fetch/decode/execute of the
// ~230 opcode variants found in a SNES sound program, with exact flag
// semantics for the instruction categories spec.md §4.3 enumerates.
package spccpu

import "fmt"

// Bus is the memory fabric the CPU reads and writes through. Satisfied by
// *spcmem.Fabric.
type Bus interface {
	ReadByte(addr uint16) uint8
	WriteByte(addr uint16, value uint8)
	ReadWord(addr uint16) uint16
	WriteWord(addr uint16, value uint16)
}

// Flag is one of the eight PSW bits.
type Flag uint8

const (
	FlagC Flag = 1 << 0 // carry
	FlagZ Flag = 1 << 1 // zero
	FlagI Flag = 1 << 2 // interrupt enable (unused by audio)
	FlagH Flag = 1 << 3 // half-carry
	FlagB Flag = 1 << 4 // break
	FlagP Flag = 1 << 5 // direct-page selector
	FlagV Flag = 1 << 6 // overflow
	FlagN Flag = 1 << 7 // negative
)

// IllegalOpcodeError is returned by Step when the byte at PC does not decode
// to a known instruction. It is fatal: the Scheduler must abort.
type IllegalOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *IllegalOpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// CPU holds the full SPC700 register file and executes one instruction per
// call to Step.
type CPU struct {
	mem Bus

	PC     uint16
	A, X, Y uint8
	SP     uint8
	PSW    uint8

	// halted is set by STOP/SLEEP or an illegal opcode; the Scheduler
	// checks it to stop calling Step.
	halted bool
}

// New returns a CPU wired to the given bus. Register values must be
// applied afterwards from a loaded snapshot via SetState.
func New(mem Bus) *CPU {
	return &CPU{mem: mem}
}

// SetState initializes the register file, as done when a snapshot is
// loaded.
func (c *CPU) SetState(pc uint16, a, x, y, psw, sp uint8) {
	c.PC = pc
	c.A, c.X, c.Y, c.PSW, c.SP = a, x, y, psw, sp
	c.halted = false
}

// State returns the full register file, the read-side counterpart to
// SetState. Used by the debugger collaborator to render registers without
// depending on the CPU struct's field layout.
func (c *CPU) State() (pc uint16, a, x, y, psw, sp uint8) {
	return c.PC, c.A, c.X, c.Y, c.PSW, c.SP
}

// Halted reports whether the CPU hit STOP/SLEEP or an illegal opcode and
// will no longer make progress.
func (c *CPU) Halted() bool {
	return c.halted
}

func (c *CPU) getFlag(f Flag) bool {
	return c.PSW&uint8(f) != 0
}

func (c *CPU) setFlag(f Flag, v bool) {
	if v {
		c.PSW |= uint8(f)
	} else {
		c.PSW &^= uint8(f)
	}
}

// setNZ sets the N and Z flags from an 8-bit result.
func (c *CPU) setNZ(result uint8) {
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, result&0x80 != 0)
}

// setNZ16 sets the N and Z flags from a 16-bit result.
func (c *CPU) setNZ16(result uint16) {
	c.setFlag(FlagZ, result == 0)
	c.setFlag(FlagN, result&0x8000 != 0)
}

// dpBase returns the direct-page base address selected by the P flag.
func (c *CPU) dpBase() uint16 {
	if c.getFlag(FlagP) {
		return 0x0100
	}
	return 0x0000
}

// YA returns the 16-bit register pair with Y as the high byte and A as the
// low byte.
func (c *CPU) YA() uint16 {
	return uint16(c.Y)<<8 | uint16(c.A)
}

// setYA stores a 16-bit value back into the Y (high) / A (low) pair.
func (c *CPU) setYA(v uint16) {
	c.Y = uint8(v >> 8)
	c.A = uint8(v)
}

func (c *CPU) pushByte(v uint8) {
	c.mem.WriteByte(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) popByte() uint8 {
	c.SP++
	return c.mem.ReadByte(0x0100 + uint16(c.SP))
}

func (c *CPU) pushWord(v uint16) {
	c.pushByte(uint8(v >> 8))
	c.pushByte(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := c.popByte()
	hi := c.popByte()
	return uint16(hi)<<8 | uint16(lo)
}

// Step decodes and executes the instruction at PC, returning the number of
// CPU cycles it consumed. A byte that doesn't decode to a known opcode is
// fatal and surfaced as *IllegalOpcodeError; the caller (the Scheduler)
// decides whether to abort.
func (c *CPU) Step() (int, error) {
	if c.halted {
		return 0, nil
	}

	opcode := c.mem.ReadByte(c.PC)
	def := opcodeTable[opcode]
	if def.exec == nil {
		c.halted = true
		return 0, &IllegalOpcodeError{Opcode: opcode, PC: c.PC}
	}

	var operands [2]uint8
	for i := uint8(0); i < def.length-1; i++ {
		operands[i] = c.mem.ReadByte(c.PC + 1 + uint16(i))
	}

	c.PC += uint16(def.length)

	// Every exec closure sees c.PC already advanced past the full
	// instruction, which is exactly the "return address" CALL/PCALL/TCALL
	// push and the base PC that relative branches displace from.
	extra := def.exec(c, operands)

	return int(def.baseCycles) + extra, nil
}
