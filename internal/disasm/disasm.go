// Package disasm formats instructions for the interactive debugger and
// spcdump, turning a decoded opcode plus its operand bytes into a
// human-readable line. It reads the opcode table's decode metadata through
// spccpu.Decode rather than keeping its own copy.
package disasm

import (
	"fmt"

	"github.com/kestrel-audio/spc700/internal/spccpu"
)

// RAM is the read-only memory view needed to fetch operand bytes.
// Satisfied structurally by *spcmem.Fabric.
type RAM interface {
	ReadByte(addr uint16) uint8
}

// Line is one disassembled instruction.
type Line struct {
	Address uint16
	Text    string
	Length  uint8
}

// illegalLine is the textual stand-in for a byte that doesn't decode,
// matching the Step-time IllegalOpcodeError the core itself would raise.
const illegalLine = "??? (illegal)"

// At disassembles the instruction starting at pc, reading as many operand
// bytes as the opcode declares.
func At(pc uint16, mem RAM) Line {
	opcode := mem.ReadByte(pc)
	mnemonic, length, _, ok := spccpu.Decode(opcode)
	if !ok {
		return Line{Address: pc, Text: fmt.Sprintf("%02X         %s", opcode, illegalLine), Length: 1}
	}

	var operand string
	switch length {
	case 1:
		operand = ""
	case 2:
		b0 := mem.ReadByte(pc + 1)
		operand = fmt.Sprintf(" $%02X", b0)
	case 3:
		b0 := mem.ReadByte(pc + 1)
		b1 := mem.ReadByte(pc + 2)
		switch mnemonic {
		case "BBS", "BBC", "CBNE", "DBNZ":
			// Direct-page byte first, signed relative displacement second.
			operand = fmt.Sprintf(" $%02X,$%02X", b0, b1)
		default:
			operand = fmt.Sprintf(" $%02X%02X", b1, b0)
		}
	}

	bytesCol := formatBytes(mem, pc, length)
	return Line{
		Address: pc,
		Text:    fmt.Sprintf("%-10s %s%s", bytesCol, mnemonic, operand),
		Length:  length,
	}
}

func formatBytes(mem RAM, pc uint16, length uint8) string {
	s := ""
	for i := uint8(0); i < length; i++ {
		s += fmt.Sprintf("%02X ", mem.ReadByte(pc+uint16(i)))
	}
	return s
}

// Range disassembles count consecutive instructions starting at pc,
// following each instruction's own length to find the next one (no
// re-synchronization on illegal bytes beyond advancing one byte).
func Range(pc uint16, count int, mem RAM) []Line {
	lines := make([]Line, 0, count)
	addr := pc
	for i := 0; i < count; i++ {
		line := At(addr, mem)
		lines = append(lines, line)
		if line.Length == 0 {
			addr++
		} else {
			addr += uint16(line.Length)
		}
	}
	return lines
}
