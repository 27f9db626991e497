package spccpu

// opcodeExec runs an instruction's already-decoded operand bytes and
// returns any cycles beyond the table's baseCycles (taken branches, the
// bit-test-and-branch and compare-and-branch bonus, etc). By the time it
// runs, c.PC has already been advanced past the whole instruction.
type opcodeExec func(c *CPU, ops [2]uint8) int

type opcodeDef struct {
	mnemonic   string
	length     uint8
	baseCycles uint8
	exec       opcodeExec
}

var opcodeTable [256]opcodeDef

func def(opcode uint8, mnemonic string, length, cycles uint8, exec opcodeExec) {
	opcodeTable[opcode] = opcodeDef{mnemonic: mnemonic, length: length, baseCycles: cycles, exec: exec}
}

// Decode returns the static decode metadata for a single opcode byte,
// without executing anything. The disassembler collaborator uses this
// instead of duplicating the opcode table; ok is false for bytes that
// don't decode to a real instruction.
func Decode(opcode uint8) (mnemonic string, length uint8, cycles uint8, ok bool) {
	def := opcodeTable[opcode]
	if def.exec == nil {
		return "", 0, 0, false
	}
	return def.mnemonic, def.length, def.baseCycles, true
}

func init() {
	buildRow0()
	buildRow1()
	buildRow2()
	buildRow3()
	buildRow4()
	buildRow5()
	buildRow6()
	buildRow7()
	buildRow8()
	buildRow9()
	buildRowA()
	buildRowB()
	buildRowC()
	buildRowD()
	buildRowE()
	buildRowF()
}

// --- bit-position opcode families -----------------------------------
//
// SET1/CLR1/BBS/BBC each come in 8 variants (one per bit), and the opcode
// byte encodes both the family and the bit index in a regular pattern:
// SET1 d.n is 0x02+0x20*n, CLR1 d.n is 0x12+0x20*n, BBS d.n is 0x03+0x20*n,
// BBC d.n is 0x13+0x20*n.

func buildBitFamilies() {
	for n := uint8(0); n < 8; n++ {
		bit := n
		set1Op := 0x02 + 0x20*n
		clr1Op := 0x12 + 0x20*n
		bbsOp := 0x03 + 0x20*n
		bbcOp := 0x13 + 0x20*n

		def(set1Op, "SET1", 2, 4, func(c *CPU, ops [2]uint8) int {
			c.set1(c.dpAddr(ops[0]), bit)
			return 0
		})
		def(clr1Op, "CLR1", 2, 4, func(c *CPU, ops [2]uint8) int {
			c.clr1(c.dpAddr(ops[0]), bit)
			return 0
		})
		def(bbsOp, "BBS", 3, 5, func(c *CPU, ops [2]uint8) int {
			return c.bbs(c.dpAddr(ops[0]), bit, ops[1])
		})
		def(bbcOp, "BBC", 3, 5, func(c *CPU, ops [2]uint8) int {
			return c.bbc(c.dpAddr(ops[0]), bit, ops[1])
		})
	}
}

// --- TCALL family ------------------------------------------------------

func buildTCallFamily() {
	for n := uint8(0); n < 16; n++ {
		vector := n
		opcode := 0x01 + 0x10*n
		def(opcode, "TCALL", 1, 8, func(c *CPU, ops [2]uint8) int {
			c.tcall(vector, c.PC)
			return 0
		})
	}
}

func buildRow0() {
	buildBitFamilies()
	buildTCallFamily()

	def(0x00, "NOP", 1, 2, func(c *CPU, ops [2]uint8) int { return 0 })
	def(0x04, "OR", 2, 3, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x05, "OR", 3, 4, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0x06, "OR", 1, 3, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.indirectX())); return 0 })
	def(0x07, "OR", 2, 6, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0x08, "OR", 2, 2, func(c *CPU, ops [2]uint8) int { c.or(ops[0]); return 0 })
	def(0x09, "OR", 3, 6, func(c *CPU, ops [2]uint8) int {
		dst, src := c.dpAddr(ops[0]), c.dpAddr(ops[1])
		c.or2(dst, src)
		return 0
	})
	def(0x0A, "OR1", 3, 5, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.or1(addr, b, false)
		return 0
	})
	def(0x0B, "ASL", 2, 4, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		c.mem.WriteByte(a, c.asl(c.mem.ReadByte(a)))
		return 0
	})
	def(0x0C, "ASL", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := absAddr(ops[0], ops[1])
		c.mem.WriteByte(a, c.asl(c.mem.ReadByte(a)))
		return 0
	})
	def(0x0D, "PUSH", 1, 4, func(c *CPU, ops [2]uint8) int { c.pushByte(c.PSW); return 0 })
	def(0x0E, "TSET1", 3, 6, func(c *CPU, ops [2]uint8) int { c.tset1(absAddr(ops[0], ops[1])); return 0 })
	def(0x0F, "BRK", 1, 8, func(c *CPU, ops [2]uint8) int { c.brk(c.PC); return 0 })
}

// or2 implements OR dp,dp (store-to-first-operand form used by the d,d ALU
// opcodes at column 9).
func (c *CPU) or2(dst, src uint16) {
	result := c.mem.ReadByte(dst) | c.mem.ReadByte(src)
	c.setNZ(result)
	c.mem.WriteByte(dst, result)
}
func (c *CPU) and2(dst, src uint16) {
	result := c.mem.ReadByte(dst) & c.mem.ReadByte(src)
	c.setNZ(result)
	c.mem.WriteByte(dst, result)
}
func (c *CPU) eor2(dst, src uint16) {
	result := c.mem.ReadByte(dst) ^ c.mem.ReadByte(src)
	c.setNZ(result)
	c.mem.WriteByte(dst, result)
}
func (c *CPU) cmp2(dst, src uint16) {
	c.cmp(c.mem.ReadByte(dst), c.mem.ReadByte(src))
}

func buildRow1() {
	def(0x10, "BPL", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(!c.getFlag(FlagN), ops[0]) })
	def(0x14, "OR", 2, 4, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0x15, "OR", 3, 5, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0x16, "OR", 3, 5, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0x17, "OR", 2, 6, func(c *CPU, ops [2]uint8) int { c.or(c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0x18, "OR", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		result := c.mem.ReadByte(a) | ops[1]
		c.setNZ(result)
		c.mem.WriteByte(a, result)
		return 0
	})
	def(0x19, "OR", 1, 5, func(c *CPU, ops [2]uint8) int {
		a := c.indirectX()
		y := c.dpBase() + uint16(c.Y)
		result := c.mem.ReadByte(a) | c.mem.ReadByte(y)
		c.setNZ(result)
		c.mem.WriteByte(a, result)
		return 0
	})
	def(0x1A, "DECW", 2, 6, func(c *CPU, ops [2]uint8) int { c.decw(c.dpAddr(ops[0])); return 0 })
	def(0x1B, "ASL", 2, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpXAddr(ops[0])
		c.mem.WriteByte(a, c.asl(c.mem.ReadByte(a)))
		return 0
	})
	def(0x1C, "ASL", 1, 2, func(c *CPU, ops [2]uint8) int { c.A = c.asl(c.A); return 0 })
	def(0x1D, "DEC", 1, 2, func(c *CPU, ops [2]uint8) int { c.X = c.dec8(c.X); return 0 })
	def(0x1E, "CMP", 3, 4, func(c *CPU, ops [2]uint8) int {
		c.cmp(c.X, c.mem.ReadByte(absAddr(ops[0], ops[1])))
		return 0
	})
	def(0x1F, "JMP", 3, 6, func(c *CPU, ops [2]uint8) int {
		tableAddr := c.absXAddr(ops[0], ops[1])
		c.PC = c.mem.ReadWord(tableAddr)
		return 0
	})
}

func buildRow2() {
	def(0x20, "CLRP", 1, 2, func(c *CPU, ops [2]uint8) int { c.clrp(); return 0 })
	def(0x24, "AND", 2, 3, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x25, "AND", 3, 4, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0x26, "AND", 1, 3, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.indirectX())); return 0 })
	def(0x27, "AND", 2, 6, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0x28, "AND", 2, 2, func(c *CPU, ops [2]uint8) int { c.and(ops[0]); return 0 })
	def(0x29, "AND", 3, 6, func(c *CPU, ops [2]uint8) int { c.and2(c.dpAddr(ops[0]), c.dpAddr(ops[1])); return 0 })
	def(0x2A, "OR1", 3, 5, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.or1(addr, b, true)
		return 0
	})
	def(0x2B, "ROL", 2, 4, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		c.mem.WriteByte(a, c.rol(c.mem.ReadByte(a)))
		return 0
	})
	def(0x2C, "ROL", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := absAddr(ops[0], ops[1])
		c.mem.WriteByte(a, c.rol(c.mem.ReadByte(a)))
		return 0
	})
	def(0x2D, "PUSH", 1, 4, func(c *CPU, ops [2]uint8) int { c.pushByte(c.A); return 0 })
	def(0x2E, "CBNE", 3, 6, func(c *CPU, ops [2]uint8) int { return c.cbne(c.dpAddr(ops[0]), ops[1]) })
	def(0x2F, "BRA", 2, 4, func(c *CPU, ops [2]uint8) int { c.PC = rel(c.PC, ops[0]); return 0 })
}

func buildRow3() {
	def(0x30, "BMI", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(c.getFlag(FlagN), ops[0]) })
	def(0x34, "AND", 2, 4, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0x35, "AND", 3, 5, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0x36, "AND", 3, 5, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0x37, "AND", 2, 6, func(c *CPU, ops [2]uint8) int { c.and(c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0x38, "AND", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		result := c.mem.ReadByte(a) & ops[1]
		c.setNZ(result)
		c.mem.WriteByte(a, result)
		return 0
	})
	def(0x39, "AND", 1, 5, func(c *CPU, ops [2]uint8) int {
		x := c.indirectX()
		y := c.dpBase() + uint16(c.Y)
		c.and2(x, y)
		return 0
	})
	def(0x3A, "INCW", 2, 6, func(c *CPU, ops [2]uint8) int { c.incw(c.dpAddr(ops[0])); return 0 })
	def(0x3B, "ROL", 2, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpXAddr(ops[0])
		c.mem.WriteByte(a, c.rol(c.mem.ReadByte(a)))
		return 0
	})
	def(0x3C, "ROL", 1, 2, func(c *CPU, ops [2]uint8) int { c.A = c.rol(c.A); return 0 })
	def(0x3D, "INC", 1, 2, func(c *CPU, ops [2]uint8) int { c.X = c.inc8(c.X); return 0 })
	def(0x3E, "CMP", 2, 3, func(c *CPU, ops [2]uint8) int { c.cmp(c.X, c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x3F, "CALL", 3, 8, func(c *CPU, ops [2]uint8) int { c.call(absAddr(ops[0], ops[1]), c.PC); return 0 })
}

func buildRow4() {
	def(0x40, "SETP", 1, 2, func(c *CPU, ops [2]uint8) int { c.setp(); return 0 })
	def(0x44, "EOR", 2, 3, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x45, "EOR", 3, 4, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0x46, "EOR", 1, 3, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.indirectX())); return 0 })
	def(0x47, "EOR", 2, 6, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0x48, "EOR", 2, 2, func(c *CPU, ops [2]uint8) int { c.eor(ops[0]); return 0 })
	def(0x49, "EOR", 3, 6, func(c *CPU, ops [2]uint8) int { c.eor2(c.dpAddr(ops[0]), c.dpAddr(ops[1])); return 0 })
	def(0x4A, "AND1", 3, 4, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.and1(addr, b, false)
		return 0
	})
	def(0x4B, "LSR", 2, 4, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		c.mem.WriteByte(a, c.lsr(c.mem.ReadByte(a)))
		return 0
	})
	def(0x4C, "LSR", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := absAddr(ops[0], ops[1])
		c.mem.WriteByte(a, c.lsr(c.mem.ReadByte(a)))
		return 0
	})
	def(0x4D, "PUSH", 1, 4, func(c *CPU, ops [2]uint8) int { c.pushByte(c.X); return 0 })
	def(0x4E, "TCLR1", 3, 6, func(c *CPU, ops [2]uint8) int { c.tclr1(absAddr(ops[0], ops[1])); return 0 })
	def(0x4F, "PCALL", 2, 6, func(c *CPU, ops [2]uint8) int { c.pcall(ops[0], c.PC); return 0 })
}

func buildRow5() {
	def(0x50, "BVC", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(!c.getFlag(FlagV), ops[0]) })
	def(0x54, "EOR", 2, 4, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0x55, "EOR", 3, 5, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0x56, "EOR", 3, 5, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0x57, "EOR", 2, 6, func(c *CPU, ops [2]uint8) int { c.eor(c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0x58, "EOR", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		result := c.mem.ReadByte(a) ^ ops[1]
		c.setNZ(result)
		c.mem.WriteByte(a, result)
		return 0
	})
	def(0x59, "EOR", 1, 5, func(c *CPU, ops [2]uint8) int {
		x := c.indirectX()
		y := c.dpBase() + uint16(c.Y)
		c.eor2(x, y)
		return 0
	})
	def(0x5A, "CMPW", 2, 4, func(c *CPU, ops [2]uint8) int {
		m := c.mem.ReadWord(c.dpAddr(ops[0]))
		ya := c.YA()
		c.setFlag(FlagC, ya >= m)
		c.setNZ16(ya - m)
		return 0
	})
	def(0x5B, "LSR", 2, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpXAddr(ops[0])
		c.mem.WriteByte(a, c.lsr(c.mem.ReadByte(a)))
		return 0
	})
	def(0x5C, "LSR", 1, 2, func(c *CPU, ops [2]uint8) int { c.A = c.lsr(c.A); return 0 })
	def(0x5D, "MOV", 1, 2, func(c *CPU, ops [2]uint8) int { c.movToX(c.A); return 0 })
	def(0x5E, "CMP", 3, 4, func(c *CPU, ops [2]uint8) int {
		c.cmp(c.Y, c.mem.ReadByte(absAddr(ops[0], ops[1])))
		return 0
	})
	def(0x5F, "JMP", 3, 3, func(c *CPU, ops [2]uint8) int { c.PC = absAddr(ops[0], ops[1]); return 0 })
}

func buildRow6() {
	def(0x60, "CLRC", 1, 2, func(c *CPU, ops [2]uint8) int { c.clrc(); return 0 })
	def(0x64, "CMP", 2, 3, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x65, "CMP", 3, 4, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0x66, "CMP", 1, 3, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.indirectX())); return 0 })
	def(0x67, "CMP", 2, 6, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0x68, "CMP", 2, 2, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, ops[0]); return 0 })
	def(0x69, "CMP", 3, 6, func(c *CPU, ops [2]uint8) int { c.cmp2(c.dpAddr(ops[0]), c.dpAddr(ops[1])); return 0 })
	def(0x6A, "AND1", 3, 4, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.and1(addr, b, true)
		return 0
	})
	def(0x6B, "ROR", 2, 4, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		c.mem.WriteByte(a, c.ror(c.mem.ReadByte(a)))
		return 0
	})
	def(0x6C, "ROR", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := absAddr(ops[0], ops[1])
		c.mem.WriteByte(a, c.ror(c.mem.ReadByte(a)))
		return 0
	})
	def(0x6D, "PUSH", 1, 4, func(c *CPU, ops [2]uint8) int { c.pushByte(c.Y); return 0 })
	def(0x6E, "DBNZ", 3, 6, func(c *CPU, ops [2]uint8) int { return c.dbnzMem(c.dpAddr(ops[0]), ops[1]) })
	def(0x6F, "RET", 1, 5, func(c *CPU, ops [2]uint8) int { c.ret(); return 0 })
}

func buildRow7() {
	def(0x70, "BVS", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(c.getFlag(FlagV), ops[0]) })
	def(0x74, "CMP", 2, 4, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0x75, "CMP", 3, 5, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0x76, "CMP", 3, 5, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0x77, "CMP", 2, 6, func(c *CPU, ops [2]uint8) int { c.cmp(c.A, c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0x78, "CMP", 3, 5, func(c *CPU, ops [2]uint8) int { c.cmp(c.mem.ReadByte(c.dpAddr(ops[0])), ops[1]); return 0 })
	def(0x79, "CMP", 1, 5, func(c *CPU, ops [2]uint8) int {
		x := c.indirectX()
		y := c.dpBase() + uint16(c.Y)
		c.cmp2(x, y)
		return 0
	})
	def(0x7A, "ADDW", 2, 5, func(c *CPU, ops [2]uint8) int { c.addw(c.mem.ReadWord(c.dpAddr(ops[0]))); return 0 })
	def(0x7B, "ROR", 2, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpXAddr(ops[0])
		c.mem.WriteByte(a, c.ror(c.mem.ReadByte(a)))
		return 0
	})
	def(0x7C, "ROR", 1, 2, func(c *CPU, ops [2]uint8) int { c.A = c.ror(c.A); return 0 })
	def(0x7D, "MOV", 1, 2, func(c *CPU, ops [2]uint8) int { c.movToA(c.X); return 0 })
	def(0x7E, "CMP", 2, 3, func(c *CPU, ops [2]uint8) int { c.cmp(c.Y, c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x7F, "RET1", 1, 6, func(c *CPU, ops [2]uint8) int { c.ret1(); return 0 })
}

func buildRow8() {
	def(0x80, "SETC", 1, 2, func(c *CPU, ops [2]uint8) int { c.setc(); return 0 })
	def(0x84, "ADC", 2, 3, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0x85, "ADC", 3, 4, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0x86, "ADC", 1, 3, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.indirectX())); return 0 })
	def(0x87, "ADC", 2, 6, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0x88, "ADC", 2, 2, func(c *CPU, ops [2]uint8) int { c.adc(ops[0]); return 0 })
	def(0x89, "ADC", 3, 6, func(c *CPU, ops [2]uint8) int {
		dst, src := c.dpAddr(ops[0]), c.dpAddr(ops[1])
		m := c.mem.ReadByte(src)
		savedA := c.A
		c.A = c.mem.ReadByte(dst)
		c.adc(m)
		result := c.A
		c.A = savedA
		c.mem.WriteByte(dst, result)
		return 0
	})
	def(0x8A, "EOR1", 3, 4, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.eor1(addr, b)
		return 0
	})
	def(0x8B, "DEC", 2, 4, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		c.mem.WriteByte(a, c.dec8(c.mem.ReadByte(a)))
		return 0
	})
	def(0x8C, "DEC", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := absAddr(ops[0], ops[1])
		c.mem.WriteByte(a, c.dec8(c.mem.ReadByte(a)))
		return 0
	})
	def(0x8D, "MOV", 2, 2, func(c *CPU, ops [2]uint8) int { c.movToY(ops[0]); return 0 })
	def(0x8E, "POP", 1, 4, func(c *CPU, ops [2]uint8) int { c.PSW = c.popByte(); return 0 })
	def(0x8F, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpAddr(ops[1]), ops[0]); return 0 })
}

func buildRow9() {
	def(0x90, "BCC", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(!c.getFlag(FlagC), ops[0]) })
	def(0x94, "ADC", 2, 4, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0x95, "ADC", 3, 5, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0x96, "ADC", 3, 5, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0x97, "ADC", 2, 6, func(c *CPU, ops [2]uint8) int { c.adc(c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0x98, "ADC", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		savedA := c.A
		c.A = c.mem.ReadByte(a)
		c.adc(ops[1])
		result := c.A
		c.A = savedA
		c.mem.WriteByte(a, result)
		return 0
	})
	def(0x99, "ADC", 1, 5, func(c *CPU, ops [2]uint8) int {
		dst := c.indirectX()
		src := c.dpBase() + uint16(c.Y)
		savedA := c.A
		c.A = c.mem.ReadByte(dst)
		c.adc(c.mem.ReadByte(src))
		result := c.A
		c.A = savedA
		c.mem.WriteByte(dst, result)
		return 0
	})
	def(0x9A, "SUBW", 2, 5, func(c *CPU, ops [2]uint8) int { c.subw(c.mem.ReadWord(c.dpAddr(ops[0]))); return 0 })
	def(0x9B, "DEC", 2, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpXAddr(ops[0])
		c.mem.WriteByte(a, c.dec8(c.mem.ReadByte(a)))
		return 0
	})
	def(0x9C, "DEC", 1, 2, func(c *CPU, ops [2]uint8) int { c.A = c.dec8(c.A); return 0 })
	def(0x9D, "MOV", 1, 2, func(c *CPU, ops [2]uint8) int { c.movToX(c.SP); return 0 })
	def(0x9E, "DIV", 1, 12, func(c *CPU, ops [2]uint8) int { c.divYA(); return 0 })
	def(0x9F, "XCN", 1, 5, func(c *CPU, ops [2]uint8) int { c.xcn(); return 0 })
}

func buildRowA() {
	def(0xA0, "EI", 1, 3, func(c *CPU, ops [2]uint8) int { c.ei(); return 0 })
	def(0xA4, "SBC", 2, 3, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0xA5, "SBC", 3, 4, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0xA6, "SBC", 1, 3, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.indirectX())); return 0 })
	def(0xA7, "SBC", 2, 6, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0xA8, "SBC", 2, 2, func(c *CPU, ops [2]uint8) int { c.sbc(ops[0]); return 0 })
	def(0xA9, "SBC", 3, 6, func(c *CPU, ops [2]uint8) int {
		dst, src := c.dpAddr(ops[0]), c.dpAddr(ops[1])
		m := c.mem.ReadByte(src)
		savedA := c.A
		c.A = c.mem.ReadByte(dst)
		c.sbc(m)
		result := c.A
		c.A = savedA
		c.mem.WriteByte(dst, result)
		return 0
	})
	def(0xAA, "MOV1", 3, 4, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.mov1ToC(addr, b)
		return 0
	})
	def(0xAB, "INC", 2, 4, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		c.mem.WriteByte(a, c.inc8(c.mem.ReadByte(a)))
		return 0
	})
	def(0xAC, "INC", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := absAddr(ops[0], ops[1])
		c.mem.WriteByte(a, c.inc8(c.mem.ReadByte(a)))
		return 0
	})
	def(0xAD, "CMP", 2, 2, func(c *CPU, ops [2]uint8) int { c.cmp(c.Y, ops[0]); return 0 })
	def(0xAE, "POP", 1, 4, func(c *CPU, ops [2]uint8) int { c.A = c.popByte(); return 0 })
	def(0xAF, "MOV", 1, 4, func(c *CPU, ops [2]uint8) int {
		a := c.indirectX()
		c.mem.WriteByte(a, c.A)
		c.X++
		return 0
	})
}

func buildRowB() {
	def(0xB0, "BCS", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(c.getFlag(FlagC), ops[0]) })
	def(0xB4, "SBC", 2, 4, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0xB5, "SBC", 3, 5, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0xB6, "SBC", 3, 5, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0xB7, "SBC", 2, 6, func(c *CPU, ops [2]uint8) int { c.sbc(c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0xB8, "SBC", 3, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpAddr(ops[0])
		savedA := c.A
		c.A = c.mem.ReadByte(a)
		c.sbc(ops[1])
		result := c.A
		c.A = savedA
		c.mem.WriteByte(a, result)
		return 0
	})
	def(0xB9, "SBC", 1, 5, func(c *CPU, ops [2]uint8) int {
		dst := c.indirectX()
		src := c.dpBase() + uint16(c.Y)
		savedA := c.A
		c.A = c.mem.ReadByte(dst)
		c.sbc(c.mem.ReadByte(src))
		result := c.A
		c.A = savedA
		c.mem.WriteByte(dst, result)
		return 0
	})
	def(0xBA, "MOVW", 2, 5, func(c *CPU, ops [2]uint8) int { c.movwLoad(c.dpAddr(ops[0])); return 0 })
	def(0xBB, "INC", 2, 5, func(c *CPU, ops [2]uint8) int {
		a := c.dpXAddr(ops[0])
		c.mem.WriteByte(a, c.inc8(c.mem.ReadByte(a)))
		return 0
	})
	def(0xBC, "INC", 1, 2, func(c *CPU, ops [2]uint8) int { c.A = c.inc8(c.A); return 0 })
	def(0xBD, "MOV", 1, 2, func(c *CPU, ops [2]uint8) int { c.SP = c.X; return 0 })
	def(0xBE, "DAS", 1, 3, func(c *CPU, ops [2]uint8) int { c.das(); return 0 })
	def(0xBF, "MOV", 1, 4, func(c *CPU, ops [2]uint8) int {
		a := c.indirectX()
		c.movToA(c.mem.ReadByte(a))
		c.X++
		return 0
	})
}

func buildRowC() {
	def(0xC0, "DI", 1, 3, func(c *CPU, ops [2]uint8) int { c.di(); return 0 })
	def(0xC4, "MOV", 2, 4, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpAddr(ops[0]), c.A); return 0 })
	def(0xC5, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(absAddr(ops[0], ops[1]), c.A); return 0 })
	def(0xC6, "MOV", 1, 4, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.indirectX(), c.A); return 0 })
	def(0xC7, "MOV", 2, 7, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.indirectXIndexed(ops[0]), c.A); return 0 })
	def(0xC8, "CMP", 2, 2, func(c *CPU, ops [2]uint8) int { c.cmp(c.X, ops[0]); return 0 })
	def(0xC9, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(absAddr(ops[0], ops[1]), c.X); return 0 })
	def(0xCA, "MOV1", 3, 6, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.mov1FromC(addr, b)
		return 0
	})
	def(0xCB, "MOV", 2, 4, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpAddr(ops[0]), c.Y); return 0 })
	def(0xCC, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(absAddr(ops[0], ops[1]), c.Y); return 0 })
	def(0xCD, "MOV", 2, 2, func(c *CPU, ops [2]uint8) int { c.movToX(ops[0]); return 0 })
	def(0xCE, "POP", 1, 4, func(c *CPU, ops [2]uint8) int { c.X = c.popByte(); return 0 })
	def(0xCF, "MUL", 1, 9, func(c *CPU, ops [2]uint8) int { c.mulYA(); return 0 })
}

func buildRowD() {
	def(0xD0, "BNE", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(!c.getFlag(FlagZ), ops[0]) })
	def(0xD4, "MOV", 2, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpXAddr(ops[0]), c.A); return 0 })
	def(0xD5, "MOV", 3, 6, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.absXAddr(ops[0], ops[1]), c.A); return 0 })
	def(0xD6, "MOV", 3, 6, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.absYAddr(ops[0], ops[1]), c.A); return 0 })
	def(0xD7, "MOV", 2, 7, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.indirectIndexedY(ops[0]), c.A); return 0 })
	def(0xD8, "MOV", 2, 4, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpAddr(ops[0]), c.X); return 0 })
	def(0xD9, "MOV", 2, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpYAddr(ops[0]), c.X); return 0 })
	def(0xDA, "MOVW", 2, 5, func(c *CPU, ops [2]uint8) int { c.movwStore(c.dpAddr(ops[0])); return 0 })
	def(0xDB, "MOV", 2, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpXAddr(ops[0]), c.Y); return 0 })
	def(0xDC, "DEC", 1, 2, func(c *CPU, ops [2]uint8) int { c.Y = c.dec8(c.Y); return 0 })
	def(0xDD, "MOV", 1, 2, func(c *CPU, ops [2]uint8) int { c.movToA(c.Y); return 0 })
	def(0xDE, "CBNE", 3, 7, func(c *CPU, ops [2]uint8) int { return c.cbne(c.dpXAddr(ops[0]), ops[1]) })
	def(0xDF, "DAA", 1, 3, func(c *CPU, ops [2]uint8) int { c.daa(); return 0 })
}

func buildRowE() {
	def(0xE0, "CLRV", 1, 2, func(c *CPU, ops [2]uint8) int { c.clrv(); return 0 })
	def(0xE4, "MOV", 2, 3, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0xE5, "MOV", 3, 4, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0xE6, "MOV", 1, 3, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.indirectX())); return 0 })
	def(0xE7, "MOV", 2, 6, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.indirectXIndexed(ops[0]))); return 0 })
	def(0xE8, "MOV", 2, 2, func(c *CPU, ops [2]uint8) int { c.movToA(ops[0]); return 0 })
	def(0xE9, "MOV", 3, 4, func(c *CPU, ops [2]uint8) int { c.movToX(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0xEA, "NOT1", 3, 5, func(c *CPU, ops [2]uint8) int {
		addr, b := memBit(ops[0], ops[1])
		c.not1(addr, b)
		return 0
	})
	def(0xEB, "MOV", 2, 3, func(c *CPU, ops [2]uint8) int { c.movToY(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0xEC, "MOV", 3, 4, func(c *CPU, ops [2]uint8) int { c.movToY(c.mem.ReadByte(absAddr(ops[0], ops[1]))); return 0 })
	def(0xED, "NOTC", 1, 3, func(c *CPU, ops [2]uint8) int { c.notc(); return 0 })
	def(0xEE, "POP", 1, 4, func(c *CPU, ops [2]uint8) int { c.Y = c.popByte(); return 0 })
	def(0xEF, "SLEEP", 1, 3, func(c *CPU, ops [2]uint8) int { c.halted = true; return 0 })
}

func buildRowF() {
	def(0xF0, "BEQ", 2, 2, func(c *CPU, ops [2]uint8) int { return c.branchIf(c.getFlag(FlagZ), ops[0]) })
	def(0xF4, "MOV", 2, 4, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0xF5, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.absXAddr(ops[0], ops[1]))); return 0 })
	def(0xF6, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.absYAddr(ops[0], ops[1]))); return 0 })
	def(0xF7, "MOV", 2, 6, func(c *CPU, ops [2]uint8) int { c.movToA(c.mem.ReadByte(c.indirectIndexedY(ops[0]))); return 0 })
	def(0xF8, "MOV", 2, 3, func(c *CPU, ops [2]uint8) int { c.movToX(c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0xF9, "MOV", 2, 4, func(c *CPU, ops [2]uint8) int { c.movToX(c.mem.ReadByte(c.dpYAddr(ops[0]))); return 0 })
	def(0xFA, "MOV", 3, 5, func(c *CPU, ops [2]uint8) int { c.mem.WriteByte(c.dpAddr(ops[1]), c.mem.ReadByte(c.dpAddr(ops[0]))); return 0 })
	def(0xFB, "MOV", 2, 4, func(c *CPU, ops [2]uint8) int { c.movToY(c.mem.ReadByte(c.dpXAddr(ops[0]))); return 0 })
	def(0xFC, "INC", 1, 2, func(c *CPU, ops [2]uint8) int { c.Y = c.inc8(c.Y); return 0 })
	def(0xFD, "MOV", 1, 2, func(c *CPU, ops [2]uint8) int { c.movToY(c.A); return 0 })
	def(0xFE, "DBNZ", 2, 4, func(c *CPU, ops [2]uint8) int { return c.dbnzReg(&c.Y, ops[0]) })
	def(0xFF, "STOP", 1, 3, func(c *CPU, ops [2]uint8) int { c.halted = true; return 0 })
}
