// Package spcdsp implements the 8-voice ADPCM DSP: per-voice BRR decode,
// Gaussian pitch interpolation, ADSR/GAIN envelopes, and the stereo mixer
// that the Scheduler calls once per 32 kHz sample period. A flat register
// file plus an array of per-voice state backs it, with register writes
// dispatching straight into that state.
package spcdsp

import "github.com/kestrel-audio/spc700/internal/bit"

// RAM is the read-only view of the shared memory fabric the engine needs
// to pull sample directory entries and ADPCM block data. Satisfied
// structurally by *spcmem.Fabric.
type RAM interface {
	ReadByte(addr uint16) uint8
}

// Register offsets within the 128-byte DSP register file. Per-voice fields
// live at (voice<<4)+offset; global registers are named constants below.
const (
	voiceVOLL   = 0x0
	voiceVOLR   = 0x1
	voicePitchL = 0x2
	voicePitchH = 0x3
	voiceSRCN   = 0x4
	voiceADSR1  = 0x5
	voiceADSR2  = 0x6
	voiceGAIN   = 0x7
	voiceENVX   = 0x8
	voiceOUTX   = 0x9
)

const (
	regMVOLL = 0x0C
	regMVOLR = 0x1C
	regKON   = 0x4C
	regKOFF  = 0x5C
	regDIR   = 0x5D
	regFLG   = 0x6C
	regENDX  = 0x7C
)

const (
	flgMute  = 1 << 6
	flgReset = 1 << 7
)

// Engine owns the 128-byte DSP register file and the eight voice state
// machines. It implements spcmem.DSPRegisters.
type Engine struct {
	mem  RAM
	regs [128]byte

	voices        [8]voice
	sampleCounter uint64
}

// New returns an Engine reading ADPCM data and sample directory entries
// through mem. The register file starts zeroed, matching a snapshot that
// restores it before playback begins.
func New(mem RAM) *Engine {
	return &Engine{mem: mem}
}

// LoadRegisters overwrites the entire 128-byte register file, used when
// applying a loaded snapshot. It does not trigger KON/KOFF/FLG side
// effects; voices stay disabled until the snapshot's own KON write (or a
// direct enable by the caller) replays them.
func (e *Engine) LoadRegisters(data []byte) {
	copy(e.regs[:], data)
}

func (e *Engine) voiceReg(v uint8, offset uint8) uint8 {
	return e.regs[(v<<4)+offset]
}

func (e *Engine) setVoiceReg(v uint8, offset uint8, val uint8) {
	e.regs[(v<<4)+offset] = val
}

// ReadRegister returns the raw byte at the given DSP register index.
func (e *Engine) ReadRegister(index uint8) uint8 {
	return e.regs[index&0x7F]
}

// WriteRegister stores the byte, then applies the side effects of the four
// active registers: KON, KOFF, FLG (reset bit), and ENDX (write clears).
func (e *Engine) WriteRegister(index uint8, value uint8) {
	index &= 0x7F
	e.regs[index] = value

	switch index {
	case regKON:
		for v := uint8(0); v < 8; v++ {
			if value&(1<<v) != 0 {
				e.keyOn(v)
			}
		}
	case regKOFF:
		for v := uint8(0); v < 8; v++ {
			if value&(1<<v) != 0 {
				e.keyOff(v)
			}
		}
	case regFLG:
		if value&flgReset != 0 {
			for v := uint8(0); v < 8; v++ {
				e.keyOff(v)
			}
		}
	case regENDX:
		// Write-one-to-clear is specified at the component level as "zero
		// the ENDX register" unconditionally on any write.
		e.regs[regENDX] = 0
	}
}

// keyOn starts voice v playing from its sample directory entry.
func (e *Engine) keyOn(v uint8) {
	vc := &e.voices[v]
	srcn := e.voiceReg(v, voiceSRCN)
	start, loop := e.directoryEntry(srcn)

	vc.enabled = true
	vc.curAddr = start
	vc.loopAddr = loop
	vc.decodeBlock(e.mem)
	vc.pitchCounter = 0
	vc.prevInterp = [3]int32{}
	vc.prevBRR = [2]int32{}
	vc.envLevel = 0
	e.startEnvelope(v, vc)
}

// keyOff transitions voice v into Release without disabling it; the
// envelope decaying to 0 is what eventually disables it.
func (e *Engine) keyOff(v uint8) {
	e.voices[v].phase = phaseRelease
}

// directoryEntry reads the (start, loop) address pair for sample source
// srcn out of the sample directory, whose base is DIR*0x100.
func (e *Engine) directoryEntry(srcn uint8) (start, loop uint16) {
	base := uint16(e.regs[regDIR]) << 8
	entry := base + uint16(srcn)*4
	start = readWord(e.mem, entry)
	loop = readWord(e.mem, entry+2)
	return start, loop
}

func readWord(mem RAM, addr uint16) uint16 {
	lo := mem.ReadByte(addr)
	hi := mem.ReadByte(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Step advances every enabled voice by one 32 kHz sample and returns the
// mixed (left, right) pair, already scaled by master volume and clamped to
// signed 16-bit. If FLG's mute bit is set both channels are forced to
// zero, matching real hardware (the voices still run so envelopes and
// ENDX keep progressing silently).
func (e *Engine) Step() (left, right int16) {
	e.sampleCounter++

	var accL, accR int32
	for v := uint8(0); v < 8; v++ {
		vc := &e.voices[v]
		if !vc.enabled {
			continue
		}

		raw := vc.advance(e, v)
		shaped := e.applyEnvelope(v, vc, raw)

		e.setVoiceReg(v, voiceENVX, uint8(vc.envLevel>>4))
		e.setVoiceReg(v, voiceOUTX, uint8((shaped>>8)&0x0F))

		volL := int8(e.voiceReg(v, voiceVOLL))
		volR := int8(e.voiceReg(v, voiceVOLR))
		accL += (shaped * int32(volL)) >> 7
		accR += (shaped * int32(volR)) >> 7
	}

	mvolL := int8(e.regs[regMVOLL])
	mvolR := int8(e.regs[regMVOLR])
	accL = (accL * int32(mvolL)) >> 7
	accR = (accR * int32(mvolR)) >> 7

	if e.regs[regFLG]&flgMute != 0 {
		accL, accR = 0, 0
	}

	return bit.Clamp16(accL), bit.Clamp16(accR)
}
