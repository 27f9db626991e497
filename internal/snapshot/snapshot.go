// Package snapshot parses the SPC save-state file format into the plain
// data the core's collaborators load: CPU registers, a 64 KiB RAM image,
// and the 128-byte DSP register file. It is deliberately dumb — no
// validation beyond "is this actually a snapshot" happens here; it trusts
// the bytes once the header checks out and leaves semantic validation to
// whatever consumes them.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	magicText    = "SNES-SPC700 Sound File Data v0.30"
	magicLen     = 33
	offsetTag    = 0x23
	offsetMinor  = 0x24
	offsetCPU    = 0x25
	cpuBlockLen  = 8
	offsetRAM    = 0x0100
	ramLen       = 0x10000
	offsetDSP    = 0x10100
	dspRegLen    = 128
	totalFileLen = offsetDSP + dspRegLen
)

// ErrInvalidMagic is returned when the file doesn't open with the expected
// 33-byte header.
var ErrInvalidMagic = errors.New("snapshot: invalid magic header")

// ErrTruncated is returned when the file is shorter than a complete
// snapshot (magic plus header plus RAM plus DSP registers).
var ErrTruncated = errors.New("snapshot: truncated file")

// CPUState is the register block stored at offsets 0x25-0x2C.
type CPUState struct {
	PC      uint16
	A, X, Y uint8
	PSW     uint8
	SP      uint8
}

// Image is the fully parsed snapshot: everything the core needs to start
// running, already separated into the three pieces spcscheduler's
// collaborators consume directly.
type Image struct {
	TagType      uint8
	VersionMinor uint8
	CPU          CPUState
	RAM          [ramLen]byte
	DSPRegisters [dspRegLen]byte
}

// Load reads and validates a snapshot from r. It reads the entire stream
// up front since every offset in the format is absolute.
func Load(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read: %w", err)
	}

	if len(data) < magicLen || !bytes.Equal(data[:magicLen], []byte(magicText)) {
		return nil, ErrInvalidMagic
	}
	if len(data) < totalFileLen {
		return nil, ErrTruncated
	}

	img := &Image{
		TagType:      data[offsetTag],
		VersionMinor: data[offsetMinor],
	}

	cpu := data[offsetCPU : offsetCPU+cpuBlockLen]
	img.CPU = CPUState{
		PC:  uint16(cpu[0]) | uint16(cpu[1])<<8,
		A:   cpu[2],
		X:   cpu[3],
		Y:   cpu[4],
		PSW: cpu[5],
		SP:  cpu[6],
		// cpu[7] is reserved.
	}

	copy(img.RAM[:], data[offsetRAM:offsetRAM+ramLen])
	copy(img.DSPRegisters[:], data[offsetDSP:offsetDSP+dspRegLen])

	return img, nil
}
