// Command spcdump lists the disassembly of a snapshot's RAM image starting
// at its saved program counter, without running the machine.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/kestrel-audio/spc700/internal/disasm"
	"github.com/kestrel-audio/spc700/internal/snapshot"
)

func main() {
	app := cli.NewApp()
	app.Name = "spcdump"
	app.Usage = "spcdump [options] <snapshot file>"
	app.Description = "Disassembles the program in an SPC700 snapshot"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "snapshot", Usage: "Path to the .spc snapshot file"},
		cli.IntFlag{Name: "count", Value: 64, Usage: "Number of instructions to disassemble"},
		cli.Uint64Flag{Name: "at", Usage: "Start address, overriding the snapshot's saved PC (0 keeps PC)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.String("snapshot")
	if path == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return fmt.Errorf("no snapshot path provided")
		}
		path = c.Args().Get(0)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	img, err := snapshot.Load(f)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}

	mem := &ramView{ram: img.RAM[:]}

	pc := img.CPU.PC
	if at := c.Uint64("at"); at != 0 {
		pc = uint16(at)
	}

	for _, line := range disasm.Range(pc, c.Int("count"), mem) {
		fmt.Printf("%04X  %s\n", line.Address, line.Text)
	}
	return nil
}

// ramView adapts a raw RAM slice to disasm.RAM without pulling in the full
// spcmem.Fabric and its MMIO dispatch, which a static dump doesn't need.
type ramView struct {
	ram []byte
}

func (r *ramView) ReadByte(addr uint16) uint8 {
	return r.ram[addr]
}
