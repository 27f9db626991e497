package debugger

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kestrel-audio/spc700/internal/disasm"
)

// commandLoop renders the current machine state and waits for a key
// command, repeating until the user resumes (Space) or single-steps
// (s) and returns control to the Scheduler.
func (d *Debugger) commandLoop() {
	for {
		d.render()

		ev := d.screen.PollEvent()
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}

		switch key.Rune() {
		case ' ':
			d.scheduler.Resume()
			return
		case 's':
			d.scheduler.RequestStep()
			return
		case 't':
			d.trace = !d.trace
		case 'b':
			pc, _, _, _, _, _ := d.cpu.State()
			d.Breakpoints.Add(pc)
		case 'q':
			d.scheduler.Resume()
			return
		}

		if key.Key() == tcell.KeyCtrlC {
			d.scheduler.Resume()
			return
		}
	}
}

func (d *Debugger) render() {
	d.screen.Clear()

	pc, a, x, y, psw, sp := d.cpu.State()
	d.drawLine(0, 0, fmt.Sprintf("PC=%04X A=%02X X=%02X Y=%02X SP=%02X PSW=%02X", pc, a, x, y, sp, psw))
	d.drawLine(0, 1, fmt.Sprintf("instructions=%d samples=%d trace=%v breakpoints=%d",
		d.scheduler.InstructionCount(), d.scheduler.SampleCount(), d.trace, len(d.Breakpoints.List())))

	d.drawLine(0, 3, "-- disassembly --")
	for i, line := range disasm.Range(pc, 10, d.mem) {
		style := tcell.StyleDefault
		if line.Address == pc {
			style = style.Reverse(true)
		}
		d.drawStyledLine(0, 4+i, fmt.Sprintf("%04X  %s", line.Address, line.Text), style)
	}

	logY := 16
	d.drawLine(0, logY, "-- log --")
	for i, entry := range d.Log.Recent(10) {
		d.drawLine(0, logY+1+i, FormatLogEntry(entry))
	}

	d.drawLine(0, logY+12, "[space] continue  [s] step  [b] breakpoint@pc  [t] trace  [q] quit break")

	d.screen.Show()
}

func (d *Debugger) drawLine(x, y int, s string) {
	d.drawStyledLine(x, y, s, tcell.StyleDefault)
}

func (d *Debugger) drawStyledLine(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}
