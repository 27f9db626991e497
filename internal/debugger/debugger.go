// Package debugger is the interactive collaborator the core surrenders
// control to at a breakpoint: a tcell-rendered register/disassembly/log
// view with pause, step, and breakpoint commands built around SPC700
// registers and memory.
package debugger

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/kestrel-audio/spc700/internal/disasm"
)

// CPU is the subset of *spccpu.CPU the debugger displays and disassembles
// around. Kept as an interface so debugger never imports spccpu directly
// for anything beyond register values.
type CPU interface {
	State() (pc uint16, a, x, y, psw, sp uint8)
}

// Scheduler is the subset of *spcscheduler.Scheduler the debugger drives.
type Scheduler interface {
	Pause()
	Resume()
	RequestStep()
	InstructionCount() uint64
	SampleCount() uint64
}

// Debugger owns the breakpoint set and, once Attach is called, a tcell
// screen it renders the machine state to whenever the scheduler surrenders
// control.
type Debugger struct {
	Breakpoints *Breakpoints
	Log         *LogBuffer

	cpu       CPU
	mem       disasm.RAM
	scheduler Scheduler

	screen tcell.Screen
	trace  bool
}

// New returns a Debugger wired to the running machine's collaborators.
// Attach must be called before the first Break to actually open a
// terminal screen; without it, Break just pauses the scheduler and logs.
func New(cpu CPU, mem disasm.RAM, scheduler Scheduler) *Debugger {
	return &Debugger{
		Breakpoints: NewBreakpoints(),
		Log:         NewLogBuffer(200),
		cpu:         cpu,
		mem:         mem,
		scheduler:   scheduler,
	}
}

// Attach opens the tcell screen used by Break's command loop and installs
// the log-capturing slog handler so log output doesn't corrupt the
// screen.
func (d *Debugger) Attach() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("debugger: init terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("debugger: init terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))

	d.screen = screen
	slog.SetDefault(slog.New(NewHandler(d.Log, slog.LevelDebug, d)))
	return nil
}

// PC satisfies MachineState, reading the CPU's current program counter so
// captured log entries can be stamped with it.
func (d *Debugger) PC() uint16 {
	pc, _, _, _, _, _ := d.cpu.State()
	return pc
}

// SampleCount satisfies MachineState.
func (d *Debugger) SampleCount() uint64 {
	return d.scheduler.SampleCount()
}

// Detach tears down the tcell screen, restoring the terminal.
func (d *Debugger) Detach() {
	if d.screen != nil {
		d.screen.Fini()
		d.screen = nil
	}
}

// HasBreakpoint satisfies spcscheduler.Debugger.
func (d *Debugger) HasBreakpoint(pc uint16) bool {
	return d.Breakpoints.Has(pc)
}

// Break satisfies spcscheduler.Debugger: it pauses the scheduler and, if a
// screen is attached, runs the interactive command loop until the user
// resumes or single-steps.
func (d *Debugger) Break(pc uint16) {
	d.scheduler.Pause()
	slog.Info("breakpoint hit", "pc", fmt.Sprintf("0x%04X", pc))

	if d.screen == nil {
		return
	}
	d.commandLoop()
}

// SetTrace sets the trace flag shown on the debugger's status line.
// Neither the debugger nor the Scheduler logs individual instructions
// based on it.
func (d *Debugger) SetTrace(on bool) { d.trace = on }

// Tracing reports the current trace-toggle state.
func (d *Debugger) Tracing() bool { return d.trace }
