// Package spcscheduler drives the CPU, timers, and DSP in lockstep off a
// single shared cycle counter: one method call advances the machine, with a
// mutex-guarded run state the debugger collaborator can pause or single
// step from another goroutine.
package spcscheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/kestrel-audio/spc700/internal/spccpu"
)

// samplePeriodCycles is how many CPU cycles separate two DSP samples:
// 2,048,000 Hz CPU clock / 32,000 Hz sample rate.
const samplePeriodCycles = 64

// AudioSink receives interleaved (left, right) sample pairs. Push reports
// backpressure: when full is true the pair was not accepted, and the
// Scheduler yields and calls Push again with the same pair until it
// returns false.
type AudioSink interface {
	Push(left, right int16) (full bool)
}

// Debugger is the external interactive collaborator the Scheduler
// surrenders control to when the program counter matches a breakpoint.
type Debugger interface {
	HasBreakpoint(pc uint16) bool
	Break(pc uint16)
}

// RunState is the debugger-facing run state, at instruction granularity
// since the core has no frame concept of its own.
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateStep
)

// Scheduler is the single-threaded cooperative loop described by the
// core's concurrency model: no suspension points except between
// instructions, and sink backpressure is the only reason to idle.
type Scheduler struct {
	cpu     *spccpu.CPU
	timers  cycleSettable
	dsp     dspEngine
	sink    AudioSink
	debugger Debugger

	cycle           uint64
	nextSampleCycle uint64
	sampleCount     uint64

	mu            sync.Mutex
	state         RunState
	stopRequested bool
	stepRequested bool

	instructionCount uint64
}

// cycleSettable is the subset of *spcmem.Fabric the scheduler needs to
// keep timers observing the shared cycle counter.
type cycleSettable interface {
	SetCycle(cycle uint64)
}

// dspEngine is the subset of *spcdsp.Engine the scheduler needs to pace
// sample production.
type dspEngine interface {
	Step() (left, right int16)
}

// New wires a Scheduler around an already-constructed CPU, memory fabric,
// and DSP engine. The caller is responsible for having loaded a snapshot
// into all three beforehand.
func New(cpu *spccpu.CPU, timers cycleSettable, dsp dspEngine, sink AudioSink) *Scheduler {
	return &Scheduler{
		cpu:             cpu,
		timers:          timers,
		dsp:             dsp,
		sink:            sink,
		nextSampleCycle: samplePeriodCycles,
		state:           StateRunning,
	}
}

// SetDebugger attaches the interactive debugger collaborator. Passing nil
// disables breakpoint checks.
func (s *Scheduler) SetDebugger(d Debugger) {
	s.debugger = d
}

// RequestStop asks the loop to return at the next instruction boundary,
// the coarsest cancellation point the core supports.
func (s *Scheduler) RequestStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRequested = true
}

// Pause and Resume switch the run state between paused and running.
func (s *Scheduler) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StatePaused
}

func (s *Scheduler) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateRunning
}

// RequestStep arms a single-instruction step while paused.
func (s *Scheduler) RequestStep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateStep
	s.stepRequested = true
}

// InstructionCount reports how many CPU instructions have executed.
func (s *Scheduler) InstructionCount() uint64 {
	return s.instructionCount
}

// SampleCount reports how many (left, right) pairs have been emitted.
func (s *Scheduler) SampleCount() uint64 {
	return s.sampleCount
}

// Run executes instructions until the CPU halts, an illegal opcode is hit,
// or RequestStop is called. It returns the terminal error, if any (nil on
// a clean stop or halt).
func (s *Scheduler) Run() error {
	for {
		s.mu.Lock()
		state := s.state
		stop := s.stopRequested
		s.mu.Unlock()

		if stop {
			return nil
		}

		if state == StatePaused {
			runtime.Gosched()
			continue
		}

		if state == StateStep {
			s.mu.Lock()
			requested := s.stepRequested
			if requested {
				s.stepRequested = false
			}
			s.mu.Unlock()
			if !requested {
				runtime.Gosched()
				continue
			}
		}

		if err := s.step(); err != nil {
			return err
		}

		if s.cpu.Halted() {
			return nil
		}
	}
}

// step runs exactly one scheduler iteration: one CPU instruction, the
// timer advance it implies, and however many DSP samples that instruction's
// cycles crossed.
func (s *Scheduler) step() error {
	if s.debugger != nil && s.debugger.HasBreakpoint(s.cpu.PC) {
		s.debugger.Break(s.cpu.PC)
	}

	n, err := s.cpu.Step()
	if err != nil {
		var illegal *spccpu.IllegalOpcodeError
		if errors.As(err, &illegal) {
			slog.Error("illegal opcode, halting", "opcode", fmt.Sprintf("0x%02X", illegal.Opcode), "pc", fmt.Sprintf("0x%04X", illegal.PC))
		}
		return err
	}
	s.instructionCount++

	s.cycle += uint64(n)
	s.timers.SetCycle(s.cycle)

	for s.cycle >= s.nextSampleCycle {
		left, right := s.dsp.Step()
		s.pushSample(left, right)
		s.sampleCount++
		s.nextSampleCycle += samplePeriodCycles
	}

	return nil
}

// pushSample hands one pair to the sink, idling briefly on backpressure.
// The core has no timer of its own to idle with (no goroutines, no
// sleeping); a blocking sink is expected to do the actual waiting inside
// Push, so the Scheduler's only obligation is to keep calling it.
func (s *Scheduler) pushSample(left, right int16) {
	for s.sink.Push(left, right) {
		runtime.Gosched()
	}
}

