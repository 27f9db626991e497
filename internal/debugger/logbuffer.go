package debugger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// LogEntry is a single captured log message, stamped with the machine
// position active when it was logged: the CPU's PC and how many DSP
// samples had been produced so far. Recoverable conditions the core logs
// (such as a wrapped DSP register index) are otherwise
// indistinguishable in the log panel from unrelated noise; tagging every
// entry with PC/sample position turns the panel into a coarse trace a
// breakpoint session can correlate against the disassembly view above it.
type LogEntry struct {
	Time        time.Time
	Level       slog.Level
	Message     string
	PC          uint16
	SampleCount uint64
}

// MachineState is read once per log record to stamp it with the machine's
// current position. The Debugger itself satisfies this by reading its CPU
// and Scheduler collaborators.
type MachineState interface {
	PC() uint16
	SampleCount() uint64
}

// LogBuffer is a thread-safe circular buffer of recent log entries, shown
// in the debugger's log panel so slog output doesn't fight with tcell for
// the terminal.
type LogBuffer struct {
	mu      sync.RWMutex
	entries []LogEntry
	index   int
	count   int
}

// NewLogBuffer creates a buffer holding the last size entries.
func NewLogBuffer(size int) *LogBuffer {
	return &LogBuffer{entries: make([]LogEntry, size)}
}

func (lb *LogBuffer) add(entry LogEntry) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	lb.entries[lb.index] = entry
	lb.index = (lb.index + 1) % len(lb.entries)
	if lb.count < len(lb.entries) {
		lb.count++
	}
}

// Recent returns up to maxCount entries, most recent first.
func (lb *LogBuffer) Recent(maxCount int) []LogEntry {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if lb.count == 0 {
		return nil
	}
	n := lb.count
	if maxCount > 0 && maxCount < n {
		n = maxCount
	}

	result := make([]LogEntry, n)
	for i := 0; i < n; i++ {
		idx := (lb.index - 1 - i + len(lb.entries)) % len(lb.entries)
		result[i] = lb.entries[idx]
	}
	return result
}

// Handler is an slog.Handler that captures records into a LogBuffer
// instead of writing them to stderr, where they'd corrupt the tcell
// screen. Every captured record is tagged with the machine's PC and
// sample count at the moment it was logged.
type Handler struct {
	buffer  *LogBuffer
	level   slog.Level
	machine MachineState
}

// NewHandler returns a handler writing into buffer, filtering below level.
// machine may be nil (e.g. before the CPU/Scheduler are constructed);
// entries are then stamped with PC 0 and sample count 0.
func NewHandler(buffer *LogBuffer, level slog.Level, machine MachineState) *Handler {
	return &Handler{buffer: buffer, level: level, machine: machine}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	message := record.Message
	record.Attrs(func(a slog.Attr) bool {
		message += fmt.Sprintf(" %s=%v", a.Key, a.Value)
		return true
	})

	entry := LogEntry{Time: record.Time, Level: record.Level, Message: message}
	if h.machine != nil {
		entry.PC = h.machine.PC()
		entry.SampleCount = h.machine.SampleCount()
	}
	h.buffer.add(entry)
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler { return h }
func (h *Handler) WithGroup(name string) slog.Handler       { return h }

// FormatLogEntry renders one entry as a single display line, PC and
// sample position first so the log panel reads as a trace of where in
// the machine's run each message was captured.
func FormatLogEntry(entry LogEntry) string {
	var level string
	switch entry.Level {
	case slog.LevelDebug:
		level = "DBG"
	case slog.LevelInfo:
		level = "INF"
	case slog.LevelWarn:
		level = "WRN"
	case slog.LevelError:
		level = "ERR"
	default:
		level = "???"
	}
	return fmt.Sprintf("%s pc=%04X smp=%-6d [%s] %s", entry.Time.Format("15:04:05"), entry.PC, entry.SampleCount, level, entry.Message)
}
