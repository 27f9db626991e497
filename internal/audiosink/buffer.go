// Package audiosink is the circular buffer sitting between the Scheduler
// (producer, one sample pair at a time) and an oto.Player (consumer,
// pulled in arbitrary-sized chunks through io.Reader). Grounded on
// IntuitionEngine's OtoPlayer: Read never blocks and emits silence rather
// than waiting, letting oto's own playback clock drive pacing.
package audiosink

import "sync"

// stereoSample is one (left, right) pair as it sits in the ring.
type stereoSample struct {
	left, right int16
}

// Buffer is a fixed-capacity ring of stereo sample pairs. Push is called
// from the Scheduler's goroutine, Read from oto's playback goroutine; both
// sides take the same mutex, so capacity should be generous enough that
// lock contention stays rare.
type Buffer struct {
	mu    sync.Mutex
	ring  []stereoSample
	head  int // next slot Read consumes
	tail  int // next slot Push fills
	count int
}

// NewBuffer creates a ring holding up to capacitySamples stereo pairs.
func NewBuffer(capacitySamples int) *Buffer {
	if capacitySamples < 1 {
		capacitySamples = 1
	}
	return &Buffer{ring: make([]stereoSample, capacitySamples)}
}

// Push enqueues one sample pair. It reports full=true without enqueuing
// when the ring has no room; the Scheduler is expected to yield and call
// Push again with the same pair until it returns false.
func (b *Buffer) Push(left, right int16) (full bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.count == len(b.ring) {
		return true
	}

	b.ring[b.tail] = stereoSample{left, right}
	b.tail = (b.tail + 1) % len(b.ring)
	b.count++
	return false
}

// Read implements io.Reader for oto.Context.NewPlayer, emitting 16-bit
// little-endian interleaved stereo (matching oto.FormatSignedInt16LE).
// When the ring runs dry mid-chunk the remainder is filled with silence
// rather than blocking, so a stalled producer never stalls playback.
func (b *Buffer) Read(p []byte) (n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	frames := len(p) / 4
	for i := 0; i < frames; i++ {
		off := i * 4
		if b.count == 0 {
			p[off], p[off+1], p[off+2], p[off+3] = 0, 0, 0, 0
			continue
		}
		s := b.ring[b.head]
		b.head = (b.head + 1) % len(b.ring)
		b.count--

		p[off] = byte(s.left)
		p[off+1] = byte(s.left >> 8)
		p[off+2] = byte(s.right)
		p[off+3] = byte(s.right >> 8)
	}

	return frames * 4, nil
}

// Buffered reports how many sample pairs are currently queued, used by the
// debugger's status line.
func (b *Buffer) Buffered() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}
