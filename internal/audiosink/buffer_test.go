package audiosink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPush_FillsThenReportsFull(t *testing.T) {
	b := NewBuffer(2)

	assert.False(t, b.Push(1, 2))
	assert.False(t, b.Push(3, 4))
	assert.True(t, b.Push(5, 6), "ring is at capacity, should report full")
	assert.Equal(t, 2, b.Buffered())
}

func TestRead_DrainsInOrder(t *testing.T) {
	b := NewBuffer(4)
	require.False(t, b.Push(1, -1))
	require.False(t, b.Push(2, -2))

	p := make([]byte, 4*2) // two frames
	n, err := b.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	assert.Equal(t, int16(1), int16(uint16(p[0])|uint16(p[1])<<8))
	assert.Equal(t, int16(-1), int16(uint16(p[2])|uint16(p[3])<<8))
	assert.Equal(t, int16(2), int16(uint16(p[4])|uint16(p[5])<<8))
	assert.Equal(t, int16(-2), int16(uint16(p[6])|uint16(p[7])<<8))

	assert.Equal(t, 0, b.Buffered())
}

func TestRead_FillsSilenceWhenEmpty(t *testing.T) {
	b := NewBuffer(4)
	require.False(t, b.Push(100, 200))

	p := make([]byte, 4*3) // three frames requested, only one queued
	n, err := b.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	// Second and third frames should be silence.
	for _, off := range []int{4, 8} {
		assert.Equal(t, byte(0), p[off])
		assert.Equal(t, byte(0), p[off+1])
		assert.Equal(t, byte(0), p[off+2])
		assert.Equal(t, byte(0), p[off+3])
	}
}

func TestPush_RetryAfterDrain(t *testing.T) {
	b := NewBuffer(1)
	require.False(t, b.Push(1, 1))
	require.True(t, b.Push(2, 2), "full, should decline")

	_, err := b.Read(make([]byte, 4))
	require.NoError(t, err)

	assert.False(t, b.Push(2, 2), "room freed by Read, retry should succeed")
}
