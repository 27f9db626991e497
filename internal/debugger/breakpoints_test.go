package debugger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakpoints_AddHasRemove(t *testing.T) {
	bp := NewBreakpoints()

	assert.False(t, bp.Has(0x1234))
	bp.Add(0x1234)
	assert.True(t, bp.Has(0x1234))
	bp.Remove(0x1234)
	assert.False(t, bp.Has(0x1234))
}

func TestBreakpoints_List(t *testing.T) {
	bp := NewBreakpoints()
	bp.Add(0x10)
	bp.Add(0x20)

	list := bp.List()
	assert.Len(t, list, 2)
	assert.Contains(t, list, uint16(0x10))
	assert.Contains(t, list, uint16(0x20))
}
