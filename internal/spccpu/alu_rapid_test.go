package spccpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// The N and Z flags must always match the stored result for AND/OR/EOR,
// regardless of operand values: Z iff the result is zero, N iff bit 7 is
// set. This is the universal "flags follow the result" law, checked
// across random byte pairs instead of the handful of fixed cases in
// alu_test.go.
func TestRapid_andOrEorFlagsAlwaysFollowResult(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := uint8(rapid.IntRange(0, 255).Draw(t, "a"))
		m := uint8(rapid.IntRange(0, 255).Draw(t, "m"))
		op := rapid.SampledFrom([]string{"AND", "OR", "EOR"}).Draw(t, "op")

		c, _ := newTestCPU()
		c.A = a
		switch op {
		case "AND":
			c.and(m)
		case "OR":
			c.or(m)
		case "EOR":
			c.eor(m)
		}

		assert.Equal(t, c.A == 0, c.getFlag(FlagZ))
		assert.Equal(t, c.A&0x80 != 0, c.getFlag(FlagN))
	})
}

// ADC must always leave Z and N consistent with the stored accumulator
// value, and the carry-out must be a boolean derived from whether the
// 9-bit sum overflowed — never anything else.
func TestRapid_adcCarryMatchesNineBitSum(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := uint8(rapid.IntRange(0, 255).Draw(t, "a"))
		m := uint8(rapid.IntRange(0, 255).Draw(t, "m"))
		carryIn := rapid.Bool().Draw(t, "carryIn")

		c, _ := newTestCPU()
		c.A = a
		c.setFlag(FlagC, carryIn)

		var cin uint16
		if carryIn {
			cin = 1
		}
		want := uint16(a) + uint16(m) + cin

		c.adc(m)

		assert.Equal(t, uint8(want), c.A)
		assert.Equal(t, want > 0xFF, c.getFlag(FlagC))
		assert.Equal(t, c.A == 0, c.getFlag(FlagZ))
		assert.Equal(t, c.A&0x80 != 0, c.getFlag(FlagN))
	})
}

// CMP must never modify the accumulator, only flags, for any operand pair.
func TestRapid_cmpNeverModifiesAccumulator(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := uint8(rapid.IntRange(0, 255).Draw(t, "a"))
		m := uint8(rapid.IntRange(0, 255).Draw(t, "m"))

		c, _ := newTestCPU()
		c.A = a
		c.cmp(a, m)

		assert.Equal(t, a, c.A, "CMP's left operand comes from a caller-held value, but A itself is untouched when the comparison target is A")
	})
}
