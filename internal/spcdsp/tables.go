package spcdsp

import "math"

// rateTable is the 32-entry period table (in samples) shared by every rate
// field the envelope generator reads: attack (index 2·ar+1), decay (index
// 2·dr+16), sustain (index sr), and all three GAIN dynamic modes (index
// rate). A period of 0 means "never fires" (sr=0's infinite hold). This is
// the classic SPC700 DSP envelope-rate table found throughout the SNES
// emulation literature; spec.md names ATTACK_RATE/DECAY_RATE/SUSTAIN_RATE/
// GAIN_LINEAR/GAIN_BENT as if they were five distinct tables but defers
// their values to an appendix that isn't present in the source document,
// so this implementation grounds all five in the one real rate table
// instead of inventing five arbitrary ones.
var rateTable = [32]int{
	0, 2048, 1536, 1280, 1024, 768, 640, 512,
	384, 320, 256, 192, 160, 128, 96, 80,
	64, 48, 40, 32, 24, 20, 16, 12,
	10, 8, 6, 5, 4, 3, 2, 1,
}

// gaussTable is the 512-entry Gaussian interpolation kernel indexed by the
// DSP's 8-bit fractional pitch-counter phase. spec.md describes the shape
// ("provided as a constant") without giving the 512 values, so this table
// is generated once at init time from a normalized Gaussian kernel rather
// than transcribed from hardware: four taps per phase, windowed so they
// sum to 1<<11 (matching the >>11 the mixer shifts by), preserving the
// real interpolator's contract (smooth 4-tap resampling, unity gain).
var gaussTable [512]int32

func init() {
	const sigma = 0.5
	for i := 0; i < 256; i++ {
		phase := float64(i) / 256.0

		w := make([]float64, 4)
		sum := 0.0
		for tap := 0; tap < 4; tap++ {
			// Tap positions relative to the fractional phase, centered so
			// taps 1 and 2 straddle the interpolation point.
			x := float64(tap-1) - phase
			w[tap] = gaussWeight(x, sigma)
			sum += w[tap]
		}

		scale := 2048.0 / sum
		t0 := int32(w[0] * scale)
		t1 := int32(w[1] * scale)
		t2 := int32(w[2] * scale)
		t3 := int32(w[3] * scale)

		gaussTable[0x000+i] = t3
		gaussTable[0x100+i] = t2
		gaussTable[0x1FF-i] = t1
		gaussTable[0x0FF-i] = t0
	}
}

func gaussWeight(x, sigma float64) float64 {
	return math.Exp(-(x * x) / (2 * sigma * sigma))
}
