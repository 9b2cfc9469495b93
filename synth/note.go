// SPDX-License-Identifier: EPL-2.0

package synth

// FillNote renders one note into dst: sample i is the waveform sampled
// at t0 + i/rate, scaled by amplitude a. len(dst) decides the note
// length. dst is overwritten, not mixed into; the caller owns it and
// may reuse it across notes.
func FillNote(dst []float32, w Waveform, t0, f, a float64, rate int) {
	dt := 1.0 / float64(rate)
	for i := range dst {
		dst[i] = float32(w.Sample(t0+dt*float64(i), f) * a)
	}
}
