// SPDX-License-Identifier: EPL-2.0

package synth

// ColorAmplitude converts an RGB color to an amplitude in [0, 1] by
// dividing the brightest channel's value by 255.
func ColorAmplitude(r, g, b uint8) float64 {
	x := r
	if g > x {
		x = g
	}
	if b > x {
		x = b
	}
	return float64(x) / 255.0
}

// ColorWaveform picks the oscillator for a pixel from its strictly
// dominant channel: red means Sine, green means Square, blue means
// Triangle. Any tie, grey included, falls back to Sawtooth.
// All-black pixels are silence and never reach this function.
func ColorWaveform(r, g, b uint8) Waveform {
	switch {
	case r > g && r > b:
		return Sine
	case g > r && g > b:
		return Square
	case b > r && b > g:
		return Triangle
	default:
		return Sawtooth
	}
}
