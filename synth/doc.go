// SPDX-License-Identifier: EPL-2.0

// Package synth provides the tone-generation primitives that turn pixels
// into notes.
//
// # Pitch
//
// Pitch follows the piano: key 1 is the lowest note, key 49 is A4 at
// 440 Hz, and every 12 keys double the frequency:
//
//	f := synth.KeyToFrequency(49) // 440.0
//
// # Waveforms
//
// Waveform is a closed enumeration of the four oscillator shapes. A
// Waveform samples itself at a point in time:
//
//	x := synth.Sine.Sample(t, 440.0)
//
// All oscillators return values in roughly [-1, 1] and are pure
// functions of (t, f); there is no per-oscillator phase state.
//
// # Color mapping
//
// A pixel's color selects both the loudness and the oscillator of its
// note. The brightest channel sets the amplitude, and the strictly
// dominant channel picks the waveform:
//
//	a := synth.ColorAmplitude(200, 10, 10) // 200/255
//	w := synth.ColorWaveform(200, 10, 10)  // synth.Sine
//
// # Notes
//
// FillNote renders one fixed-length note into a caller-owned buffer:
//
//	buf := make([]float32, 12000)
//	synth.FillNote(buf, synth.Sine, 0, 440.0, 0.5, 48000)
//
// The buffer length determines the note length; notes have no envelope.
package synth
