// SPDX-License-Identifier: EPL-2.0

// Package imgtone converts still images into audio.
//
// The image is treated as a piano roll: columns are time slices, rows
// are piano keys, and pixel color sets both the loudness and the
// timbre of each note. The result is a mono 8-bit PCM stream, raw or
// wrapped in a WAV/AIFF container.
//
// # Quick Start
//
// The simplest way to convert an image is ConvertFile:
//
//	stats, err := imgtone.ConvertFile("score.png", "score.wav", "wav",
//		render.DefaultParams())
//
// # Mapping
//
// For an image of height H, rows 0..min(H, PitchRows)-1 inside the
// scanned window map to piano keys, top row highest. A pixel sounds a
// note for exactly one column's duration:
//   - amplitude: brightest RGB channel / 255, divided by the polyphony
//     cap for headroom
//   - waveform: dominant red = sine, green = square, blue = triangle,
//     ties = sawtooth
//   - black pixels are silence
//
// At most PolyphonyCap notes sound per column; extra rows in a crowded
// column are dropped with a diagnostic notice.
//
// # Audio Processing Pipeline
//
// For more control, wire the pieces yourself:
//
//	img, _ := picture.DecodeFile("score.png")
//	sink, _ := raw.Opener{}.Open(out, 48000)
//	r := render.NewRenderer(render.DefaultParams())
//	stats, _ := r.Render(img, sink)
//
// See the render, synth, picture, pcm and formats subpackages.
//
// # Output Formats
//
// Three sinks are registered by default:
//   - raw: headerless signed 8-bit mono PCM (the bit-exact format)
//   - wav: WAV container, 8-bit offset binary
//   - aiff: AIFF container, 8-bit signed
//
// # Determinism
//
// A conversion run is single-threaded and has no hidden state: the
// same image and parameters always produce byte-identical streams.
package imgtone
