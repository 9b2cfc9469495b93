// SPDX-License-Identifier: EPL-2.0

// Package render drives the column-by-column conversion of an image
// into a PCM sample stream.
//
// # Model
//
// The image is read left to right. Each column becomes one fixed-length
// slice of audio; each row inside the scanned window is one piano key,
// with the top row being the highest pitch. A non-black pixel sounds a
// note for the whole column; its color picks amplitude and waveform
// (see the synth package). Black pixels are silence.
//
// # Pipeline
//
//	p := render.DefaultParams()
//	r := render.NewRenderer(p)
//	stats, err := r.Render(img, sink)
//
// Render validates the parameters against the image, then for every
// column zeroes a reusable scratch buffer, mixes up to PolyphonyCap
// notes into it, quantizes to signed 8-bit and appends the slice to the
// sink. A single timeline cursor advances by one column duration per
// column; there is no per-note clock.
//
// # Polyphony
//
// At most PolyphonyCap notes sound per column. When a column holds more
// active pixels, scanning stops at the cap: the extra rows are dropped,
// a notice naming the column is written to Notices, and the run
// continues. Every note's amplitude is divided by PolyphonyCap, so a
// full column of saturated notes sums to roughly full scale and a lone
// note is correspondingly quiet. That headroom reservation is fixed; it
// does not adapt to how many notes actually sounded.
//
// # Errors
//
// Invalid parameters and sink write failures are fatal and abort the
// run. Polyphony overflow and silent columns are not errors.
package render
