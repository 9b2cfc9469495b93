// SPDX-License-Identifier: EPL-2.0

package render

import (
	"fmt"
	"io"

	"github.com/ik5/imgtone/pcm"
	"github.com/ik5/imgtone/picture"
	"github.com/ik5/imgtone/synth"
	"github.com/ik5/imgtone/utils"
)

// Stats summarizes one conversion run.
type Stats struct {
	// Columns emitted: image width minus XOffset.
	Columns int
	// Notes synthesized across all columns.
	Notes int
	// Overflows lists the x coordinates of columns where the scan hit
	// the polyphony cap and later rows were dropped.
	Overflows []int
}

// Renderer converts images into PCM streams, one column at a time.
// The scratch buffers persist across calls, so a single Renderer can
// process many images without reallocating; it is not safe for
// concurrent use.
type Renderer struct {
	params Params

	// Notices receives non-fatal diagnostics, currently the polyphony
	// overflow lines. Defaults to io.Discard. The audio output never
	// depends on it.
	Notices io.Writer

	col   []float32 // mixed column accumulator
	note  []float32 // single-note scratch
	quant []int8    // quantized column
}

func NewRenderer(p Params) *Renderer {
	return &Renderer{
		params:  p,
		Notices: io.Discard,
	}
}

func (r *Renderer) Params() Params { return r.params }

// Render converts img into sink. Columns are processed strictly left to
// right: each column's start time is the sum of all prior column
// durations, so there is no way to parallelize or reorder them. The
// sink is not closed; the caller owns it.
func (r *Renderer) Render(img *picture.Buffer, sink pcm.Writer) (*Stats, error) {
	if err := r.params.ValidateFor(img.W, img.H); err != nil {
		return nil, err
	}

	spc := r.params.SamplesPerColumn()
	r.grow(spc)

	timePerColumn := float64(spc) / float64(r.params.SampleRate)
	maxY := min(img.H, r.params.YOffset+r.params.PitchRows)

	stats := &Stats{}
	t := 0.0 // timeline cursor, one per run

	for x := r.params.XOffset; x < img.W; x++ {
		stats.Notes += r.mixColumn(img, x, t, maxY, stats)

		for i, s := range r.col[:spc] {
			r.quant[i] = utils.Float32ToInt8(s)
		}
		if err := sink.WriteSamples(r.quant[:spc]); err != nil {
			return stats, fmt.Errorf("writing column %d: %w", x, err)
		}

		stats.Columns++
		t += timePerColumn
	}

	return stats, nil
}

// mixColumn zeroes the column accumulator, then scans the pitch rows at
// x and mixes every active note into it. Returns the number of notes
// synthesized.
func (r *Renderer) mixColumn(img *picture.Buffer, x int, t float64, maxY int, stats *Stats) int {
	spc := r.params.SamplesPerColumn()
	col := r.col[:spc]
	for i := range col {
		col[i] = 0
	}

	notes := 0
	for y := r.params.YOffset; y < maxY; y++ {
		red, green, blue := img.At(x, y)
		if red == 0 && green == 0 && blue == 0 {
			// silence; does not count toward the cap
			continue
		}

		if notes == r.params.PolyphonyCap {
			// Remaining rows are dropped, not silenced.
			fmt.Fprintf(r.Notices,
				"note: maximum number of notes (%d) placed at one time at x = %d\n",
				r.params.PolyphonyCap, x)
			stats.Overflows = append(stats.Overflows, x)
			break
		}
		notes++

		// The row nearest the top of the window is the highest key.
		key := r.params.PitchRows - (y - r.params.YOffset)
		f := synth.KeyToFrequency(key)
		a := synth.ColorAmplitude(red, green, blue) / float64(r.params.PolyphonyCap)
		w := synth.ColorWaveform(red, green, blue)

		note := r.note[:spc]
		synth.FillNote(note, w, t, f, a, r.params.SampleRate)
		for i := range col {
			col[i] += note[i]
		}
	}

	return notes
}

func (r *Renderer) grow(spc int) {
	if cap(r.col) < spc {
		r.col = make([]float32, spc)
		r.note = make([]float32, spc)
		r.quant = make([]int8, spc)
	}
}
