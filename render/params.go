// SPDX-License-Identifier: EPL-2.0

package render

import "fmt"

// Params configures one conversion run.
type Params struct {
	// SampleRate of the output stream in Hz.
	SampleRate int

	// Tempo in pixels per minute: how many image columns are consumed
	// per minute of audio.
	Tempo int

	// XOffset and YOffset are the inclusive scan start coordinates.
	// Both must fall inside the image.
	XOffset int
	YOffset int

	// PolyphonyCap is the inclusive maximum of simultaneous notes per
	// column. It is also the fixed amplitude normalization divisor.
	PolyphonyCap int

	// PitchRows is the number of pitch lanes scanned per column.
	PitchRows int
}

// DefaultParams returns the standard settings: 48kHz output, 240
// columns per minute, the full 88-key range, 12 simultaneous notes.
func DefaultParams() Params {
	return Params{
		SampleRate:   48000,
		Tempo:        240,
		PolyphonyCap: 12,
		PitchRows:    88,
	}
}

// SamplesPerColumn derives the length of one column's audio slice from
// the sample rate and tempo.
func (p Params) SamplesPerColumn() int {
	return p.SampleRate * 60 / p.Tempo
}

// Validate checks the image-independent settings. It reports the first
// problem found.
func (p Params) Validate() error {
	switch {
	case p.SampleRate <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, p.SampleRate)
	case p.Tempo <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidTempo, p.Tempo)
	case p.PolyphonyCap < 1:
		return fmt.Errorf("%w: %d", ErrInvalidPolyphonyCap, p.PolyphonyCap)
	case p.PitchRows < 1:
		return fmt.Errorf("%w: %d", ErrInvalidPitchRows, p.PitchRows)
	}
	return nil
}

// ValidateFor checks p against an image of the given dimensions,
// including everything Validate checks. A run must not start while
// this fails.
func (p Params) ValidateFor(width, height int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	switch {
	case p.XOffset < 0 || p.XOffset >= width:
		return fmt.Errorf("%w: x offset %d, image width %d", ErrOffsetOutOfRange, p.XOffset, width)
	case p.YOffset < 0 || p.YOffset >= height:
		return fmt.Errorf("%w: y offset %d, image height %d", ErrOffsetOutOfRange, p.YOffset, height)
	}
	return nil
}
