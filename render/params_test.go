// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p := DefaultParams()

	if p.SampleRate != 48000 {
		t.Errorf("SampleRate = %d, want 48000", p.SampleRate)
	}
	if p.Tempo != 240 {
		t.Errorf("Tempo = %d, want 240", p.Tempo)
	}
	if p.PolyphonyCap != 12 {
		t.Errorf("PolyphonyCap = %d, want 12", p.PolyphonyCap)
	}
	if p.PitchRows != 88 {
		t.Errorf("PitchRows = %d, want 88", p.PitchRows)
	}
	if p.XOffset != 0 || p.YOffset != 0 {
		t.Errorf("offsets = (%d, %d), want (0, 0)", p.XOffset, p.YOffset)
	}
}

func TestParams_SamplesPerColumn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rate, tempo int
		want        int
	}{
		{name: "defaults", rate: 48000, tempo: 240, want: 12000},
		{name: "fast tempo", rate: 8000, tempo: 2400, want: 200},
		{name: "one column per second", rate: 44100, tempo: 60, want: 44100},
		{name: "legacy 32 columns per second", rate: 48000, tempo: 1920, want: 1500},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Params{SampleRate: tt.rate, Tempo: tt.tempo}
			if got := p.SamplesPerColumn(); got != tt.want {
				t.Errorf("SamplesPerColumn() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Params)
		want   error
	}{
		{
			name:   "defaults are valid",
			mutate: func(p *Params) {},
			want:   nil,
		},
		{
			name:   "zero sample rate",
			mutate: func(p *Params) { p.SampleRate = 0 },
			want:   ErrInvalidSampleRate,
		},
		{
			name:   "negative sample rate",
			mutate: func(p *Params) { p.SampleRate = -8000 },
			want:   ErrInvalidSampleRate,
		},
		{
			name:   "zero tempo",
			mutate: func(p *Params) { p.Tempo = 0 },
			want:   ErrInvalidTempo,
		},
		{
			name:   "negative tempo",
			mutate: func(p *Params) { p.Tempo = -240 },
			want:   ErrInvalidTempo,
		},
		{
			name:   "zero polyphony cap",
			mutate: func(p *Params) { p.PolyphonyCap = 0 },
			want:   ErrInvalidPolyphonyCap,
		},
		{
			name:   "zero pitch rows",
			mutate: func(p *Params) { p.PitchRows = 0 },
			want:   ErrInvalidPitchRows,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := DefaultParams()
			tt.mutate(&p)

			err := p.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParams_ValidateFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		x, y          int
		width, height int
		want          error
	}{
		{name: "origin inside", x: 0, y: 0, width: 10, height: 10, want: nil},
		{name: "last pixel inside", x: 9, y: 9, width: 10, height: 10, want: nil},
		{name: "x at width", x: 10, y: 0, width: 10, height: 10, want: ErrOffsetOutOfRange},
		{name: "y at height", x: 0, y: 10, width: 10, height: 10, want: ErrOffsetOutOfRange},
		{name: "negative x", x: -1, y: 0, width: 10, height: 10, want: ErrOffsetOutOfRange},
		{name: "negative y", x: 0, y: -1, width: 10, height: 10, want: ErrOffsetOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := DefaultParams()
			p.XOffset = tt.x
			p.YOffset = tt.y

			err := p.ValidateFor(tt.width, tt.height)
			if tt.want == nil {
				if err != nil {
					t.Errorf("ValidateFor() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ValidateFor() error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestParams_ValidateFor_ScalarsFirst verifies the image-independent
// checks still run through ValidateFor.
func TestParams_ValidateFor_ScalarsFirst(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	p.SampleRate = 0

	if err := p.ValidateFor(10, 10); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("ValidateFor() error = %v, want ErrInvalidSampleRate", err)
	}
}
