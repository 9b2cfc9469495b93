// SPDX-License-Identifier: EPL-2.0

// Package wav writes the rendered sample stream into a WAV container.
//
// The container carries the same mono 8-bit audio as the raw format,
// but with a header media players understand. WAV stores 8-bit PCM as
// offset binary, so each signed sample is shifted by +128 on the way
// in; the raw format remains the bit-exact stream.
package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/imgtone/pcm"
)

// Writer wraps a go-audio WAV encoder as a pcm.Writer.
type Writer struct {
	enc    *wav.Encoder
	format *goaudio.Format
	intBuf []int
}

func NewWriter(w io.WriteSeeker, sampleRate int) *Writer {
	return &Writer{
		// PCM format 1, 8 bits, mono.
		enc: wav.NewEncoder(w, sampleRate, 8, 1, 1),
		format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
	}
}

func (wr *Writer) WriteSamples(samples []int8) error {
	if len(samples) == 0 {
		return nil
	}

	if cap(wr.intBuf) < len(samples) {
		wr.intBuf = make([]int, len(samples))
	}
	wr.intBuf = wr.intBuf[:len(samples)]

	for i, s := range samples {
		// Signed to offset binary.
		wr.intBuf[i] = int(s) + 128
	}

	buf := &goaudio.IntBuffer{
		Format:         wr.format,
		SourceBitDepth: 8,
		Data:           wr.intBuf,
	}

	if err := wr.enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// Close patches the RIFF chunk sizes. The underlying stream stays open.
func (wr *Writer) Close() error {
	if err := wr.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Opener registers WAV output with a pcm.Registry.
type Opener struct{}

func (Opener) Open(w io.WriteSeeker, sampleRate int) (pcm.Writer, error) {
	return NewWriter(w, sampleRate), nil
}
