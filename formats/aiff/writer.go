// SPDX-License-Identifier: EPL-2.0

// Package aiff writes the rendered sample stream into an AIFF container.
//
// AIFF stores 8-bit PCM signed, so samples pass through unshifted; only
// the container framing differs from the raw format.
package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/imgtone/pcm"
)

// Writer wraps a go-audio AIFF encoder as a pcm.Writer.
type Writer struct {
	enc    *aiff.Encoder
	format *goaudio.Format
	intBuf []int
}

func NewWriter(w io.WriteSeeker, sampleRate int) *Writer {
	return &Writer{
		enc: aiff.NewEncoder(w, sampleRate, 8, 1),
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
		wr.intBuf[i] = int(s)
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

// Close patches the FORM chunk sizes. The underlying stream stays open.
func (wr *Writer) Close() error {
	if err := wr.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Opener registers AIFF output with a pcm.Registry.
type Opener struct{}

func (Opener) Open(w io.WriteSeeker, sampleRate int) (pcm.Writer, error) {
	return NewWriter(w, sampleRate), nil
}
