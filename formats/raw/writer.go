// SPDX-License-Identifier: EPL-2.0

// Package raw writes headerless signed 8-bit mono PCM.
//
// This is the bit-exact output format: one byte per sample, no header,
// playable with e.g. `aplay -f S8 -r 48000 out.pcm`. The wav and aiff
// packages wrap the same sample stream in a container.
package raw

import (
	"fmt"
	"io"

	"github.com/ik5/imgtone/pcm"
)

// Writer streams signed 8-bit samples to an io.Writer as-is.
type Writer struct {
	w   io.Writer
	buf []byte
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

const chunkSize = 8192 // Write 8KB at a time

func (wr *Writer) WriteSamples(samples []int8) error {
	for len(samples) > 0 {
		n := min(len(samples), chunkSize)

		if cap(wr.buf) < n {
			wr.buf = make([]byte, n)
		}
		buf := wr.buf[:n]

		// int8 and byte share a representation; this re-types the
		// chunk without changing any bits.
		for i, s := range samples[:n] {
			buf[i] = byte(s)
		}

		if _, err := wr.w.Write(buf); err != nil {
			return fmt.Errorf("%w", err)
		}

		samples = samples[n:]
	}

	return nil
}

// Close is a no-op: a raw stream has nothing to finalize.
func (wr *Writer) Close() error { return nil }

// Opener registers raw output with a pcm.Registry.
type Opener struct{}

func (Opener) Open(w io.WriteSeeker, sampleRate int) (pcm.Writer, error) {
	// The sample rate is not recorded anywhere; a raw stream is
	// headerless by definition.
	return NewWriter(w), nil
}
