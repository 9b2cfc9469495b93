// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

func tempWav(t *testing.T) *os.File {
	t.Helper()

	f, err := os.Create(filepath.Join(t.TempDir(), "out.wav"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestWriter_Roundtrip(t *testing.T) {
	t.Parallel()

	f := tempWav(t)

	wr := NewWriter(f, 48000)
	samples := []int8{0, 127, -127, 64, -64, -128}

	if err := wr.WriteSamples(samples); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Re-read through the same library.
	if _, err := f.Seek(0, 0); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		t.Fatal("decoder rejects the written file")
	}

	buf := &goaudio.IntBuffer{Data: make([]int, 32)}
	n, err := dec.PCMBuffer(buf)
	if err != nil {
		t.Fatalf("PCMBuffer() error = %v", err)
	}
	if n != len(samples) {
		t.Fatalf("PCMBuffer() n = %d, want %d", n, len(samples))
	}

	if int(dec.SampleRate) != 48000 {
		t.Errorf("SampleRate = %d, want 48000", dec.SampleRate)
	}
	if dec.NumChans != 1 {
		t.Errorf("NumChans = %d, want 1", dec.NumChans)
	}
	if dec.BitDepth != 8 {
		t.Errorf("BitDepth = %d, want 8", dec.BitDepth)
	}

	// 8-bit WAV is offset binary: each value should come back as the
	// signed sample plus 128.
	for i, s := range samples {
		want := int(s) + 128
		if buf.Data[i] != want {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], want)
		}
	}
}

func TestWriter_SequentialWrites(t *testing.T) {
	t.Parallel()

	f := tempWav(t)

	wr := NewWriter(f, 8000)
	if err := wr.WriteSamples([]int8{1, 2, 3}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := wr.WriteSamples([]int8{4, 5}); err != nil {
		t.Fatalf("WriteSamples() error = %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := f.Seek(0, 0); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}

	dec := gowav.NewDecoder(f)
	buf := &goaudio.IntBuffer{Data: make([]int, 16)}
	n, err := dec.PCMBuffer(buf)
	if err != nil {
		t.Fatalf("PCMBuffer() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("PCMBuffer() n = %d, want 5", n)
	}

	for i, s := range []int8{1, 2, 3, 4, 5} {
		if buf.Data[i] != int(s)+128 {
			t.Errorf("Data[%d] = %d, want %d", i, buf.Data[i], int(s)+128)
		}
	}
}

func TestWriter_EmptyWrite(t *testing.T) {
	t.Parallel()

	f := tempWav(t)

	wr := NewWriter(f, 8000)
	if err := wr.WriteSamples(nil); err != nil {
		t.Fatalf("WriteSamples(nil) error = %v", err)
	}
	if err := wr.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}
