// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"io"
	"sync"
)

type Writer interface {
	// WriteSamples appends mono signed 8-bit samples to the stream.
	// Writes are sequential; samples arrive in column order.
	WriteSamples(samples []int8) error

	// Close finalizes the stream. The underlying file or writer is not
	// closed; the caller owns it.
	Close() error
}

// Opener constructs a Writer over an output stream at a sample rate.
// Container formats need the seeker to patch header sizes on Close.
type Opener interface {
	Open(w io.WriteSeeker, sampleRate int) (Writer, error)
}

// Registry for sink openers by format key (e.g., "raw", "wav", "aiff").
type Registry struct {
	sinks map[string]Opener

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		sinks: make(map[string]Opener),
		mtx:   &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, o Opener) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.sinks[format] = o
}

func (r *Registry) Get(format string) (Opener, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	o, ok := r.sinks[format]
	return o, ok
}

// Formats returns the registered format keys in no particular order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.sinks))
	for k := range r.sinks {
		keys = append(keys, k)
	}
	return keys
}
