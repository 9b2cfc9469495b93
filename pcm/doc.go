// SPDX-License-Identifier: EPL-2.0

// Package pcm defines where rendered samples go.
//
// # Writer Interface
//
// The Writer interface is the output side of the pipeline:
//
//	type Writer interface {
//	    WriteSamples(samples []int8) error
//	    Close() error
//	}
//
// Samples are mono signed 8-bit PCM, appended strictly in column order.
// Close finalizes the stream (container writers patch up their headers
// there); it does not close the underlying file, which stays with the
// caller.
//
// # Format Registry
//
// The registry maps format keys to sink openers:
//
//	registry := pcm.NewRegistry()
//	registry.Register("raw", raw.Opener{})
//	opener, _ := registry.Get("raw")
//	sink, _ := opener.Open(file, 48000)
//
// This lets the CLI pick an output container by name or extension.
package pcm
