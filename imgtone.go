package imgtone

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ik5/imgtone/formats/aiff"
	"github.com/ik5/imgtone/formats/raw"
	"github.com/ik5/imgtone/formats/wav"
	"github.com/ik5/imgtone/pcm"
	"github.com/ik5/imgtone/picture"
	"github.com/ik5/imgtone/render"
)

// DefaultRegistry returns a sink registry with the built-in output
// formats: "raw", "wav" and "aiff".
func DefaultRegistry() *pcm.Registry {
	reg := pcm.NewRegistry()
	reg.Register("raw", raw.Opener{})
	reg.Register("wav", wav.Opener{})
	reg.Register("aiff", aiff.Opener{})
	return reg
}

// ConvertFile is a high-level convenience function that decodes the
// image at inPath and writes its audio rendition to outPath in the
// named format ("raw", "wav" or "aiff").
//
// The conversion pipeline:
//  1. Decodes the image into a flat RGB buffer
//  2. Renders it column by column into 8-bit PCM (see render.Renderer)
//  3. Streams the samples into the chosen sink
//
// Configuration problems are reported before anything is decoded or
// written. Decode and output failures abort the run; whatever was
// already written stays on disk. Polyphony overflow notices go to
// stderr and do not stop the run.
//
// Note: This is a convenience function for the common case. For more
// control over the pipeline, use picture.Decode, render.NewRenderer
// and a pcm.Writer directly.
func ConvertFile(inPath, outPath, format string, p render.Params) (*render.Stats, error) {
	if samePath(inPath, outPath) {
		return nil, fmt.Errorf("%w: %s", ErrSamePath, inPath)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	opener, ok := DefaultRegistry().Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	img, err := picture.DecodeFile(inPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer out.Close()

	sink, err := opener.Open(out, p.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	r := render.NewRenderer(p)
	r.Notices = os.Stderr

	stats, err := r.Render(img, sink)
	if err != nil {
		return stats, fmt.Errorf("%w", err)
	}

	if err := sink.Close(); err != nil {
		return stats, fmt.Errorf("%w", err)
	}

	return stats, nil
}

// samePath reports whether the two paths name the same file, as far as
// lexical cleaning can tell.
func samePath(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return a == b
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return a == b
	}
	return aa == bb
}
