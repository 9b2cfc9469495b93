// SPDX-License-Identifier: EPL-2.0

package imagetest

import (
	"github.com/ik5/imgtone/picture"
)

// New returns an all-black width x height pixel buffer. Black pixels
// are silence, so a fresh buffer renders to a silent stream.
func New(width, height int) *picture.Buffer {
	return &picture.Buffer{
		Pix: make([]uint8, width*height*3),
		W:   width,
		H:   height,
	}
}

// NewSolid returns a buffer with every pixel set to one color.
func NewSolid(width, height int, r, g, b uint8) *picture.Buffer {
	buf := New(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			Set(buf, x, y, r, g, b)
		}
	}
	return buf
}

// Set paints the pixel at (x, y). Pixel buffers are read-only inside
// the pipeline, so mutation lives here with the test helpers.
func Set(buf *picture.Buffer, x, y int, r, g, b uint8) {
	i := (y*buf.W + x) * 3
	buf.Pix[i] = r
	buf.Pix[i+1] = g
	buf.Pix[i+2] = b
}

// NewColumn returns a 1-pixel-wide buffer whose rows take the given
// colors top to bottom. Each color is an RGB triple.
func NewColumn(colors ...[3]uint8) *picture.Buffer {
	buf := New(1, len(colors))
	for y, c := range colors {
		Set(buf, 0, y, c[0], c[1], c[2])
	}
	return buf
}
