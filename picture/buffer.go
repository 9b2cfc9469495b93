// SPDX-License-Identifier: EPL-2.0

package picture

import "image"

// Buffer is a decoded image flattened to 8-bit RGB.
// Pix holds the pixels row-major; the pixel at (x, y) starts at
// Pix[(y*W+x)*3]. A Buffer is read-only for the lifetime of a
// conversion run.
type Buffer struct {
	Pix  []uint8
	W, H int
}

// At returns the RGB channels of the pixel at (x, y).
// Coordinates are not bounds-checked beyond the slice's own.
func (buf *Buffer) At(x, y int) (r, g, b uint8) {
	i := (y*buf.W + x) * 3
	return buf.Pix[i], buf.Pix[i+1], buf.Pix[i+2]
}

// FromImage flattens any image.Image into an RGB Buffer, dropping the
// alpha channel. The buffer's origin is the image's top-left corner
// regardless of the bounds' minimum point.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	buf := &Buffer{
		Pix: make([]uint8, w*h*3),
		W:   w,
		H:   h,
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			buf.Pix[i] = uint8(r >> 8)
			buf.Pix[i+1] = uint8(g >> 8)
			buf.Pix[i+2] = uint8(b >> 8)
			i += 3
		}
	}

	return buf
}
