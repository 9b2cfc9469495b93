// SPDX-License-Identifier: EPL-2.0

// Package picture decodes still images into flat 8-bit RGB buffers.
//
// The rest of the pipeline never touches image.Image or color models; it
// reads pixels from a Buffer, which is a plain row-major byte slice with
// three channels per pixel:
//
//	buf, err := picture.DecodeFile("score.png")
//	r, g, b := buf.At(x, y)
//
// # Supported formats
//
// Decode goes through the standard image registry, with the following
// formats linked in:
//   - PNG, JPEG, GIF (standard library)
//   - BMP, TIFF, WebP (golang.org/x/image)
//
// Alpha channels are dropped during flattening; only RGB reaches the
// synthesizer.
package picture
