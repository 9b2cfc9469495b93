// SPDX-License-Identifier: EPL-2.0

package picture

import (
	"fmt"
	"image"
	"io"
	"os"

	// Formats register themselves with the image package.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads one image in any registered format from r and flattens
// it to an RGB Buffer. A failure here is fatal to a conversion run; no
// partial buffer is returned.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}

	return FromImage(img), nil
}

// DecodeFile opens and decodes the image at path.
func DecodeFile(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return Decode(f)
}
