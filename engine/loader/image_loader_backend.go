package loader

import (
	"image"
	_ "image/jpeg" // register JPEG format with image.Decode
	_ "image/png"  // register PNG format with image.Decode
	"io"

	_ "golang.org/x/image/bmp"  // register BMP format with image.Decode
	_ "golang.org/x/image/webp" // register WebP format with image.Decode
)

// imageLoaderBackend decodes every format registered with the image package.
type imageLoaderBackend struct{}

var _ loaderBackend = &imageLoaderBackend{}

func newImageLoaderBackend() loaderBackend {
	return &imageLoaderBackend{}
}

func (b *imageLoaderBackend) Decode(r io.ReaderAt, size int64) (image.Image, error) {
	img, _, err := image.Decode(io.NewSectionReader(r, 0, size))
	return img, err
}
