package loader

import (
	"image"
	"io"

	"github.com/echoflaresat/tiff"
)

// tiffLoaderBackend decodes baseline and tiled TIFF files, the format large Earth
// mosaics are usually distributed in.
type tiffLoaderBackend struct{}

var _ loaderBackend = &tiffLoaderBackend{}

func newTIFFLoaderBackend() loaderBackend {
	return &tiffLoaderBackend{}
}

func (b *tiffLoaderBackend) Decode(r io.ReaderAt, size int64) (image.Image, error) {
	return tiff.Decode(io.NewSectionReader(r, 0, size))
}
