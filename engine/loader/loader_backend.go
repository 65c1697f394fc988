package loader

import (
	"image"
	"io"
)

// loaderBackend decodes one image container format.
// Concrete implementations (tiffLoaderBackend, imageLoaderBackend) handle format-specific details.
type loaderBackend interface {
	// Decode reads a complete image from r.
	//
	// Parameters:
	//   - r: random access to the encoded file
	//   - size: the encoded length in bytes
	//
	// Returns:
	//   - image.Image: the decoded image
	//   - error: error if the data is not a valid image of this format
	Decode(r io.ReaderAt, size int64) (image.Image, error)
}
