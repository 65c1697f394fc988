package loader

import (
	"image"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"golang.org/x/image/draw"
)

// mipChain downscales level 0 by halves until both sides reach one pixel. Each level is
// filtered from the one above it so detail is averaged rather than skipped.
//
// Parameters:
//   - data: level 0 staging data, tightly packed RGBA
//
// Returns:
//   - []common.MipLevel: levels 1..n, largest first
func mipChain(data common.TextureStagingData) []common.MipLevel {
	w, h := int(data.Width), int(data.Height)
	if w <= 1 && h <= 1 {
		return nil
	}

	src := &image.RGBA{Pix: data.Pixels, Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
	var levels []common.MipLevel
	for w > 1 || h > 1 {
		w, h = max(w/2, 1), max(h/2, 1)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		levels = append(levels, common.MipLevel{Pixels: dst.Pix, Width: uint32(w), Height: uint32(h)})
		src = dst
	}
	return levels
}

// mipLevelCount returns the full chain length for a texture, level 0 included.
func mipLevelCount(width, height uint32) int {
	n := 1
	for width > 1 || height > 1 {
		width, height = max(width/2, 1), max(height/2, 1)
		n++
	}
	return n
}
