// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"image"

	"github.com/cogentcore/webgpu/wgpu"
	"golang.org/x/image/draw"
)

// TextureStagingData holds RGBA pixel data for a texture binding pending GPU upload.
// Level 0 lives in Pixels/Width/Height, smaller levels (if any) in Mips, largest first.
type TextureStagingData struct {
	// Label names the texture in GPU debug output.
	Label string
	// Pixels is level 0 in RGBA format, 4 bytes per pixel, row-major.
	Pixels []byte
	// Width is the level 0 width in pixels.
	Width uint32
	// Height is the level 0 height in pixels.
	Height uint32
	// Mips holds the downscaled levels 1..n.
	Mips []MipLevel
}

// MipLevel is one downscaled level of a TextureStagingData.
type MipLevel struct {
	Pixels []byte
	Width  uint32
	Height uint32
}

// MipLevelCount returns the number of levels including level 0.
func (t TextureStagingData) MipLevelCount() uint32 {
	return uint32(1 + len(t.Mips))
}

// Empty reports whether the staging data carries no pixels.
func (t TextureStagingData) Empty() bool {
	return len(t.Pixels) == 0 || t.Width == 0 || t.Height == 0
}

// StageImage converts any decoded image to tightly packed RGBA staging data.
//
// Parameters:
//   - label: debug label for the resulting texture
//   - img: the decoded source image
//
// Returns:
//   - TextureStagingData: level 0 only, no mips
func StageImage(label string, img image.Image) TextureStagingData {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != 4*bounds.Dx() || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	return TextureStagingData{
		Label:  label,
		Pixels: rgba.Pix,
		Width:  uint32(bounds.Dx()),
		Height: uint32(bounds.Dy()),
	}
}

// SolidTexture returns 1x1 staging data of a single color. Used as a stand-in
// when a texture file cannot be loaded.
func SolidTexture(label string, r, g, b, a uint8) TextureStagingData {
	return TextureStagingData{
		Label:  label,
		Pixels: []byte{r, g, b, a},
		Width:  1,
		Height: 1,
	}
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Zero fields fall back to linear filtering and repeat addressing.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range.
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the level of detail range used for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}
