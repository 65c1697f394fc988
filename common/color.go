package common

import (
	"github.com/lucasb-eyer/go-colorful"
)

// LinearHex converts a 0xRRGGBB sRGB color to linear RGB, the space shading happens in.
//
// Parameters:
//   - hex: the packed sRGB color
//
// Returns:
//   - [3]float32: linear RGB components in [0, 1]
func LinearHex(hex uint32) [3]float32 {
	c := colorful.Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
	}
	r, g, b := c.LinearRgb()
	return [3]float32{float32(r), float32(g), float32(b)}
}
