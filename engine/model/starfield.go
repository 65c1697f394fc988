package model

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// StarfieldInnerRadius is the smallest distance of a star from the origin.
	StarfieldInnerRadius = 25

	// StarfieldShellDepth is the thickness of the shell stars are scattered in.
	StarfieldShellDepth = 25

	// starHue and starSaturation give every star the same pale blue tint; only lightness varies.
	starHue        = 0.6 * 360
	starSaturation = 0.2
)

// Star is a single point of the starfield.
type Star struct {
	Position [3]float32
	Color    [3]float32
}

// Starfield scatters count stars uniformly over directions in the spherical shell
// [StarfieldInnerRadius, StarfieldInnerRadius+StarfieldShellDepth). The same seed always yields
// the same stars. Colors are linear RGB.
//
// Parameters:
//   - count: number of stars, negative values yield none
//   - seed: random seed
//
// Returns:
//   - []Star: the generated stars
func Starfield(count int, seed uint64) []Star {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	stars := make([]Star, max(count, 0))
	for i := range stars {
		radius := StarfieldInnerRadius + rng.Float64()*StarfieldShellDepth
		theta := 2 * math.Pi * rng.Float64()
		phi := math.Acos(2*rng.Float64() - 1)

		r, g, b := colorful.Hsl(starHue, starSaturation, rng.Float64()).LinearRgb()
		stars[i] = Star{
			Position: [3]float32{
				float32(radius * math.Sin(phi) * math.Cos(theta)),
				float32(radius * math.Sin(phi) * math.Sin(theta)),
				float32(radius * math.Cos(phi)),
			},
			Color: [3]float32{float32(r), float32(g), float32(b)},
		}
	}
	return stars
}

// starCorners are the quad corners of a sprite, wound counter-clockwise by starIndices.
var starCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

var starIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// NewPointCloud expands stars into camera-facing sprite quads. Each star contributes four
// GPUPointVertex corners and six indices; the vertex shader offsets corners in clip space.
//
// Parameters:
//   - name: the model name
//   - stars: the points to draw
//
// Returns:
//   - Model: the sprite model
func NewPointCloud(name string, stars []Star) Model {
	vertices := make([]GPUPointVertex, 0, len(stars)*4)
	indices := make([]uint32, 0, len(stars)*6)
	for i, s := range stars {
		base := uint32(i * 4)
		for _, corner := range starCorners {
			vertices = append(vertices, GPUPointVertex{Position: s.Position, Color: s.Color, Corner: corner})
		}
		for _, idx := range starIndices {
			indices = append(indices, base+idx)
		}
	}
	return NewModel(
		WithName(name),
		WithPointVertices(vertices),
		WithIndices(indices),
	)
}
