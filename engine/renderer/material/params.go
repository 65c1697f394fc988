package material

import "github.com/Carmen-Shannon/oxy-earth/common"

// Params is the union of every kind's tunable values. Each kind uploads only the fields its
// shader reads. Colors are linear RGB.
type Params struct {
	Color   [3]float32
	Opacity float32

	// Phong
	Specular  [3]float32
	Shininess float32
	Emissive  [3]float32
	BumpScale float32

	// Standard
	Roughness float32
	Metalness float32

	// Fresnel
	RimColor     [3]float32
	FacingColor  [3]float32
	FresnelBias  float32
	FresnelScale float32
	FresnelPower float32

	// Points
	Size float32
}

// DefaultParams returns white, fully opaque parameters with a dim grey specular of shininess 30,
// unit bump scale, a fully rough dielectric, a blue rim glow (bias 0.1, scale 1, power 4), and
// unit point size.
func DefaultParams() Params {
	return Params{
		Color:        [3]float32{1, 1, 1},
		Opacity:      1,
		Specular:     common.LinearHex(0x111111),
		Shininess:    30,
		BumpScale:    1,
		Roughness:    1,
		Metalness:    0,
		RimColor:     common.LinearHex(0x0088ff),
		FacingColor:  [3]float32{0, 0, 0},
		FresnelBias:  0.1,
		FresnelScale: 1,
		FresnelPower: 4,
		Size:         1,
	}
}

func (p Params) marshal(kind Kind) []byte {
	switch kind {
	case KindPhong:
		g := GPUPhongParams{
			Color:     p.Color,
			Opacity:   p.Opacity,
			Specular:  p.Specular,
			Shininess: p.Shininess,
			Emissive:  p.Emissive,
			BumpScale: p.BumpScale,
		}
		return g.Marshal()
	case KindBasic:
		g := GPUBasicParams{Color: p.Color, Opacity: p.Opacity}
		return g.Marshal()
	case KindStandard:
		g := GPUStandardParams{
			Color:     p.Color,
			Opacity:   p.Opacity,
			Emissive:  p.Emissive,
			Roughness: p.Roughness,
			Metalness: p.Metalness,
		}
		return g.Marshal()
	case KindFresnel:
		g := GPUFresnelParams{
			RimColor:    p.RimColor,
			Bias:        p.FresnelBias,
			FacingColor: p.FacingColor,
			Scale:       p.FresnelScale,
			Power:       p.FresnelPower,
		}
		return g.Marshal()
	case KindPoints:
		g := GPUPointsParams{Size: p.Size, Opacity: p.Opacity}
		return g.Marshal()
	}
	return nil
}
