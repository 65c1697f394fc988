package material

import (
	"encoding/binary"
	"math"
)

// GPUPhongParams matches the PhongParams uniform (48 bytes).
type GPUPhongParams struct {
	Color     [3]float32 // offset  0
	Opacity   float32    // offset 12
	Specular  [3]float32 // offset 16
	Shininess float32    // offset 28
	Emissive  [3]float32 // offset 32
	BumpScale float32    // offset 44
}

// Marshal serializes the params into a 48-byte buffer suitable for GPU upload.
func (g *GPUPhongParams) Marshal() []byte {
	buf := make([]byte, 48)
	putVec4(buf[0:], g.Color, g.Opacity)
	putVec4(buf[16:], g.Specular, g.Shininess)
	putVec4(buf[32:], g.Emissive, g.BumpScale)
	return buf
}

// GPUBasicParams matches the BasicParams uniform (16 bytes).
type GPUBasicParams struct {
	Color   [3]float32 // offset  0
	Opacity float32    // offset 12
}

// Marshal serializes the params into a 16-byte buffer suitable for GPU upload.
func (g *GPUBasicParams) Marshal() []byte {
	buf := make([]byte, 16)
	putVec4(buf, g.Color, g.Opacity)
	return buf
}

// GPUStandardParams matches the StandardParams uniform (48 bytes).
type GPUStandardParams struct {
	Color     [3]float32 // offset  0
	Opacity   float32    // offset 12
	Emissive  [3]float32 // offset 16
	Roughness float32    // offset 28
	Metalness float32    // offset 32
	_pad      [3]float32 // offset 36: struct rounds up to 16-byte alignment
}

// Marshal serializes the params into a 48-byte buffer suitable for GPU upload.
func (g *GPUStandardParams) Marshal() []byte {
	buf := make([]byte, 48)
	putVec4(buf[0:], g.Color, g.Opacity)
	putVec4(buf[16:], g.Emissive, g.Roughness)
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(g.Metalness))
	return buf
}

// GPUFresnelParams matches the FresnelParams uniform (48 bytes).
type GPUFresnelParams struct {
	RimColor    [3]float32 // offset  0
	Bias        float32    // offset 12
	FacingColor [3]float32 // offset 16
	Scale       float32    // offset 28
	Power       float32    // offset 32
	_pad        [3]float32 // offset 36
}

// Marshal serializes the params into a 48-byte buffer suitable for GPU upload.
func (g *GPUFresnelParams) Marshal() []byte {
	buf := make([]byte, 48)
	putVec4(buf[0:], g.RimColor, g.Bias)
	putVec4(buf[16:], g.FacingColor, g.Scale)
	binary.LittleEndian.PutUint32(buf[32:], math.Float32bits(g.Power))
	return buf
}

// GPUPointsParams matches the PointsParams uniform (8 bytes).
type GPUPointsParams struct {
	Size    float32 // offset 0: sprite diameter in world units at unit distance
	Opacity float32 // offset 4
}

// Marshal serializes the params into an 8-byte buffer suitable for GPU upload.
func (g *GPUPointsParams) Marshal() []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(g.Size))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(g.Opacity))
	return buf
}

func putVec4(buf []byte, xyz [3]float32, w float32) {
	for i, v := range xyz {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(w))
}
