package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULight layout exactly (32 bytes).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of the directional light uniform.
type GPULight struct {
	Direction [3]float32 // offset  0: normalized vector toward the light
	Intensity float32    // offset 12: scalar multiplier, 0 when disabled
	Color     [3]float32 // offset 16: linear RGB color
	_pad      float32    // offset 28: padding to 32 bytes
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (32)
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.Direction[0]))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Direction[1]))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(g.Direction[2]))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(g.Intensity))
	binary.LittleEndian.PutUint32(buf[16:20], math.Float32bits(g.Color[0]))
	binary.LittleEndian.PutUint32(buf[20:24], math.Float32bits(g.Color[1]))
	binary.LittleEndian.PutUint32(buf[24:28], math.Float32bits(g.Color[2]))
	return buf
}
