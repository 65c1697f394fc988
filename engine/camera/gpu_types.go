package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform struct.
// Matches GPUCameraUniform layout exactly (208 bytes).
//
//go:embed assets/camera_uniform.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// The projection is uploaded on its own so point sprites can size themselves in clip space.
type GPUCameraUniform struct {
	View       [16]float32 // offset   0: world to view (mat4x4<f32>)
	Projection [16]float32 // offset  64: view to clip (mat4x4<f32>)
	ViewProj   [16]float32 // offset 128: world to clip (mat4x4<f32>)
	Position   [3]float32  // offset 192: world-space camera position (vec3<f32>)
	_pad       float32     // offset 204: padding to 208 bytes
}

// Size returns the size of the GPUCameraUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (208)
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCameraUniform struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.View[i]))
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Projection[i]))
		binary.LittleEndian.PutUint32(buf[128+i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[192+i*4:], math.Float32bits(g.Position[i]))
	}
	return buf
}
