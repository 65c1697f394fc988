package model

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct for surface meshes.
// Matches GPUVertex layout exactly (32 bytes).
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// GPUVertex is the GPU-aligned representation of a single surface vertex.
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position
	Normal   [3]float32 // offset 12: unit normal
	UV       [2]float32 // offset 24: texture coordinate, v = 0 at the top row
}

// Size returns the size of the GPUVertex struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUVertex struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 32-byte buffer ready for GPU upload.
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 32)
	putFloats(buf, g.Position[:]...)
	putFloats(buf[12:], g.Normal[:]...)
	putFloats(buf[24:], g.UV[:]...)
	return buf
}

// GPUPointVertexSource is the canonical WGSL definition of the PointVertexInput struct for
// point sprites. Matches GPUPointVertex layout exactly (32 bytes).
//
//go:embed assets/point_vertex.wgsl
var GPUPointVertexSource string

// GPUPointVertex is one corner of a point sprite quad. All four corners of a sprite share
// Position and Color; Corner spans [-1, 1] on both axes and is expanded in clip space.
type GPUPointVertex struct {
	Position [3]float32 // offset  0: model-space center of the sprite
	Color    [3]float32 // offset 12: linear RGB color
	Corner   [2]float32 // offset 24: quad corner in [-1, 1]
}

// Size returns the size of the GPUPointVertex struct in bytes.
func (g *GPUPointVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointVertex struct into a byte buffer suitable for GPU upload.
func (g *GPUPointVertex) Marshal() []byte {
	buf := make([]byte, 32)
	putFloats(buf, g.Position[:]...)
	putFloats(buf[12:], g.Color[:]...)
	putFloats(buf[24:], g.Corner[:]...)
	return buf
}

// GPUModelDataSource is the canonical WGSL definition of the ModelData struct.
// Matches GPUModelData layout exactly (128 bytes).
//
//go:embed assets/model_data.wgsl
var GPUModelDataSource string

// GPUModelData is the per-node uniform: the world matrix and its normal matrix.
type GPUModelData struct {
	Model  [16]float32 // offset  0: model-to-world transform
	Normal [16]float32 // offset 64: inverse transpose of Model, translation zeroed
}

// Size returns the size of the GPUModelData struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUModelData) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModelData struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 128-byte buffer ready for GPU upload.
func (g *GPUModelData) Marshal() []byte {
	buf := make([]byte, 128)
	putFloats(buf, g.Model[:]...)
	putFloats(buf[64:], g.Normal[:]...)
	return buf
}

func putFloats(buf []byte, values ...float32) {
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
