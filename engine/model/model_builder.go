package model

import (
	"math"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
)

// ModelBuilderOption is a functional option used to configure a Model during construction.
type ModelBuilderOption func(*model)

// WithName sets the name of the model.
//
// Parameters:
//   - name: the model name
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithVertices packs surface vertices and computes the bounding radius from their positions.
//
// Parameters:
//   - vertices: the surface vertices
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices to a model
func WithVertices(vertices []GPUVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = common.SliceToBytes(vertices)
		m.vertexCount = len(vertices)
		m.boundingRadius = 0
		for _, v := range vertices {
			m.boundingRadius = max(m.boundingRadius, length(v.Position))
		}
	}
}

// WithPointVertices packs point sprite corners and computes the bounding radius from their centers.
//
// Parameters:
//   - vertices: the sprite corners, four per sprite
//
// Returns:
//   - ModelBuilderOption: a function that applies the vertices to a model
func WithPointVertices(vertices []GPUPointVertex) ModelBuilderOption {
	return func(m *model) {
		m.vertexData = common.SliceToBytes(vertices)
		m.vertexCount = len(vertices)
		m.boundingRadius = 0
		for _, v := range vertices {
			m.boundingRadius = max(m.boundingRadius, length(v.Position))
		}
	}
}

// WithIndices packs uint32 indices.
//
// Parameters:
//   - indices: triangle list indices
//
// Returns:
//   - ModelBuilderOption: a function that applies the indices to a model
func WithIndices(indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.indexData = common.SliceToBytes(indices)
		m.indexCount = len(indices)
	}
}

// WithMeshProvider sets the provider that will hold the GPU buffers.
//
// Parameters:
//   - provider: the mesh provider
//
// Returns:
//   - ModelBuilderOption: a function that applies the provider to a model
func WithMeshProvider(provider bind_group_provider.BindGroupProvider) ModelBuilderOption {
	return func(m *model) {
		m.meshProvider = provider
	}
}

func length(v [3]float32) float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}
