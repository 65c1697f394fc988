package model

import (
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
)

// model is the implementation of the Model interface.
type model struct {
	name                  string
	meshProvider          bind_group_provider.BindGroupProvider
	boundingRadius        float32
	vertexData, indexData []byte
	vertexCount           int
	indexCount            int
}

// Model is CPU-side mesh data ready for GPU upload: packed vertices, uint32 indices, and the
// provider that will hold the GPU buffers once a renderer initializes them. One Model may be
// drawn by many scene nodes; its buffers are uploaded once.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// VertexData returns the packed vertex bytes.
	VertexData() []byte

	// IndexData returns the packed uint32 index bytes.
	IndexData() []byte

	// VertexCount returns the number of vertices in VertexData.
	VertexCount() int

	// IndexCount returns the number of indices in IndexData.
	IndexCount() int

	// BoundingRadius returns the distance from the origin to the farthest vertex.
	//
	// Returns:
	//   - float32: the bounding sphere radius
	BoundingRadius() float32

	// MeshProvider returns the provider holding the vertex and index buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	MeshProvider() bind_group_provider.BindGroupProvider
}

var _ Model = &model{}

// NewModel creates a Model from the given options. A mesh provider labelled after the model is
// created when none is supplied.
//
// Parameters:
//   - options: variadic list of ModelBuilderOption functions
//
// Returns:
//   - Model: the new model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	if m.meshProvider == nil {
		m.meshProvider = bind_group_provider.NewBindGroupProvider(m.name + " Mesh")
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) VertexCount() int {
	return m.vertexCount
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}

func (m *model) MeshProvider() bind_group_provider.BindGroupProvider {
	return m.meshProvider
}
