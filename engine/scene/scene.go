package scene

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
	"github.com/Carmen-Shannon/oxy-earth/engine/light"
	"github.com/Carmen-Shannon/oxy-earth/engine/model"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
)

// Renderer is the subset of the renderer a Scene draws through.
type Renderer interface {
	material.Uploader
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error
	WriteBuffers(writes []bind_group_provider.BufferWrite)
	DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error
}

// scene is the implementation of the Scene interface.
type scene struct {
	mu *sync.RWMutex

	name  string
	root  *node
	cam   camera.Camera
	sun   light.Light
	r     Renderer
	frame bind_group_provider.BindGroupProvider
}

// Scene owns a node graph, the camera it is viewed through, and the directional light. GPU
// resources for meshes, materials and nodes are created lazily by the first Prepare that sees
// them, so nodes may be added at any time.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// Root returns the top-level group every node hangs from.
	Root() Node

	// Add attaches nodes to the root.
	//
	// Parameters:
	//   - nodes: the nodes to attach
	//
	// Returns:
	//   - error: ErrForeignNode or ErrCycle from Node.Add
	Add(nodes ...Node) error

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// Light returns the scene's directional light.
	Light() light.Light

	// Renderer returns the attached renderer, nil if none.
	Renderer() Renderer

	// SetRenderer attaches the renderer Prepare and DrawCalls go through.
	//
	// Parameters:
	//   - r: the renderer
	SetRenderer(r Renderer)

	// Meshes returns visible mesh nodes in draw order: opaque materials first, then
	// transparent ones, each in depth-first graph order.
	//
	// Returns:
	//   - []Node: the nodes to draw
	Meshes() []Node

	// Prepare creates GPU resources for new meshes, materials and nodes, then uploads the
	// camera, the light, every node's world transform, and changed material parameters.
	// Must be called before BeginFrame.
	//
	// Returns:
	//   - error: the first resource creation error
	Prepare() error

	// DrawCalls issues one draw per visible mesh node.
	// Must be called within a BeginFrame/EndFrame block on the renderer.
	//
	// Returns:
	//   - error: error if a draw call fails
	DrawCalls() error
}

var _ Scene = &scene{}

// NewScene creates a Scene viewed through cam and lit by sun.
//
// Parameters:
//   - name: the scene identifier
//   - cam: the camera, its bind group provider carries the frame group
//   - sun: the directional light
//   - options: variadic list of SceneBuilderOption functions
//
// Returns:
//   - Scene: the new scene
func NewScene(name string, cam camera.Camera, sun light.Light, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:   &sync.RWMutex{},
		name: name,
		root: newNode(name+" Root", nil, nil),
		cam:  cam,
		sun:  sun,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.frame == nil {
		s.frame = cam.BindGroupProvider()
	}
	return s
}

func (s *scene) Name() string {
	return s.name
}

func (s *scene) Root() Node {
	return s.root
}

func (s *scene) Add(nodes ...Node) error {
	return s.root.Add(nodes...)
}

func (s *scene) Camera() camera.Camera {
	return s.cam
}

func (s *scene) Light() light.Light {
	return s.sun
}

func (s *scene) Renderer() Renderer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.r
}

func (s *scene) SetRenderer(r Renderer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r = r
}

func (s *scene) Meshes() []Node {
	var opaque, transparent []Node
	var walk func(n *node)
	walk = func(n *node) {
		if !n.Visible() {
			return
		}
		if n.drawable() {
			if n.material.Transparent() {
				transparent = append(transparent, n)
			} else {
				opaque = append(opaque, n)
			}
		}
		n.mu.Lock()
		children := slices.Clone(n.children)
		n.mu.Unlock()
		for _, c := range children {
			walk(c)
		}
	}
	walk(s.root)
	return append(opaque, transparent...)
}

func (s *scene) Prepare() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	meshes := s.Meshes()
	uploaded := make(map[model.Model]bool)
	for _, n := range meshes {
		if err := s.initNode(n, uploaded); err != nil {
			return err
		}
	}
	if !s.frame.Initialized() && len(meshes) > 0 {
		layouts := meshes[0].Material().Pipeline().BindGroupLayouts()
		if err := s.r.InitBindGroup(s.frame, layouts[shader.GroupFrame]); err != nil {
			return fmt.Errorf("scene %q: frame group: %w", s.name, err)
		}
	}
	if !s.frame.Initialized() {
		return nil
	}

	s.cam.Update()
	camUniform := s.cam.GPU()
	sunUniform := s.sun.GPU()
	writes := []bind_group_provider.BufferWrite{
		{Provider: s.frame, Binding: shader.BindingCamera, Data: camUniform.Marshal()},
		{Provider: s.frame, Binding: shader.BindingLight, Data: sunUniform.Marshal()},
	}
	for _, n := range meshes {
		data := modelData(n)
		writes = append(writes, bind_group_provider.BufferWrite{
			Provider: n.BindGroupProvider(),
			Binding:  shader.BindingModelData,
			Data:     data.Marshal(),
		})
		if w, ok := n.Material().ParamsWrite(); ok {
			writes = append(writes, w)
		}
	}
	s.r.WriteBuffers(writes)
	return nil
}

// initNode creates whatever GPU resources a mesh node is still missing.
// Caller must hold the read lock.
func (s *scene) initNode(n Node, uploaded map[model.Model]bool) error {
	mat := n.Material()
	if err := mat.InitGPU(s.r); err != nil {
		return fmt.Errorf("scene %q: node %q: %w", s.name, n.Name(), err)
	}

	mdl := n.Model()
	if mp := mdl.MeshProvider(); !mp.Initialized() && !uploaded[mdl] {
		if err := s.r.InitMeshBuffers(mp, mdl.VertexData(), mdl.IndexData(), mdl.IndexCount()); err != nil {
			return fmt.Errorf("scene %q: mesh %q: %w", s.name, mdl.Name(), err)
		}
		uploaded[mdl] = true
	}

	if obj := n.BindGroupProvider(); !obj.Initialized() {
		layout := mat.Pipeline().BindGroupLayouts()[shader.GroupObject]
		if err := s.r.InitBindGroup(obj, layout); err != nil {
			return fmt.Errorf("scene %q: node %q: %w", s.name, n.Name(), err)
		}
	}
	return nil
}

func (s *scene) DrawCalls() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.r == nil {
		return fmt.Errorf("scene %q has no renderer attached", s.name)
	}

	for _, n := range s.Meshes() {
		mat := n.Material()
		groups := []bind_group_provider.BindGroupProvider{s.frame, n.BindGroupProvider(), mat.BindGroupProvider()}
		if err := s.r.DrawCall(mat.PipelineKey(), n.Model().MeshProvider(), 1, groups); err != nil {
			return fmt.Errorf("scene %q: node %q: %w", s.name, n.Name(), err)
		}
	}
	return nil
}

func modelData(n Node) model.GPUModelData {
	var data model.GPUModelData
	data.Model = n.WorldMatrix()
	common.NormalMatrix(data.Normal[:], data.Model[:])
	return data
}
