package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/model"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/material"
)

var (
	// ErrForeignNode is returned by Add for a Node not created by this package.
	ErrForeignNode = errors.New("scene: node was not created by NewGroup or NewMesh")

	// ErrCycle is returned by Add when the child is the node itself or one of its ancestors.
	ErrCycle = errors.New("scene: adding node would create a cycle")
)

// node is the implementation of the Node interface.
type node struct {
	mu *sync.Mutex

	name     string
	parent   *node
	children []*node

	position [3]float32
	rotation [3]float32
	scale    [3]float32
	visible  bool

	model             model.Model
	material          material.Material
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Node is an element of the scene graph. A node carries a local transform (translation, Euler
// rotation, scale) applied relative to its parent. Group nodes only transform their children;
// mesh nodes also draw a Model with a Material.
type Node interface {
	// Name returns the node identifier.
	Name() string

	// Parent returns the enclosing node, nil for roots.
	Parent() Node

	// Children returns the direct children in insertion order.
	Children() []Node

	// Add attaches children. A child already attached elsewhere is moved. Children are
	// checked before any is attached, so a failed call leaves the graph unchanged.
	//
	// Parameters:
	//   - children: the nodes to attach
	//
	// Returns:
	//   - error: ErrForeignNode or ErrCycle, wrapped with the offending node's name
	Add(children ...Node) error

	// Position returns the local translation.
	Position() [3]float32

	// SetPosition sets the local translation.
	SetPosition(x, y, z float32)

	// Rotation returns the local Euler angles in radians.
	Rotation() [3]float32

	// SetRotation sets the local Euler angles in radians.
	SetRotation(x, y, z float32)

	// RotateY adds to the rotation about the local Y axis.
	//
	// Parameters:
	//   - delta: radians to add
	RotateY(delta float32)

	// Scale returns the local scale factors.
	Scale() [3]float32

	// SetScale sets the local scale factors.
	SetScale(x, y, z float32)

	// SetScalar sets a uniform local scale.
	SetScalar(s float32)

	// Visible reports whether the node and its subtree are drawn.
	Visible() bool

	// SetVisible shows or hides the node and its subtree.
	SetVisible(visible bool)

	// Model returns the drawn mesh, nil for group nodes.
	Model() model.Model

	// Material returns the mesh material, nil for group nodes.
	Material() material.Material

	// LocalMatrix returns the column-major local transform.
	LocalMatrix() [16]float32

	// WorldMatrix returns the column-major transform from local to world space.
	WorldMatrix() [16]float32

	// BindGroupProvider returns the provider of the node's object group.
	BindGroupProvider() bind_group_provider.BindGroupProvider
}

var _ Node = &node{}

// NewGroup creates a node that draws nothing and transforms its children.
//
// Parameters:
//   - name: the node name
//   - options: variadic list of NodeBuilderOption functions
//
// Returns:
//   - Node: the group node
func NewGroup(name string, options ...NodeBuilderOption) Node {
	return newNode(name, nil, nil, options...)
}

// NewMesh creates a node that draws a model with a material.
//
// Parameters:
//   - name: the node name
//   - mdl: the mesh to draw, may be shared between nodes
//   - mat: the material to draw it with
//   - options: variadic list of NodeBuilderOption functions
//
// Returns:
//   - Node: the mesh node
func NewMesh(name string, mdl model.Model, mat material.Material, options ...NodeBuilderOption) Node {
	return newNode(name, mdl, mat, options...)
}

func newNode(name string, mdl model.Model, mat material.Material, options ...NodeBuilderOption) *node {
	n := &node{
		mu:       &sync.Mutex{},
		name:     name,
		scale:    [3]float32{1, 1, 1},
		visible:  true,
		model:    mdl,
		material: mat,
	}
	for _, opt := range options {
		opt(n)
	}
	if n.bindGroupProvider == nil {
		n.bindGroupProvider = bind_group_provider.NewBindGroupProvider(name + " Object")
	}
	return n
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Parent() Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *node) Children() []Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *node) Add(children ...Node) error {
	nodes := make([]*node, 0, len(children))
	for _, c := range children {
		child, ok := c.(*node)
		if !ok || child == nil {
			return fmt.Errorf("%w: %T", ErrForeignNode, c)
		}
		if n.hasAncestor(child) {
			return fmt.Errorf("%w: %q under %q", ErrCycle, child.name, n.name)
		}
		nodes = append(nodes, child)
	}

	for _, child := range nodes {
		if old := child.parentNode(); old != nil {
			old.remove(child)
		}
		child.mu.Lock()
		child.parent = n
		child.mu.Unlock()

		n.mu.Lock()
		n.children = append(n.children, child)
		n.mu.Unlock()
	}
	return nil
}

// hasAncestor reports whether a is n or lies on n's path to the root.
func (n *node) hasAncestor(a *node) bool {
	for p := n; p != nil; p = p.parentNode() {
		if p == a {
			return true
		}
	}
	return false
}

func (n *node) parentNode() *node {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.parent
}

func (n *node) remove(child *node) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *node) Position() [3]float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.position
}

func (n *node) SetPosition(x, y, z float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.position = [3]float32{x, y, z}
}

func (n *node) Rotation() [3]float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rotation
}

func (n *node) SetRotation(x, y, z float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rotation = [3]float32{x, y, z}
}

func (n *node) RotateY(delta float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rotation[1] += delta
}

func (n *node) Scale() [3]float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.scale
}

func (n *node) SetScale(x, y, z float32) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.scale = [3]float32{x, y, z}
}

func (n *node) SetScalar(s float32) {
	n.SetScale(s, s, s)
}

func (n *node) Visible() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.visible
}

func (n *node) SetVisible(visible bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visible = visible
}

func (n *node) Model() model.Model {
	return n.model
}

func (n *node) Material() material.Material {
	return n.material
}

func (n *node) LocalMatrix() [16]float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	var m [16]float32
	common.BuildModelMatrix(m[:],
		n.position[0], n.position[1], n.position[2],
		n.rotation[0], n.rotation[1], n.rotation[2],
		n.scale[0], n.scale[1], n.scale[2],
	)
	return m
}

func (n *node) WorldMatrix() [16]float32 {
	local := n.LocalMatrix()
	parent := n.parentNode()
	if parent == nil {
		return local
	}
	world := parent.WorldMatrix()
	common.Mul4(world[:], world[:], local[:])
	return world
}

func (n *node) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return n.bindGroupProvider
}

// drawable reports whether the node carries something to draw.
func (n *node) drawable() bool {
	return n.model != nil && n.material != nil
}
