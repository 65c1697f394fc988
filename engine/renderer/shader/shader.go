package shader

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderType identifies the pipeline stage a Shader is reflected for.
type ShaderType int

const (
	// ShaderTypeVertex reflects the @vertex entry point and vertex input structs.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment reflects the @fragment entry point.
	ShaderTypeFragment
)

type shader struct {
	key                        string
	source                     string
	shaderType                 ShaderType
	entryPoint                 string
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	vertexLayouts              []wgpu.VertexBufferLayout
	module                     *wgpu.ShaderModuleDescriptor

	pp PreProcessor
}

// Shader is a pre-processed WGSL module reflected for one pipeline stage.
// Bind group layouts and vertex buffer layouts are derived from the source,
// so pipelines never hand-maintain descriptors that could drift from the WGSL.
type Shader interface {
	// Key returns the shader's identifier.
	Key() string

	// Source returns the expanded WGSL source.
	Source() string

	// ShaderType returns the stage this shader was reflected for.
	ShaderType() ShaderType

	// EntryPoint returns the name of the stage's entry point function.
	EntryPoint() string

	// BindGroupLayoutDescriptor returns the layout descriptor for a group index.
	//
	// Parameters:
	//   - group: the @group index
	//
	// Returns:
	//   - wgpu.BindGroupLayoutDescriptor: the descriptor, empty if the group is not declared
	BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor

	// BindGroupLayoutDescriptors returns all layout descriptors keyed by group index.
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName returns the WGSL variable name declared at a group and binding.
	BindGroupVarName(group, binding int) string

	// BindGroupFromVarName looks up the binding index of a WGSL variable in a group.
	//
	// Parameters:
	//   - group: the @group index
	//   - varName: the WGSL variable name
	//
	// Returns:
	//   - int: the binding index, -1 if not found
	//   - bool: true if found
	BindGroupFromVarName(group int, varName string) (int, bool)

	// BindingForRole returns the binding tagged with a provider role in a group.
	//
	// Parameters:
	//   - group: the @group index
	//   - role: the binding role from a provider annotation
	//
	// Returns:
	//   - int: the binding index, -1 if not found
	//   - bool: true if found
	BindingForRole(group int, role AnnotationArg) (int, bool)

	// VertexLayouts returns one vertex buffer layout per vertex input struct, in declaration order.
	// Empty for fragment shaders.
	VertexLayouts() []wgpu.VertexBufferLayout

	// Module returns the shader module descriptor for device.CreateShaderModule.
	Module() *wgpu.ShaderModuleDescriptor

	// Declarations returns the group and provider annotations found during pre-processing.
	Declarations() []Annotation
}

var _ Shader = &shader{}

// NewShader pre-processes and reflects WGSL source for one stage.
// Panics if the source is empty or its annotations are malformed, since shader
// sources are compiled into the binary and a failure is a programming error.
//
// Parameters:
//   - key: identifier used for labels and pipeline lookup
//   - shaderType: the stage to reflect
//   - source: WGSL source, optionally containing @oxy annotations
//
// Returns:
//   - Shader: the reflected shader
func NewShader(key string, shaderType ShaderType, source string) Shader {
	if source == "" {
		panic(fmt.Sprintf("shader: %s has no source", key))
	}
	s := &shader{
		key:        key,
		shaderType: shaderType,
		pp:         NewPreProcessor(),
	}

	var err error
	s.source, err = s.pp.Process(source)
	if err != nil {
		panic(fmt.Sprintf("shader: failed to pre-process %q: %v", key, err))
	}
	s.module = &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
	s.entryPoint = parseEntryPoint(s.source, s.shaderType)

	visibility := wgpu.ShaderStageFragment
	if s.shaderType == ShaderTypeVertex {
		visibility = wgpu.ShaderStageVertex
		s.vertexLayouts = parseVertexLayouts(s.source)
	}
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(s.source, visibility)
	return s
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) BindGroupLayoutDescriptor(group int) wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors[group]
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	return s.bindingVarNames[group][binding]
}

func (s *shader) BindGroupFromVarName(group int, varName string) (int, bool) {
	for binding, name := range s.bindingVarNames[group] {
		if name == varName {
			return binding, true
		}
	}
	return -1, false
}

func (s *shader) BindingForRole(group int, role AnnotationArg) (int, bool) {
	for _, decl := range s.pp.Declarations() {
		if decl.Type != AnnotationTypeProvider || decl.Group == nil || *decl.Group != group {
			continue
		}
		if decl.Role() == role {
			return *decl.Binding, true
		}
	}
	return -1, false
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) Declarations() []Annotation {
	return s.pp.Declarations()
}
