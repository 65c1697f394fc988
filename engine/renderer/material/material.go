package material

import (
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// material is the implementation of the Material interface.
type material struct {
	mu *sync.Mutex

	name   string
	kind   Kind
	params Params

	blendMode    pipeline.BlendMode
	depthWrite   bool
	depthCompare wgpu.CompareFunction
	cullMode     wgpu.CullMode

	textures map[shader.AnnotationArg]common.TextureStagingData
	sampler  common.SamplerStagingData

	pipeline          pipeline.Pipeline
	bindGroupProvider bind_group_provider.BindGroupProvider
	dirty             bool
}

// Uploader is the subset of the renderer a Material needs to create its GPU resources.
type Uploader interface {
	RegisterPipelines(pipelines ...pipeline.Pipeline) error
	InitTextureView(provider bind_group_provider.BindGroupProvider, binding int, stagingData common.TextureStagingData) error
	InitSampler(provider bind_group_provider.BindGroupProvider, binding int, samplerStagingData common.SamplerStagingData) error
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error
}

// Material describes how a mesh is shaded: the shading model, its parameters, the textures
// it samples, and the blend and depth state of its pipeline. GPU resources are created once by
// InitGPU; parameter changes afterwards are uploaded through ParamsWrite.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Kind returns the shading model.
	Kind() Kind

	// Params returns a copy of the current parameters.
	Params() Params

	// SetParams replaces the parameters. The change is uploaded on the next ParamsWrite.
	//
	// Parameters:
	//   - params: the new parameters
	SetParams(params Params)

	// Marshal serializes the parameters in the layout of the kind's params uniform.
	//
	// Returns:
	//   - []byte: the uniform bytes
	Marshal() []byte

	// Texture returns the staged texture for a role.
	//
	// Parameters:
	//   - role: a texture role from Kind.TextureRoles
	//
	// Returns:
	//   - common.TextureStagingData: the staged pixels
	//   - bool: true if a texture was set for the role
	Texture(role shader.AnnotationArg) (common.TextureStagingData, bool)

	// SetTexture stages pixels for a role. Textures must be set before InitGPU.
	//
	// Parameters:
	//   - role: a texture role from Kind.TextureRoles
	//   - data: the decoded pixels
	SetTexture(role shader.AnnotationArg, data common.TextureStagingData)

	// BlendMode returns the color blend preset.
	BlendMode() pipeline.BlendMode

	// Transparent reports whether the material leaves the depth buffer untouched.
	Transparent() bool

	// PipelineKey identifies the pipeline configuration. Materials with equal keys share one
	// GPU pipeline.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// Pipeline returns the pipeline description for this material, built on first use.
	//
	// Returns:
	//   - pipeline.Pipeline: the pipeline
	Pipeline() pipeline.Pipeline

	// BindGroupProvider retrieves the provider holding the material group's GPU resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the material's provider
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// InitGPU registers the pipeline and, on first call, uploads textures, creates the sampler,
	// and builds the material bind group. Roles without a staged texture get DefaultTexture.
	//
	// Parameters:
	//   - u: the renderer to create resources with
	//
	// Returns:
	//   - error: the first resource creation error
	InitGPU(u Uploader) error

	// ParamsWrite returns the pending parameter upload and clears it.
	//
	// Returns:
	//   - bind_group_provider.BufferWrite: the write targeting the params binding
	//   - bool: false when nothing changed since the last call or the GPU group does not exist yet
	ParamsWrite() (bind_group_provider.BufferWrite, bool)
}

var _ Material = &material{}

// NewMaterial creates a Material of the given kind. Defaults: DefaultParams, opaque, depth
// write on with Less compare, back faces culled (no culling for points).
//
// Parameters:
//   - kind: the shading model
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(kind Kind, options ...MaterialBuilderOption) Material {
	m := &material{
		mu:           &sync.Mutex{},
		name:         kind.String(),
		kind:         kind,
		params:       DefaultParams(),
		blendMode:    pipeline.BlendNone,
		depthWrite:   true,
		depthCompare: wgpu.CompareFunctionLess,
		cullMode:     wgpu.CullModeBack,
		textures:     make(map[shader.AnnotationArg]common.TextureStagingData),
	}
	if kind == KindPoints {
		m.cullMode = wgpu.CullModeNone
	}
	for _, opt := range options {
		opt(m)
	}
	if m.bindGroupProvider == nil {
		m.bindGroupProvider = bind_group_provider.NewBindGroupProvider(m.name + " Material")
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Kind() Kind {
	return m.kind
}

func (m *material) Params() Params {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.params
}

func (m *material) SetParams(params Params) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.params = params
	m.dirty = true
}

func (m *material) Marshal() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.params.marshal(m.kind)
}

func (m *material) Texture(role shader.AnnotationArg) (common.TextureStagingData, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tex, ok := m.textures[role]
	return tex, ok
}

func (m *material) SetTexture(role shader.AnnotationArg, data common.TextureStagingData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.textures[role] = data
}

func (m *material) BlendMode() pipeline.BlendMode {
	return m.blendMode
}

func (m *material) Transparent() bool {
	return !m.depthWrite
}

func (m *material) PipelineKey() string {
	key := m.kind.String() + "/" + m.blendMode.String()
	if !m.depthWrite {
		key += "/nowrite"
	}
	if m.depthCompare != wgpu.CompareFunctionLess {
		key += fmt.Sprintf("/cmp%d", m.depthCompare)
	}
	return key
}

func (m *material) Pipeline() pipeline.Pipeline {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pipeline == nil {
		vs, fs := m.kind.Shaders()
		m.pipeline = pipeline.NewPipeline(m.PipelineKey(),
			pipeline.WithVertexShader(vs),
			pipeline.WithFragmentShader(fs),
			pipeline.WithBlendMode(m.blendMode),
			pipeline.WithDepthWriteEnabled(m.depthWrite),
			pipeline.WithDepthCompare(m.depthCompare),
			pipeline.WithCullMode(m.cullMode),
		)
	}
	return m.pipeline
}

func (m *material) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return m.bindGroupProvider
}

func (m *material) InitGPU(u Uploader) error {
	p := m.Pipeline()
	if err := u.RegisterPipelines(p); err != nil {
		return fmt.Errorf("material %s: %w", m.name, err)
	}

	provider := m.bindGroupProvider
	if provider.Initialized() {
		return nil
	}

	_, fs := m.kind.Shaders()
	roles := m.kind.TextureRoles()
	for _, role := range roles {
		binding, ok := fs.BindingForRole(shader.GroupMaterial, role)
		if !ok {
			return fmt.Errorf("material %s: shader declares no %s binding", m.name, role)
		}
		tex, ok := m.Texture(role)
		if !ok || tex.Empty() {
			tex = DefaultTexture(role)
		}
		if err := u.InitTextureView(provider, binding, tex); err != nil {
			return fmt.Errorf("material %s: %s: %w", m.name, role, err)
		}
	}
	if len(roles) > 0 {
		binding, ok := fs.BindingForRole(shader.GroupMaterial, shader.AnnotationArgMapSampler)
		if !ok {
			return fmt.Errorf("material %s: shader declares no sampler binding", m.name)
		}
		if err := u.InitSampler(provider, binding, m.sampler); err != nil {
			return fmt.Errorf("material %s: sampler: %w", m.name, err)
		}
	}

	if err := u.InitBindGroup(provider, p.BindGroupLayouts()[shader.GroupMaterial]); err != nil {
		return fmt.Errorf("material %s: bind group: %w", m.name, err)
	}

	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
	return nil
}

func (m *material) ParamsWrite() (bind_group_provider.BufferWrite, bool) {
	if !m.bindGroupProvider.Initialized() {
		return bind_group_provider.BufferWrite{}, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty {
		return bind_group_provider.BufferWrite{}, false
	}
	_, fs := m.kind.Shaders()
	binding, ok := fs.BindingForRole(shader.GroupMaterial, shader.AnnotationArgParams)
	if !ok {
		return bind_group_provider.BufferWrite{}, false
	}
	m.dirty = false
	return bind_group_provider.BufferWrite{
		Provider: m.bindGroupProvider,
		Binding:  binding,
		Data:     m.params.marshal(m.kind),
	}, true
}

// DefaultTexture is the 1x1 stand-in for a role with no staged texture: white for color,
// specular and alpha maps, black (flat) for bump maps.
//
// Parameters:
//   - role: the texture role
//
// Returns:
//   - common.TextureStagingData: the stand-in pixels
func DefaultTexture(role shader.AnnotationArg) common.TextureStagingData {
	if role == shader.AnnotationArgBumpMap {
		return common.SolidTexture("default "+string(role), 0, 0, 0, 255)
	}
	return common.SolidTexture("default "+string(role), 255, 255, 255, 255)
}
