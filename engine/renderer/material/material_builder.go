package material

import (
	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// MaterialBuilderOption is a functional option used to configure a Material during construction.
type MaterialBuilderOption func(*material)

// WithName sets the name of the material.
//
// Parameters:
//   - name: the material name
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithParams replaces every parameter.
//
// Parameters:
//   - params: the parameters
//
// Returns:
//   - MaterialBuilderOption: a function that applies the params to a material
func WithParams(params Params) MaterialBuilderOption {
	return func(m *material) {
		m.params = params
	}
}

// WithColor sets the base color from a 0xRRGGBB sRGB value.
func WithColor(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.params.Color = common.LinearHex(hex)
	}
}

// WithOpacity sets the opacity multiplier.
func WithOpacity(opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.params.Opacity = opacity
	}
}

// WithSpecular sets the specular color from a 0xRRGGBB sRGB value.
func WithSpecular(hex uint32) MaterialBuilderOption {
	return func(m *material) {
		m.params.Specular = common.LinearHex(hex)
	}
}

// WithShininess sets the Blinn-Phong exponent.
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.params.Shininess = shininess
	}
}

// WithBumpScale sets how strongly the bump map perturbs normals.
func WithBumpScale(scale float32) MaterialBuilderOption {
	return func(m *material) {
		m.params.BumpScale = scale
	}
}

// WithFresnel configures the rim glow.
//
// Parameters:
//   - rim: 0xRRGGBB sRGB color at grazing angles
//   - facing: 0xRRGGBB sRGB color where the surface faces the viewer
//   - bias, scale, power: f = bias + scale * (1 + dot(I, N))^power
//
// Returns:
//   - MaterialBuilderOption: a function that applies the fresnel terms to a material
func WithFresnel(rim, facing uint32, bias, scale, power float32) MaterialBuilderOption {
	return func(m *material) {
		m.params.RimColor = common.LinearHex(rim)
		m.params.FacingColor = common.LinearHex(facing)
		m.params.FresnelBias = bias
		m.params.FresnelScale = scale
		m.params.FresnelPower = power
	}
}

// WithSize sets the point sprite size.
func WithSize(size float32) MaterialBuilderOption {
	return func(m *material) {
		m.params.Size = size
	}
}

// WithTexture stages pixels for a texture role.
//
// Parameters:
//   - role: the texture role
//   - data: the decoded pixels
//
// Returns:
//   - MaterialBuilderOption: a function that stages the texture on a material
func WithTexture(role shader.AnnotationArg, data common.TextureStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.textures[role] = data
	}
}

// WithSampler sets the sampler configuration shared by every texture of the material.
func WithSampler(sampler common.SamplerStagingData) MaterialBuilderOption {
	return func(m *material) {
		m.sampler = sampler
	}
}

// WithBlendMode sets the color blend preset.
func WithBlendMode(mode pipeline.BlendMode) MaterialBuilderOption {
	return func(m *material) {
		m.blendMode = mode
	}
}

// WithTransparent turns depth writes off so layers behind still draw.
func WithTransparent(transparent bool) MaterialBuilderOption {
	return func(m *material) {
		m.depthWrite = !transparent
	}
}

// WithDepthCompare sets the depth comparison function.
func WithDepthCompare(compare wgpu.CompareFunction) MaterialBuilderOption {
	return func(m *material) {
		m.depthCompare = compare
	}
}

// WithCullMode sets which faces are culled.
func WithCullMode(mode wgpu.CullMode) MaterialBuilderOption {
	return func(m *material) {
		m.cullMode = mode
	}
}

// WithBindGroupProvider sets the provider for the material group's GPU resources.
func WithBindGroupProvider(provider bind_group_provider.BindGroupProvider) MaterialBuilderOption {
	return func(m *material) {
		m.bindGroupProvider = provider
	}
}
