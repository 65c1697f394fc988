package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const testSource = `//@oxy:include camera
//@oxy:include light
//@oxy:include model_data
//@oxy:include vertex

//@oxy:group 0 0 storage_uniform camera camera
//@oxy:group 0 1 storage_uniform sun light
//@oxy:group 1 0 storage_uniform object model_data

struct Params {
    color: vec3<f32>,
    opacity: f32,
    specular: vec3<f32>,
    shininess: f32,
    emissive: vec3<f32>,
    bumpScale: f32,
}

//@oxy:provider 2 0 material params
@group(2) @binding(0) var<uniform> params: Params;
//@oxy:provider 2 1 material color_map
@group(2) @binding(1) var colorMap: texture_2d<f32>;
//@oxy:provider 2 2 material map_sampler
@group(2) @binding(2) var mapSampler: sampler;

struct VertexOutput {
    @builtin(position) clipPosition: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

/* @fragment fn commented_out() {} */

@vertex
fn vs_main(in: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.clipPosition = camera.viewProj * object.model * vec4<f32>(in.position, 1.0);
    out.uv = in.uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(colorMap, mapSampler, in.uv) * params.opacity;
}
`

func TestNewShaderPanicsOnEmptySource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewShader with empty source did not panic")
		}
	}()
	NewShader("empty", ShaderTypeVertex, "")
}

func TestNewShaderPanicsOnBadAnnotation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewShader with a malformed annotation did not panic")
		}
	}()
	NewShader("bad", ShaderTypeVertex, "//@oxy:include nothing")
}

func TestEntryPoints(t *testing.T) {
	vs := NewShader("test_vs", ShaderTypeVertex, testSource)
	fs := NewShader("test_fs", ShaderTypeFragment, testSource)
	if vs.EntryPoint() != "vs_main" {
		t.Fatalf("vertex entry = %q", vs.EntryPoint())
	}
	if fs.EntryPoint() != "fs_main" {
		t.Fatalf("fragment entry = %q", fs.EntryPoint())
	}
	if vs.Module().Label != "test_vs" || vs.Module().WGSLDescriptor.Code != vs.Source() {
		t.Fatalf("module descriptor does not carry the expanded source")
	}
}

func TestVertexLayoutSkipsOutputStruct(t *testing.T) {
	vs := NewShader("test_vs", ShaderTypeVertex, testSource)
	layouts := vs.VertexLayouts()
	if len(layouts) != 1 {
		t.Fatalf("len(VertexLayouts()) = %d, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != 32 || l.StepMode != wgpu.VertexStepModeVertex {
		t.Fatalf("stride = %d step = %v, want 32 and per-vertex", l.ArrayStride, l.StepMode)
	}
	want := []wgpu.VertexAttribute{
		{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: wgpu.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
	}
	for i, a := range want {
		if l.Attributes[i] != a {
			t.Fatalf("attribute %d = %+v, want %+v", i, l.Attributes[i], a)
		}
	}

	fs := NewShader("test_fs", ShaderTypeFragment, testSource)
	if len(fs.VertexLayouts()) != 0 {
		t.Fatal("fragment shaders have no vertex layouts")
	}
}

func TestBindGroupReflection(t *testing.T) {
	fs := NewShader("test_fs", ShaderTypeFragment, testSource)

	frame := fs.BindGroupLayoutDescriptor(GroupFrame).Entries
	if len(frame) != 2 {
		t.Fatalf("frame group has %d entries, want 2", len(frame))
	}
	if frame[BindingCamera].Buffer.MinBindingSize != 208 {
		t.Fatalf("camera min size = %d, want 208", frame[BindingCamera].Buffer.MinBindingSize)
	}
	if frame[BindingLight].Buffer.MinBindingSize != 32 {
		t.Fatalf("light min size = %d, want 32", frame[BindingLight].Buffer.MinBindingSize)
	}
	if frame[0].Visibility != wgpu.ShaderStageFragment {
		t.Fatalf("visibility = %v, want fragment", frame[0].Visibility)
	}

	object := fs.BindGroupLayoutDescriptor(GroupObject).Entries
	if len(object) != 1 || object[0].Buffer.MinBindingSize != 128 {
		t.Fatalf("object group = %+v, want one 128 byte uniform", object)
	}

	mat := fs.BindGroupLayoutDescriptor(GroupMaterial).Entries
	if len(mat) != 3 {
		t.Fatalf("material group has %d entries, want 3", len(mat))
	}
	if mat[0].Buffer.Type != wgpu.BufferBindingTypeUniform || mat[0].Buffer.MinBindingSize != 48 {
		t.Fatalf("params entry = %+v, want a 48 byte uniform", mat[0].Buffer)
	}
	if mat[1].Texture.ViewDimension != wgpu.TextureViewDimension2D || mat[1].Texture.SampleType != wgpu.TextureSampleTypeFloat {
		t.Fatalf("color map entry = %+v", mat[1].Texture)
	}
	if mat[2].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Fatalf("sampler entry = %+v", mat[2].Sampler)
	}
}

func TestBindingLookups(t *testing.T) {
	s := NewShader("test_fs", ShaderTypeFragment, testSource)

	if got := s.BindGroupVarName(GroupFrame, BindingLight); got != "sun" {
		t.Fatalf("BindGroupVarName = %q, want sun", got)
	}
	if b, ok := s.BindGroupFromVarName(GroupMaterial, "mapSampler"); !ok || b != 2 {
		t.Fatalf("BindGroupFromVarName = %d, %v", b, ok)
	}
	if _, ok := s.BindGroupFromVarName(GroupMaterial, "missing"); ok {
		t.Fatal("found a variable that is not declared")
	}
	if b, ok := s.BindingForRole(GroupMaterial, AnnotationArgColorMap); !ok || b != 1 {
		t.Fatalf("BindingForRole(color_map) = %d, %v", b, ok)
	}
	if _, ok := s.BindingForRole(GroupMaterial, AnnotationArgBumpMap); ok {
		t.Fatal("found a role that is not tagged")
	}
	if len(s.Declarations()) != 6 {
		t.Fatalf("len(Declarations()) = %d, want 6", len(s.Declarations()))
	}
}

func TestStripComments(t *testing.T) {
	in := "a /* b /* nested */ c */ d // tail\ne"
	if got := stripComments(in); got != "a  d \ne" {
		t.Fatalf("stripComments = %q", got)
	}
}

func TestStructLayoutResolvesNestedStructs(t *testing.T) {
	structs := parseStructBlocks(`
struct Outer { inner: Inner, scale: f32, }
struct Inner { v: vec3<f32>, }
`)
	layouts := structLayouts(structs)
	if l := layouts["Inner"]; l.size != 16 || l.align != 16 {
		t.Fatalf("Inner = %+v, want size 16 align 16", l)
	}
	if l := layouts["Outer"]; l.size != 32 || l.align != 16 {
		t.Fatalf("Outer = %+v, want size 32 align 16", l)
	}
}
