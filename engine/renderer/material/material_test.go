package material

import (
	"reflect"
	"testing"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

var allKinds = []Kind{KindPhong, KindBasic, KindStandard, KindFresnel, KindPoints}

type fakeUploader struct {
	pipelines []string
	textures  map[int]common.TextureStagingData
	samplers  []int
	groups    int
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{textures: make(map[int]common.TextureStagingData)}
}

func (f *fakeUploader) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	for _, p := range pipelines {
		f.pipelines = append(f.pipelines, p.PipelineKey())
	}
	return nil
}

func (f *fakeUploader) InitTextureView(_ bind_group_provider.BindGroupProvider, binding int, data common.TextureStagingData) error {
	f.textures[binding] = data
	return nil
}

func (f *fakeUploader) InitSampler(_ bind_group_provider.BindGroupProvider, binding int, _ common.SamplerStagingData) error {
	f.samplers = append(f.samplers, binding)
	return nil
}

func (f *fakeUploader) InitBindGroup(provider bind_group_provider.BindGroupProvider, _ wgpu.BindGroupLayoutDescriptor) error {
	f.groups++
	provider.SetBindGroup(&wgpu.BindGroup{})
	return nil
}

func TestParamsMatchReflectedUniformSize(t *testing.T) {
	for _, kind := range allKinds {
		_, fs := kind.Shaders()
		binding, ok := fs.BindingForRole(shader.GroupMaterial, shader.AnnotationArgParams)
		if !ok {
			t.Fatalf("%s: no params binding", kind)
		}
		var size uint64
		for _, e := range fs.BindGroupLayoutDescriptor(shader.GroupMaterial).Entries {
			if int(e.Binding) == binding {
				size = e.Buffer.MinBindingSize
			}
		}
		if got := uint64(len(DefaultParams().marshal(kind))); got != size {
			t.Errorf("%s: marshaled %d bytes, shader expects %d", kind, got, size)
		}
	}
}

func TestSharedGroupsAreIdenticalAcrossKinds(t *testing.T) {
	ref := NewMaterial(KindPhong).Pipeline().BindGroupLayouts()
	for _, kind := range allKinds[1:] {
		layouts := NewMaterial(kind).Pipeline().BindGroupLayouts()
		for _, g := range []int{shader.GroupFrame, shader.GroupObject} {
			if !reflect.DeepEqual(ref[g], layouts[g]) {
				t.Errorf("%s: group %d differs from phong", kind, g)
			}
		}
	}
}

func TestTextureRolesHaveBindings(t *testing.T) {
	for _, kind := range allKinds {
		_, fs := kind.Shaders()
		for _, role := range kind.TextureRoles() {
			if _, ok := fs.BindingForRole(shader.GroupMaterial, role); !ok {
				t.Errorf("%s: no binding for %s", kind, role)
			}
		}
	}
}

func TestInitGPUUploadsTexturesByRole(t *testing.T) {
	color := common.SolidTexture("map", 10, 20, 30, 255)
	m := NewMaterial(KindPhong, WithTexture(shader.AnnotationArgColorMap, color))
	u := newFakeUploader()
	if err := m.InitGPU(u); err != nil {
		t.Fatalf("InitGPU() error = %v", err)
	}

	_, fs := KindPhong.Shaders()
	colorBinding, _ := fs.BindingForRole(shader.GroupMaterial, shader.AnnotationArgColorMap)
	bumpBinding, _ := fs.BindingForRole(shader.GroupMaterial, shader.AnnotationArgBumpMap)
	if got := u.textures[colorBinding]; got.Label != "map" {
		t.Fatalf("color binding got %q", got.Label)
	}
	if got := u.textures[bumpBinding]; got.Pixels[0] != 0 {
		t.Fatalf("missing bump map should default to black, got %v", got.Pixels)
	}
	if len(u.textures) != 3 || len(u.samplers) != 1 || u.groups != 1 {
		t.Fatalf("textures=%d samplers=%d groups=%d", len(u.textures), len(u.samplers), u.groups)
	}

	if err := m.InitGPU(u); err != nil {
		t.Fatalf("second InitGPU() error = %v", err)
	}
	if u.groups != 1 {
		t.Fatalf("second InitGPU rebuilt the bind group")
	}
}

func TestUntexturedKindsSkipSampler(t *testing.T) {
	u := newFakeUploader()
	if err := NewMaterial(KindFresnel).InitGPU(u); err != nil {
		t.Fatalf("InitGPU() error = %v", err)
	}
	if len(u.textures) != 0 || len(u.samplers) != 0 || u.groups != 1 {
		t.Fatalf("textures=%d samplers=%d groups=%d", len(u.textures), len(u.samplers), u.groups)
	}
}

func TestParamsWrite(t *testing.T) {
	m := NewMaterial(KindBasic)
	if _, ok := m.ParamsWrite(); ok {
		t.Fatal("ParamsWrite before InitGPU should report nothing")
	}
	if err := m.InitGPU(newFakeUploader()); err != nil {
		t.Fatalf("InitGPU() error = %v", err)
	}
	w, ok := m.ParamsWrite()
	if !ok || len(w.Data) != 16 || w.Provider != m.BindGroupProvider() {
		t.Fatalf("ParamsWrite() = %+v, %v", w, ok)
	}
	if _, ok := m.ParamsWrite(); ok {
		t.Fatal("ParamsWrite should clear the pending upload")
	}
	p := m.Params()
	p.Opacity = 0.5
	m.SetParams(p)
	if _, ok := m.ParamsWrite(); !ok {
		t.Fatal("SetParams should schedule an upload")
	}
}

func TestPipelineKey(t *testing.T) {
	clouds := NewMaterial(KindStandard, WithBlendMode(pipeline.BlendAdditive), WithTransparent(true))
	if got := clouds.PipelineKey(); got != "standard/additive/nowrite" {
		t.Fatalf("PipelineKey() = %q", got)
	}
	lights := NewMaterial(KindBasic, WithBlendMode(pipeline.BlendAdditive), WithDepthCompare(wgpu.CompareFunctionLessEqual))
	if lights.PipelineKey() == NewMaterial(KindBasic, WithBlendMode(pipeline.BlendAdditive)).PipelineKey() {
		t.Fatal("depth compare should be part of the key")
	}
	if !clouds.Transparent() || lights.Transparent() {
		t.Fatal("Transparent() mismatch")
	}
}

func TestFresnelDefaults(t *testing.T) {
	p := DefaultParams()
	if p.FresnelBias != 0.1 || p.FresnelScale != 1 || p.FresnelPower != 4 {
		t.Fatalf("fresnel terms = %v %v %v", p.FresnelBias, p.FresnelScale, p.FresnelPower)
	}
	if p.RimColor[0] != 0 || p.RimColor[2] != 1 {
		t.Fatalf("RimColor = %v", p.RimColor)
	}
}
