package scene

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
	"github.com/Carmen-Shannon/oxy-earth/engine/light"
	"github.com/Carmen-Shannon/oxy-earth/engine/model"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

type draw struct {
	key    string
	mesh   string
	groups []string
}

type fakeRenderer struct {
	meshUploads int
	bindGroups  []string
	writes      []bind_group_provider.BufferWrite
	draws       []draw
	drawErr     error
}

func (f *fakeRenderer) RegisterPipelines(...pipeline.Pipeline) error { return nil }

func (f *fakeRenderer) InitTextureView(bind_group_provider.BindGroupProvider, int, common.TextureStagingData) error {
	return nil
}

func (f *fakeRenderer) InitSampler(bind_group_provider.BindGroupProvider, int, common.SamplerStagingData) error {
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, _ wgpu.BindGroupLayoutDescriptor) error {
	f.bindGroups = append(f.bindGroups, provider.Label())
	provider.SetBindGroup(&wgpu.BindGroup{})
	return nil
}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, _, _ []byte, indexCount int) error {
	f.meshUploads++
	provider.SetVertexBuffer(&wgpu.Buffer{})
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.writes = append(f.writes, writes...)
}

func (f *fakeRenderer) DrawCall(key string, mesh bind_group_provider.BindGroupProvider, _ uint32, groups []bind_group_provider.BindGroupProvider) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	d := draw{key: key, mesh: mesh.Label()}
	for _, g := range groups {
		d.groups = append(d.groups, g.Label())
	}
	f.draws = append(f.draws, d)
	return nil
}

func newTestScene(nodes ...Node) (Scene, *fakeRenderer) {
	r := &fakeRenderer{}
	cam := camera.NewCamera(camera.WithController(camera.NewOrbitController()))
	sun := light.NewLight()
	return NewScene("test", cam, sun, WithRenderer(r), WithNodes(nodes...)), r
}

func TestMeshesOrderOpaqueBeforeTransparent(t *testing.T) {
	sphere := model.NewIcosahedron("sphere", 1, 1)
	glow := NewMesh("glow", sphere, material.NewMaterial(material.KindFresnel, material.WithTransparent(true)))
	earth := NewMesh("earth", sphere, material.NewMaterial(material.KindPhong))
	lights := NewMesh("lights", sphere, material.NewMaterial(material.KindBasic))
	tilt := NewGroup("tilt", WithChildren(glow, earth, lights))

	s, _ := newTestScene(tilt)
	var names []string
	for _, n := range s.Meshes() {
		names = append(names, n.Name())
	}
	want := []string{"earth", "lights", "glow"}
	if len(names) != len(want) {
		t.Fatalf("meshes = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("meshes = %v, want %v", names, want)
		}
	}
}

func TestMeshesSkipsHiddenSubtree(t *testing.T) {
	sphere := model.NewIcosahedron("sphere", 1, 0)
	earth := NewMesh("earth", sphere, material.NewMaterial(material.KindPhong))
	tilt := NewGroup("tilt", WithChildren(earth))
	s, _ := newTestScene(tilt)

	tilt.SetVisible(false)
	if got := len(s.Meshes()); got != 0 {
		t.Errorf("hidden group still yields %d meshes", got)
	}
}

func TestPrepareUploadsSharedMeshOnce(t *testing.T) {
	sphere := model.NewIcosahedron("sphere", 1, 1)
	a := NewMesh("a", sphere, material.NewMaterial(material.KindPhong))
	b := NewMesh("b", sphere, material.NewMaterial(material.KindBasic))
	s, r := newTestScene(a, b)

	if err := s.Prepare(); err != nil {
		t.Fatal(err)
	}
	if r.meshUploads != 1 {
		t.Errorf("mesh uploads = %d, want 1", r.meshUploads)
	}
	if err := s.Prepare(); err != nil {
		t.Fatal(err)
	}
	if r.meshUploads != 1 {
		t.Errorf("second Prepare re-uploaded the mesh")
	}
}

func TestPrepareWritesFrameAndObjects(t *testing.T) {
	sphere := model.NewIcosahedron("sphere", 1, 0)
	earth := NewMesh("earth", sphere, material.NewMaterial(material.KindPhong), WithPosition(0, 1, 0))
	s, r := newTestScene(earth)

	if err := s.Prepare(); err != nil {
		t.Fatal(err)
	}

	frame := s.Camera().BindGroupProvider()
	var camWrite, sunWrite, objWrite, paramsWrite bool
	for _, w := range r.writes {
		switch {
		case w.Provider == frame && w.Binding == shader.BindingCamera:
			camWrite = true
		case w.Provider == frame && w.Binding == shader.BindingLight:
			sunWrite = true
		case w.Provider == earth.BindGroupProvider():
			objWrite = true
			var data model.GPUModelData
			if len(w.Data) != len(data.Marshal()) {
				t.Errorf("object write is %d bytes", len(w.Data))
			}
		case w.Provider == earth.Material().BindGroupProvider():
			paramsWrite = true
		}
	}
	if !camWrite || !sunWrite || !objWrite || !paramsWrite {
		t.Errorf("writes: camera %v sun %v object %v params %v", camWrite, sunWrite, objWrite, paramsWrite)
	}
}

func TestDrawCallsBindFrameObjectMaterial(t *testing.T) {
	sphere := model.NewIcosahedron("sphere", 1, 0)
	mat := material.NewMaterial(material.KindPhong, material.WithName("earth"))
	earth := NewMesh("earth", sphere, mat)
	s, r := newTestScene(earth)

	if err := s.Prepare(); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawCalls(); err != nil {
		t.Fatal(err)
	}
	if len(r.draws) != 1 {
		t.Fatalf("draws = %d, want 1", len(r.draws))
	}
	d := r.draws[0]
	if d.key != mat.PipelineKey() {
		t.Errorf("pipeline key = %q, want %q", d.key, mat.PipelineKey())
	}
	want := []string{
		s.Camera().BindGroupProvider().Label(),
		earth.BindGroupProvider().Label(),
		mat.BindGroupProvider().Label(),
	}
	for i := range want {
		if d.groups[i] != want[i] {
			t.Errorf("group %d = %q, want %q", i, d.groups[i], want[i])
		}
	}
}

func TestDrawCallsPropagatesError(t *testing.T) {
	sphere := model.NewIcosahedron("sphere", 1, 0)
	s, r := newTestScene(NewMesh("earth", sphere, material.NewMaterial(material.KindPhong)))
	if err := s.Prepare(); err != nil {
		t.Fatal(err)
	}
	r.drawErr = errors.New("lost device")
	if err := s.DrawCalls(); !errors.Is(err, r.drawErr) {
		t.Errorf("err = %v, want wrapped %v", err, r.drawErr)
	}
}

func TestPrepareWithoutRenderer(t *testing.T) {
	cam := camera.NewCamera()
	s := NewScene("bare", cam, light.NewLight())
	if err := s.Prepare(); err == nil {
		t.Error("Prepare without a renderer succeeded")
	}
}
