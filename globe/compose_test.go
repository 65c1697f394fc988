package globe

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
	"github.com/Carmen-Shannon/oxy-earth/engine/model"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
)

func TestComposeHierarchy(t *testing.T) {
	comp := Compose(camera.NewCamera(), Textures{}, WithStarCount(10))

	if got := comp.Pivot.Rotation(); got != [3]float32{0, 0, AxialTilt} {
		t.Errorf("pivot rotation = %v", got)
	}
	if !near(float64(AxialTilt), -23.4*math.Pi/180, 1e-7) {
		t.Errorf("tilt = %v", AxialTilt)
	}

	children := comp.Pivot.Children()
	want := []string{"Surface", "Lights", "Clouds", "Glow"}
	if len(children) != len(want) {
		t.Fatalf("pivot has %d children", len(children))
	}
	for i, c := range children {
		if c.Name() != want[i] {
			t.Errorf("child %d = %s, want %s", i, c.Name(), want[i])
		}
		if c.Model() != comp.Geometry {
			t.Errorf("%s does not share the geometry", c.Name())
		}
	}

	if comp.Stars.Parent() != comp.Scene.Root() {
		t.Error("starfield is not on the scene root")
	}
	if comp.Pivot.Parent() != comp.Scene.Root() {
		t.Error("pivot is not on the scene root")
	}
	if got := comp.Stars.Model().VertexCount(); got != 10*4 {
		t.Errorf("starfield vertices = %d, want 40", got)
	}
}

func TestComposeDefaultGeometry(t *testing.T) {
	comp := Compose(camera.NewCamera(), Textures{}, WithStarCount(0))
	if got, want := comp.Geometry.VertexCount(), model.IcosahedronVertexCount(GeometryDetail); got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if r := comp.Geometry.BoundingRadius(); !near(float64(r), 1, 1e-5) {
		t.Errorf("radius = %v, want 1", r)
	}
}

func TestComposeLayerTable(t *testing.T) {
	comp := Compose(camera.NewCamera(), Textures{}, WithDetail(0), WithStarCount(0))
	tests := []struct {
		name      string
		scale     float32
		increment float32
	}{
		{"Surface", 1, 0.002},
		{"Lights", 1, 0.002},
		{"Clouds", 1.003, 0.0023},
		{"Glow", 1.01, 0.002},
	}
	layers := comp.Layers()
	for i, tt := range tests {
		l := layers[i]
		if l.Name != tt.name || l.Scale != tt.scale || l.Increment != tt.increment {
			t.Errorf("layer %d = %+v, want %+v", i, l, tt)
		}
		if got := l.Node.Scale(); got != [3]float32{tt.scale, tt.scale, tt.scale} {
			t.Errorf("%s node scale = %v, want %v", tt.name, got, tt.scale)
		}
	}
}

func TestComposeMaterials(t *testing.T) {
	comp := Compose(camera.NewCamera(), Textures{}, WithDetail(0), WithStarCount(0))
	tests := []struct {
		name        string
		kind        material.Kind
		blend       pipeline.BlendMode
		transparent bool
	}{
		{"Surface", material.KindPhong, pipeline.BlendNone, false},
		{"Lights", material.KindBasic, pipeline.BlendAdditive, false},
		{"Clouds", material.KindStandard, pipeline.BlendAdditive, true},
		{"Glow", material.KindFresnel, pipeline.BlendAdditive, true},
	}
	for i, tt := range tests {
		m := comp.Layers()[i].Node.Material()
		if m.Kind() != tt.kind || m.BlendMode() != tt.blend || m.Transparent() != tt.transparent {
			t.Errorf("%s: kind %v blend %v transparent %v", tt.name, m.Kind(), m.BlendMode(), m.Transparent())
		}
	}

	surface := comp.Surface.Material().Params()
	if surface.BumpScale != BumpScale || surface.Shininess != Shininess {
		t.Errorf("surface params = %+v", surface)
	}
	if clouds := comp.Clouds.Material().Params(); clouds.Opacity != CloudOpacity {
		t.Errorf("cloud opacity = %v", clouds.Opacity)
	}
	glow := comp.Glow.Material().Params()
	if glow.RimColor != common.LinearHex(RimColor) || glow.FresnelBias != FresnelBias || glow.FresnelPower != FresnelPower {
		t.Errorf("glow params = %+v", glow)
	}
}

func TestComposeDrawOrder(t *testing.T) {
	comp := Compose(camera.NewCamera(), Textures{}, WithDetail(0), WithStarCount(4))
	var names []string
	for _, n := range comp.Scene.Meshes() {
		names = append(names, n.Name())
	}
	want := []string{"Stars", "Surface", "Lights", "Clouds", "Glow"}
	if len(names) != len(want) {
		t.Fatalf("draw order = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("draw order = %v, want %v", names, want)
		}
	}
}

func TestComposeTextures(t *testing.T) {
	tex := Textures{
		Map:        common.SolidTexture("map", 1, 2, 3, 255),
		Specular:   common.SolidTexture("spec", 4, 5, 6, 255),
		Bump:       common.SolidTexture("bump", 7, 8, 9, 255),
		Lights:     common.SolidTexture("lights", 10, 11, 12, 255),
		Clouds:     common.SolidTexture("clouds", 13, 14, 15, 255),
		CloudAlpha: common.SolidTexture("alpha", 16, 17, 18, 255),
	}
	comp := Compose(camera.NewCamera(), tex, WithDetail(0), WithStarCount(0))

	tests := []struct {
		mat   material.Material
		role  shader.AnnotationArg
		label string
	}{
		{comp.Surface.Material(), shader.AnnotationArgColorMap, "map"},
		{comp.Surface.Material(), shader.AnnotationArgSpecularMap, "spec"},
		{comp.Surface.Material(), shader.AnnotationArgBumpMap, "bump"},
		{comp.Lights.Material(), shader.AnnotationArgColorMap, "lights"},
		{comp.Clouds.Material(), shader.AnnotationArgColorMap, "clouds"},
		{comp.Clouds.Material(), shader.AnnotationArgAlphaMap, "alpha"},
	}
	for _, tt := range tests {
		got, ok := tt.mat.Texture(tt.role)
		if !ok || got.Label != tt.label {
			t.Errorf("%s %s = %q, want %q", tt.mat.Name(), tt.role, got.Label, tt.label)
		}
	}
}

func TestComposeSun(t *testing.T) {
	comp := Compose(camera.NewCamera(), Textures{}, WithDetail(0), WithStarCount(0))
	if comp.Sun.Position() != SunPosition {
		t.Errorf("sun position = %v", comp.Sun.Position())
	}
	if comp.Sun.Intensity() != SunIntensity {
		t.Errorf("sun intensity = %v", comp.Sun.Intensity())
	}
	if comp.Sun.Color() != [3]float32{1, 1, 1} {
		t.Errorf("sun color = %v", comp.Sun.Color())
	}
	if comp.Scene.Light() != comp.Sun {
		t.Error("scene is lit by another light")
	}

	moved := Compose(camera.NewCamera(), Textures{}, WithDetail(0), WithStarCount(0), WithSunPosition(1, 2, 3))
	if moved.Sun.Position() != [3]float32{1, 2, 3} {
		t.Errorf("WithSunPosition ignored: %v", moved.Sun.Position())
	}
}
