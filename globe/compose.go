package globe

import (
	"math"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
	"github.com/Carmen-Shannon/oxy-earth/engine/light"
	"github.com/Carmen-Shannon/oxy-earth/engine/model"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-earth/engine/scene"
	"github.com/cogentcore/webgpu/wgpu"
)

const (
	// AxialTilt is the Earth's obliquity applied to the pivot about Z.
	AxialTilt float32 = -23.4 * math.Pi / 180

	// GeometryRadius and GeometryDetail shape the icosphere every planet layer shares.
	GeometryRadius float32 = 1
	GeometryDetail         = 12

	// StarCount is the default number of background stars.
	StarCount = 2000

	// StarSize is the point sprite size in world units.
	StarSize float32 = 0.2

	// SunIntensity is the directional light multiplier.
	SunIntensity float32 = 2

	BumpScale    float32 = 0.04
	Shininess    float32 = 30
	CloudOpacity float32 = 0.8

	SpecularColor uint32 = 0x111111
	RimColor      uint32 = 0x0088ff
	FacingColor   uint32 = 0x000000
	FresnelBias   float32 = 0.1
	FresnelScale  float32 = 1
	FresnelPower  float32 = 4
)

// SunPosition is where the fixed sun shines from.
var SunPosition = [3]float32{-2, 0.5, 1.5}

// Textures holds the six maps the planet layers sample. An empty field renders with the
// material's neutral default for that role.
type Textures struct {
	Map        common.TextureStagingData
	Specular   common.TextureStagingData
	Bump       common.TextureStagingData
	Lights     common.TextureStagingData
	Clouds     common.TextureStagingData
	CloudAlpha common.TextureStagingData
}

// Composition is the scene graph built by Compose with direct handles to the nodes the
// render loop animates.
type Composition struct {
	Scene    scene.Scene
	Camera   camera.Camera
	Sun      light.Light
	Geometry model.Model

	// Pivot carries the axial tilt. The four planet layers are its children.
	Pivot scene.Node

	Surface scene.Node
	Lights  scene.Node
	Clouds  scene.Node
	Glow    scene.Node

	// Stars hangs from the scene root, outside the pivot.
	Stars scene.Node
}

type composeConfig struct {
	detail    int
	starCount int
	seed      uint64
	sunPos    [3]float32
}

// ComposeOption is a functional option for Compose.
type ComposeOption func(c *composeConfig)

// WithDetail sets the icosphere subdivision level.
func WithDetail(detail int) ComposeOption {
	return func(c *composeConfig) {
		c.detail = detail
	}
}

// WithStarCount sets the number of background stars.
func WithStarCount(n int) ComposeOption {
	return func(c *composeConfig) {
		c.starCount = n
	}
}

// WithSeed makes the starfield reproducible.
func WithSeed(seed uint64) ComposeOption {
	return func(c *composeConfig) {
		c.seed = seed
	}
}

// WithSunPosition moves the sun.
func WithSunPosition(x, y, z float32) ComposeOption {
	return func(c *composeConfig) {
		c.sunPos = [3]float32{x, y, z}
	}
}

// Compose builds the Earth scene: a tilted pivot holding the surface, night lights, clouds and
// glow layers on one shared icosphere, plus the starfield and the sun on the root.
//
// Parameters:
//   - cam: the camera the scene is viewed through
//   - textures: the decoded maps
//   - options: variadic list of ComposeOption functions
//
// Returns:
//   - Composition: the scene and its animated nodes
func Compose(cam camera.Camera, textures Textures, options ...ComposeOption) Composition {
	cfg := composeConfig{
		detail:    GeometryDetail,
		starCount: StarCount,
		sunPos:    SunPosition,
	}
	for _, opt := range options {
		opt(&cfg)
	}

	geometry := model.NewIcosahedron("Earth", GeometryRadius, cfg.detail)

	surface := scene.NewMesh("Surface", geometry, material.NewMaterial(material.KindPhong,
		material.WithName("Surface"),
		material.WithTexture(shader.AnnotationArgColorMap, textures.Map),
		material.WithTexture(shader.AnnotationArgSpecularMap, textures.Specular),
		material.WithTexture(shader.AnnotationArgBumpMap, textures.Bump),
		material.WithSpecular(SpecularColor),
		material.WithShininess(Shininess),
		material.WithBumpScale(BumpScale),
		material.WithSampler(globeSampler),
	))

	// Same sphere as the surface, so the depth test has to pass on equal depth.
	lights := scene.NewMesh("Lights", geometry, material.NewMaterial(material.KindBasic,
		material.WithName("Lights"),
		material.WithTexture(shader.AnnotationArgColorMap, textures.Lights),
		material.WithBlendMode(pipeline.BlendAdditive),
		material.WithDepthCompare(wgpu.CompareFunctionLessEqual),
		material.WithSampler(globeSampler),
	))

	clouds := scene.NewMesh("Clouds", geometry, material.NewMaterial(material.KindStandard,
		material.WithName("Clouds"),
		material.WithTexture(shader.AnnotationArgColorMap, textures.Clouds),
		material.WithTexture(shader.AnnotationArgAlphaMap, textures.CloudAlpha),
		material.WithOpacity(CloudOpacity),
		material.WithTransparent(true),
		material.WithBlendMode(pipeline.BlendAdditive),
		material.WithDepthCompare(wgpu.CompareFunctionLessEqual),
		material.WithSampler(globeSampler),
	), scene.WithScalar(1.003))

	glow := scene.NewMesh("Glow", geometry, material.NewMaterial(material.KindFresnel,
		material.WithName("Glow"),
		material.WithFresnel(RimColor, FacingColor, FresnelBias, FresnelScale, FresnelPower),
		material.WithTransparent(true),
		material.WithBlendMode(pipeline.BlendAdditive),
	), scene.WithScalar(1.01))

	pivot := scene.NewGroup("Pivot",
		scene.WithRotation(0, 0, AxialTilt),
		scene.WithChildren(surface, lights, clouds, glow),
	)

	stars := scene.NewMesh("Stars",
		model.NewPointCloud("Stars", model.Starfield(cfg.starCount, cfg.seed)),
		material.NewMaterial(material.KindPoints, material.WithName("Stars"), material.WithSize(StarSize)),
	)

	sun := light.NewLight(
		light.WithHexColor(0xffffff),
		light.WithIntensity(SunIntensity),
		light.WithPosition(cfg.sunPos[0], cfg.sunPos[1], cfg.sunPos[2]),
	)

	return Composition{
		Scene:    scene.NewScene("Earth", cam, sun, scene.WithNodes(stars, pivot)),
		Camera:   cam,
		Sun:      sun,
		Geometry: geometry,
		Pivot:    pivot,
		Surface:  surface,
		Lights:   lights,
		Clouds:   clouds,
		Glow:     glow,
		Stars:    stars,
	}
}

// globeSampler wraps longitude and clamps latitude so the poles do not bleed into each other.
var globeSampler = common.SamplerStagingData{
	AddressModeU:  wgpu.AddressModeRepeat,
	AddressModeV:  wgpu.AddressModeClampToEdge,
	AddressModeW:  wgpu.AddressModeClampToEdge,
	MagFilter:     wgpu.FilterModeLinear,
	MinFilter:     wgpu.FilterModeLinear,
	MipmapFilter:  wgpu.MipmapFilterModeLinear,
	LodMaxClamp:   32,
	MaxAnisotropy: 1,
}
