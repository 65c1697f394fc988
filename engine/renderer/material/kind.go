package material

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/shader"
)

//go:embed assets/phong.wgsl
var phongSource string

//go:embed assets/basic.wgsl
var basicSource string

//go:embed assets/standard.wgsl
var standardSource string

//go:embed assets/fresnel.wgsl
var fresnelSource string

//go:embed assets/points.wgsl
var pointsSource string

// Kind selects the shading model of a Material.
type Kind int

const (
	// KindPhong is lit Blinn-Phong with color, specular and bump maps.
	KindPhong Kind = iota

	// KindBasic is unlit, the color map is emitted directly.
	KindBasic

	// KindStandard is lit Lambert with a color map and an alpha map read from the green channel.
	KindStandard

	// KindFresnel is an unlit view-angle rim glow without textures.
	KindFresnel

	// KindPoints draws point sprites with per-vertex colors.
	KindPoints
)

func (k Kind) String() string {
	switch k {
	case KindPhong:
		return "phong"
	case KindBasic:
		return "basic"
	case KindStandard:
		return "standard"
	case KindFresnel:
		return "fresnel"
	case KindPoints:
		return "points"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TextureRoles lists the texture bindings a kind samples, in binding order.
//
// Returns:
//   - []shader.AnnotationArg: the roles, empty for untextured kinds
func (k Kind) TextureRoles() []shader.AnnotationArg {
	switch k {
	case KindPhong:
		return []shader.AnnotationArg{shader.AnnotationArgColorMap, shader.AnnotationArgSpecularMap, shader.AnnotationArgBumpMap}
	case KindBasic:
		return []shader.AnnotationArg{shader.AnnotationArgColorMap}
	case KindStandard:
		return []shader.AnnotationArg{shader.AnnotationArgColorMap, shader.AnnotationArgAlphaMap}
	}
	return nil
}

// ToneMapped reports whether the kind's output passes through the ACES filmic curve.
func (k Kind) ToneMapped() bool {
	return k != KindFresnel
}

func (k Kind) source() string {
	switch k {
	case KindPhong:
		return phongSource
	case KindBasic:
		return basicSource
	case KindStandard:
		return standardSource
	case KindFresnel:
		return fresnelSource
	case KindPoints:
		return pointsSource
	}
	return ""
}

type shaderPair struct {
	vertex, fragment shader.Shader
}

var (
	shaderCacheMu sync.Mutex
	shaderCache   = map[Kind]shaderPair{}
)

// Shaders returns the vertex and fragment stages of a kind. Both stages are reflected from the
// same WGSL module, so their frame and object groups are identical across kinds. Shaders are
// built once per kind and shared.
//
// Returns:
//   - shader.Shader: the vertex stage
//   - shader.Shader: the fragment stage
func (k Kind) Shaders() (shader.Shader, shader.Shader) {
	shaderCacheMu.Lock()
	defer shaderCacheMu.Unlock()
	if pair, ok := shaderCache[k]; ok {
		return pair.vertex, pair.fragment
	}
	src := k.source()
	pair := shaderPair{
		vertex:   shader.NewShader(k.String()+"_vs", shader.ShaderTypeVertex, src),
		fragment: shader.NewShader(k.String()+"_fs", shader.ShaderTypeFragment, src),
	}
	shaderCache[k] = pair
	return pair.vertex, pair.fragment
}
