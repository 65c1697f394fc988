package light

import "github.com/Carmen-Shannon/oxy-earth/common"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position  [3]float32
	color     [3]float32
	intensity float32
	enabled   bool
}

// Light is a directional light. Like a sun it has no falloff: it is placed at a position and shines
// from there toward the origin, so only the direction of the position matters.
type Light interface {
	// Position returns the point the light shines from.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Direction returns the normalized vector from the origin toward the light,
	// the L vector used by the lighting equations. Zero if the position is at the origin.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Color returns the linear RGB color of the light.
	Color() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	Intensity() float32

	// Enabled reports whether the light contributes to shading. A disabled light uploads zero intensity.
	Enabled() bool

	// SetPosition moves the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	SetColor(r, g, b float32)
	SetIntensity(intensity float32)
	SetEnabled(enabled bool)

	// GPU returns the light in its uniform buffer layout.
	//
	// Returns:
	//   - GPULight: the marshalable light
	GPU() GPULight
}

var _ Light = &lightImpl{}

// NewLight creates a white, enabled light of intensity 1 shining straight down, with any options applied.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		position:  [3]float32{0, 1, 0},
		color:     [3]float32{1, 1, 1},
		intensity: 1,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Direction() [3]float32 {
	x, y, z := common.Normalize3(l.position[0], l.position[1], l.position[2])
	return [3]float32{x, y, z}
}

func (l *lightImpl) Color() [3]float32 {
	return l.color
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}

func (l *lightImpl) SetColor(r, g, b float32) {
	l.color = [3]float32{r, g, b}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}

func (l *lightImpl) GPU() GPULight {
	g := GPULight{
		Direction: l.Direction(),
		Color:     l.color,
	}
	if l.enabled {
		g.Intensity = l.intensity
	}
	return g
}
