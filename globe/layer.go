package globe

import (
	"math"

	"github.com/Carmen-Shannon/oxy-earth/engine/scene"
)

// Per-frame spin increments in radians about each node's own Y axis.
const (
	SurfaceIncrement float32 = 0.002
	LightsIncrement  float32 = 0.002
	CloudsIncrement  float32 = 0.0023
	GlowIncrement    float32 = 0.002
	StarsIncrement   float32 = -0.0002
)

// Layer is one concentric shell of the planet: a node under the pivot, its radial scale, and
// how far it spins per frame.
type Layer struct {
	Name      string
	Node      scene.Node
	Scale     float32
	Increment float32
}

// Layers returns the planet layers of a composition in draw order.
func (c Composition) Layers() []Layer {
	return []Layer{
		{Name: "Surface", Node: c.Surface, Scale: 1, Increment: SurfaceIncrement},
		{Name: "Lights", Node: c.Lights, Scale: 1, Increment: LightsIncrement},
		{Name: "Clouds", Node: c.Clouds, Scale: 1.003, Increment: CloudsIncrement},
		{Name: "Glow", Node: c.Glow, Scale: 1.01, Increment: GlowIncrement},
	}
}

// spin adds delta to a node's Y rotation, keeping the angle within (-2π, 2π) so float32
// precision does not degrade over long runs.
func spin(n scene.Node, delta float32) {
	r := n.Rotation()
	y := float32(math.Mod(float64(r[1]+delta), 2*math.Pi))
	n.SetRotation(r[0], y, r[2])
}
