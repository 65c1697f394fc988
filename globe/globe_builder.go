package globe

import (
	"time"

	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
)

// GlobeBuilderOption is a functional option for configuring a Globe.
type GlobeBuilderOption func(g *globe)

// WithViewport sets the initial viewport size in pixels, used by Start before any resize
// arrives. Pass the same units Resize will receive, typically the window's framebuffer size.
func WithViewport(width, height int) GlobeBuilderOption {
	return func(g *globe) {
		g.width, g.height = width, height
	}
}

// WithContentScale makes framing use logical height: viewport pixels divided by scale().
// Viewport sizes stay in pixels for the surface. Without it pixels are framed directly.
//
// Parameters:
//   - scale: reports the current pixels per logical unit, e.g. Window.ContentScale
func WithContentScale(scale func() float32) GlobeBuilderOption {
	return func(g *globe) {
		g.contentScale = scale
	}
}

// WithFramingPolicy replaces camera.DefaultFramingPolicy.
func WithFramingPolicy(policy camera.FramingPolicy) GlobeBuilderOption {
	return func(g *globe) {
		g.framing = policy
	}
}

// WithRealtimeSun places the sun where it actually is relative to the Earth at now(), kept in
// the surface's frame as it spins. The fixed sun distance is preserved.
//
// Parameters:
//   - now: the clock, time.Now when nil
func WithRealtimeSun(now func() time.Time) GlobeBuilderOption {
	return func(g *globe) {
		g.realtimeSun = true
		if now != nil {
			g.now = now
		}
	}
}
