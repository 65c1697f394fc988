package globe

import (
	"log"
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine"
	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
	"github.com/Carmen-Shannon/oxy-earth/engine/light"
	"github.com/Carmen-Shannon/oxy-earth/engine/scene"
)

// Surface is the output the globe renders into. engine.Engine implements it.
type Surface interface {
	// Render draws one frame of d.
	Render(d engine.Drawable) error

	// Resize reconfigures the output to the new size in pixels.
	Resize(width, height int)
}

// globe is the implementation of the Globe interface.
type globe struct {
	comp   Composition
	layers []Layer

	scheduler engine.FrameScheduler
	surface   Surface
	framing   camera.FramingPolicy

	width, height int
	frames        uint64
	running       bool
	generation    uint64 // bumped by Start so callbacks queued before a Stop die out

	contentScale func() float32

	realtimeSun bool
	now         func() time.Time
	sunDistance float32
}

// Globe animates a composed Earth scene. Every frame spins each planet layer and the starfield
// by a fixed increment and renders once; resizes update the camera and re-frame it. All methods
// are meant to be called from the goroutine that runs the scheduler's callbacks.
type Globe interface {
	// Start frames the camera for the current viewport and requests the first frame.
	// Calling Start on a running globe does nothing.
	Start()

	// Stop stops requesting frames. A frame already queued returns without drawing.
	Stop()

	// Running reports whether the render loop is active.
	Running() bool

	// Advance applies one frame of rotation to every layer and the starfield.
	Advance()

	// Resize handles a viewport change: camera aspect and projection, surface size, framing.
	// Non-positive sizes, as reported for a minimized window, are recorded but not applied.
	//
	// Parameters:
	//   - width: the viewport width in pixels
	//   - height: the viewport height in pixels
	Resize(width, height int)

	// ResetView returns the camera to its starting direction at the framing distance.
	ResetView()

	// Frames returns the number of frames advanced so far.
	Frames() uint64

	// Viewport returns the last size passed to Resize or WithViewport.
	Viewport() (width, height int)

	// Layers returns the planet layers in draw order.
	Layers() []Layer

	// Stars returns the starfield node.
	Stars() scene.Node

	// Scene returns the composed scene.
	Scene() scene.Scene

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Sun returns the directional light.
	Sun() light.Light
}

var _ Globe = &globe{}

// NewGlobe wires a composition to a frame scheduler and an output surface.
//
// Parameters:
//   - comp: the scene from Compose
//   - scheduler: invokes the frame callback before each repaint
//   - surface: where frames are rendered
//   - options: variadic list of GlobeBuilderOption functions
//
// Returns:
//   - Globe: the globe, not yet started
func NewGlobe(comp Composition, scheduler engine.FrameScheduler, surface Surface, options ...GlobeBuilderOption) Globe {
	g := &globe{
		comp:      comp,
		layers:    comp.Layers(),
		scheduler: scheduler,
		surface:   surface,
		framing:   camera.DefaultFramingPolicy,
		width:     1024,
		height:    768,
		now:       time.Now,
	}
	for _, opt := range options {
		opt(g)
	}

	p := comp.Sun.Position()
	g.sunDistance = float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
	comp.Camera.SetViewport(g.width, g.height)
	return g
}

func (g *globe) Start() {
	if g.running {
		return
	}
	g.running = true
	g.generation++
	g.framing.Apply(g.comp.Camera, g.framingHeight())
	g.updateSun()
	g.requestFrame(g.generation)
}

func (g *globe) Stop() {
	g.running = false
}

func (g *globe) Running() bool {
	return g.running
}

func (g *globe) requestFrame(generation uint64) {
	g.scheduler.RequestFrame(func() { g.frame(generation) })
}

// frame is the scheduler callback: queue the next frame, advance, render.
func (g *globe) frame(generation uint64) {
	if !g.running || generation != g.generation {
		return
	}
	g.requestFrame(generation)
	g.Advance()
	if err := g.surface.Render(g.comp.Scene); err != nil {
		log.Printf("globe: render frame %d: %v", g.frames, err)
	}
}

func (g *globe) Advance() {
	for _, l := range g.layers {
		spin(l.Node, l.Increment)
	}
	spin(g.comp.Stars, StarsIncrement)
	g.frames++
	g.updateSun()
}

// updateSun keeps the real-time sun over the right longitude as the surface spins.
func (g *globe) updateSun() {
	if !g.realtimeSun {
		return
	}
	d := light.SunDirection(g.now())
	world := g.comp.Surface.WorldMatrix()
	x, y, z := common.Normalize3(common.TransformDirection(world[:], d[0], d[1], d[2]))
	g.comp.Sun.SetPosition(x*g.sunDistance, y*g.sunDistance, z*g.sunDistance)
}

func (g *globe) Resize(width, height int) {
	g.width, g.height = width, height
	if width <= 0 || height <= 0 {
		return
	}
	g.comp.Camera.SetViewport(width, height)
	g.surface.Resize(width, height)
	g.framing.Apply(g.comp.Camera, g.framingHeight())
}

// framingHeight converts the viewport height from pixels to the logical units the framing
// policy's reference height is given in.
func (g *globe) framingHeight() int {
	if g.contentScale == nil {
		return g.height
	}
	scale := g.contentScale()
	if scale <= 0 {
		return g.height
	}
	return int(math.Round(float64(g.height) / float64(scale)))
}

func (g *globe) ResetView() {
	if ctrl := g.comp.Camera.Controller(); ctrl != nil {
		ctrl.SetAzimuth(0)
		ctrl.SetElevation(0)
	}
	g.framing.Apply(g.comp.Camera, g.framingHeight())
}

func (g *globe) Frames() uint64 {
	return g.frames
}

func (g *globe) Viewport() (int, int) {
	return g.width, g.height
}

func (g *globe) Layers() []Layer {
	return g.layers
}

func (g *globe) Stars() scene.Node {
	return g.comp.Stars
}

func (g *globe) Scene() scene.Scene {
	return g.comp.Scene
}

func (g *globe) Camera() camera.Camera {
	return g.comp.Camera
}

func (g *globe) Sun() light.Light {
	return g.comp.Sun
}
