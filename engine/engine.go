package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-earth/engine/profiler"
	"github.com/Carmen-Shannon/oxy-earth/engine/window"
)

// idleSleep keeps the message loop from spinning while no frame is requested.
const idleSleep = time.Millisecond

// ErrNoRenderer is returned by Render when the engine was built without a renderer.
var ErrNoRenderer = errors.New("engine: no renderer")

// FrameScheduler invokes a callback before the next repaint. Each request fires once; a
// callback that wants to keep animating requests the next frame itself.
type FrameScheduler interface {
	// RequestFrame queues callback for the next frame.
	//
	// Parameters:
	//   - callback: the function to run
	RequestFrame(callback func())
}

// FrameRenderer is the part of the renderer the engine drives once per frame.
type FrameRenderer interface {
	BeginFrame() error
	EndFrame()
	Present()
	Resize(width, height int)
}

// Drawable is something the engine can render in a frame, typically a scene.Scene.
type Drawable interface {
	// Prepare uploads per-frame GPU data. Called before the render pass opens.
	Prepare() error

	// DrawCalls records draws into the open render pass.
	DrawCalls() error
}

// engine implements the Engine interface.
// Coordinates the window message loop, frame callbacks, and the renderer.
type engine struct {
	mu      sync.Mutex
	pending []func()

	quitOnce sync.Once

	window   window.Window
	renderer FrameRenderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	resizeCallback   func(width, height int)
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	lastFrame        time.Time
}

// Engine is the main entry point for the engine.
// It runs the window message loop on the calling goroutine and, on every iteration, the frame
// callbacks requested since the previous one. Input, resize and frame callbacks therefore all
// run on one goroutine and never race each other.
type Engine interface {
	FrameScheduler

	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Render runs one frame lifecycle for d: Prepare, BeginFrame, DrawCalls, EndFrame, Present.
	//
	// Parameters:
	//   - d: the scene to draw
	//
	// Returns:
	//   - error: ErrNoRenderer, or the wrapped failure of the phase that failed
	Render(d Drawable) error

	// Resize reconfigures the render surface. Zero sizes are ignored by the renderer.
	//
	// Parameters:
	//   - width: the new width in pixels
	//   - height: the new height in pixels
	Resize(width, height int)

	// SetResizeCallback replaces the default window resize handling, which only resizes the
	// surface. The callback is expected to call Resize itself.
	//
	// Parameters:
	//   - callback: function receiving the new framebuffer size
	SetResizeCallback(callback func(width, height int))

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Pending returns the number of queued frame callbacks.
	Pending() int

	// Run runs the message loop and blocks until the window closes.
	Run()

	// Quit closes the window, which ends Run.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler: profiler.NewProfiler(),
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetUpdateCallback(e.runFrame)
		e.window.SetResizeCallback(e.handleResize)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) RequestFrame(callback func()) {
	if callback == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pending = append(e.pending, callback)
}

func (e *engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.pending)
}

func (e *engine) Render(d Drawable) error {
	if e.renderer == nil {
		return ErrNoRenderer
	}
	if err := d.Prepare(); err != nil {
		return fmt.Errorf("engine: prepare: %w", err)
	}
	if err := e.renderer.BeginFrame(); err != nil {
		return fmt.Errorf("engine: begin frame: %w", err)
	}
	err := d.DrawCalls()
	e.renderer.EndFrame()
	if err != nil {
		return fmt.Errorf("engine: draw: %w", err)
	}
	e.renderer.Present()
	return nil
}

func (e *engine) Resize(width, height int) {
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
}

func (e *engine) SetResizeCallback(callback func(width, height int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizeCallback = callback
}

func (e *engine) handleResize(width, height int) {
	e.mu.Lock()
	cb := e.resizeCallback
	e.mu.Unlock()
	if cb != nil {
		cb(width, height)
		return
	}
	e.Resize(width, height)
}

func (e *engine) Run() {
	if e.window == nil {
		log.Printf("engine: Run called without a window")
		return
	}
	e.lastFrame = time.Now()
	e.window.ProcessMessages()
}

func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		if e.window != nil {
			if err := e.window.Close(); err != nil {
				log.Printf("engine: close window: %v", err)
			}
		}
	})
}

// runFrame is the message loop's update hook. It runs the callbacks queued before this
// iteration; callbacks they queue wait for the next one.
// Recovers from panics so a failing frame closes the window instead of crashing the process.
func (e *engine) runFrame() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("engine: frame recovered from panic: %v", r)
			e.Quit()
		}
	}()

	e.mu.Lock()
	batch := e.pending
	e.pending = nil
	e.mu.Unlock()

	if len(batch) == 0 {
		time.Sleep(idleSleep)
		return
	}
	for _, cb := range batch {
		cb()
	}

	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick()
	}

	// Frame rate limiting
	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(e.lastFrame); remaining > 0 {
			time.Sleep(remaining)
		}
	}
	e.lastFrame = time.Now()
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	e.renderFrameLimit = frameDuration(fps)
}

func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
