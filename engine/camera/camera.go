package camera

import (
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
)

// Default lens for the globe view.
const (
	DefaultFovDegrees = 75
	DefaultNear       = 0.1
	DefaultFar        = 1000
)

// cameraCount numbers bind group providers so every camera gets a distinct label.
var cameraCount atomic.Uint64

// worldUp is fixed: the orbit controller clamps pitch short of the poles, so the eye never
// looks straight along it.
var worldUp = [3]float32{0, 1, 0}

var identity = [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

type cameraImpl struct {
	mu sync.Mutex

	fov    float32
	aspect float32
	near   float32
	far    float32

	view     [16]float32
	proj     [16]float32
	viewProj [16]float32

	controller        OrbitController
	bindGroupProvider bind_group_provider.BindGroupProvider
}

// Camera is the perspective eye looking at the globe. It follows an OrbitController and
// exposes the uniform block the frame bind group uploads.
type Camera interface {
	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the viewport aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the column-major view matrix.
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the column-major perspective matrix.
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection × view, column-major.
	ViewProjectionMatrix() [16]float32

	// GPU returns the uniform block uploaded to the frame bind group.
	//
	// Returns:
	//   - GPUCameraUniform: matrices and world-space eye position
	GPU() GPUCameraUniform

	// Controller returns the attached OrbitController, or nil.
	Controller() OrbitController

	// BindGroupProvider returns the provider that owns the camera's GPU binding.
	BindGroupProvider() bind_group_provider.BindGroupProvider

	// SetViewport updates the aspect ratio from a framebuffer size and recomputes the matrices.
	// Non-positive sizes, as reported while minimized, are ignored.
	//
	// Parameters:
	//   - width, height: framebuffer size in pixels
	SetViewport(width, height int)

	// Update recomputes every matrix from the lens and the controller's current eye.
	// The scene calls it once per frame before uploading the uniform.
	Update()
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with a 75 degree vertical field of view, a square aspect and clip
// planes at 0.1 and 1000. Without a controller only the projection is computed.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		fov:      DefaultFovDegrees * math.Pi / 180,
		aspect:   1,
		near:     DefaultNear,
		far:      DefaultFar,
		view:     identity,
		proj:     identity,
		viewProj: identity,
		bindGroupProvider: bind_group_provider.NewBindGroupProvider(
			"camera_" + strconv.FormatUint(cameraCount.Add(1)-1, 10),
		),
	}
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.proj
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProj
}

func (c *cameraImpl) GPU() GPUCameraUniform {
	c.mu.Lock()
	defer c.mu.Unlock()
	u := GPUCameraUniform{
		View:       c.view,
		Projection: c.proj,
		ViewProj:   c.viewProj,
	}
	if c.controller != nil {
		u.Position[0], u.Position[1], u.Position[2] = c.controller.Position()
	}
	return u
}

func (c *cameraImpl) Controller() OrbitController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) BindGroupProvider() bind_group_provider.BindGroupProvider {
	return c.bindGroupProvider
}

func (c *cameraImpl) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = float32(width) / float32(height)
	c.updateMatrices()
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
}

// updateMatrices rebuilds the projection and, with a controller attached, the view and
// view-projection matrices. Caller must hold the mutex.
func (c *cameraImpl) updateMatrices() {
	common.Perspective(c.proj[:], c.fov, c.aspect, c.near, c.far)
	if c.controller == nil {
		return
	}

	px, py, pz := c.controller.Position()
	tx, ty, tz := c.controller.Target()
	common.LookAt(c.view[:], px, py, pz, tx, ty, tz, worldUp[0], worldUp[1], worldUp[2])
	common.Mul4(c.viewProj[:], c.proj[:], c.view[:])
}
