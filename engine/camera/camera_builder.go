package camera

import "math"

// CameraBuilderOption is a functional option used to configure a Camera during construction.
// Options that receive out-of-range values leave the default in place; NewCamera computes the
// matrices once after every option has run.
type CameraBuilderOption func(*cameraImpl)

// WithFovDegrees sets the vertical field of view.
//
// Parameters:
//   - degrees: field of view in degrees, ignored outside (0, 180)
//
// Returns:
//   - CameraBuilderOption: functional option to set the field of view
func WithFovDegrees(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if degrees > 0 && degrees < 180 {
			c.fov = degrees * math.Pi / 180
		}
	}
}

// WithViewport derives the aspect ratio from a framebuffer size.
//
// Parameters:
//   - width, height: framebuffer size in pixels, ignored unless both are positive
//
// Returns:
//   - CameraBuilderOption: functional option to set the aspect ratio
func WithViewport(width, height int) CameraBuilderOption {
	return func(c *cameraImpl) {
		if width > 0 && height > 0 {
			c.aspect = float32(width) / float32(height)
		}
	}
}

// WithClipPlanes sets the near and far clipping distances.
// The starfield shell sits at radius 50, so far must stay beyond it plus the zoom-out limit.
//
// Parameters:
//   - near: near plane distance, must be positive
//   - far: far plane distance, must exceed near
//
// Returns:
//   - CameraBuilderOption: functional option to set both planes
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		if near > 0 && far > near {
			c.near = near
			c.far = far
		}
	}
}

// WithController attaches the orbit controller whose eye the camera follows.
func WithController(ctrl OrbitController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
	}
}
