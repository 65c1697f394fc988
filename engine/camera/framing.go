package camera

import (
	"github.com/Carmen-Shannon/oxy-earth/common"
)

// FramingPolicy derives the camera distance from the viewport height so the subject keeps the
// same apparent size as windows grow or shrink. Distance scales linearly with height from a
// reference point and is clamped to a range.
type FramingPolicy struct {
	// ReferenceHeight is the viewport height in pixels at which ReferenceDistance applies.
	ReferenceHeight float32

	// ReferenceDistance is the camera distance at ReferenceHeight.
	ReferenceDistance float32

	// MinDistance and MaxDistance bound the result.
	MinDistance float32
	MaxDistance float32
}

// DefaultFramingPolicy keeps a unit sphere comfortably in view: distance 5 at 768 pixels,
// never closer than 2.5 or farther than 20.
var DefaultFramingPolicy = FramingPolicy{
	ReferenceHeight:   768,
	ReferenceDistance: 5,
	MinDistance:       2.5,
	MaxDistance:       20,
}

// Distance returns clamp(ReferenceDistance * height / ReferenceHeight, MinDistance, MaxDistance).
// Heights of zero or less are treated as one pixel.
//
// Parameters:
//   - height: viewport height in pixels
//
// Returns:
//   - float32: the camera distance
func (p FramingPolicy) Distance(height int) float32 {
	h := float32(max(height, 1))
	return common.Clamp(p.ReferenceDistance*h/p.ReferenceHeight, p.MinDistance, p.MaxDistance)
}

// Apply moves the camera to the framing distance along its current view direction and
// recomputes its matrices. Cameras without a controller only get their projection updated.
//
// Parameters:
//   - c: the camera to frame
//   - height: viewport height in pixels
//
// Returns:
//   - float32: the distance applied
func (p FramingPolicy) Apply(c Camera, height int) float32 {
	d := p.Distance(height)
	if ctrl := c.Controller(); ctrl != nil {
		ctrl.SetRadius(d)
	}
	c.Update()
	return d
}
