package renderer

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank, capping frame rate to the refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately. May tear.
	PresentModeUncapped
)

// MSAASampleCount is the number of samples per pixel of the main render pass.
// WebGPU guarantees 1 and 4; 8 and 16 depend on the adapter.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4
	MSAA8x  MSAASampleCount = 8
	MSAA16x MSAASampleCount = 16
)

// ParseMSAA maps a sample count to an MSAASampleCount, falling back to MSAA4x for unsupported values.
//
// Parameters:
//   - samples: requested samples per pixel
//
// Returns:
//   - MSAASampleCount: the matching sample count
func ParseMSAA(samples int) MSAASampleCount {
	switch samples {
	case 0, 1:
		return MSAAOff
	case 8:
		return MSAA8x
	case 16:
		return MSAA16x
	default:
		return MSAA4x
	}
}

// RendererBackend is the top-level backend interface for the Renderer.
// It embeds the concrete backend interface for the selected GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
