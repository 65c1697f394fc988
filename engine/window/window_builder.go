package window

// WindowBuilderOption is a functional option for configuring an engineWindow.
type WindowBuilderOption func(w *engineWindow)

// Default window geometry. The initial size matches the viewport the globe frames at distance 5.
const (
	DefaultWidth     = 1024
	DefaultHeight    = 768
	DefaultMinWidth  = 320
	DefaultMinHeight = 240
)

// WithTitle sets the title bar text shown before the first frame rate report replaces it.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the requested client area size in screen coordinates.
// Non-positive values keep the default for that axis. After spawning, Width and Height report
// the framebuffer size, which is larger on high-DPI monitors.
//
// Parameters:
//   - width: requested width
//   - height: requested height
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

// WithMinSize sets the smallest size the user can drag the window to.
// Negative values are treated as 0, meaning no limit on that axis.
func WithMinSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = max(width, 0)
		w.minHeight = max(height, 0)
	}
}

// WithMaxSize sets the largest size the user can drag the window to.
// Zero or negative leaves that axis unbounded.
func WithMaxSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.maxWidth = max(width, 0)
		w.maxHeight = max(height, 0)
	}
}
