package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithCacheSize sets how many decoded textures the cache keeps.
//
// Parameters:
//   - size: the cache capacity, values below 1 are raised to 1
//
// Returns:
//   - LoaderBuilderOption: a function that applies the cache size option to a loader
func WithCacheSize(size int) LoaderBuilderOption {
	return func(l *loader) {
		l.cacheSize = size
	}
}

// WithConcurrency sets how many files LoadAll and LoadEach decode at once.
//
// Parameters:
//   - n: the concurrent load limit
//
// Returns:
//   - LoaderBuilderOption: a function that applies the concurrency option to a loader
func WithConcurrency(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.concurrency = n
	}
}

// WithMipWorkers sets the size of the mip generation worker pool.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - LoaderBuilderOption: a function that applies the worker option to a loader
func WithMipWorkers(n int) LoaderBuilderOption {
	return func(l *loader) {
		l.mipWorkers = n
	}
}

// WithMips enables or disables mip chain generation.
//
// Parameters:
//   - enabled: true to generate mips
//
// Returns:
//   - LoaderBuilderOption: a function that applies the mip option to a loader
func WithMips(enabled bool) LoaderBuilderOption {
	return func(l *loader) {
		l.mips = enabled
	}
}
