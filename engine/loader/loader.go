package loader

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-earth/common"
	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyPath is returned when a texture is requested without a path.
	ErrEmptyPath = errors.New("loader: empty texture path")

	// ErrUnsupportedFormat is returned for file extensions no backend decodes.
	ErrUnsupportedFormat = errors.New("loader: unsupported texture format")
)

const (
	defaultCacheSize   = 16
	defaultConcurrency = 4
	defaultMipWorkers  = 4
)

// loader is the implementation of the Loader interface.
type loader struct {
	cache       *lru.Cache
	cacheSize   int
	concurrency int
	mipWorkers  int
	mips        bool

	backends map[string]loaderBackend

	// mipPool runs CPU mip chain generation on a bounded set of reusable goroutines.
	mipPool worker.DynamicWorkerPool
	taskID  atomic.Int64
}

// Loader reads texture files from disk into RGBA staging data ready for GPU upload.
// Files are memory mapped, decoded by a backend chosen from the extension (TIFF, JPEG, PNG,
// WebP, BMP), and kept in a least-recently-used cache keyed by path.
type Loader interface {
	// Load decodes one texture, or returns the cached copy.
	//
	// Parameters:
	//   - path: the texture file
	//
	// Returns:
	//   - common.TextureStagingData: level 0 plus the mip chain when enabled
	//   - error: ErrEmptyPath, ErrUnsupportedFormat, or a wrapped read/decode error
	Load(path string) (common.TextureStagingData, error)

	// LoadAll decodes several textures concurrently. The first failure cancels the loads
	// that have not started yet and is returned; successful loads stay cached either way.
	//
	// Parameters:
	//   - ctx: cancels loads that have not started
	//   - paths: the texture files
	//
	// Returns:
	//   - []common.TextureStagingData: results in the order of paths
	//   - error: the first failure
	LoadAll(ctx context.Context, paths ...string) ([]common.TextureStagingData, error)

	// LoadEach decodes several textures concurrently and reports every failure separately, so
	// one bad file never stops the others. A load that has not started when ctx is done gets
	// ctx.Err() instead of being decoded.
	//
	// Parameters:
	//   - ctx: cancels loads that have not started
	//   - paths: the texture files
	//
	// Returns:
	//   - []common.TextureStagingData: results in the order of paths, zero where loading failed
	//   - []error: per-path errors in the order of paths, nil where loading succeeded
	LoadEach(ctx context.Context, paths ...string) ([]common.TextureStagingData, []error)

	// Get returns a cached texture without touching the disk.
	//
	// Parameters:
	//   - path: the texture file
	//
	// Returns:
	//   - common.TextureStagingData: the cached data
	//   - bool: true if the path was cached
	Get(path string) (common.TextureStagingData, bool)

	// Len returns the number of cached textures.
	Len() int

	// Purge empties the cache.
	Purge()
}

var _ Loader = &loader{}

// NewLoader creates a Loader. Defaults: a 16 entry cache, 4 concurrent loads in LoadAll,
// mip chains generated on 4 workers.
//
// Parameters:
//   - options: a variadic list of LoaderBuilderOption functions to configure the Loader
//
// Returns:
//   - Loader: a new Loader
func NewLoader(options ...LoaderBuilderOption) Loader {
	l := &loader{
		cacheSize:   defaultCacheSize,
		concurrency: defaultConcurrency,
		mipWorkers:  defaultMipWorkers,
		mips:        true,
	}

	tiffBackend := newTIFFLoaderBackend()
	imageBackend := newImageLoaderBackend()
	l.backends = map[string]loaderBackend{
		".tif":  tiffBackend,
		".tiff": tiffBackend,
		".jpg":  imageBackend,
		".jpeg": imageBackend,
		".png":  imageBackend,
		".webp": imageBackend,
		".bmp":  imageBackend,
	}

	for _, option := range options {
		option(l)
	}

	// lru.New only fails for non-positive sizes.
	cache, err := lru.New(max(l.cacheSize, 1))
	if err != nil {
		panic(fmt.Sprintf("loader: %v", err))
	}
	l.cache = cache
	l.mipPool = worker.NewDynamicWorkerPool(max(l.mipWorkers, 1), 64, 1*time.Second)
	return l
}

func (l *loader) Load(path string) (common.TextureStagingData, error) {
	if path == "" {
		return common.TextureStagingData{}, ErrEmptyPath
	}
	if cached, ok := l.Get(path); ok {
		return cached, nil
	}

	backend, err := l.resolveBackend(path)
	if err != nil {
		return common.TextureStagingData{}, err
	}

	r, err := mmap.Open(path)
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("loader: failed to open %s: %w", path, err)
	}
	defer r.Close()

	img, err := backend.Decode(r, int64(r.Len()))
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("loader: failed to decode %s: %w", path, err)
	}

	data := common.StageImage(filepath.Base(path), img)
	if data.Empty() {
		return common.TextureStagingData{}, fmt.Errorf("loader: %s has no pixels", path)
	}
	if l.mips {
		data.Mips = l.generateMips(data)
	}

	l.cache.Add(path, data)
	return data, nil
}

func (l *loader) LoadAll(ctx context.Context, paths ...string) ([]common.TextureStagingData, error) {
	results := make([]common.TextureStagingData, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(l.concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := l.Load(path)
			if err != nil {
				return err
			}
			results[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (l *loader) LoadEach(ctx context.Context, paths ...string) ([]common.TextureStagingData, []error) {
	results := make([]common.TextureStagingData, len(paths))
	errs := make([]error, len(paths))
	var g errgroup.Group
	g.SetLimit(max(l.concurrency, 1))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			results[i], errs[i] = l.Load(path)
			return nil
		})
	}
	_ = g.Wait()
	return results, errs
}

func (l *loader) Get(path string) (common.TextureStagingData, bool) {
	v, ok := l.cache.Get(path)
	if !ok {
		return common.TextureStagingData{}, false
	}
	return v.(common.TextureStagingData), true
}

func (l *loader) Len() int {
	return l.cache.Len()
}

func (l *loader) Purge() {
	l.cache.Purge()
}

// resolveBackend selects a decoder from the file extension.
func (l *loader) resolveBackend(path string) (loaderBackend, error) {
	ext := strings.ToLower(filepath.Ext(path))
	backend, ok := l.backends[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return backend, nil
}

// generateMips builds the mip chain on the worker pool and waits for it. The pool bounds how
// many chains are filtered at once when LoadAll decodes several large maps in parallel.
func (l *loader) generateMips(data common.TextureStagingData) []common.MipLevel {
	done := make(chan []common.MipLevel, 1)
	l.mipPool.SubmitTask(worker.Task{
		ID: int(l.taskID.Add(1)),
		Do: func() (any, error) {
			levels := mipChain(data)
			done <- levels
			return levels, nil
		},
	})
	return <-done
}
