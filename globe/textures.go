package globe

import (
	"context"
	"log"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-earth/common"
	"github.com/Carmen-Shannon/oxy-earth/engine/loader"
)

// TexturePaths locates the six planet maps on disk.
type TexturePaths struct {
	Map        string
	Specular   string
	Bump       string
	Lights     string
	Clouds     string
	CloudAlpha string
}

// DefaultTexturePaths returns the conventional file names inside dir.
func DefaultTexturePaths(dir string) TexturePaths {
	return TexturePaths{
		Map:        filepath.Join(dir, "00_earthmap1k.jpg"),
		Bump:       filepath.Join(dir, "01_earthbump1k.jpg"),
		Specular:   filepath.Join(dir, "02_earthspec1k.jpg"),
		Lights:     filepath.Join(dir, "03_earthlights1k.jpg"),
		Clouds:     filepath.Join(dir, "04_earthcloudmap.jpg"),
		CloudAlpha: filepath.Join(dir, "05_earthcloudmaptrans.jpg"),
	}
}

// textureSlot pairs a path with where its pixels go and what stands in when it fails.
type textureSlot struct {
	name     string
	path     string
	dst      *common.TextureStagingData
	fallback [4]uint8
}

// LoadTextures decodes all six maps concurrently. A map that cannot be loaded is replaced by a
// single neutral texel and a warning is logged; composition never fails on textures. The
// fallbacks keep the planet visible: a grey surface, no specular, flat bump, and no lights
// or clouds.
//
// Parameters:
//   - ctx: maps whose load has not started when ctx is done get their fallback
//   - l: the loader to decode with
//   - paths: the map files
//
// Returns:
//   - Textures: every field populated
func LoadTextures(ctx context.Context, l loader.Loader, paths TexturePaths) Textures {
	var t Textures
	slots := []textureSlot{
		{"map", paths.Map, &t.Map, [4]uint8{128, 128, 128, 255}},
		{"specular", paths.Specular, &t.Specular, [4]uint8{0, 0, 0, 255}},
		{"bump", paths.Bump, &t.Bump, [4]uint8{0, 0, 0, 255}},
		{"lights", paths.Lights, &t.Lights, [4]uint8{0, 0, 0, 255}},
		{"clouds", paths.Clouds, &t.Clouds, [4]uint8{0, 0, 0, 255}},
		{"cloud alpha", paths.CloudAlpha, &t.CloudAlpha, [4]uint8{0, 0, 0, 255}},
	}

	files := make([]string, len(slots))
	for i, s := range slots {
		files[i] = s.path
	}
	loaded, errs := l.LoadEach(ctx, files...)

	for i, s := range slots {
		data := loaded[i]
		if err := errs[i]; err != nil {
			log.Printf("globe: %s texture unavailable, using a neutral texel: %v", s.name, err)
			data = common.SolidTexture("fallback "+s.name, s.fallback[0], s.fallback[1], s.fallback[2], s.fallback[3])
		}
		*s.dst = data
	}
	return t
}
