package scene

import (
	"log"

	"github.com/Carmen-Shannon/oxy-earth/engine/renderer/bind_group_provider"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(s *scene)

// WithRenderer attaches the renderer at construction.
func WithRenderer(r Renderer) SceneBuilderOption {
	return func(s *scene) {
		s.r = r
	}
}

// WithNodes attaches nodes to the root at construction. Invalid nodes are logged and skipped.
func WithNodes(nodes ...Node) SceneBuilderOption {
	return func(s *scene) {
		for _, n := range nodes {
			if err := s.root.Add(n); err != nil {
				log.Printf("scene: %s: %v", s.name, err)
			}
		}
	}
}

// WithFrameProvider overrides the provider of the frame group. Defaults to the camera's.
func WithFrameProvider(provider bind_group_provider.BindGroupProvider) SceneBuilderOption {
	return func(s *scene) {
		s.frame = provider
	}
}
