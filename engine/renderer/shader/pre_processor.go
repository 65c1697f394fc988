package shader

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-earth/engine/camera"
	"github.com/Carmen-Shannon/oxy-earth/engine/light"
	"github.com/Carmen-Shannon/oxy-earth/engine/model"
)

// toneMappingSource holds the ACES filmic helpers shared by the lit and unlit shaders.
//
//go:embed assets/tone_mapping.wgsl
var toneMappingSource string

// registryEntry pairs a WGSL snippet with the struct type name it declares.
type registryEntry struct {
	// Source is the WGSL source injected for an include annotation.
	Source string

	// Type is the WGSL struct name used when generating group declarations.
	Type string
}

type preProcessor struct {
	structRegistry       map[AnnotationArg]registryEntry
	addressSpaceRegistry map[AnnotationArg]string
	declarations         []Annotation
}

// PreProcessor expands @oxy annotations in WGSL source.
type PreProcessor interface {
	// Process expands every annotation in source and returns plain WGSL.
	// Group and provider annotations are collected and available via Declarations.
	//
	// Parameters:
	//   - source: WGSL source containing @oxy annotations
	//
	// Returns:
	//   - string: the expanded WGSL source
	//   - error: a descriptive error for the first malformed annotation
	Process(source string) (string, error)

	// Declarations returns the group and provider annotations from the last Process call.
	Declarations() []Annotation
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor with the engine's shared struct registry.
func NewPreProcessor() PreProcessor {
	return &preProcessor{
		structRegistry: map[AnnotationArg]registryEntry{
			AnnotationArgCamera:      {Source: camera.GPUCameraUniformSource, Type: "CameraUniform"},
			AnnotationArgLight:       {Source: light.GPULightSource, Type: "Light"},
			AnnotationArgModelData:   {Source: model.GPUModelDataSource, Type: "ModelData"},
			annotationArgVertex:      {Source: model.GPUVertexSource, Type: "VertexInput"},
			annotationArgPointVertex: {Source: model.GPUPointVertexSource, Type: "PointVertexInput"},
			annotationArgToneMapping: {Source: toneMappingSource},
		},
		addressSpaceRegistry: map[AnnotationArg]string{
			annotationArgStorageTypeUniform: "var<uniform>",
			annotationArgStorageTypeRead:    "var<storage, read>",
		},
	}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.declarations = p.declarations[:0]

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines))

	for i, line := range lines {
		a, err := parseAnnotation(line, i+1)
		if err != nil {
			return "", err
		}
		if a == nil {
			out = append(out, line)
			continue
		}

		switch a.Type {
		case annotationTypeInclude:
			out = append(out, p.structRegistry[a.Args[0]].Source)
		case AnnotationTypeBindingGroup:
			entry := p.structRegistry[a.Args[2]]
			if entry.Type == "" {
				return "", fmt.Errorf("line %d: %q cannot be bound, it declares no struct", a.Line, a.Args[2])
			}
			out = append(out, fmt.Sprintf("@group(%d) @binding(%d) %s %s: %s;",
				*a.Group, *a.Binding, p.addressSpaceRegistry[a.Args[0]], a.Args[1], entry.Type))
			p.declarations = append(p.declarations, *a)
		case AnnotationTypeProvider:
			out = append(out, line)
			p.declarations = append(p.declarations, *a)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Declarations() []Annotation {
	return p.declarations
}
