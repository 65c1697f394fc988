// annotations.go defines the annotation types, argument constants, and parser for the
// WGSL pre-processor. Annotations are single-line WGSL comments prefixed with @oxy:
// that inject shared struct definitions, declare uniform bindings, and tag bindings
// with the role they play so materials can wire textures without matching on names.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an annotation within a WGSL comment line.
const annotationPrefix = "@oxy:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects a registered WGSL snippet at the annotation site.
	//
	// Syntax: //@oxy:include <struct_type>
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a @group/@binding variable declaration for a
	// registered struct type and records the declaration.
	//
	// Syntax: //@oxy:group <group> <binding> <address_space> <var_name> <struct_type>
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeProvider tags the hand-written binding below it with a provider
	// identity and an optional role. No WGSL is generated.
	//
	// Syntax: //@oxy:provider <group> <binding> <provider_identity> [binding_role]
	AnnotationTypeProvider AnnotationType = "provider"
)

// Annotation represents a single parsed annotation from a WGSL shader source line.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include:  [0] = struct type key
	//   - group:    [0] = address space, [1] = var name, [2] = struct type key
	//   - provider: [0] = provider identity, [1] = binding role (optional)
	Args []AnnotationArg

	// Line is the 1-based source line of the annotation.
	Line int

	// Group is the @group index. Nil for include annotations.
	Group *int

	// Binding is the @binding index. Nil for include annotations.
	Binding *int
}

// Role returns the binding role of a provider annotation, or "" when none was given.
func (a Annotation) Role() AnnotationArg {
	if a.Type != AnnotationTypeProvider || len(a.Args) < 2 {
		return ""
	}
	return a.Args[1]
}

// AnnotationArg is a typed string constant used as an argument in annotations.
type AnnotationArg string

// Struct type arguments. Each maps to a Go GPU type that embeds its WGSL definition.
const (
	// AnnotationArgCamera identifies the CameraUniform struct.
	AnnotationArgCamera AnnotationArg = "camera"

	// AnnotationArgLight identifies the Light struct.
	AnnotationArgLight AnnotationArg = "light"

	// AnnotationArgModelData identifies the ModelData struct (per-object transforms).
	AnnotationArgModelData AnnotationArg = "model_data"

	// annotationArgVertex identifies the VertexInput struct for surface meshes.
	annotationArgVertex AnnotationArg = "vertex"

	// annotationArgPointVertex identifies the PointVertexInput struct for point sprites.
	annotationArgPointVertex AnnotationArg = "point_vertex"

	// annotationArgToneMapping identifies the ACES filmic tone mapping helpers.
	annotationArgToneMapping AnnotationArg = "tone_mapping"
)

// Address space arguments for group annotations.
const (
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"

	annotationArgStorageTypeRead AnnotationArg = "storage_read"
)

// Provider identities name which owner supplies the bind group for a binding.
const (
	// AnnotationArgFrame is the per-frame group shared by every draw (camera, sun).
	AnnotationArgFrame AnnotationArg = "frame"

	// AnnotationArgObject is the per-node group (model and normal matrices).
	AnnotationArgObject AnnotationArg = "object"

	// AnnotationArgMaterial is the per-material group (parameters, textures, sampler).
	AnnotationArgMaterial AnnotationArg = "material"
)

// Binding roles for material bindings.
const (
	AnnotationArgParams      AnnotationArg = "params"
	AnnotationArgColorMap    AnnotationArg = "color_map"
	AnnotationArgSpecularMap AnnotationArg = "specular_map"
	AnnotationArgBumpMap     AnnotationArg = "bump_map"
	AnnotationArgAlphaMap    AnnotationArg = "alpha_map"
	AnnotationArgMapSampler  AnnotationArg = "map_sampler"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgCamera,
	AnnotationArgLight,
	AnnotationArgModelData,
	annotationArgVertex,
	annotationArgPointVertex,
	annotationArgToneMapping,
}

var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
}

var validProviderIdentities = []AnnotationArg{
	AnnotationArgFrame,
	AnnotationArgObject,
	AnnotationArgMaterial,
}

var validBindingRoles = []AnnotationArg{
	AnnotationArgParams,
	AnnotationArgColorMap,
	AnnotationArgSpecularMap,
	AnnotationArgBumpMap,
	AnnotationArgAlphaMap,
	AnnotationArgMapSampler,
}

// parseAnnotation parses a single source line. Lines without the annotation prefix
// return (nil, nil).
//
// Parameters:
//   - line: one line of WGSL source
//   - lineNum: the 1-based line number used in error messages
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line carries none
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, nil
	}
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @oxy annotation", lineNum)
	}

	switch AnnotationType(args[0]) {
	case annotationTypeInclude:
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @oxy include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil

	case AnnotationTypeBindingGroup:
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @oxy group annotation requires group, binding, address space, var name and struct type", lineNum)
		}
		group, binding, err := parseGroupBinding(args[1], args[2], lineNum)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @oxy group annotation", lineNum, args[3])
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[5])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @oxy group annotation", lineNum, args[5])
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil

	case AnnotationTypeProvider:
		if len(args) < 4 || len(args) > 5 {
			return nil, fmt.Errorf("line %d: @oxy provider annotation requires group, binding, provider identity and an optional role", lineNum)
		}
		group, binding, err := parseGroupBinding(args[1], args[2], lineNum)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(validProviderIdentities, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown provider identity %q", lineNum, args[3])
		}
		a := &Annotation{
			Type:    AnnotationTypeProvider,
			Args:    []AnnotationArg{AnnotationArg(args[3])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}
		if len(args) == 5 {
			if !slices.Contains(validBindingRoles, AnnotationArg(args[4])) {
				return nil, fmt.Errorf("line %d: unknown binding role %q", lineNum, args[4])
			}
			a.Args = append(a.Args, AnnotationArg(args[4]))
		}
		return a, nil
	}

	return nil, fmt.Errorf("line %d: unknown annotation type %q", lineNum, args[0])
}

func parseGroupBinding(groupArg, bindingArg string, lineNum int) (int, int, error) {
	group, err := strconv.Atoi(groupArg)
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: invalid group number %q: %w", lineNum, groupArg, err)
	}
	binding, err := strconv.Atoi(bindingArg)
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: invalid binding number %q: %w", lineNum, bindingArg, err)
	}
	return group, binding, nil
}
