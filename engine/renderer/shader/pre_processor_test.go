package shader

import (
	"strings"
	"testing"
)

func TestProcessExpandsIncludesAndGroups(t *testing.T) {
	src := strings.Join([]string{
		"//@oxy:include camera",
		"//@oxy:group 0 0 storage_uniform camera camera",
		"fn main() {}",
	}, "\n")

	out, err := NewPreProcessor().Process(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "struct CameraUniform") {
		t.Fatalf("include not expanded:\n%s", out)
	}
	if !strings.Contains(out, "@group(0) @binding(0) var<uniform> camera: CameraUniform;") {
		t.Fatalf("group declaration not generated:\n%s", out)
	}
	if strings.Contains(out, "@oxy:") {
		t.Fatalf("include and group annotations should be replaced:\n%s", out)
	}
	if !strings.HasSuffix(out, "fn main() {}") {
		t.Fatalf("plain lines should pass through:\n%s", out)
	}
}

func TestProcessStorageReadAddressSpace(t *testing.T) {
	out, err := NewPreProcessor().Process("//@oxy:group 1 0 storage_read objects model_data")
	if err != nil {
		t.Fatal(err)
	}
	if out != "@group(1) @binding(0) var<storage, read> objects: ModelData;" {
		t.Fatalf("unexpected declaration %q", out)
	}
}

func TestProcessKeepsProviderLinesAndRecordsDeclarations(t *testing.T) {
	src := strings.Join([]string{
		"//@oxy:group 1 0 storage_uniform object model_data",
		"//@oxy:provider 2 1 material color_map",
		"@group(2) @binding(1) var colorMap: texture_2d<f32>;",
	}, "\n")

	pp := NewPreProcessor()
	out, err := pp.Process(src)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "//@oxy:provider 2 1 material color_map") {
		t.Fatalf("provider annotation should stay in the source:\n%s", out)
	}

	decls := pp.Declarations()
	if len(decls) != 2 {
		t.Fatalf("len(Declarations()) = %d, want 2", len(decls))
	}
	if decls[0].Type != AnnotationTypeBindingGroup || decls[1].Role() != AnnotationArgColorMap {
		t.Fatalf("unexpected declarations %+v", decls)
	}

	// A second Process starts from a clean slate.
	if _, err := pp.Process("fn main() {}"); err != nil {
		t.Fatal(err)
	}
	if len(pp.Declarations()) != 0 {
		t.Fatalf("declarations leaked across Process calls: %+v", pp.Declarations())
	}
}

func TestProcessRejectsBindingSnippetWithoutStruct(t *testing.T) {
	_, err := NewPreProcessor().Process("//@oxy:group 0 0 storage_uniform tm tone_mapping")
	if err == nil || !strings.Contains(err.Error(), "declares no struct") {
		t.Fatalf("err = %v, want a declares no struct error", err)
	}
}

func TestProcessReportsMalformedAnnotation(t *testing.T) {
	_, err := NewPreProcessor().Process("fn a() {}\n//@oxy:include nothing")
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v, want an error on line 2", err)
	}
}
