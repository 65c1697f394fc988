package bind_group_provider

import "testing"

func TestNewBindGroupProviderIsEmpty(t *testing.T) {
	p := NewBindGroupProvider("earth")
	if p.Label() != "earth" {
		t.Fatalf("Label() = %q, want %q", p.Label(), "earth")
	}
	if p.Initialized() {
		t.Fatal("fresh provider reports Initialized")
	}
	if p.Buffer(0) != nil || p.TextureView(1) != nil || p.Sampler(2) != nil {
		t.Fatal("fresh provider holds resources")
	}
	if p.IndexCount() != 0 {
		t.Fatalf("IndexCount() = %d, want 0", p.IndexCount())
	}
}

func TestReleaseResetsIndexCount(t *testing.T) {
	p := NewBindGroupProvider("mesh")
	p.SetIndexCount(36)
	p.Release()
	if p.IndexCount() != 0 {
		t.Fatalf("IndexCount() after Release = %d, want 0", p.IndexCount())
	}
}
