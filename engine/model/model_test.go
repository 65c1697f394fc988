package model

import (
	"encoding/binary"
	"math"
	"testing"
)

func readFloat(buf []byte, offset int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
}

func TestGPUTypeSizes(t *testing.T) {
	var v GPUVertex
	var p GPUPointVertex
	var m GPUModelData
	if v.Size() != 32 || len(v.Marshal()) != 32 {
		t.Fatalf("GPUVertex size = %d/%d, want 32", v.Size(), len(v.Marshal()))
	}
	if p.Size() != 32 || len(p.Marshal()) != 32 {
		t.Fatalf("GPUPointVertex size = %d/%d, want 32", p.Size(), len(p.Marshal()))
	}
	if m.Size() != 128 || len(m.Marshal()) != 128 {
		t.Fatalf("GPUModelData size = %d/%d, want 128", m.Size(), len(m.Marshal()))
	}
}

func TestGPUVertexMarshalOffsets(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{4, 5, 6},
		UV:       [2]float32{0.25, 0.75},
	}
	buf := v.Marshal()
	want := map[int]float32{0: 1, 8: 3, 12: 4, 20: 6, 24: 0.25, 28: 0.75}
	for off, w := range want {
		if got := readFloat(buf, off); got != w {
			t.Errorf("offset %d = %v, want %v", off, got, w)
		}
	}
}

func TestGPUModelDataMarshalOffsets(t *testing.T) {
	var m GPUModelData
	m.Model[15] = 1
	m.Normal[0] = 2
	buf := m.Marshal()
	if got := readFloat(buf, 60); got != 1 {
		t.Fatalf("model[15] = %v, want 1", got)
	}
	if got := readFloat(buf, 64); got != 2 {
		t.Fatalf("normal[0] = %v, want 2", got)
	}
}

func TestNewModelCreatesMeshProvider(t *testing.T) {
	m := NewModel(WithName("quad"), WithIndices([]uint32{0, 1, 2}))
	if m.MeshProvider() == nil {
		t.Fatal("MeshProvider() is nil")
	}
	if m.MeshProvider().Label() != "quad Mesh" {
		t.Fatalf("provider label = %q", m.MeshProvider().Label())
	}
	if m.IndexCount() != 3 || len(m.IndexData()) != 12 {
		t.Fatalf("IndexCount() = %d, len(IndexData()) = %d", m.IndexCount(), len(m.IndexData()))
	}
}
