package model

import (
	"math"
	"testing"
)

const epsilon = 1e-4

func TestIcosahedronVertexCount(t *testing.T) {
	cases := map[int]int{0: 60, 1: 240, 12: 10140}
	for detail, want := range cases {
		if got := IcosahedronVertexCount(detail); got != want {
			t.Errorf("IcosahedronVertexCount(%d) = %d, want %d", detail, got, want)
		}
		if got := len(IcosahedronVertices(1, detail)); got != want {
			t.Errorf("len(IcosahedronVertices(1, %d)) = %d, want %d", detail, got, want)
		}
	}
}

func TestIcosahedronVerticesLieOnSphere(t *testing.T) {
	for _, v := range IcosahedronVertices(2, 3) {
		if d := math.Abs(float64(length(v.Position)) - 2); d > epsilon {
			t.Fatalf("vertex %v is %v off the sphere", v.Position, d)
		}
		if d := math.Abs(float64(length(v.Normal)) - 1); d > epsilon {
			t.Fatalf("normal %v is not unit length", v.Normal)
		}
		for i := range 3 {
			if math.Abs(float64(v.Normal[i]*2-v.Position[i])) > epsilon {
				t.Fatalf("normal %v does not point along position %v", v.Normal, v.Position)
			}
		}
	}
}

func TestIcosahedronTrianglesFaceOutward(t *testing.T) {
	vs := IcosahedronVertices(1, 2)
	for i := 0; i < len(vs); i += 3 {
		a, b, c := vs[i].Position, vs[i+1].Position, vs[i+2].Position
		e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
		e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
		n := [3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		}
		if n[0]*a[0]+n[1]*a[1]+n[2]*a[2] <= 0 {
			t.Fatalf("triangle %d winds inward", i/3)
		}
	}
}

func TestIcosahedronUVRanges(t *testing.T) {
	vs := IcosahedronVertices(1, 12)
	for i := 0; i < len(vs); i += 3 {
		lo, hi := float32(math.Inf(1)), float32(math.Inf(-1))
		for _, v := range vs[i : i+3] {
			if v.UV[1] < 0 || v.UV[1] > 1 {
				t.Fatalf("v = %v out of [0, 1]", v.UV[1])
			}
			if v.UV[0] < 0 || v.UV[0] > 1.2 {
				t.Fatalf("u = %v out of [0, 1.2]", v.UV[0])
			}
			lo, hi = min(lo, v.UV[0]), max(hi, v.UV[0])
		}
		if hi > 0.9 && lo < 0.1 {
			t.Fatalf("triangle %d still wraps the seam: u in [%v, %v]", i/3, lo, hi)
		}
	}
}

func TestUVOrientation(t *testing.T) {
	cases := []struct {
		name string
		dir  [3]float64
		u, v float64
	}{
		{"prime meridian", [3]float64{-1, 0, 0}, 0.5, 0.5},
		{"east", [3]float64{0, 0, 1}, 0.75, 0.5},
		{"west", [3]float64{0, 0, -1}, 0.25, 0.5},
	}
	for _, c := range cases {
		u := azimuth(c.dir)/(2*math.Pi) + 0.5
		v := inclination(c.dir)/math.Pi + 0.5
		if math.Abs(u-c.u) > epsilon || math.Abs(v-c.v) > epsilon {
			t.Errorf("%s: uv = (%v, %v), want (%v, %v)", c.name, u, v, c.u, c.v)
		}
	}
	if v := inclination([3]float64{0, 1, 0})/math.Pi + 0.5; math.Abs(v) > epsilon {
		t.Errorf("north pole v = %v, want 0", v)
	}
}

func TestNewIcosahedron(t *testing.T) {
	m := NewIcosahedron("earth", 1, 4)
	want := IcosahedronVertexCount(4)
	if m.VertexCount() != want || m.IndexCount() != want {
		t.Fatalf("counts = %d/%d, want %d", m.VertexCount(), m.IndexCount(), want)
	}
	if math.Abs(float64(m.BoundingRadius())-1) > epsilon {
		t.Fatalf("BoundingRadius() = %v, want 1", m.BoundingRadius())
	}
	if len(m.VertexData()) != want*32 {
		t.Fatalf("len(VertexData()) = %d, want %d", len(m.VertexData()), want*32)
	}
}
