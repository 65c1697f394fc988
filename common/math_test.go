package common

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{5, 2.5, 20, 5},
		{1, 2.5, 20, 2.5},
		{25, 2.5, 20, 20},
		{2.5, 2.5, 20, 2.5},
		{20, 2.5, 20, 20},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); !near(got, math.Pi) {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
	if got := Radians(-23.4); !near(got, float32(-23.4*math.Pi/180)) {
		t.Errorf("Radians(-23.4) = %v", got)
	}
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	BuildModelMatrix(m[:], 1, 2, 3, 0.1, 0.2, 0.3, 2, 2, 2)

	Mul4(out[:], id[:], m[:])
	for i := range out {
		if !near(out[i], m[i]) {
			t.Fatalf("I*M differs at %d: %v != %v", i, out[i], m[i])
		}
	}
}

func TestInvert4RoundTrip(t *testing.T) {
	var m, inv, prod [16]float32
	BuildModelMatrix(m[:], 4, -1, 2, 0.5, -0.3, 0.9, 1.5, 1.5, 1.5)
	if !Invert4(inv[:], m[:]) {
		t.Fatal("Invert4 reported singular matrix")
	}
	Mul4(prod[:], m[:], inv[:])

	var id [16]float32
	Identity(id[:])
	for i := range prod {
		if !near(prod[i], id[i]) {
			t.Fatalf("M*M^-1 differs from identity at %d: %v", i, prod[i])
		}
	}
}

func TestInvert4Singular(t *testing.T) {
	var zero, out [16]float32
	out[0] = 42
	if Invert4(out[:], zero[:]) {
		t.Fatal("expected singular matrix to fail inversion")
	}
	if out[0] != 42 {
		t.Fatal("out must be untouched on failure")
	}
}

func TestBuildModelMatrixRotateZ(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 0, 0, 0, 0, 0, math.Pi/2, 1, 1, 1)

	x, y, z := TransformPoint(m[:], 1, 0, 0)
	if !near(x, 0) || !near(y, 1) || !near(z, 0) {
		t.Errorf("Rz(90) * X = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}
}

func TestBuildModelMatrixRotateY(t *testing.T) {
	var m [16]float32
	BuildModelMatrix(m[:], 0, 0, 0, 0, math.Pi/2, 0, 1, 1, 1)

	// right-handed: +90 about Y takes +Z to +X
	x, y, z := TransformPoint(m[:], 0, 0, 1)
	if !near(x, 1) || !near(y, 0) || !near(z, 0) {
		t.Errorf("Ry(90) * Z = (%v, %v, %v), want (1, 0, 0)", x, y, z)
	}
}

func TestNormalMatrixUniformScale(t *testing.T) {
	var m, n [16]float32
	BuildModelMatrix(m[:], 3, 3, 3, 0, 0.7, 0, 1.01, 1.01, 1.01)
	NormalMatrix(n[:], m[:])

	x, y, z := TransformDirection(n[:], 0, 1, 0)
	x, y, z = Normalize3(x, y, z)
	if !near(x, 0) || !near(y, 1) || !near(z, 0) {
		t.Errorf("normal matrix bent the Y axis: (%v, %v, %v)", x, y, z)
	}
	if n[12] != 0 || n[13] != 0 || n[14] != 0 {
		t.Error("normal matrix must not carry translation")
	}
}

func TestLookAtMapsTargetToNegativeZ(t *testing.T) {
	var v [16]float32
	LookAt(v[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)

	x, y, z := TransformPoint(v[:], 0, 0, 0)
	if !near(x, 0) || !near(y, 0) || !near(z, -5) {
		t.Errorf("origin in view space = (%v, %v, %v), want (0, 0, -5)", x, y, z)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var p [16]float32
	const n, f = 0.1, 1000
	Perspective(p[:], Radians(75), 16.0/9.0, n, f)

	depth := func(viewZ float32) float32 {
		clipZ := p[10]*viewZ + p[14]
		clipW := p[11] * viewZ
		return clipZ / clipW
	}
	if d := depth(-n); !near(d, 0) {
		t.Errorf("near plane depth = %v, want 0", d)
	}
	if d := depth(-f); math.Abs(float64(d-1)) > 1e-3 {
		t.Errorf("far plane depth = %v, want 1", d)
	}
}

func TestSliceToBytes(t *testing.T) {
	if SliceToBytes([]float32{}) != nil {
		t.Error("empty slice must map to nil")
	}
	if got := len(SliceToBytes([]uint32{1, 2, 3})); got != 12 {
		t.Errorf("len = %d, want 12", got)
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Errorf("Coalesce = %d, want 3", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("Coalesce of zeros = %q", got)
	}
}
