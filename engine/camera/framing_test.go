package camera

import (
	"math"
	"testing"
)

func TestFramingDistance(t *testing.T) {
	cases := []struct {
		height int
		want   float32
	}{
		{768, 5},
		{1536, 10},
		{200, 2.5},
		{384, 2.5},
		{461, 5 * 461.0 / 768},
		{3072, 20},
		{100, 2.5},
		{4000, 20},
		{0, 2.5},
		{-10, 2.5},
	}
	for _, c := range cases {
		if got := DefaultFramingPolicy.Distance(c.height); math.Abs(float64(got-c.want)) > 1e-5 {
			t.Errorf("Distance(%d) = %v, want %v", c.height, got, c.want)
		}
	}
}

func TestFramingDistanceMonotonic(t *testing.T) {
	prev := DefaultFramingPolicy.Distance(1)
	for h := 2; h < 5000; h += 37 {
		d := DefaultFramingPolicy.Distance(h)
		if d < prev {
			t.Fatalf("Distance(%d) = %v < previous %v", h, d, prev)
		}
		prev = d
	}
}

func TestFramingApplyPreservesDirection(t *testing.T) {
	ctrl := NewOrbitController(WithAzimuth(0.7), WithElevation(0.3))
	cam := NewCamera(WithController(ctrl))

	if got := DefaultFramingPolicy.Apply(cam, 1536); got != 10 {
		t.Fatalf("Apply() = %v, want 10", got)
	}
	if ctrl.Radius() != 10 {
		t.Fatalf("Radius() = %v, want 10", ctrl.Radius())
	}
	if ctrl.Azimuth() != 0.7 || ctrl.Elevation() != 0.3 {
		t.Fatalf("angles changed to (%v, %v)", ctrl.Azimuth(), ctrl.Elevation())
	}
	x, y, z := ctrl.Position()
	if d := math.Sqrt(float64(x*x + y*y + z*z)); math.Abs(d-10) > 1e-4 {
		t.Fatalf("eye distance = %v, want 10", d)
	}
}

func TestFramingApplyUpdatesViewMatrix(t *testing.T) {
	cam := NewCamera(WithController(NewOrbitController()))
	DefaultFramingPolicy.Apply(cam, 768)
	if got := cam.ViewMatrix()[14]; math.Abs(float64(got+5)) > 1e-5 {
		t.Fatalf("view translation z = %v, want -5", got)
	}
	DefaultFramingPolicy.Apply(cam, 3072)
	if got := cam.ViewMatrix()[14]; math.Abs(float64(got+20)) > 1e-5 {
		t.Fatalf("view translation z = %v, want -20", got)
	}
}

func TestFramingApplyWithoutController(t *testing.T) {
	cam := NewCamera()
	if got := DefaultFramingPolicy.Apply(cam, 768); got != 5 {
		t.Fatalf("Apply() = %v, want 5", got)
	}
}
