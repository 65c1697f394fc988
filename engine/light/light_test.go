package light

import (
	"math"
	"testing"
	"time"
)

func approx(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func TestDirectionIsNormalizedPosition(t *testing.T) {
	l := NewLight(WithPosition(-2, 0.5, 1.5), WithIntensity(2))
	d := l.Direction()
	n := float32(math.Sqrt(4 + 0.25 + 2.25))
	want := [3]float32{-2 / n, 0.5 / n, 1.5 / n}
	for i := range 3 {
		if !approx(d[i], want[i], 1e-6) {
			t.Fatalf("Direction() = %v, want %v", d, want)
		}
	}
	if l.Position() != [3]float32{-2, 0.5, 1.5} {
		t.Fatalf("Position() = %v", l.Position())
	}
}

func TestGPUZeroesIntensityWhenDisabled(t *testing.T) {
	l := NewLight(WithIntensity(2))
	if got := l.GPU().Intensity; got != 2 {
		t.Fatalf("enabled intensity = %v, want 2", got)
	}
	l.SetEnabled(false)
	if got := l.GPU().Intensity; got != 0 {
		t.Fatalf("disabled intensity = %v, want 0", got)
	}
}

func TestGPULightMarshalLayout(t *testing.T) {
	g := GPULight{Direction: [3]float32{1, 0, 0}, Intensity: 2, Color: [3]float32{1, 1, 1}}
	if g.Size() != 32 {
		t.Fatalf("Size() = %d, want 32", g.Size())
	}
	buf := g.Marshal()
	if len(buf) != 32 {
		t.Fatalf("len(Marshal()) = %d, want 32", len(buf))
	}
	intensity := math.Float32frombits(uint32(buf[12]) | uint32(buf[13])<<8 | uint32(buf[14])<<16 | uint32(buf[15])<<24)
	if intensity != 2 {
		t.Fatalf("intensity at offset 12 = %v, want 2", intensity)
	}
}

func TestHexColor(t *testing.T) {
	c := HexColor(0x0088ff)
	if c[0] != 0 || !approx(c[1], 0.2462, 1e-3) || c[2] != 1 {
		t.Fatalf("HexColor(0x0088ff) = %v", c)
	}
}

func TestSunDirection(t *testing.T) {
	tests := []struct {
		name string
		when time.Time
		// sign of the Y (north) component: summer solstice north, winter solstice south
		north bool
	}{
		{"june solstice", time.Date(2024, time.June, 20, 12, 0, 0, 0, time.UTC), true},
		{"december solstice", time.Date(2024, time.December, 21, 12, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := SunDirection(tt.when)
			length := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2]))
			if math.Abs(length-1) > 1e-5 {
				t.Fatalf("|SunDirection| = %v, want 1", length)
			}
			// declination is about ±23.4°, so sin(dec) ≈ ±0.397
			if tt.north && d[1] < 0.39 || !tt.north && d[1] > -0.39 {
				t.Fatalf("north component = %v", d[1])
			}
		})
	}
}

func TestSunDirectionNoonOverPrimeMeridian(t *testing.T) {
	// Near 12:00 UTC at an equinox the sub-solar point is close to longitude 0, which faces −X.
	d := SunDirection(time.Date(2024, time.March, 20, 12, 0, 0, 0, time.UTC))
	if d[0] > -0.95 {
		t.Fatalf("x component = %v, want close to -1", d[0])
	}
}
