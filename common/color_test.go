package common

import (
	"math"
	"testing"
)

func TestLinearHex(t *testing.T) {
	cases := []struct {
		hex  uint32
		want [3]float32
	}{
		{0xffffff, [3]float32{1, 1, 1}},
		{0x000000, [3]float32{0, 0, 0}},
		{0x0088ff, [3]float32{0, 0.2462, 1}},
		{0x111111, [3]float32{0.0056, 0.0056, 0.0056}},
	}
	for _, c := range cases {
		got := LinearHex(c.hex)
		for i := range 3 {
			if math.Abs(float64(got[i]-c.want[i])) > 1e-3 {
				t.Errorf("LinearHex(%06x) = %v, want %v", c.hex, got, c.want)
				break
			}
		}
	}
}
