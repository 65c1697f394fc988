package light

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// SunDirection returns the unit vector from the Earth's center toward the Sun at t, expressed in
// the globe's body frame: +Y is the north pole, the prime meridian faces −X and 90°E faces +Z,
// matching the equirectangular texture wrap of the globe mesh.
//
// Parameters:
//   - t: the instant to evaluate
//
// Returns:
//   - [3]float32: normalized direction as (x, y, z)
func SunDirection(t time.Time) [3]float32 {
	jd := julian.TimeToJD(t.UTC())

	ra, dec := solar.ApparentEquatorial(jd)
	x := dec.Cos() * ra.Cos()
	y := dec.Cos() * ra.Sin()
	z := dec.Sin()

	// Earth-fixed frame via apparent sidereal time at t.
	gast := sidereal.Apparent(jd).Angle()
	cosG, sinG := gast.Cos(), gast.Sin()
	xe := x*cosG + y*sinG
	ye := -x*sinG + y*cosG

	return [3]float32{float32(-xe), float32(z), float32(ye)}
}

// WithSunAt places the light along the real Sun direction at t, at the given distance from the origin.
//
// Parameters:
//   - t: the instant to evaluate
//   - distance: distance of the light position from the origin
//
// Returns:
//   - LightBuilderOption: a function that applies the position option to a lightImpl
func WithSunAt(t time.Time, distance float32) LightBuilderOption {
	d := SunDirection(t)
	return WithPosition(d[0]*distance, d[1]*distance, d[2]*distance)
}
