package scenery

import "math"

// FogFactor is the share of fog colour at distance d for an exponential
// squared fog of the given density, in [0,1].
func FogFactor(density, d float64) float64 {
	x := density * d
	return 1 - math.Exp(-x*x)
}

// Blend mixes two 0xRRGGBB colours; f=0 gives c, f=1 gives fog.
func Blend(c, fog uint32, f float64) uint32 {
	f = math.Max(0, math.Min(1, f))
	mix := func(shift uint) uint32 {
		a := float64((c >> shift) & 0xff)
		b := float64((fog >> shift) & 0xff)
		return uint32(math.Round(a+(b-a)*f)) << shift
	}
	return mix(16) | mix(8) | mix(0)
}
