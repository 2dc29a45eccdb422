package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// normalizeOr returns the unit vector of v, or fallback when v has no length.
func normalizeOr(v, fallback mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-12 || math.IsNaN(l) {
		return fallback
	}
	return v.Mul(1 / l)
}

// lerpVec linearly interpolates from a towards b by t.
func lerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// AABB is an axis-aligned box.
type AABB struct {
	Min, Max mgl64.Vec3
}

// BoxAround returns the cube of the given edge centred on p.
func BoxAround(p mgl64.Vec3, edge float64) AABB {
	h := edge / 2
	return AABB{
		Min: mgl64.Vec3{p[0] - h, p[1] - h, p[2] - h},
		Max: mgl64.Vec3{p[0] + h, p[1] + h, p[2] + h},
	}
}

// BoundPoints returns the smallest AABB containing pts.
func BoundPoints(pts []mgl64.Vec3) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	b := AABB{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		for i := 0; i < 3; i++ {
			b.Min[i] = math.Min(b.Min[i], p[i])
			b.Max[i] = math.Max(b.Max[i], p[i])
		}
	}
	return b
}

// Intersects reports whether a and b overlap (touching counts).
func (a AABB) Intersects(b AABB) bool {
	return a.Min[0] <= b.Max[0] && a.Max[0] >= b.Min[0] &&
		a.Min[1] <= b.Max[1] && a.Max[1] >= b.Min[1] &&
		a.Min[2] <= b.Max[2] && a.Max[2] >= b.Min[2]
}
