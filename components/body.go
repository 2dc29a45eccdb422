package components

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/config"
)

// Body holds the physical extent of an agent.
type Body struct {
	Scale       float64
	HalfExtents mgl64.Vec3 // Scaled half-size of the model-space body box
}

// BodyFromSpecies returns the body of a species instance at the given scale.
func BodyFromSpecies(sp *config.SpeciesConfig, scale float64) Body {
	return Body{
		Scale: scale,
		HalfExtents: mgl64.Vec3{
			sp.BodySize[0] * scale / 2,
			sp.BodySize[1] * scale / 2,
			sp.BodySize[2] * scale / 2,
		},
	}
}

// Corners returns the eight corners of the body box placed at pose.
func (b Body) Corners(p Pose) [8]mgl64.Vec3 {
	var out [8]mgl64.Vec3
	h := b.HalfExtents
	for i := 0; i < 8; i++ {
		local := mgl64.Vec3{h[0], h[1], h[2]}
		if i&1 != 0 {
			local[0] = -local[0]
		}
		if i&2 != 0 {
			local[1] = -local[1]
		}
		if i&4 != 0 {
			local[2] = -local[2]
		}
		out[i] = p.Position.Add(p.Orientation.Rotate(local))
	}
	return out
}
