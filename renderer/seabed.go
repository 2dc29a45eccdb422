package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	sandColor      = 0xc2b280
	rockColor      = 0x5a5a60
	ringRockColor  = 0x6e6658
	plantColor     = 0x2e8b57
	totemColor     = 0x8a8f99
	totemRingColor = 0xd4af37
	totemOrbColor  = 0xe8f4ff
	goalColor      = 0xffe066
	baseColor      = 0x333333
	baseDepth      = -5.0
)

// drawSeabed draws the sand as two triangles per grid cell, shaded by height
// so the dunes read without lighting.
func (r *Renderer) drawSeabed() {
	sb := r.layout.Seabed
	n := sb.Segments()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, b := sb.Vertex(i, j), sb.Vertex(i+1, j)
			c, d := sb.Vertex(i, j+1), sb.Vertex(i+1, j+1)
			centre := a.Add(d).Mul(0.5)
			col := r.fogged(shade(sandColor, centre[1]), centre, 255)
			// Counter-clockwise seen from above
			rl.DrawTriangle3D(v3(a), v3(c), v3(b), col)
			rl.DrawTriangle3D(v3(b), v3(c), v3(d), col)
		}
	}

	size := float32(r.cfg.Arena.Size + 50)
	rl.DrawPlane(rl.NewVector3(0, baseDepth, 0), rl.NewVector2(size, size), color(baseColor, 255))
}

// shade darkens troughs and lightens crests of the height field.
func shade(c uint32, y float64) uint32 {
	k := 0.85 + 0.05*y
	k = math.Max(0.6, math.Min(1.1, k))
	ch := func(shift uint) uint32 {
		v := math.Min(255, float64((c>>shift)&0xff)*k)
		return uint32(v) << shift
	}
	return ch(16) | ch(8) | ch(0)
}

func (r *Renderer) drawRocks() {
	for _, rock := range r.layout.Rocks {
		c := uint32(rockColor)
		if rock.Ring {
			c = ringRockColor
		}
		rl.DrawSphereEx(v3(rock.Position), float32(rock.Radius), 4, 6, r.fogged(c, rock.Position, 255))
	}
}

// drawPlants draws each stalk as a tapered cylinder.
func (r *Renderer) drawPlants() {
	for _, p := range r.layout.Plants {
		rl.DrawCylinder(v3(p.Position), 0.03, 0.12, float32(p.Height), 5, r.fogged(plantColor, p.Position, 255))
	}
}

// drawTotem draws the column, its rings, the orb on top and the goal marker.
func (r *Renderer) drawTotem(goal mgl64.Vec3) {
	t := r.layout.Totem
	base := t.Base

	rl.PushMatrix()
	rl.Translatef(float32(base[0]), float32(base[1]), float32(base[2]))
	rl.Rotatef(float32(mgl64.RadToDeg(t.TiltX)), 1, 0, 0)
	rl.Rotatef(float32(mgl64.RadToDeg(t.TiltZ)), 0, 0, 1)

	h := float32(t.Height)
	rad := float32(t.Radius)
	col := r.fogged(totemColor, base, 255)

	// Plinth, then column
	rl.DrawCylinder(rl.NewVector3(0, 0, 0), rad*1.8, rad*2.5, 1.2, 12, col)
	rl.DrawCylinder(rl.NewVector3(0, 1.2, 0), rad*0.9, rad*1.2, h, 20, col)

	ring := r.fogged(totemRingColor, base, 255)
	for i := 1; i <= 3; i++ {
		y := 1.2 + float32(i)*h/4
		rl.DrawCylinder(rl.NewVector3(0, y-0.25, 0), rad+0.25, rad+0.25, 0.5, 24, ring)
	}
	rl.DrawSphereEx(rl.NewVector3(0, 1.2+h+rad*0.8, 0), rad*2, 16, 16, r.fogged(totemOrbColor, t.Top(), 255))
	rl.PopMatrix()

	rl.DrawSphereWires(v3(goal), 1, 8, 8, r.fogged(goalColor, goal, 200))
}
