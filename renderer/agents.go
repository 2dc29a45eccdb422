package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/pthm-cable/reefdive/components"
	"github.com/pthm-cable/reefdive/game"
)

const (
	eyeColor     = 0x101010
	chaseColor   = 0xff3030
	defaultColor = 0xb0b0b0
)

// drawAgents draws each agent as its model when one was loaded, otherwise
// as an oriented body box with a dark nose marking its heading.
func (r *Renderer) drawAgents(agents []game.AgentView) {
	for i := range agents {
		a := &agents[i]
		axis, angle := axisAngle(a.Orientation)

		if m, ok := r.models[a.Species]; ok {
			s := float32(a.Scale)
			rl.DrawModelEx(m, v3(a.Position), axis, angle, rl.NewVector3(s, s, s), r.fogged(0xffffff, a.Position, 255))
			continue
		}

		c, ok := r.colors[a.Species]
		if !ok {
			c = defaultColor
		}
		body := r.fogged(c, a.Position, 255)

		rl.PushMatrix()
		rl.Translatef(float32(a.Position[0]), float32(a.Position[1]), float32(a.Position[2]))
		rl.Rotatef(angle, axis.X, axis.Y, axis.Z)
		rl.DrawCubeV(rl.NewVector3(0, 0, 0), v3(a.HalfExtents.Mul(2)), body)
		rl.PopMatrix()

		nose := a.Position.Add(a.Heading.Mul(maxComponent(a.HalfExtents)))
		noseColor := uint32(eyeColor)
		if a.Hostile && a.Mode == components.ModeChasing {
			noseColor = chaseColor
		}
		rl.DrawSphere(v3(nose), float32(0.2*maxComponent(a.HalfExtents))+0.05, r.fogged(noseColor, nose, 255))
	}
}

func maxComponent(v mgl64.Vec3) float64 {
	m := v[0]
	if v[1] > m {
		m = v[1]
	}
	if v[2] > m {
		m = v[2]
	}
	return m
}
